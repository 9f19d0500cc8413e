package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/net/idna"
)

// NormalForm is the deduplication key of a report. Two reports with the same type
// and NormalForm describe the same finding. It is comparable and can key a map.
type NormalForm string

// DictToTuple turns a field mapping into a NormalForm. Fields are ordered by name,
// so the result does not depend on the order the map was filled in.
func DictToTuple(fields map[string]string) NormalForm {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, fields[k]})
	}
	// Marshalling a slice of string pairs cannot fail.
	b, _ := json.Marshal(pairs)
	return NormalForm(b)
}

// Fingerprint is a stable digest of the normal form, safe to persist between runs.
func (n NormalForm) Fingerprint() string {
	sum := sha256.Sum256([]byte(n))
	return hex.EncodeToString(sum[:])
}

// DomainNormalForm lower-cases a domain, converts it to its ASCII form and strips
// the trailing dot and the "www." prefix.
func DomainNormalForm(domain string) string {
	d := strings.TrimSuffix(strings.TrimSpace(domain), ".")
	if ascii, err := idna.Lookup.ToASCII(d); err == nil {
		d = ascii
	}
	d = strings.ToLower(d)
	return strings.TrimPrefix(d, "www.")
}

// URLNormalForm reduces a URL to host (in domain normal form), non-default port,
// path without the trailing slash, and query. The scheme is dropped.
func URLNormalForm(rawURL string) string {
	raw := strings.TrimSpace(rawURL)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return strings.ToLower(strings.TrimSpace(rawURL))
	}

	host := DomainNormalForm(u.Hostname())
	port := u.Port()
	if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
		port = ""
	}
	if port != "" {
		host = net.JoinHostPort(host, port)
	}

	out := host + strings.TrimSuffix(u.EscapedPath(), "/")
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	return out
}

// URLHost returns the host part of a URL (or of a bare host), or "" if none.
func URLHost(rawURL string) string {
	raw := strings.TrimSpace(rawURL)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// DomainScore ranks domains when choosing which of several equivalent names to
// report: shorter names score higher, and a "www." prefix costs a point.
func DomainScore(domain string) int {
	d := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(domain)), ".")
	if d == "" {
		return 0
	}
	score := -2 * strings.Count(d, ".")
	if strings.HasPrefix(d, "www.") {
		score--
	}
	return score
}
