package report

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// TopLevelTarget returns the root scope a task result belongs to: the domain or IP
// the scan was originally started for, or the registrable domain of the scanned one.
func TopLevelTarget(t TaskResult) string {
	for _, key := range []string{"original_domain", "original_ip"} {
		if v, ok := t.PayloadPersistent[key].(string); ok && v != "" {
			return v
		}
	}

	domain := t.PayloadString("domain")
	if domain == "" {
		domain = URLHost(t.PayloadString("url"))
	}
	if domain == "" {
		return t.PayloadString("host")
	}

	if net.ParseIP(domain) != nil {
		return domain
	}
	normalized := strings.TrimSuffix(strings.ToLower(domain), ".")
	if root, err := publicsuffix.EffectiveTLDPlusOne(normalized); err == nil {
		return root
	}
	return domain
}
