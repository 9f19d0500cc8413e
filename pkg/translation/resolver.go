// Package translation resolves source (English) messages to localized text.
//
// Lookups are exact, byte-for-byte string matches. A message without a
// translation is returned unchanged, so a missing entry degrades to the source
// language instead of dropping the finding.
package translation

import (
	"sort"

	"github.com/user/scanreport/pkg/report"
)

// Table maps a source message to its translation.
type Table map[string]string

// Resolver is immutable once built and safe for concurrent use.
type Resolver struct {
	tables map[report.Language]Table
}

// NewResolver copies the given tables; later changes to them are not observed.
func NewResolver(tables map[report.Language]Table) *Resolver {
	r := &Resolver{tables: make(map[report.Language]Table, len(tables))}
	for lang, t := range tables {
		c := make(Table, len(t))
		for k, v := range t {
			c[k] = v
		}
		r.tables[lang] = c
	}
	return r
}

// Builtin returns a fresh copy of the translation tables compiled into the binary.
func Builtin() map[report.Language]Table {
	pl := make(Table, len(nucleiMessagesPolish)+len(uiMessagesPolish))
	for k, v := range nucleiMessagesPolish {
		pl[k] = v
	}
	for k, v := range uiMessagesPolish {
		pl[k] = v
	}
	return map[report.Language]Table{report.LanguagePolish: pl}
}

// Default builds a resolver from the built-in tables only.
func Default() *Resolver {
	return NewResolver(Builtin())
}

// Merge overlays the override tables onto base, in place, and returns base.
func Merge(base map[report.Language]Table, overrides map[report.Language]Table) map[report.Language]Table {
	if base == nil {
		base = make(map[report.Language]Table)
	}
	for lang, t := range overrides {
		if base[lang] == nil {
			base[lang] = make(Table, len(t))
		}
		for k, v := range t {
			base[lang][k] = v
		}
	}
	return base
}

// Translate returns the translation of message into lang, or message itself.
func (r *Resolver) Translate(message string, lang report.Language) string {
	if t, ok := r.tables[lang][message]; ok {
		return t
	}
	return message
}

// Has reports whether message has a translation into lang. The source language
// always has one.
func (r *Resolver) Has(message string, lang report.Language) bool {
	if lang.IsSource() {
		return true
	}
	_, ok := r.tables[lang][message]
	return ok
}

// Missing returns the sorted, distinct messages that have no translation into lang.
func (r *Resolver) Missing(messages []string, lang report.Language) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range messages {
		if m == "" || r.Has(m, lang) {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Func binds the resolver to one language, for use as a template function.
func (r *Resolver) Func(lang report.Language) func(string) string {
	return func(message string) string {
		return r.Translate(message, lang)
	}
}

// Len returns the number of messages translated into lang.
func (r *Resolver) Len(lang report.Language) int {
	return len(r.tables[lang])
}
