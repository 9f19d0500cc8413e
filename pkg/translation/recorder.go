package translation

import (
	"sort"
	"sync"

	"github.com/user/scanreport/pkg/report"
)

// Recorder wraps a Resolver and remembers every message looked up through it.
type Recorder struct {
	resolver *Resolver

	mu   sync.Mutex
	seen map[report.Language]map[string]struct{}
}

func NewRecorder(r *Resolver) *Recorder {
	return &Recorder{resolver: r, seen: make(map[report.Language]map[string]struct{})}
}

// Func is Resolver.Func with recording.
func (r *Recorder) Func(lang report.Language) func(string) string {
	return func(message string) string {
		r.mu.Lock()
		if r.seen[lang] == nil {
			r.seen[lang] = make(map[string]struct{})
		}
		r.seen[lang][message] = struct{}{}
		r.mu.Unlock()
		return r.resolver.Translate(message, lang)
	}
}

// Messages returns the sorted messages looked up in lang.
func (r *Recorder) Messages(lang report.Language) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.seen[lang]))
	for m := range r.seen[lang] {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Missing returns the looked-up messages that have no translation into lang.
func (r *Recorder) Missing(lang report.Language) []string {
	return r.resolver.Missing(r.Messages(lang), lang)
}
