package reporter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/scoring"
	"github.com/user/scanreport/pkg/templating"
)

var (
	ErrDuplicateReportType   = errors.New("report type already owned by another reporter")
	ErrMissingScoringRule    = errors.New("report type has no scoring rule")
	ErrMissingNormalFormRule = errors.New("report type has no normal form rule")
	ErrUndeclaredReportType  = errors.New("rule given for a report type the reporter does not declare")
	ErrUnknownReportType     = errors.New("report type has no registered reporter")
)

type entry struct {
	owner      Reporter
	score      ScoringRule
	normalForm NormalFormRule
	fragments  []templating.Fragment
}

// Registry routes report types to the rules of the reporter that owns them. It is
// filled at startup and read-only afterwards.
type Registry struct {
	reporters []Reporter
	types     map[report.Type]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[report.Type]*entry)}
}

// New creates a registry holding the given reporters.
func New(reporters ...Reporter) (*Registry, error) {
	r := NewRegistry()
	for _, rep := range reporters {
		if err := r.Register(rep); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNew is New for the static module list; it panics on a configuration error.
func MustNew(reporters ...Reporter) *Registry {
	r, err := New(reporters...)
	if err != nil {
		panic(err)
	}
	return r
}

// Register validates rep and adds it. Nothing is added when validation fails.
func (r *Registry) Register(rep Reporter) error {
	if rep == nil || rep.Name() == "" {
		return fmt.Errorf("reporter name is required")
	}

	types := rep.ReportTypes()
	scores := rep.ScoringRules()
	forms := rep.NormalFormRules()

	declared := make(map[report.Type]bool, len(types))
	for _, t := range types {
		if existing, ok := r.types[t]; ok {
			return fmt.Errorf("%w: %q claimed by %s and %s", ErrDuplicateReportType, t, existing.owner.Name(), rep.Name())
		}
		if declared[t] {
			return fmt.Errorf("%w: %q declared twice by %s", ErrDuplicateReportType, t, rep.Name())
		}
		declared[t] = true
		if scores[t] == nil {
			return fmt.Errorf("%w: %q (%s)", ErrMissingScoringRule, t, rep.Name())
		}
		if forms[t] == nil {
			return fmt.Errorf("%w: %q (%s)", ErrMissingNormalFormRule, t, rep.Name())
		}
	}
	for t := range scores {
		if !declared[t] {
			return fmt.Errorf("%w: scoring rule for %q (%s)", ErrUndeclaredReportType, t, rep.Name())
		}
	}
	for t := range forms {
		if !declared[t] {
			return fmt.Errorf("%w: normal form rule for %q (%s)", ErrUndeclaredReportType, t, rep.Name())
		}
	}

	fragments := rep.EmailTemplateFragments()
	templating.Sort(fragments)

	for _, t := range types {
		e := &entry{owner: rep, score: scores[t], normalForm: forms[t]}
		for _, f := range fragments {
			if f.AppliesTo(t) {
				e.fragments = append(e.fragments, f)
			}
		}
		r.types[t] = e
	}
	r.reporters = append(r.reporters, rep)
	return nil
}

// Reporters returns the registered reporters in registration order.
func (r *Registry) Reporters() []Reporter {
	return append([]Reporter(nil), r.reporters...)
}

// Types returns every registered report type, sorted.
func (r *Registry) Types() []report.Type {
	out := make([]report.Type, 0, len(r.types))
	for t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Owner returns the reporter owning report type t.
func (r *Registry) Owner(t report.Type) (Reporter, bool) {
	e, ok := r.types[t]
	if !ok {
		return nil, false
	}
	return e.owner, true
}

// Score applies the scoring rule of the report's type.
func (r *Registry) Score(rep report.Report) (scoring.Score, error) {
	e, ok := r.types[rep.ReportType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, rep.ReportType)
	}
	return e.score(rep), nil
}

// NormalForm applies the normal form rule of the report's type.
func (r *Registry) NormalForm(rep report.Report) (report.NormalForm, error) {
	e, ok := r.types[rep.ReportType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownReportType, rep.ReportType)
	}
	return e.normalForm(rep), nil
}

// Fragments returns the fragments rendering report type t, in priority order.
func (r *Registry) Fragments(t report.Type) []templating.Fragment {
	e, ok := r.types[t]
	if !ok {
		return nil
	}
	return append([]templating.Fragment(nil), e.fragments...)
}
