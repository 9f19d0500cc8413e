// Package engine runs the aggregation pipeline: reporters fan out over a batch of
// task results, and the candidates they produce are deduplicated, ordered and
// rendered.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/user/scanreport/pkg/logger"
	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/reporter"
	"github.com/user/scanreport/pkg/scoring"
	"github.com/user/scanreport/pkg/translation"
)

// RenderedFragment is one template fragment rendered for an entry.
type RenderedFragment struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Priority int    `json:"priority"`
	HTML     string `json:"html"`
}

// Entry is one deduplicated finding in output order.
type Entry struct {
	Report      report.Report      `json:"report"`
	Score       scoring.Score      `json:"score"`
	NormalForm  report.NormalForm  `json:"normal_form"`
	Fingerprint string             `json:"fingerprint"`
	Duplicates  int                `json:"duplicates"`
	Fragments   []RenderedFragment `json:"fragments"`
}

// Stats counts what happened during a run.
type Stats struct {
	TaskResults    int `json:"task_results"`
	Candidates     int `json:"candidates"`
	Groups         int `json:"groups"`
	ModuleFailures int `json:"module_failures"`
}

// Result is the outcome of one aggregation run.
type Result struct {
	RunID       uuid.UUID       `json:"run_id"`
	Language    report.Language `json:"language"`
	GeneratedAt time.Time       `json:"generated_at"`
	Entries     []Entry         `json:"entries"`
	Stats       Stats           `json:"stats"`
}

// Translator binds translations to a language. *translation.Resolver and
// *translation.Recorder implement it.
type Translator interface {
	Func(lang report.Language) func(string) string
}

// Pipeline aggregates task results through a fixed set of reporters.
type Pipeline struct {
	registry    *reporter.Registry
	resolver    Translator
	concurrency int
	log         *logrus.Entry
	now         func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConcurrency bounds the number of reporter calls running at once. Values
// below one mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the logger module failures are reported to.
func WithLogger(log *logrus.Entry) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithClock replaces the clock used for Result.GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPipeline creates a pipeline. A nil resolver means the built-in tables.
func NewPipeline(reg *reporter.Registry, resolver Translator, opts ...Option) *Pipeline {
	if resolver == nil {
		resolver = translation.Default()
	}
	p := &Pipeline{
		registry:    reg,
		resolver:    resolver,
		concurrency: runtime.GOMAXPROCS(0),
		log:         logger.For("pipeline"),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// slot holds what one (task result, reporter) call produced.
type slot struct {
	reports []report.Report
	err     error
}

// Run aggregates results in lang. Module errors and panics are logged and
// counted; an error is returned only for configuration problems, a failed
// template or a cancelled context.
func (p *Pipeline) Run(ctx context.Context, results []report.TaskResult, lang report.Language) (*Result, error) {
	reporters := p.registry.Reporters()
	slots := make([]slot, len(results)*len(reporters))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i := range results {
		for j := range reporters {
			i, j := i, j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				reports, err := safeCreate(reporters[j], results[i], lang)
				slots[i*len(reporters)+j] = slot{reports: reports, err: err}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregation cancelled: %w", err)
	}

	stats := Stats{TaskResults: len(results)}
	var candidates []Candidate
	for k, s := range slots {
		if s.err != nil {
			stats.ModuleFailures++
			p.log.WithFields(logrus.Fields{
				"module":   reporters[k%len(reporters)].Name(),
				"receiver": results[k/len(reporters)].Receiver(),
			}).WithError(s.err).Warn("Reporter failed, skipping its contribution")
			continue
		}
		for _, r := range s.reports {
			score, err := p.registry.Score(r)
			if err != nil {
				return nil, err
			}
			nf, err := p.registry.NormalForm(r)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, Candidate{Report: r, Score: score, NormalForm: nf})
		}
	}
	stats.Candidates = len(candidates)

	groups := GroupCandidates(candidates)
	Order(groups)
	stats.Groups = len(groups)

	tr := p.resolver.Func(lang)
	entries := make([]Entry, 0, len(groups))
	for _, grp := range groups {
		rep := grp.Representative
		entry := Entry{
			Report:      rep.Report,
			Score:       rep.Score,
			NormalForm:  rep.NormalForm,
			Fingerprint: rep.NormalForm.Fingerprint(),
			Duplicates:  len(grp.Members) - 1,
		}
		for _, f := range p.registry.Fragments(rep.Report.ReportType) {
			html, err := f.Render(rep.Report, lang, tr)
			if err != nil {
				return nil, fmt.Errorf("render %s for %s: %w", f.Name, rep.Report.Target, err)
			}
			entry.Fragments = append(entry.Fragments, RenderedFragment{
				Name:     f.Name,
				Title:    tr(f.Title),
				Priority: f.Priority,
				HTML:     html,
			})
		}
		entries = append(entries, entry)
	}

	p.log.WithFields(logrus.Fields{
		"task_results": stats.TaskResults,
		"candidates":   stats.Candidates,
		"groups":       stats.Groups,
		"failures":     stats.ModuleFailures,
	}).Debug("Aggregation finished")

	return &Result{
		RunID:       uuid.New(),
		Language:    lang,
		GeneratedAt: p.now(),
		Entries:     entries,
		Stats:       stats,
	}, nil
}

func safeCreate(rep reporter.Reporter, tr report.TaskResult, lang report.Language) (reports []report.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			reports = nil
			err = fmt.Errorf("panic in %s reporter: %v", rep.Name(), r)
		}
	}()
	return rep.CreateReports(tr, lang)
}
