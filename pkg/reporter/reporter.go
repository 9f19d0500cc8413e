// Package reporter defines the contract every scanning module's reporting adapter
// implements, and the registry the aggregation pipeline routes reports through.
package reporter

import (
	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/scoring"
	"github.com/user/scanreport/pkg/templating"
)

// ScoringRule maps a report to its score. It must be pure.
type ScoringRule func(report.Report) scoring.Score

// NormalFormRule maps a report to its deduplication key. It must be pure.
type NormalFormRule func(report.Report) report.NormalForm

// Reporter turns the task results of one scanning module into reports and supplies
// the rules for the report types it owns.
//
// CreateReports must be a pure function of its arguments: the pipeline calls it
// concurrently and may call it more than once for the same task result. Results
// belonging to other modules, results that are not INTERESTING, and results of an
// unexpected shape all yield no reports and no error.
type Reporter interface {
	// Name is the receiver name of the scanning module.
	Name() string
	// ReportTypes lists every report type the module owns.
	ReportTypes() []report.Type
	CreateReports(tr report.TaskResult, lang report.Language) ([]report.Report, error)
	EmailTemplateFragments() []templating.Fragment
	ScoringRules() map[report.Type]ScoringRule
	NormalFormRules() map[report.Type]NormalFormRule
}

// Guard runs the checks shared by all reporters: the result must be addressed to
// receiver and have the INTERESTING status.
func Guard(tr report.TaskResult, receiver string) bool {
	return tr.Receiver() == receiver && tr.IsInteresting()
}
