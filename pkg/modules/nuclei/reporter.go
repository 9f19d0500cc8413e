// Package nuclei reports vulnerabilities and exposed panels found by nuclei templates.
package nuclei

import (
	"embed"
	"strings"

	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/reporter"
	"github.com/user/scanreport/pkg/scoring"
	"github.com/user/scanreport/pkg/templating"
)

const Receiver = "nuclei"

const (
	Vulnerability report.Type = "nuclei_vulnerability"
	ExposedPanel  report.Type = "nuclei_exposed_panel"
)

// Descriptions of templates without one are keyed by this prefix and the template
// path, so they can still be translated.
const noDescriptionPrefix = "[no description] "

//go:embed templates/*.tmpl
var templates embed.FS

var fragments = []templating.Fragment{
	templating.MustFromFS(templates, "templates/nuclei_vulnerability.tmpl", "Known vulnerabilities", 1, Vulnerability),
	templating.MustFromFS(templates, "templates/nuclei_exposed_panel.tmpl", "Exposed administration panels", 7, ExposedPanel),
}

var severityRank = map[string]int{
	"info":     0,
	"low":      1,
	"medium":   2,
	"high":     3,
	"critical": 4,
}

// Reporter implements reporter.Reporter for nuclei results.
type Reporter struct{}

var _ reporter.Reporter = Reporter{}

func (Reporter) Name() string { return Receiver }

func (Reporter) ReportTypes() []report.Type {
	return []report.Type{Vulnerability, ExposedPanel}
}

// CreateReports emits one report per well-formed finding. Malformed findings are
// skipped without affecting the others.
func (Reporter) CreateReports(tr report.TaskResult, _ report.Language) ([]report.Report, error) {
	if !reporter.Guard(tr, Receiver) {
		return nil, nil
	}
	items, ok := tr.Result.([]any)
	if !ok {
		return nil, nil
	}

	topLevel := report.TopLevelTarget(tr)
	var out []report.Report
	for _, item := range items {
		f, ok := item.(map[string]any)
		if !ok {
			continue
		}
		tmpl := stringField(f, "template")
		if tmpl == "" {
			tmpl = stringField(f, "template-id")
		}
		if tmpl == "" {
			continue
		}
		info, _ := f["info"].(map[string]any)

		target := stringField(f, "matched-at")
		if target == "" {
			target = stringField(f, "matched_at")
		}
		if target == "" {
			target = tr.PayloadString("url")
		}
		if target == "" {
			continue
		}

		description := strings.TrimSpace(stringField(info, "description"))
		if description == "" {
			description = noDescriptionPrefix + tmpl
		}
		severity := strings.ToLower(stringField(info, "severity"))

		reportType := Vulnerability
		if strings.Contains(tmpl, "exposed-panels/") {
			reportType = ExposedPanel
		}

		out = append(out, report.New(topLevel, target, reportType, map[string]string{
			"template":    tmpl,
			"name":        stringField(info, "name"),
			"description": description,
			"severity":    severity,
			"matched_at":  target,
		}, tr.CreatedAt))
	}
	return out, nil
}

func (Reporter) EmailTemplateFragments() []templating.Fragment {
	return append([]templating.Fragment(nil), fragments...)
}

func (Reporter) ScoringRules() map[report.Type]reporter.ScoringRule {
	score := func(r report.Report) scoring.Score {
		return scoring.Score{severityRank[r.Data("severity")], report.DomainScore(report.URLHost(r.Target))}
	}
	return map[report.Type]reporter.ScoringRule{
		Vulnerability: score,
		ExposedPanel:  score,
	}
}

func (Reporter) NormalFormRules() map[report.Type]reporter.NormalFormRule {
	// The template path, not the (translatable) description, identifies the finding.
	form := func(r report.Report) report.NormalForm {
		return report.DictToTuple(map[string]string{
			"type":    string(r.ReportType),
			"target":  report.URLNormalForm(r.Target),
			"message": r.Data("template"),
		})
	}
	return map[report.Type]reporter.NormalFormRule{
		Vulnerability: form,
		ExposedPanel:  form,
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
