// Package domainexpiration reports domains whose registration expires soon.
package domainexpiration

import (
	"embed"
	"time"

	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/reporter"
	"github.com/user/scanreport/pkg/scoring"
	"github.com/user/scanreport/pkg/templating"
)

// Receiver is the name of the scanning module whose results this reporter reads.
const Receiver = "domain_expiration_scanner"

// CloseDomainExpirationDate is reported for a domain that expires soon.
const CloseDomainExpirationDate report.Type = "close_domain_expiration_date"

const dateFormat = "02-01-2006"

//go:embed templates/*.tmpl
var templates embed.FS

var fragments = []templating.Fragment{
	templating.MustFromFS(templates, "templates/close_domain_expiration_date.tmpl",
		"Domains close to expiration", 5, CloseDomainExpirationDate),
}

// Reporter implements reporter.Reporter for the domain expiration scanner.
type Reporter struct{}

var _ reporter.Reporter = Reporter{}

func (Reporter) Name() string { return Receiver }

func (Reporter) ReportTypes() []report.Type {
	return []report.Type{CloseDomainExpirationDate}
}

func (Reporter) CreateReports(tr report.TaskResult, _ report.Language) ([]report.Report, error) {
	if !reporter.Guard(tr, Receiver) {
		return nil, nil
	}
	result, ok := tr.Result.(map[string]any)
	if !ok {
		return nil, nil
	}
	expiration, ok := parseDate(result["expiration_date"])
	if !ok {
		return nil, nil
	}
	domain := tr.PayloadString("domain")
	if domain == "" {
		return nil, nil
	}

	return []report.Report{
		report.New(
			report.TopLevelTarget(tr),
			domain,
			CloseDomainExpirationDate,
			map[string]string{"expiration_date": expiration.Format(dateFormat)},
			tr.CreatedAt,
		),
	}, nil
}

func (Reporter) EmailTemplateFragments() []templating.Fragment {
	return append([]templating.Fragment(nil), fragments...)
}

func (Reporter) ScoringRules() map[report.Type]reporter.ScoringRule {
	return map[report.Type]reporter.ScoringRule{
		CloseDomainExpirationDate: func(r report.Report) scoring.Score {
			return scoring.Score{report.DomainScore(r.Target)}
		},
	}
}

func (Reporter) NormalFormRules() map[report.Type]reporter.NormalFormRule {
	return map[report.Type]reporter.NormalFormRule{
		CloseDomainExpirationDate: func(r report.Report) report.NormalForm {
			return report.DictToTuple(map[string]string{
				"type":    string(r.ReportType),
				"target":  report.DomainNormalForm(r.Target),
				"message": r.Data("expiration_date"),
			})
		},
	}
}

// parseDate accepts an in-process time.Time or its usual serialized forms.
func parseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return *d, true
	case string:
		if t, err := report.ParseTime(d); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
