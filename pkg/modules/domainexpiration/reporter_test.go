package domainexpiration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/reporter"
	"github.com/user/scanreport/pkg/translation"
)

var created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func taskResult(status string, result any) report.TaskResult {
	return report.TaskResult{
		Headers:   report.Headers{Receiver: Receiver},
		Status:    status,
		Result:    result,
		Payload:   map[string]any{"domain": "example.com"},
		CreatedAt: created,
	}
}

func TestCreateReports_Interesting(t *testing.T) {
	tr := taskResult(report.StatusInteresting, map[string]any{
		"expiration_date": time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	reports, err := Reporter{}.CreateReports(tr, report.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, "example.com", r.Target)
	assert.Equal(t, "example.com", r.TopLevelTarget)
	assert.Equal(t, CloseDomainExpirationDate, r.ReportType)
	assert.Equal(t, map[string]string{"expiration_date": "01-01-2030"}, r.AdditionalData)
	assert.Equal(t, created, r.Timestamp)
}

func TestCreateReports_SerializedDates(t *testing.T) {
	for _, in := range []string{"2030-01-01", "2030-01-01T00:00:00Z", "2030-01-01 10:11:12", "2030-01-01 00:00:00+00:00", "2030-01-01T00:00:00.123456"} {
		reports, err := Reporter{}.CreateReports(taskResult(report.StatusInteresting, map[string]any{"expiration_date": in}), report.LanguagePolish)
		require.NoError(t, err, in)
		require.Len(t, reports, 1, in)
		assert.Equal(t, "01-01-2030", reports[0].Data("expiration_date"), in)
	}
}

func TestCreateReports_NoReports(t *testing.T) {
	valid := map[string]any{"expiration_date": time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

	cases := map[string]report.TaskResult{
		"status OK":        taskResult(report.StatusOK, valid),
		"status ERROR":     taskResult(report.StatusError, valid),
		"result not a map": taskResult(report.StatusInteresting, []any{"x"}),
		"nil result":       taskResult(report.StatusInteresting, nil),
		"missing date":     taskResult(report.StatusInteresting, map[string]any{}),
		"garbage date":     taskResult(report.StatusInteresting, map[string]any{"expiration_date": "soon"}),
		"date of bad type": taskResult(report.StatusInteresting, map[string]any{"expiration_date": 42}),
		"foreign receiver": func() report.TaskResult {
			tr := taskResult(report.StatusInteresting, valid)
			tr.Headers.Receiver = "nuclei"
			return tr
		}(),
		"missing domain": func() report.TaskResult {
			tr := taskResult(report.StatusInteresting, valid)
			tr.Payload = nil
			return tr
		}(),
	}
	for name, tr := range cases {
		t.Run(name, func(t *testing.T) {
			reports, err := Reporter{}.CreateReports(tr, report.LanguageEnglish)
			assert.NoError(t, err)
			assert.Empty(t, reports)
		})
	}
}

func TestRules(t *testing.T) {
	reg, err := reporter.New(Reporter{})
	require.NoError(t, err)

	a := report.New("example.com", "www.Example.com", CloseDomainExpirationDate, map[string]string{"expiration_date": "01-01-2030"}, created)
	b := report.New("example.com", "example.com", CloseDomainExpirationDate, map[string]string{"expiration_date": "01-01-2030"}, created.Add(time.Hour))
	c := report.New("example.com", "example.com", CloseDomainExpirationDate, map[string]string{"expiration_date": "02-01-2030"}, created)

	nfA, _ := reg.NormalForm(a)
	nfB, _ := reg.NormalForm(b)
	nfC, _ := reg.NormalForm(c)
	assert.Equal(t, nfA, nfB)
	assert.NotEqual(t, nfA, nfC)

	scoreA, _ := reg.Score(a)
	scoreB, _ := reg.Score(b)
	assert.Less(t, scoreA[0], scoreB[0])
}

func TestFragment_RendersInPolish(t *testing.T) {
	frags := Reporter{}.EmailTemplateFragments()
	require.Len(t, frags, 1)
	assert.Equal(t, 5, frags[0].Priority)

	r := report.New("example.com", "example.com", CloseDomainExpirationDate, map[string]string{"expiration_date": "01-01-2030"}, created)
	out, err := frags[0].Render(r, report.LanguagePolish, translation.Default().Func(report.LanguagePolish))
	require.NoError(t, err)
	assert.Contains(t, out, "Domena <b>example.com</b> wygasa 01-01-2030.")
}
