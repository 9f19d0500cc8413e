package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/scanreport/pkg/engine"
	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/translation"
)

func sampleResult(lang report.Language) *engine.Result {
	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	return &engine.Result{
		RunID:       uuid.New(),
		Language:    lang,
		GeneratedAt: at,
		Entries: []engine.Entry{
			{
				Report: report.New("example.com", "example.com", "close_domain_expiration_date", nil, at),
				Fragments: []engine.RenderedFragment{
					{Name: "expiration", Title: "Expiring", Priority: 5, HTML: "<li>expiring &lt;b&gt;</li>"},
				},
			},
			{
				Report: report.New("example.com", "https://example.com/", "nuclei_vulnerability", nil, at),
				Fragments: []engine.RenderedFragment{
					{Name: "vulnerability", Title: "Vulnerable", Priority: 1, HTML: "<li>first</li>"},
				},
			},
			{
				Report: report.New("example.com", "https://example.com/x", "nuclei_vulnerability", nil, at),
				Fragments: []engine.RenderedFragment{
					{Name: "vulnerability", Title: "Vulnerable", Priority: 1, HTML: "<li>second</li>"},
				},
			},
		},
	}
}

func TestSections_GroupedByPriority(t *testing.T) {
	sections := Sections(sampleResult(report.LanguageEnglish))

	require.Len(t, sections, 2)
	assert.Equal(t, "Vulnerable", sections[0].Title)
	assert.Len(t, sections[0].Items, 2)
	assert.Equal(t, "<li>first</li>", string(sections[0].Items[0]))
	assert.Equal(t, "Expiring", sections[1].Title)
}

func TestHTMLRenderer_Render(t *testing.T) {
	h, err := NewHTMLRenderer(translation.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, h.Render(&buf, sampleResult(report.LanguagePolish)))
	out := buf.String()

	assert.Contains(t, out, `<html lang="pl-PL">`)
	assert.Contains(t, out, "<li>expiring &lt;b&gt;</li>")
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "expiring"))
	assert.NotContains(t, out, "Security scan report")
}

func TestHTMLRenderer_Empty(t *testing.T) {
	h, err := NewHTMLRenderer(nil)
	require.NoError(t, err)

	res := sampleResult(report.LanguageEnglish)
	res.Entries = nil
	var buf bytes.Buffer
	require.NoError(t, h.Render(&buf, res))
	assert.Contains(t, buf.String(), "No vulnerabilities were found.")
}

func TestJSONWriter_Render(t *testing.T) {
	res := sampleResult(report.LanguageEnglish)
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Render(&buf, res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "1.0", decoded["version"])
	assert.Equal(t, res.RunID.String(), decoded["run_id"])
	assert.Len(t, decoded["entries"], 3)
}

func TestFor(t *testing.T) {
	r, err := For("JSON", nil)
	require.NoError(t, err)
	assert.IsType(t, &JSONWriter{}, r)

	r, err = For("", nil)
	require.NoError(t, err)
	assert.IsType(t, &HTMLRenderer{}, r)

	_, err = For("pdf", nil)
	assert.Error(t, err)
}
