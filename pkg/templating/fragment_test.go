package templating

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/scanreport/pkg/report"
)

func sampleReport(data map[string]string) report.Report {
	return report.New("example.com", "example.com", "sample", data, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestRender_TranslatesThenEscapes(t *testing.T) {
	f, err := New("sample.tmpl", "Sample", 1, `<li>{{ tr (.Report.Data "message") }} [{{ lang }}]</li>`, "sample")
	require.NoError(t, err)

	tr := func(s string) string {
		if s == "raw" {
			return `<script>alert(1)</script> & more`
		}
		return s
	}
	out, err := f.Render(sampleReport(map[string]string{"message": "raw"}), report.LanguagePolish, tr)
	require.NoError(t, err)
	assert.Equal(t, `<li>&lt;script&gt;alert(1)&lt;/script&gt; &amp; more [pl_PL]</li>`, out)
}

func TestRender_NilTranslatorKeepsSource(t *testing.T) {
	f, err := New("sample.tmpl", "", 1, `{{ tr "Domain" }} {{ .Report.Target }}`, "sample")
	require.NoError(t, err)

	out, err := f.Render(sampleReport(nil), report.LanguageEnglish, nil)
	require.NoError(t, err)
	assert.Equal(t, "Domain example.com", out)
}

func TestRender_CanBeReusedAcrossLanguages(t *testing.T) {
	f, err := New("sample.tmpl", "", 1, `{{ tr "Domain" }}`, "sample")
	require.NoError(t, err)

	pl, err := f.Render(sampleReport(nil), report.LanguagePolish, func(string) string { return "Domena" })
	require.NoError(t, err)
	en, err := f.Render(sampleReport(nil), report.LanguageEnglish, nil)
	require.NoError(t, err)

	assert.Equal(t, "Domena", pl)
	assert.Equal(t, "Domain", en)
}

func TestNew_InvalidTemplate(t *testing.T) {
	_, err := New("broken.tmpl", "", 1, `{{ if }`)
	assert.Error(t, err)
}

func TestRender_ZeroValueFragment(t *testing.T) {
	_, err := Fragment{Name: "empty"}.Render(sampleReport(nil), report.LanguageEnglish, nil)
	assert.Error(t, err)
}

func TestFromFS(t *testing.T) {
	fsys := fstest.MapFS{"templates/x.tmpl": {Data: []byte(`{{ .Report.Target }}`)}}

	f, err := FromFS(fsys, "templates/x.tmpl", "X", 3, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "x.tmpl", f.Name)
	assert.Equal(t, 3, f.Priority)
	assert.True(t, f.AppliesTo("b"))
	assert.False(t, f.AppliesTo("c"))

	_, err = FromFS(fsys, "templates/missing.tmpl", "", 1)
	assert.Error(t, err)
	assert.Panics(t, func() { MustFromFS(fsys, "templates/missing.tmpl", "", 1) })
}

func TestSort(t *testing.T) {
	mk := func(name string, prio int) Fragment { return Fragment{Name: name, Priority: prio} }
	fs := []Fragment{mk("b", 5), mk("a", 5), mk("z", 1)}
	Sort(fs)

	assert.Equal(t, []string{"z", "a", "b"}, []string{fs[0].Name, fs[1].Name, fs[2].Name})
}
