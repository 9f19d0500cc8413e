package translation

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/scanreport/pkg/report"
)

const glpiMessage = "GLPI through 10.0.2 is susceptible to remote command execution injection in /vendor/htmlawed/htmlawed/htmLawedTest.php in the htmlawed module."

func TestTranslate_ComposedFromHints(t *testing.T) {
	r := Default()

	got := r.Translate(glpiMessage, report.LanguagePolish)
	assert.True(t, strings.HasPrefix(got, "Narzędzie GLPI w wersji do 10.0.2"), got)
	assert.True(t, strings.HasSuffix(got, rceEffectDescription+updateHint), got)
}

func TestTranslate_FallbackIsByteExact(t *testing.T) {
	r := Default()

	for _, msg := range []string{
		"Some message nobody translated.",
		glpiMessage + " ",
		strings.ToUpper(glpiMessage),
		"",
		"zażółć gęślą jaźń\t\n",
	} {
		assert.Equal(t, msg, r.Translate(msg, report.LanguagePolish))
		assert.Equal(t, msg, r.Translate(msg, report.LanguageEnglish))
	}
}

func TestTranslate_SourceLanguageIsIdentity(t *testing.T) {
	r := Default()
	assert.Equal(t, glpiMessage, r.Translate(glpiMessage, report.LanguageEnglish))
	assert.True(t, r.Has("anything", report.LanguageEnglish))
}

func TestNewResolver_CopiesTables(t *testing.T) {
	tables := map[report.Language]Table{report.LanguagePolish: {"Hello": "Cześć"}}
	r := NewResolver(tables)
	tables[report.LanguagePolish]["Hello"] = "changed"

	assert.Equal(t, "Cześć", r.Translate("Hello", report.LanguagePolish))
}

func TestMissing(t *testing.T) {
	r := NewResolver(map[report.Language]Table{report.LanguagePolish: {"a": "A"}})

	got := r.Missing([]string{"c", "a", "b", "c", ""}, report.LanguagePolish)
	assert.Equal(t, []string{"b", "c"}, got)
	assert.Empty(t, r.Missing([]string{"x"}, report.LanguageEnglish))
}

func TestMerge_OverridesWin(t *testing.T) {
	base := map[report.Language]Table{report.LanguagePolish: {"a": "1", "b": "2"}}
	Merge(base, map[report.Language]Table{report.LanguagePolish: {"b": "3", "c": "4"}})

	assert.Equal(t, Table{"a": "1", "b": "3", "c": "4"}, base[report.LanguagePolish])
}

func TestFunc_ConcurrentLookups(t *testing.T) {
	tr := Default().Func(report.LanguagePolish)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "Domena", tr("Domain"))
		}()
	}
	wg.Wait()
}
