package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/scanreport/pkg/report"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder(NewResolver(map[report.Language]Table{
		report.LanguagePolish: {"Domain": "Domena"},
	}))

	tr := rec.Func(report.LanguagePolish)
	assert.Equal(t, "Domena", tr("Domain"))
	assert.Equal(t, "Unknown message", tr("Unknown message"))
	tr("Domain")

	assert.Equal(t, []string{"Domain", "Unknown message"}, rec.Messages(report.LanguagePolish))
	assert.Equal(t, []string{"Unknown message"}, rec.Missing(report.LanguagePolish))
	assert.Empty(t, rec.Messages(report.LanguageEnglish))
}
