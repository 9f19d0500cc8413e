package adk

import (
	_ "embed"
	"strings"

	"github.com/user/scanreport/pkg/report"
)

//go:embed prompts/translate_prompt.md
var translatePrompt string

var languageNames = map[report.Language]string{
	report.LanguageEnglish: "English",
	report.LanguagePolish:  "Polish",
}

// GetTranslatePrompt returns the system prompt for drafting translations into lang.
func GetTranslatePrompt(lang report.Language) string {
	name, ok := languageNames[lang]
	if !ok {
		name = lang.Tag()
	}
	return strings.ReplaceAll(translatePrompt, "{{LANGUAGE}}", name)
}
