package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{
		"pl_PL": LanguagePolish,
		"pl-PL": LanguagePolish,
		"pl":    LanguagePolish,
		"en_US": LanguageEnglish,
		"en":    LanguageEnglish,
	}
	for in, want := range cases {
		got, err := ParseLanguage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseLanguage_Unknown(t *testing.T) {
	for _, in := range []string{"", "de_DE", "not a language"} {
		_, err := ParseLanguage(in)
		assert.ErrorIs(t, err, ErrUnknownLanguage, in)
	}
}

func TestLanguages_SourceFirst(t *testing.T) {
	langs := Languages()
	require.NotEmpty(t, langs)
	assert.True(t, langs[0].IsSource())
	assert.False(t, LanguagePolish.IsSource())
}

func TestLanguage_Tag(t *testing.T) {
	assert.Equal(t, "pl-PL", LanguagePolish.Tag())
	assert.Equal(t, "en-US", LanguageEnglish.Tag())
}
