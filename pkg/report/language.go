package report

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language selects the locale reports are rendered in.
type Language string

const (
	LanguageEnglish Language = "en_US"
	LanguagePolish  Language = "pl_PL"
)

// DefaultLanguage is the language source messages are written in.
const DefaultLanguage = LanguageEnglish

var ErrUnknownLanguage = errors.New("unknown language")

// Languages lists all supported output locales, source language first.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguagePolish}
}

// ParseLanguage accepts locale names (pl_PL) as well as BCP 47 tags (pl, pl-PL, en).
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownLanguage)
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return LanguageEnglish, nil
	case "pl":
		return LanguagePolish, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// IsSource reports whether l is the language messages are authored in.
func (l Language) IsSource() bool {
	return l == DefaultLanguage
}

func (l Language) String() string {
	return string(l)
}

// Tag returns the BCP 47 language tag, e.g. "pl-PL".
func (l Language) Tag() string {
	return strings.ReplaceAll(string(l), "_", "-")
}
