package domain

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Language is the UI language chosen on the language screen.
type Language string

const (
	LanguageEnglish  Language = "English"
	LanguageAssamese Language = "অসমীয়া"
)

var ErrUnknownLanguage = errors.New("unknown language")

var languageTags = map[Language]language.Tag{
	LanguageEnglish:  language.English,
	LanguageAssamese: language.MustParse("as"),
}

// Languages returns the selectable languages in display order.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageAssamese}
}

// Tag returns the BCP 47 tag used for string lookups.
func (l Language) Tag() language.Tag {
	if tag, ok := languageTags[l]; ok {
		return tag
	}
	return language.English
}

// Code returns the short language code, e.g. "en" or "as".
func (l Language) Code() string {
	base, _ := l.Tag().Base()
	return base.String()
}

// ParseLanguage resolves a language from its short code.
func ParseLanguage(code string) (Language, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	base, _ := tag.Base()
	for l, t := range languageTags {
		if b, _ := t.Base(); b == base {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}
