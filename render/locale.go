package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when a locale tag cannot be parsed
var DefaultLocale = language.English

// FormatNumber renders n with the digit grouping of locale ("de-CH",
// "fr", ...). An empty or invalid locale falls back to DefaultLocale.
func FormatNumber(n int, locale string) string {
	return message.NewPrinter(ResolveLocale(locale)).Sprintf("%d", n)
}

// ResolveLocale parses a BCP 47 tag, falling back to DefaultLocale
func ResolveLocale(locale string) language.Tag {
	if locale == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLocale
	}
	return tag
}
