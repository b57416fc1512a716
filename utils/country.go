package utils

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var displayLocales = language.NewMatcher(display.Supported.Tags())

// CountryName resolves a two-letter region code to its display name in locale.
// Any failure (unknown code, unparseable or unsupported locale) returns code
// unchanged.
func CountryName(code, locale string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if len(trimmed) != 2 {
		return code
	}

	region, err := language.ParseRegion(trimmed)
	if err != nil {
		return code
	}
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return code
	}

	// display falls back to another language silently; only accept a
	// locale whose base language has its own names.
	matched, _, conf := displayLocales.Match(tag)
	if conf == language.No {
		return code
	}
	want, _ := tag.Base()
	got, _ := matched.Base()
	if want != got {
		return code
	}

	namer := display.Regions(tag)
	if namer == nil {
		return code
	}
	name := namer.Name(region)
	if name == "" {
		return code
	}
	return name
}
