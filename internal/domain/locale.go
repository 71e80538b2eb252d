package domain

import "strings"

// Locale is one of the supported display languages.
type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleDE Locale = "de"
	LocaleIT Locale = "it"
)

// DefaultLocale is used when no preferred tag matches a supported locale.
const DefaultLocale = LocaleFR

// SupportedLocales lists locales in matching order: within a single tag,
// "fr" is tried before "de", then "it".
var SupportedLocales = []Locale{LocaleFR, LocaleDE, LocaleIT}

func (l Locale) String() string {
	return string(l)
}

// IsSupported reports whether l is one of SupportedLocales.
func (l Locale) IsSupported() bool {
	for _, s := range SupportedLocales {
		if l == s {
			return true
		}
	}
	return false
}

// ParseLocale returns the supported locale named by s, or false.
func ParseLocale(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsSupported() {
		return "", false
	}
	return l, true
}

// ResolveLocale scans tags in preference order and returns the first
// supported locale whose code appears in a tag (case-insensitive).
// It falls back to DefaultLocale and never fails.
func ResolveLocale(tags []string) Locale {
	for _, tag := range tags {
		t := strings.ToLower(tag)
		for _, l := range SupportedLocales {
			if strings.Contains(t, string(l)) {
				return l
			}
		}
	}
	return DefaultLocale
}

// SplitLocaleTags splits a raw host locale string such as "de_CH:fr_CH" or
// "de-CH, fr-CH" into individual tags, keeping their order.
func SplitLocaleTags(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ':' || r == ';' || r == ' ' || r == '\t'
	})
	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			tags = append(tags, f)
		}
	}
	return tags
}
