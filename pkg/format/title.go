package format

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// DefaultTitleLength is the ShortenTitle limit used when none is given.
const DefaultTitleLength = 35

const (
	ellipsis            = "..."
	fallbackTitleLength = 40
)

var (
	parenthesizedSuffix = regexp.MustCompile(`\(([^)]+)\)\s*$`)
	leadingInitiative   = regexp.MustCompile(`(?i)^initiative`)
)

// legalPrefix is a boilerplate opening of a federal act title.
type legalPrefix struct {
	lang    string
	pattern *regexp.Regexp
}

// legalPrefixes are all tried, whatever the display locale: the title text
// carries its own language. Day, month and year are matched loosely.
var legalPrefixes = []legalPrefix{
	{"de", regexp.MustCompile(`(?i)^Bundesgesetz vom \d{1,2}\.?\s*[\pL\d]+\.?\s*\d{4}\s*(?:ueber|uber|über)?\s*(?:die\s+)?`)},
	{"fr", regexp.MustCompile(`(?i)^Loi f[eé]d[eé]rale du \d{1,2}(?:er)?\.?\s*[\pL\d]+\.?\s*\d{4}\s*sur\s*(?:l[ea]\s+|l['’]\s*)?`)},
	{"it", regexp.MustCompile(`(?i)^Legge federale del \d{1,2}\.?\s*[\pL\d]+\.?\s*\d{4}\s*su(?:ll[ao]\s+|ll['’]\s*|\s+)?`)},
}

// ShortenTitle truncates title to maxLength characters, ending with "...".
// A non-positive maxLength selects DefaultTitleLength.
func ShortenTitle(title string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultTitleLength
	}
	if utf8.RuneCountInString(title) <= maxLength {
		return title
	}
	keep := maxLength - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string([]rune(title)[:keep]) + ellipsis
}

// ShortTitle derives a compact name from a full legal title: the trailing
// parenthesized abbreviation when there is one, else the title without its
// legal boilerplate prefix, else the title shortened to 40 characters.
func ShortTitle(title string) string {
	if m := parenthesizedSuffix.FindStringSubmatch(title); m != nil {
		return normalizeInitiative(m[1])
	}

	for _, p := range legalPrefixes {
		loc := p.pattern.FindStringIndex(title)
		if loc == nil {
			continue
		}
		rest := title[loc[1]:]
		if rest == "" {
			break
		}
		return normalizeInitiative(capitalize(rest))
	}

	return ShortenTitle(title, fallbackTitleLength)
}

func normalizeInitiative(s string) string {
	return leadingInitiative.ReplaceAllLiteralString(s, "Initiative")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
