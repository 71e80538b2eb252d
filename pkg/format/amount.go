package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
	hundred  = decimal.NewFromInt(100)
)

// FormatCHF renders a non-negative amount compactly: "2.5M", "12k", "999".
// No currency symbol is added. Rounding is half-up.
func FormatCHF(amount decimal.Decimal) string {
	switch {
	case amount.GreaterThanOrEqual(million):
		return amount.Div(million).StringFixed(1) + "M"
	case amount.GreaterThanOrEqual(thousand):
		return amount.Div(thousand).StringFixed(0) + "k"
	default:
		return amount.StringFixed(0)
	}
}

// FormatCHFFloat is FormatCHF for amounts decoded from JSON.
func FormatCHFFloat(amount float64) string {
	return FormatCHF(decimal.NewFromFloat(amount))
}

// SupportShare returns the supporters/opponents split as "60% / 40%".
// ok is false when there is nothing to split.
func SupportShare(supporters, opponents float64) (share string, ok bool) {
	sup := decimal.NewFromFloat(supporters)
	total := sup.Add(decimal.NewFromFloat(opponents))
	if !total.IsPositive() {
		return "", false
	}
	pct := sup.Mul(hundred).DivRound(total, 8)
	return pct.StringFixed(0) + "% / " + hundred.Sub(pct).StringFixed(0) + "%", true
}

// ParseCHF reads a declared amount such as "CHF 1'386'630.00". Unparsable
// or empty input yields zero.
func ParseCHF(s string) decimal.Decimal {
	cleaned := strings.NewReplacer("CHF", "", "'", "", "’", "", " ", "", "\u00a0", "", "\u202f", "").Replace(s)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
