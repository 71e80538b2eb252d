package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCHF(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "0"},
		{"below thousand", 999, "999"},
		{"thousand boundary", 1000, "1k"},
		{"thousands round half up", 12500, "13k"},
		{"just below million", 999999, "1000k"},
		{"million boundary", 1000000, "1.0M"},
		{"millions", 2500000, "2.5M"},
		{"millions round half up", 2450000, "2.5M"},
		{"millions round down", 2440000, "2.4M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCHF(decimal.NewFromInt(tt.amount)))
		})
	}
}

func TestFormatCHFFloat(t *testing.T) {
	assert.Equal(t, "1000", FormatCHFFloat(999.5))
	assert.Equal(t, "1.4M", FormatCHFFloat(1386630.00))
	assert.Equal(t, "250", FormatCHFFloat(249.5))
}

func TestSupportShare(t *testing.T) {
	tests := []struct {
		name       string
		supporters float64
		opponents  float64
		want       string
		wantOK     bool
	}{
		{"even", 500, 500, "50% / 50%", true},
		{"thirds", 1, 2, "33% / 67%", true},
		{"supporters only", 1200, 0, "100% / 0%", true},
		{"nothing declared", 0, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SupportShare(tt.supporters, tt.opponents)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCHF(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CHF 1'386'630.00", "1386630"},
		{"CHF 1’386’630.50", "1386630.5"},
		{"250000", "250000"},
		{"CHF 12 000", "12000"},
		{"", "0"},
		{"n/a", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCHF(tt.in).String())
		})
	}
}
