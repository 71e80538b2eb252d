package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want Locale
	}{
		{"no tags", nil, LocaleFR},
		{"empty tags", []string{""}, LocaleFR},
		{"swiss german", []string{"de-CH"}, LocaleDE},
		{"italian first", []string{"it-CH", "de-CH"}, LocaleIT},
		{"upper case", []string{"DE_CH"}, LocaleDE},
		{"unsupported then supported", []string{"en-GB", "es-ES", "it"}, LocaleIT},
		{"only unsupported", []string{"en-US", "es"}, LocaleFR},
		{"french wins inside one tag", []string{"de-FR"}, LocaleFR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLocale(tt.tags))
		})
	}
}

func TestParseLocale(t *testing.T) {
	l, ok := ParseLocale(" DE ")
	assert.True(t, ok)
	assert.Equal(t, LocaleDE, l)

	_, ok = ParseLocale("en")
	assert.False(t, ok)
}

func TestSplitLocaleTags(t *testing.T) {
	assert.Equal(t, []string{"de_CH", "fr", "it"}, SplitLocaleTags("de_CH:fr, it"))
	assert.Empty(t, SplitLocaleTags(""))
	assert.Empty(t, SplitLocaleTags(" ,;: "))
}

func TestParseSize(t *testing.T) {
	tests := map[string]Size{
		"small":   SizeSmall,
		" LARGE ": SizeLarge,
		"medium":  SizeMedium,
		"":        SizeMedium,
		"huge":    SizeMedium,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSize(in), "ParseSize(%q)", in)
	}
}
