package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financement/internal/domain"
	"financement/internal/domain/entities"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		panel *entities.Panel
		want  string
	}{
		{
			name: "large panel",
			panel: &entities.Panel{
				Size:     domain.SizeLarge,
				Locale:   domain.LocaleDE,
				Title:    "💰 Kampagnenfinanzierung",
				DateLine: "Abstimmung vom 08.03.2026",
				Rows: []entities.PanelRow{{
					Title:      "Bargeld-Initiative",
					Supporters: "Ja: CHF 1.2M",
					Opponents:  "Nein: CHF 300k",
					Share:      "80% / 20%",
				}},
				UpdateLine: "Aktualisierung: 06.02",
				Source:     &entities.SourceLink{Text: "Source: EFK", URL: "https://politikfinanzierung.efk.admin.ch"},
			},
			want: "💰 Kampagnenfinanzierung\n" +
				"Abstimmung vom 08.03.2026\n" +
				"\n" +
				"Bargeld-Initiative\n" +
				"  Ja: CHF 1.2M\n" +
				"  Nein: CHF 300k\n" +
				"  80% / 20%\n" +
				"\n" +
				"Aktualisierung: 06.02\n" +
				"Source: EFK (https://politikfinanzierung.efk.admin.ch)\n",
		},
		{
			name: "no data",
			panel: &entities.Panel{
				Size:   domain.SizeMedium,
				Locale: domain.LocaleFR,
				Title:  "💰 Financement des campagnes",
				Rows:   []entities.PanelRow{},
				NoData: "Pas de données",
			},
			want: "💰 Financement des campagnes\n\nPas de données\n",
		},
		{
			name: "small rows without share",
			panel: &entities.Panel{
				Size:  domain.SizeSmall,
				Title: "💰 Finanziamento campagne",
				Rows: []entities.PanelRow{
					{Title: "Iniziativa A", Supporters: "✓1.0M", Opponents: "✗0"},
				},
			},
			want: "💰 Finanziamento campagne\n\nIniziativa A\n  ✓1.0M\n  ✗0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			require.NoError(t, Render(&b, tt.panel))
			assert.Equal(t, tt.want, b.String())
		})
	}
}
