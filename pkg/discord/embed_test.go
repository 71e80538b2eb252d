package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financement/internal/domain"
	"financement/internal/domain/entities"
)

func TestBuildPanelEmbed(t *testing.T) {
	panel := &entities.Panel{
		Size:     domain.SizeLarge,
		Locale:   domain.LocaleFR,
		Title:    "💰 Financement des campagnes",
		DateLine: "Votation du 08.03.2026",
		Rows: []entities.PanelRow{
			{Title: "LENu", Supporters: "Pour: CHF 1.4M", Opponents: "Contre: CHF 250k", Share: "85% / 15%"},
		},
		UpdateLine: "Mise à jour: 06.02",
		Source:     &entities.SourceLink{Text: "Source: CDF", URL: "https://politikfinanzierung.efk.admin.ch"},
	}

	embed := BuildPanelEmbed(panel)

	assert.Equal(t, "💰 Financement des campagnes", embed.Title)
	assert.Equal(t, "Votation du 08.03.2026", embed.Description)
	assert.Equal(t, "https://politikfinanzierung.efk.admin.ch", embed.URL)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "LENu", embed.Fields[0].Name)
	assert.Equal(t, "🟢 Pour: CHF 1.4M\n🔴 Contre: CHF 250k\n85% / 15%", embed.Fields[0].Value)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Source: CDF • Mise à jour: 06.02", embed.Footer.Text)
}

func TestBuildPanelEmbedNoData(t *testing.T) {
	embed := BuildPanelEmbed(&entities.Panel{
		Title:  "💰 Keine Daten",
		Rows:   []entities.PanelRow{},
		NoData: "Keine Daten",
	})

	assert.Equal(t, "Keine Daten", embed.Description)
	assert.Empty(t, embed.Fields)
	assert.Nil(t, embed.Footer)
}
