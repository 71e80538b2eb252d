package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"financement/internal/domain/entities"
)

// Widget palette.
const (
	embedColor      = 0x1C1C1E
	supportersColor = "🟢"
	opponentsColor  = "🔴"
)

// BuildPanelEmbed renders a panel as a Discord embed: one field per
// votation, the update line as footer.
func BuildPanelEmbed(panel *entities.Panel) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       panel.Title,
		Description: panel.DateLine,
		Color:       embedColor,
	}
	if panel.Source != nil {
		embed.URL = panel.Source.URL
	}

	if len(panel.Rows) == 0 {
		embed.Description = joinNonEmpty("\n\n", panel.DateLine, panel.NoData)
	}
	for _, row := range panel.Rows {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  row.Title,
			Value: formatRowValue(row),
		})
	}

	footer := joinNonEmpty(" • ", sourceText(panel), panel.UpdateLine)
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}
	return embed
}

func formatRowValue(row entities.PanelRow) string {
	var b strings.Builder
	b.WriteString(supportersColor + " " + row.Supporters)
	b.WriteString("\n" + opponentsColor + " " + row.Opponents)
	if row.Share != "" {
		b.WriteString("\n" + row.Share)
	}
	return b.String()
}

func sourceText(panel *entities.Panel) string {
	if panel.Source == nil {
		return ""
	}
	return panel.Source.Text
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
