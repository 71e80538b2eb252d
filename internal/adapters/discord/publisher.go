package discord

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"financement/internal/domain"
	"financement/internal/domain/entities"
	"financement/internal/ports/output"
	pkgdiscord "financement/pkg/discord"
)

const webhookUsername = "Financement des campagnes"

var _ output.PanelPublisher = (*WebhookPublisher)(nil)

// WebhookPublisher posts panels to a Discord channel webhook.
type WebhookPublisher struct {
	session   *discordgo.Session
	webhookID string
	token     string
	logger    *log.Logger
}

// NewWebhookPublisher parses a webhook URL of the form
// https://discord.com/api/webhooks/{id}/{token}.
func NewWebhookPublisher(webhookURL string, logger *log.Logger) (*WebhookPublisher, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	// Webhook execution is authenticated by the token in the URL.
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}
	return &WebhookPublisher{
		session:   s,
		webhookID: id,
		token:     token,
		logger:    logger,
	}, nil
}

func (p *WebhookPublisher) Publish(ctx context.Context, panel *entities.Panel) error {
	params := &discordgo.WebhookParams{
		Username: webhookUsername,
		Embeds:   []*discordgo.MessageEmbed{pkgdiscord.BuildPanelEmbed(panel)},
	}
	if _, err := p.session.WebhookExecute(p.webhookID, p.token, true, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("execute webhook: %w", err)
	}
	p.logger.Info("✅ Panneau publié sur Discord", "size", panel.Size, "locale", panel.Locale)
	return nil
}

// ParseWebhookURL extracts the webhook id and token.
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrInvalidWebhookURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidWebhookURL, raw)
}
