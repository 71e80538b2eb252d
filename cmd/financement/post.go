package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"financement/internal/adapters/discord"
	"financement/internal/domain"
)

var (
	postSize  string
	postLang  string
	postEvery time.Duration
)

func init() {
	postCmd.Flags().StringVar(&postSize, "size", string(domain.SizeLarge), "taille du panneau (small, medium, large)")
	postCmd.Flags().StringVar(&postLang, "lang", "", "langues préférées, ex. de-CH,fr (défaut: environnement)")
	postCmd.Flags().DurationVar(&postEvery, "every", 0, "republie à cet intervalle jusqu'à interruption (0: une seule fois)")
	rootCmd.AddCommand(postCmd)
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Publie le panneau sur Discord via DISCORD_WEBHOOK_URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if current.cfg.DiscordWebhookURL == "" {
			return errors.New("DISCORD_WEBHOOK_URL manquant")
		}
		if postEvery < 0 {
			return errors.New("--every doit être positif")
		}
		publisher, err := discord.NewWebhookPublisher(current.cfg.DiscordWebhookURL, current.logger)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		panels := current.panelService(ctx)
		size := domain.ParseSize(postSize)
		tags := localeTags(postLang)

		if postEvery > 0 {
			discord.NewScheduler(panels, publisher, size, tags, postEvery, current.logger).Run(ctx)
			return nil
		}
		return publisher.Publish(ctx, panels.BuildPanel(ctx, size, tags))
	},
}
