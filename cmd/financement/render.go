package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"financement/internal/adapters/terminal"
	"financement/internal/domain"
)

var (
	renderSize string
	renderLang string
	renderJSON bool
)

func init() {
	renderCmd.Flags().StringVar(&renderSize, "size", string(domain.SizeMedium), "taille du panneau (small, medium, large)")
	renderCmd.Flags().StringVar(&renderLang, "lang", "", "langues préférées, ex. de-CH,fr (défaut: environnement)")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "sortie JSON")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Affiche le panneau dans le terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		panel := current.panelService(ctx).BuildPanel(ctx, domain.ParseSize(renderSize), localeTags(renderLang))

		if renderJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(panel)
		}
		return terminal.Render(cmd.OutOrStdout(), panel)
	},
}

// localeEnv lists the variables consulted, in priority order, when no
// language is given on the command line.
var localeEnv = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

func localeTags(flag string) []string {
	if flag != "" {
		return domain.SplitLocaleTags(flag)
	}
	var tags []string
	for _, key := range localeEnv {
		tags = append(tags, domain.SplitLocaleTags(os.Getenv(key))...)
	}
	return tags
}
