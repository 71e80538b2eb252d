package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"financement/internal/application"
	"financement/internal/infrastructure/efk"
)

var collectOut string

func init() {
	collectCmd.Flags().StringVar(&collectOut, "out", "data.json", "fichier de sortie")
	rootCmd.AddCommand(collectCmd)
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Construit le jeu de données depuis l'API du CDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		collector := application.NewCollectService(efk.NewClient(current.cfg.EFKAPIURL), current.logger)
		dataset, err := collector.Collect(cmd.Context(), time.Now())
		if err != nil {
			return err
		}

		raw, err := json.MarshalIndent(dataset, "", "  ")
		if err != nil {
			return fmt.Errorf("encode dataset: %w", err)
		}
		if err := os.WriteFile(collectOut, append(raw, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", collectOut, err)
		}
		current.logger.Info("✅ Données sauvegardées", "path", collectOut, "votations", len(dataset.Votations))
		return nil
	},
}
