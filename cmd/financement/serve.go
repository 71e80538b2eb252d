package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"financement/internal/adapters/web"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sert les panneaux en JSON sur HTTP_ADDR",
	RunE: func(cmd *cobra.Command, args []string) error {
		if current.cfg.LogLevel != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}
		ctx := cmd.Context()
		server := web.NewServer(current.panelService(ctx), current.logger)
		return server.Run(ctx, current.cfg.HTTPAddr)
	},
}
