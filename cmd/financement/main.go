package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"financement/internal/application"
	"financement/internal/config"
	"financement/internal/domain"
	"financement/internal/infrastructure/cache"
	"financement/internal/infrastructure/database"
	"financement/internal/infrastructure/i18n"
	"financement/internal/infrastructure/logging"
	"financement/internal/infrastructure/remote"
	"financement/internal/ports/output"
)

// app holds what every command needs once the configuration is loaded.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	pool   *pgxpool.Pool
}

var current app

var rootCmd = &cobra.Command{
	Use:           "financement",
	Short:         "Financement des campagnes de votation suisses",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		current.cfg = cfg
		current.logger = logging.New(cfg.LogLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current.pool != nil {
			current.pool.Close()
		}
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// panelService wires the fetcher, the cache and the label tables.
func (a *app) panelService(ctx context.Context) *application.PanelService {
	fetcher := remote.NewFetcher(a.cfg.DataURL, a.cfg.FetchTimeout)
	translator := i18n.NewTranslator(domain.DefaultLocale, a.logger)
	return application.NewPanelService(fetcher, a.datasetCache(ctx), translator, a.logger)
}

// datasetCache uses Postgres when DATABASE_URL is set and the local file
// otherwise. A database that cannot be reached degrades to the file cache.
func (a *app) datasetCache(ctx context.Context) output.DatasetCache {
	fileCache := cache.NewFileCache(a.cfg.CachePath)
	if a.cfg.DatabaseURL == "" {
		return fileCache
	}

	if err := database.RunMigrations(a.cfg.DatabaseURL, a.logger); err != nil {
		a.logger.Error("❌ Erreur lors des migrations, cache fichier utilisé", "err", err)
		return fileCache
	}
	pool, err := database.NewPool(ctx, a.cfg.DatabaseURL, a.logger)
	if err != nil {
		a.logger.Error("❌ Erreur lors de l'initialisation de la base de données, cache fichier utilisé", "err", err)
		return fileCache
	}
	a.pool = pool
	return database.NewSnapshotRepository(pool, a.logger)
}
