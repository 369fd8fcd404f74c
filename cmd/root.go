package cmd

import (
	"fmt"
	"log"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/storage"
	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "movie-catalog",
	Short: "Movie catalog form with pluggable key-value persistence",
	Long: `movie-catalog keeps a list of movies (title, genre, year, short review)
in a single key-value slot. The slot can live in a file, SQLite, Postgres,
Redis, Badger or memory, selected with STORAGE_BACKEND.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(moviesCmd)
}

// deps is the shared setup of every command.
type deps struct {
	config *utils.Config
	logger *zap.Logger
	store  storage.KV
	app    *wire.App
}

func bootstrap() (*deps, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}

	store, err := storage.Open(config, logger)
	if err != nil {
		logger.Error("Failed to open storage",
			zap.String("backend", config.Storage.Backend),
			zap.Error(err),
		)
		_ = logger.Sync()
		return nil, fmt.Errorf("open storage: %w", err)
	}

	logger.Info("Storage opened",
		zap.String("backend", config.Storage.Backend),
		zap.String("slot", config.Catalog.StorageKey),
	)

	repos := repository.NewRepository(store, config.Catalog.StorageKey, logger)

	return &deps{
		config: config,
		logger: logger,
		store:  store,
		app:    wire.Wiring(repos, config, logger),
	}, nil
}

func (rt *deps) Close() {
	if err := rt.store.Close(); err != nil {
		rt.logger.Warn("Failed to close storage", zap.Error(err))
	}
	_ = rt.logger.Sync()
}
