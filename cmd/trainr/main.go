package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexpadev/trainR/internal/config"
	"github.com/alexpadev/trainR/internal/db"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "trainr",
	Short: "Weekly workout routines and daily meal tracking API",
	Long: `TrainR serves the JSON API for weekly workout routines, the exercise
catalog and daily meal entries.

Running without a subcommand starts the HTTP server.

CONFIGURATION:

  Settings come from the environment; a .env file is read first when present.
  SECRET_KEY (32+ characters) is required to serve.

  $ trainr                                  # serve on $PORT (8080)
  $ trainr migrate                          # apply pending migrations
  $ trainr seed-catalog --file catalog.yaml # load muscle groups and exercises
  $ trainr reset-password --email a@b.com   # print a temporary password`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(logOutput io.Writer) (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config: %w", err)
	}
	logger, err := cfg.NewLogger(logOutput)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, logger, nil
}

func openDatabase(cfg config.Config, logger *logrus.Logger) (*gorm.DB, error) {
	options := cfg.DatabaseOptions()
	options.Logger = logger
	database, err := db.Open(options)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	return database, nil
}

func closeDatabase(database *gorm.DB, logger logrus.FieldLogger) {
	if err := db.Close(database); err != nil {
		logger.WithError(err).Warn("close database")
	}
}
