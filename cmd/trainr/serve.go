package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexpadev/trainR/internal/api"
	"github.com/alexpadev/trainR/internal/cli"
	"github.com/alexpadev/trainR/internal/config"
	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/i18n"
	"github.com/alexpadev/trainR/internal/metrics"
	"github.com/alexpadev/trainR/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type server struct {
	app      *fiber.App
	database *gorm.DB
	config   config.Config
	logger   *logrus.Logger
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	srv, err := newServer(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeDatabase(srv.database, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.run(ctx)
}

// newServer opens the database and wires every dependency of the API. The
// caller owns the returned database handle.
func newServer(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*server, error) {
	secretKey, err := cfg.ResolveSecretKey()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	database, err := openDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.SeedCatalog {
		if err := seedDefaultCatalog(ctx, database, logger); err != nil {
			closeDatabase(database, logger)
			return nil, err
		}
	}

	messages, err := i18n.NewManager(cfg.DefaultLanguage)
	if err != nil {
		closeDatabase(database, logger)
		return nil, fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(database, api.HandlerConfig{
		SecretKey: secretKey,
		TokenTTL:  cfg.TokenTTL,
		I18n:      messages,
		Logger:    logger,
		Metrics:   metrics.New(),
	})
	if err != nil {
		closeDatabase(database, logger)
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	return &server{
		app: api.NewApp(handler, api.AppConfig{
			CORSOrigins:    cfg.CORSOrigins(),
			ProxyHeader:    cfg.ProxyHeader,
			TrustedProxies: cfg.TrustedProxyList(),
		}),
		database: database,
		config:   cfg,
		logger:   logger,
	}, nil
}

// run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (srv *server) run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.app.Listen(":" + srv.config.Port)
	}()

	srv.logger.WithFields(logrus.Fields{
		"port":   srv.config.Port,
		"driver": srv.config.DBDriver,
	}).Info("trainr listening")

	select {
	case err := <-listenErr:
		return fmt.Errorf("server exited: %w", err)
	case <-ctx.Done():
	}

	srv.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.config.ShutdownTimeout)
	defer cancel()
	if err := srv.app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return <-listenErr
}

func seedDefaultCatalog(ctx context.Context, database *gorm.DB, logger logrus.FieldLogger) error {
	groups, err := cli.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("load default catalog: %w", err)
	}
	seeded, err := services.NewCatalogService(db.NewCatalogRepository(database)).SeedMuscleGroups(ctx, groups)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if seeded {
		logger.WithField("muscle_groups", len(groups)).Info("seeded default catalog")
	}
	return nil
}
