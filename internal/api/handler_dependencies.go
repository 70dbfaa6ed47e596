package api

import (
	"context"
	"errors"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, config HandlerConfig) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if config.I18n == nil {
		return nil, errors.New("i18n manager is required")
	}
	if len(config.SecretKey) == 0 {
		return nil, errors.New("secret key is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	handler := &Handler{
		db:           database,
		i18n:         config.I18n,
		logger:       logger,
		metrics:      config.Metrics,
		loginLimiter: newAttemptLimiter(loginFailureLimit, loginFailureWindow),
	}
	handler.pingDatabase = handler.pingSQL
	return handler.withDependencies(database, services.NewTokenService(config.SecretKey, config.TokenTTL)), nil
}

func (handler *Handler) withDependencies(database *gorm.DB, tokens *services.TokenService) *Handler {
	repositories := db.NewRepositories(database)
	handler.authService = services.NewAuthService(repositories.Users, tokens)
	handler.catalogService = services.NewCatalogService(repositories.Catalog)
	handler.routineService = services.NewRoutineService(repositories.WeeklyRoutines, repositories.RoutineLinks)
	handler.linkService = services.NewRoutineLinkService(repositories.RoutineLinks)
	handler.entryService = services.NewDailyEntryService(repositories.DailyEntries)
	return handler
}

func (handler *Handler) pingSQL(ctx context.Context) error {
	sqlDB, err := handler.db.DB()
	if err != nil {
		return err
	}
	return db.Ping(ctx, sqlDB)
}
