package api

import (
	"context"
	"time"

	"github.com/alexpadev/trainR/internal/i18n"
	"github.com/alexpadev/trainR/internal/metrics"
	"github.com/alexpadev/trainR/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	i18n         *i18n.Manager
	logger       logrus.FieldLogger
	metrics      *metrics.Metrics
	loginLimiter *attemptLimiter
	pingDatabase func(ctx context.Context) error

	authService    *services.AuthService
	catalogService *services.CatalogService
	routineService *services.RoutineService
	linkService    *services.RoutineLinkService
	entryService   *services.DailyEntryService
}

type HandlerConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
	I18n      *i18n.Manager
	Logger    logrus.FieldLogger
	Metrics   *metrics.Metrics
}
