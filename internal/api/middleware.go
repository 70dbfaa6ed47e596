package api

import (
	"strings"
	"time"

	"github.com/alexpadev/trainR/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	contextUserKey      = "current_user"
	contextLanguageKey  = "current_language"
	contextRequestIDKey = "requestid"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(contextRequestIDKey).(string)
	return id
}

// AuthRequired resolves the bearer token into the acting user.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authService.ResolveToken(c.UserContext(), bearerToken(c))
	if err != nil {
		return handler.respondError(c, err)
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	c.Locals(contextLanguageKey, handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage)))
	return c.Next()
}

// RequestLogger writes one access log line per request.
func (handler *Handler) RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if fiberErr, ok := err.(*fiber.Error); ok {
		status = fiberErr.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	entry := handler.requestLogger(c).WithFields(logrus.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     status,
		"latency_ms": time.Since(start).Milliseconds(),
	})
	switch {
	case status >= fiber.StatusInternalServerError:
		entry.Warn("request completed")
	default:
		entry.Info("request completed")
	}
	return err
}

func (handler *Handler) requestLogger(c *fiber.Ctx) logrus.FieldLogger {
	fields := logrus.Fields{"request_id": requestID(c)}
	if user, ok := currentUser(c); ok {
		fields["user_id"] = user.ID
	}
	return handler.logger.WithFields(fields)
}
