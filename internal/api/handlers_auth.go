package api

import (
	"errors"

	"github.com/alexpadev/trainR/internal/services"
	"github.com/gofiber/fiber/v2"
)

type sessionUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func sessionResponse(session services.Session) fiber.Map {
	return fiber.Map{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
		"user": sessionUser{
			ID:       session.User.ID,
			Username: session.User.Username,
			Email:    session.User.Email,
		},
	}
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	session, err := handler.authService.Register(c.UserContext(), services.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return handler.respondError(c, err)
	}

	handler.metrics.RecordAuth("register")
	return c.Status(fiber.StatusCreated).JSON(sessionResponse(session))
}

// Login answers 429 once a client has failed too often in the window. A
// successful login clears its failures.
func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey) {
		return handler.apiError(c, fiber.StatusTooManyRequests, "auth.too_many_attempts")
	}

	var input loginInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	session, err := handler.authService.Authenticate(c.UserContext(), input.Email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		handler.loginLimiter.recordFailure(limiterKey)
		handler.metrics.RecordAuth("login_failed")
		return handler.respondError(c, err)
	}
	if err != nil {
		return handler.respondError(c, err)
	}

	handler.loginLimiter.reset(limiterKey)
	handler.metrics.RecordAuth("login")
	return c.JSON(sessionResponse(session))
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return handler.respondError(c, services.ErrTokenMissing)
	}
	return c.JSON(fiber.Map{"id": user.ID, "username": user.Username})
}

// currentUserID is zero outside AuthRequired, which matches no owned rows.
func currentUserID(c *fiber.Ctx) uint {
	user, ok := currentUser(c)
	if !ok {
		return 0
	}
	return user.ID
}
