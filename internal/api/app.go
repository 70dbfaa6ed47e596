package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// AppConfig carries the transport settings of the fiber application.
// ProxyHeader names the header holding the client address when the service
// sits behind a reverse proxy; TrustedProxies restricts which peers may set
// it. Client addresses key the login attempt limiter.
type AppConfig struct {
	CORSOrigins    string
	ProxyHeader    string
	TrustedProxies []string
}

// NewApp assembles the fiber application with the middleware chain and every
// route.
func NewApp(handler *Handler, config AppConfig) *fiber.App {
	corsOrigins := config.CORSOrigins
	if corsOrigins == "" {
		corsOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:                 "TrainR",
		DisableStartupMessage:   true,
		ErrorHandler:            handler.ErrorHandler,
		ProxyHeader:             config.ProxyHeader,
		EnableIPValidation:      config.ProxyHeader != "",
		EnableTrustedProxyCheck: len(config.TrustedProxies) > 0,
		TrustedProxies:          config.TrustedProxies,
	})

	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: contextRequestIDKey,
	}))
	app.Use(handler.LanguageMiddleware)
	app.Use(handler.RequestLogger)
	if handler.metrics != nil {
		app.Use(handler.metrics.Middleware())
	}
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	RegisterRoutes(app, handler)
	return app
}

// ErrorHandler renders errors that escaped the handlers, recovered panics
// included, in the same JSON shape as handled ones.
func (handler *Handler) ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return handler.respondError(c, errNotFound)
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			return handler.respondError(c, errInvalidBody)
		}
	}
	return handler.respondError(c, err)
}
