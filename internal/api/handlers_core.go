package api

import "github.com/gofiber/fiber/v2"

// Health reports 503 when the database cannot be reached.
func (handler *Handler) Health(c *fiber.Ctx) error {
	if err := handler.pingDatabase(c.UserContext()); err != nil {
		handler.requestLogger(c).WithError(err).Warn("health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
