package api

import (
	"github.com/alexpadev/trainR/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ListDailyEntries accepts optional inclusive from/to dates.
func (handler *Handler) ListDailyEntries(c *fiber.Ctx) error {
	entries, err := handler.entryService.List(c.UserContext(), currentUserID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) GetDailyEntry(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	entry, err := handler.entryService.Get(c.UserContext(), id, currentUserID(c))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) CreateDailyEntry(c *fiber.Ctx) error {
	var input dailyEntryInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	entry, err := handler.entryService.Create(c.UserContext(), currentUserID(c), services.DailyEntryInput{
		Date:            firstNonBlank(input.Date, input.Fecha),
		WeeklyRoutineID: input.WeeklyRoutineID,
		Meals:           input.meals(),
		Completed:       input.Completed,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateDailyEntry(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	var input dailyEntryPatchInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	entry, err := handler.entryService.Update(c.UserContext(), id, currentUserID(c), input.patch())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteDailyEntry(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.entryService.Delete(c.UserContext(), id, currentUserID(c)); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true, "id": id})
}
