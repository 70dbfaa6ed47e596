package api

import (
	"github.com/alexpadev/trainR/internal/models"
	"github.com/alexpadev/trainR/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListWeeklyRoutines(c *fiber.Ctx) error {
	routines, err := handler.routineService.List(c.UserContext(), currentUserID(c))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(routines)
}

func (handler *Handler) GetWeeklyRoutine(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	routine, err := handler.routineService.Get(c.UserContext(), id, currentUserID(c))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(routine)
}

// CreateWeeklyRoutine stores a routine with its muscle groups, exercises and
// optional daily entry in one transaction.
func (handler *Handler) CreateWeeklyRoutine(c *fiber.Ctx) error {
	var input createRoutineInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	routine, err := handler.routineService.CreateFull(c.UserContext(), currentUserID(c), services.CreateRoutineInput{
		DayOfWeek:   input.DayOfWeek,
		RoutineType: input.RoutineType,
		Plan:        input.plan(),
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(routine)
}

// ReplaceWeeklyRoutinePlan swaps both association sets of a routine.
func (handler *Handler) ReplaceWeeklyRoutinePlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	var input planInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	routine, err := handler.routineService.ReplacePlan(c.UserContext(), id, currentUserID(c), input.plan())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(routine)
}

func (handler *Handler) UpdateWeeklyRoutine(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	var input routinePatchInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	routine, err := handler.routineService.Update(c.UserContext(), id, currentUserID(c), models.WeeklyRoutinePatch{
		DayOfWeek:   input.DayOfWeek,
		RoutineType: input.RoutineType,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(routine)
}

func (handler *Handler) DeleteWeeklyRoutine(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.routineService.Delete(c.UserContext(), id, currentUserID(c)); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true, "id": id})
}
