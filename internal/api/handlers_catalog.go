package api

import (
	"github.com/alexpadev/trainR/internal/models"
	"github.com/alexpadev/trainR/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetCatalog returns muscle groups and exercises in one payload.
func (handler *Handler) GetCatalog(c *fiber.Ctx) error {
	catalog, err := handler.catalogService.Snapshot(c.UserContext())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(catalog)
}

func (handler *Handler) ListMuscleGroups(c *fiber.Ctx) error {
	groups, err := handler.catalogService.ListMuscleGroups(c.UserContext(), c.Query("category"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(groups)
}

func (handler *Handler) GetMuscleGroup(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	group, err := handler.catalogService.GetMuscleGroup(c.UserContext(), id)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(group)
}

func (handler *Handler) CreateMuscleGroup(c *fiber.Ctx) error {
	var input muscleGroupInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	group, err := handler.catalogService.CreateMuscleGroup(c.UserContext(), services.MuscleGroupInput{
		Name:     input.Name,
		Category: input.Category,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func (handler *Handler) UpdateMuscleGroup(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	var input muscleGroupPatchInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	group, err := handler.catalogService.UpdateMuscleGroup(c.UserContext(), id, models.MuscleGroupPatch{
		Name:     input.Name,
		Category: input.Category,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(group)
}

func (handler *Handler) DeleteMuscleGroup(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.catalogService.DeleteMuscleGroup(c.UserContext(), id); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true, "id": id})
}

func (handler *Handler) ListExercises(c *fiber.Ctx) error {
	muscleGroupID, err := parseIDQuery(c, "muscle_group_id")
	if err != nil {
		return handler.respondError(c, err)
	}
	exercises, err := handler.catalogService.ListExercises(c.UserContext(), muscleGroupID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(exercises)
}

func (handler *Handler) GetExercise(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	exercise, err := handler.catalogService.GetExercise(c.UserContext(), id)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(exercise)
}

func (handler *Handler) CreateExercise(c *fiber.Ctx) error {
	var input exerciseInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	exercise, err := handler.catalogService.CreateExercise(c.UserContext(), services.ExerciseInput{
		Name:          input.Name,
		Description:   input.Description,
		MuscleGroupID: input.MuscleGroupID,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exercise)
}

func (handler *Handler) UpdateExercise(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	var input exercisePatchInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	exercise, err := handler.catalogService.UpdateExercise(c.UserContext(), id, models.ExercisePatch{
		Name:          input.Name,
		Description:   input.Description,
		MuscleGroupID: input.MuscleGroupID,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(exercise)
}

func (handler *Handler) DeleteExercise(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.catalogService.DeleteExercise(c.UserContext(), id); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true, "id": id})
}
