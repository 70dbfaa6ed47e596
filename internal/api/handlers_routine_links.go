package api

import (
	"github.com/alexpadev/trainR/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListRoutineMuscleGroups(c *fiber.Ctx) error {
	routineID, err := parseIDQuery(c, "weekly_routine_id")
	if err != nil {
		return handler.respondError(c, err)
	}
	links, err := handler.linkService.ListMuscleGroups(c.UserContext(), currentUserID(c), routineID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(links)
}

func (handler *Handler) GetRoutineMuscleGroup(c *fiber.Ctx) error {
	routineID, muscleGroupID, err := routineMuscleGroupParams(c)
	if err != nil {
		return handler.respondError(c, err)
	}
	link, err := handler.linkService.GetMuscleGroup(c.UserContext(), currentUserID(c), routineID, muscleGroupID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(link)
}

func (handler *Handler) AddRoutineMuscleGroup(c *fiber.Ctx) error {
	var input routineMuscleGroupInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	link, err := handler.linkService.AddMuscleGroup(c.UserContext(), currentUserID(c), input.WeeklyRoutineID, input.MuscleGroupID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (handler *Handler) RemoveRoutineMuscleGroup(c *fiber.Ctx) error {
	routineID, muscleGroupID, err := routineMuscleGroupParams(c)
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.linkService.RemoveMuscleGroup(c.UserContext(), currentUserID(c), routineID, muscleGroupID); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true, "weekly_routine_id": routineID, "muscle_group_id": muscleGroupID})
}

func routineMuscleGroupParams(c *fiber.Ctx) (uint, uint, error) {
	routineID, err := parseIDParam(c, "wrId")
	if err != nil {
		return 0, 0, err
	}
	muscleGroupID, err := parseIDParam(c, "mgId")
	if err != nil {
		return 0, 0, err
	}
	return routineID, muscleGroupID, nil
}

func (handler *Handler) ListRoutineExercises(c *fiber.Ctx) error {
	routineID, err := parseIDQuery(c, "weekly_routine_id")
	if err != nil {
		return handler.respondError(c, err)
	}
	links, err := handler.linkService.ListExercises(c.UserContext(), currentUserID(c), routineID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(links)
}

func (handler *Handler) GetRoutineExercise(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	link, err := handler.linkService.GetExercise(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(link)
}

func (handler *Handler) AddRoutineExercise(c *fiber.Ctx) error {
	var input routineExerciseInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	spec := input.spec()
	link, err := handler.linkService.AddExercise(c.UserContext(), currentUserID(c), services.RoutineExerciseInput{
		WeeklyRoutineID: input.WeeklyRoutineID,
		ExerciseID:      spec.ExerciseID,
		Sets:            spec.Sets,
		Reps:            spec.Reps,
	})
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (handler *Handler) UpdateRoutineExercise(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	var input routineExercisePatchInput
	if err := parseJSONBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	link, err := handler.linkService.UpdateExercise(c.UserContext(), currentUserID(c), id, input.patch())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(link)
}

func (handler *Handler) RemoveRoutineExercise(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.linkService.RemoveExercise(c.UserContext(), currentUserID(c), id); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true, "id": id})
}
