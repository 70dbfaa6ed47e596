package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	if handler.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(handler.metrics.Handler()))
	}
	registerAPIRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	api.Get("/users/me", handler.AuthRequired, handler.Me)
	api.Get("/catalog", handler.AuthRequired, handler.GetCatalog)

	muscleGroups := api.Group("/muscle-groups", handler.AuthRequired)
	muscleGroups.Get("", handler.ListMuscleGroups)
	muscleGroups.Get("/:id", handler.GetMuscleGroup)
	muscleGroups.Post("", handler.CreateMuscleGroup)
	muscleGroups.Put("/:id", handler.UpdateMuscleGroup)
	muscleGroups.Delete("/:id", handler.DeleteMuscleGroup)

	exercises := api.Group("/exercises", handler.AuthRequired)
	exercises.Get("", handler.ListExercises)
	exercises.Get("/:id", handler.GetExercise)
	exercises.Post("", handler.CreateExercise)
	exercises.Put("/:id", handler.UpdateExercise)
	exercises.Delete("/:id", handler.DeleteExercise)

	routines := api.Group("/weekly-routines", handler.AuthRequired)
	routines.Get("", handler.ListWeeklyRoutines)
	routines.Get("/:id", handler.GetWeeklyRoutine)
	routines.Post("", handler.CreateWeeklyRoutine)
	routines.Put("/:id/plan", handler.ReplaceWeeklyRoutinePlan)
	routines.Put("/:id", handler.UpdateWeeklyRoutine)
	routines.Delete("/:id", handler.DeleteWeeklyRoutine)

	routineMuscleGroups := api.Group("/weekly-routine-muscle-groups", handler.AuthRequired)
	routineMuscleGroups.Get("", handler.ListRoutineMuscleGroups)
	routineMuscleGroups.Get("/:wrId/:mgId", handler.GetRoutineMuscleGroup)
	routineMuscleGroups.Post("", handler.AddRoutineMuscleGroup)
	routineMuscleGroups.Delete("/:wrId/:mgId", handler.RemoveRoutineMuscleGroup)

	routineExercises := api.Group("/weekly-routine-exercises", handler.AuthRequired)
	routineExercises.Get("", handler.ListRoutineExercises)
	routineExercises.Get("/:id", handler.GetRoutineExercise)
	routineExercises.Post("", handler.AddRoutineExercise)
	routineExercises.Put("/:id", handler.UpdateRoutineExercise)
	routineExercises.Delete("/:id", handler.RemoveRoutineExercise)

	entries := api.Group("/daily-entries", handler.AuthRequired)
	entries.Get("", handler.ListDailyEntries)
	entries.Get("/:id", handler.GetDailyEntry)
	entries.Post("", handler.CreateDailyEntry)
	entries.Put("/:id", handler.UpdateDailyEntry)
	entries.Delete("/:id", handler.DeleteDailyEntry)
}
