package api

import (
	"errors"

	"github.com/alexpadev/trainR/internal/services"
	"github.com/gofiber/fiber/v2"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errInvalidID   = errors.New("invalid identifier")
	errNotFound    = errors.New("not found")
)

type errorMapping struct {
	err    error
	status int
	key    string
}

// errorMappings is walked in order with errors.Is; anything unmatched is a 500.
var errorMappings = []errorMapping{
	{errInvalidBody, fiber.StatusBadRequest, "request.invalid_body"},
	{errInvalidID, fiber.StatusBadRequest, "request.invalid_id"},
	{errNotFound, fiber.StatusNotFound, "error.not_found"},
	{services.ErrEmptyPatch, fiber.StatusBadRequest, "request.empty_patch"},

	{services.ErrTokenMissing, fiber.StatusUnauthorized, "auth.token_missing"},
	{services.ErrTokenExpired, fiber.StatusForbidden, "auth.token_expired"},
	{services.ErrTokenInvalid, fiber.StatusForbidden, "auth.token_invalid"},
	{services.ErrUserNotFound, fiber.StatusUnauthorized, "auth.user_not_found"},
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized, "auth.invalid_credentials"},
	{services.ErrEmailTaken, fiber.StatusConflict, "auth.email_taken"},
	{services.ErrUsernameTaken, fiber.StatusConflict, "auth.username_taken"},
	{services.ErrInvalidEmail, fiber.StatusBadRequest, "auth.invalid_email"},
	{services.ErrInvalidUsername, fiber.StatusBadRequest, "auth.invalid_username"},
	{services.ErrWeakPassword, fiber.StatusBadRequest, "auth.weak_password"},

	{services.ErrMuscleGroupNotFound, fiber.StatusNotFound, "catalog.muscle_group_not_found"},
	{services.ErrExerciseNotFound, fiber.StatusNotFound, "catalog.exercise_not_found"},
	{services.ErrInvalidCatalogName, fiber.StatusBadRequest, "catalog.invalid_name"},
	{services.ErrInvalidCategory, fiber.StatusBadRequest, "catalog.invalid_category"},
	{services.ErrInvalidDescription, fiber.StatusBadRequest, "catalog.invalid_description"},
	{services.ErrCatalogNameTaken, fiber.StatusConflict, "catalog.name_taken"},
	{services.ErrUnknownMuscleGroup, fiber.StatusBadRequest, "catalog.unknown_muscle_group"},
	{services.ErrMuscleGroupInUse, fiber.StatusConflict, "catalog.muscle_group_in_use"},
	{services.ErrExerciseInUse, fiber.StatusConflict, "catalog.exercise_in_use"},

	{services.ErrInvalidDayOfWeek, fiber.StatusBadRequest, "routine.invalid_day"},
	{services.ErrInvalidRoutineType, fiber.StatusBadRequest, "routine.invalid_type"},
	{services.ErrMuscleGroupsRequired, fiber.StatusBadRequest, "routine.muscle_groups_required"},
	{services.ErrExercisesRequired, fiber.StatusBadRequest, "routine.exercises_required"},
	{services.ErrInvalidExerciseVolume, fiber.StatusBadRequest, "routine.invalid_volume"},
	{services.ErrRoutineNotFound, fiber.StatusNotFound, "routine.not_found"},
	{services.ErrRoutineDayTaken, fiber.StatusConflict, "routine.day_taken"},
	{services.ErrUnknownExercise, fiber.StatusBadRequest, "routine.unknown_exercise"},
	{services.ErrDuplicateExercise, fiber.StatusConflict, "routine.duplicate_exercise"},
	{services.ErrDuplicateMuscleGroup, fiber.StatusConflict, "routine.duplicate_muscle_group"},
	{services.ErrRoutineLinkNotFound, fiber.StatusNotFound, "routine.link_not_found"},

	{services.ErrInvalidEntryDate, fiber.StatusBadRequest, "entry.invalid_date"},
	{services.ErrInvalidMeal, fiber.StatusBadRequest, "entry.invalid_meal"},
	{services.ErrInvalidDateRange, fiber.StatusBadRequest, "entry.invalid_range"},
	{services.ErrDailyEntryNotFound, fiber.StatusNotFound, "entry.not_found"},
	{services.ErrEntryDateTaken, fiber.StatusConflict, "entry.date_taken"},
	{services.ErrUnknownRoutine, fiber.StatusBadRequest, "entry.unknown_routine"},
}

func classifyError(err error) (int, string) {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.err) {
			return mapping.status, mapping.key
		}
	}
	return fiber.StatusInternalServerError, "error.internal"
}

// respondError writes the localized body for err. Unclassified errors are
// logged with the request id and never echoed to the client.
func (handler *Handler) respondError(c *fiber.Ctx, err error) error {
	status, key := classifyError(err)
	if status == fiber.StatusInternalServerError {
		handler.requestLogger(c).WithError(err).Error("request failed")
	}
	return handler.apiError(c, status, key)
}

func (handler *Handler) apiError(c *fiber.Ctx, status int, key string) error {
	return c.Status(status).JSON(fiber.Map{"error": handler.i18n.Translate(currentLanguage(c), key)})
}
