package services

import (
	"errors"
	"strings"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/models"
)

var (
	ErrInvalidDayOfWeek      = errors.New("invalid day of week")
	ErrInvalidRoutineType    = errors.New("invalid routine type")
	ErrMuscleGroupsRequired  = errors.New("muscle groups required")
	ErrExercisesRequired     = errors.New("exercises required")
	ErrInvalidExerciseVolume = errors.New("sets and reps must be positive")
	ErrInvalidEntryDate      = errors.New("invalid entry date")
)

type ExerciseSpecInput struct {
	ExerciseID uint `validate:"gt=0"`
	Sets       int  `validate:"gt=0"`
	Reps       int  `validate:"gt=0"`
}

// PlanInput is the association part of a routine submission.
type PlanInput struct {
	MuscleGroupIDs []uint              `validate:"required,min=1,dive,gt=0"`
	Exercises      []ExerciseSpecInput `validate:"required,min=1,dive"`
	Date           string
	Meals          models.Meals
}

type CreateRoutineInput struct {
	DayOfWeek   int    `validate:"min=1,max=7"`
	RoutineType string `validate:"oneof=upper lower fullbody"`
	Plan        PlanInput
}

var routineFieldErrors = map[string]error{
	"DayOfWeek":      ErrInvalidDayOfWeek,
	"RoutineType":    ErrInvalidRoutineType,
	"MuscleGroupIDs": ErrMuscleGroupsRequired,
	"Exercises":      ErrExercisesRequired,
	"ExerciseID":     ErrExercisesRequired,
	"Sets":           ErrInvalidExerciseVolume,
	"Reps":           ErrInvalidExerciseVolume,
}

func validateRoutineInput(input any) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}
	if mapped, ok := routineFieldErrors[firstValidationField(err)]; ok {
		return mapped
	}
	return err
}

// normalizeCreateRoutineInput checks every precondition of a routine
// submission before anything is written.
func normalizeCreateRoutineInput(input CreateRoutineInput) (CreateRoutineInput, db.RoutinePlan, error) {
	input.RoutineType = strings.ToLower(strings.TrimSpace(input.RoutineType))
	if err := validateRoutineInput(input); err != nil {
		return CreateRoutineInput{}, db.RoutinePlan{}, err
	}
	plan, err := normalizePlanInput(input.Plan)
	if err != nil {
		return CreateRoutineInput{}, db.RoutinePlan{}, err
	}
	return input, plan, nil
}

func normalizePlanInput(input PlanInput) (db.RoutinePlan, error) {
	if err := validateRoutineInput(input); err != nil {
		return db.RoutinePlan{}, err
	}

	plan := db.RoutinePlan{
		MuscleGroupIDs: dedupeIDs(input.MuscleGroupIDs),
		Exercises:      make([]db.ExerciseSpec, 0, len(input.Exercises)),
	}
	for _, spec := range input.Exercises {
		plan.Exercises = append(plan.Exercises, db.ExerciseSpec{ExerciseID: spec.ExerciseID, Sets: spec.Sets, Reps: spec.Reps})
	}

	if strings.TrimSpace(input.Date) == "" {
		return plan, nil
	}
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return db.RoutinePlan{}, ErrInvalidEntryDate
	}
	meals, err := NormalizeMeals(input.Meals)
	if err != nil {
		return db.RoutinePlan{}, err
	}
	plan.Entry = &db.EntrySpec{Date: date, Meals: meals}
	return plan, nil
}

func normalizeRoutinePatch(patch models.WeeklyRoutinePatch) (models.WeeklyRoutinePatch, error) {
	if patch.IsEmpty() {
		return models.WeeklyRoutinePatch{}, ErrEmptyPatch
	}
	if patch.DayOfWeek.Set {
		if patch.DayOfWeek.Value == nil || !models.IsValidDayOfWeek(*patch.DayOfWeek.Value) {
			return models.WeeklyRoutinePatch{}, ErrInvalidDayOfWeek
		}
	}
	if patch.RoutineType.Set {
		if patch.RoutineType.Value == nil {
			return models.WeeklyRoutinePatch{}, ErrInvalidRoutineType
		}
		routineType := strings.ToLower(strings.TrimSpace(*patch.RoutineType.Value))
		if !models.IsValidRoutineType(routineType) {
			return models.WeeklyRoutinePatch{}, ErrInvalidRoutineType
		}
		patch.RoutineType = models.Some(routineType)
	}
	return patch, nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
