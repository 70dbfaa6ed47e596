package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/models"
)

var (
	ErrRoutineNotFound      = errors.New("weekly routine not found")
	ErrRoutineDayTaken      = errors.New("weekly routine already exists for day")
	ErrUnknownExercise      = errors.New("unknown exercise")
	ErrDuplicateExercise    = errors.New("exercise already in routine")
	ErrDuplicateMuscleGroup = errors.New("muscle group already in routine")
)

type WeeklyRoutineRepository interface {
	ListForUser(ctx context.Context, userID uint) ([]models.WeeklyRoutineDetail, error)
	FindForUser(ctx context.Context, routineID uint, userID uint) (models.WeeklyRoutineDetail, error)
	CreateFull(ctx context.Context, routine *models.WeeklyRoutine, plan db.RoutinePlan) (db.RoutineSnapshot, error)
	ReplacePlan(ctx context.Context, routineID uint, userID uint, plan db.RoutinePlan) (db.RoutineSnapshot, error)
	UpdateForUser(ctx context.Context, routineID uint, userID uint, patch models.WeeklyRoutinePatch) (models.WeeklyRoutineDetail, error)
	DeleteForUser(ctx context.Context, routineID uint, userID uint) error
}

type RoutineLinkReader interface {
	ListMuscleGroups(ctx context.Context, userID uint, routineID uint) ([]models.RoutineMuscleGroupDetail, error)
	ListExercises(ctx context.Context, userID uint, routineID uint) ([]models.RoutineExerciseDetail, error)
}

// RoutineView is a routine with both association sets embedded.
type RoutineView struct {
	models.WeeklyRoutineDetail
	MuscleGroups []models.RoutineMuscleGroupDetail `json:"muscle_groups"`
	Exercises    []models.RoutineExerciseDetail    `json:"exercises"`
	DailyEntry   *models.DailyEntry                `json:"daily_entry,omitempty"`
}

type RoutineService struct {
	routines WeeklyRoutineRepository
	links    RoutineLinkReader
}

func NewRoutineService(routines WeeklyRoutineRepository, links RoutineLinkReader) *RoutineService {
	return &RoutineService{routines: routines, links: links}
}

func (service *RoutineService) List(ctx context.Context, userID uint) ([]models.WeeklyRoutineDetail, error) {
	return service.routines.ListForUser(ctx, userID)
}

func (service *RoutineService) Get(ctx context.Context, routineID uint, userID uint) (RoutineView, error) {
	routine, err := service.routines.FindForUser(ctx, routineID, userID)
	if err != nil {
		return RoutineView{}, routineStoreError(err)
	}

	muscleGroups, err := service.links.ListMuscleGroups(ctx, userID, routineID)
	if err != nil {
		return RoutineView{}, fmt.Errorf("load routine muscle groups: %w", err)
	}
	exercises, err := service.links.ListExercises(ctx, userID, routineID)
	if err != nil {
		return RoutineView{}, fmt.Errorf("load routine exercises: %w", err)
	}

	return RoutineView{WeeklyRoutineDetail: routine, MuscleGroups: muscleGroups, Exercises: exercises}, nil
}

// CreateFull validates the whole submission, then writes the routine, its
// associations and the optional daily entry atomically.
func (service *RoutineService) CreateFull(ctx context.Context, userID uint, input CreateRoutineInput) (RoutineView, error) {
	input, plan, err := normalizeCreateRoutineInput(input)
	if err != nil {
		return RoutineView{}, err
	}

	routine := models.WeeklyRoutine{
		UserID:      userID,
		DayOfWeek:   input.DayOfWeek,
		RoutineType: input.RoutineType,
	}
	snapshot, err := service.routines.CreateFull(ctx, &routine, plan)
	if err != nil {
		return RoutineView{}, routineStoreError(err)
	}
	return newRoutineView(snapshot), nil
}

// ReplacePlan swaps both association sets of an owned routine for the
// submitted ones.
func (service *RoutineService) ReplacePlan(ctx context.Context, routineID uint, userID uint, input PlanInput) (RoutineView, error) {
	plan, err := normalizePlanInput(input)
	if err != nil {
		return RoutineView{}, err
	}

	snapshot, err := service.routines.ReplacePlan(ctx, routineID, userID, plan)
	if err != nil {
		return RoutineView{}, routineStoreError(err)
	}
	return newRoutineView(snapshot), nil
}

func (service *RoutineService) Update(ctx context.Context, routineID uint, userID uint, patch models.WeeklyRoutinePatch) (models.WeeklyRoutineDetail, error) {
	patch, err := normalizeRoutinePatch(patch)
	if err != nil {
		return models.WeeklyRoutineDetail{}, err
	}
	routine, err := service.routines.UpdateForUser(ctx, routineID, userID, patch)
	return routine, routineStoreError(err)
}

func (service *RoutineService) Delete(ctx context.Context, routineID uint, userID uint) error {
	return routineStoreError(service.routines.DeleteForUser(ctx, routineID, userID))
}

func newRoutineView(snapshot db.RoutineSnapshot) RoutineView {
	return RoutineView{
		WeeklyRoutineDetail: snapshot.Routine,
		MuscleGroups:        snapshot.MuscleGroups,
		Exercises:           snapshot.Exercises,
		DailyEntry:          snapshot.Entry,
	}
}

func routineStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return ErrRoutineNotFound
	case errors.Is(err, db.ErrDuplicateRoutineDay):
		return ErrRoutineDayTaken
	case errors.Is(err, db.ErrDuplicateRoutineExercise):
		return ErrDuplicateExercise
	case errors.Is(err, db.ErrDuplicateRoutineMuscleGroup):
		return ErrDuplicateMuscleGroup
	case errors.Is(err, db.ErrUnknownMuscleGroup):
		return ErrUnknownMuscleGroup
	case errors.Is(err, db.ErrUnknownExercise):
		return ErrUnknownExercise
	default:
		return err
	}
}
