package services

import (
	"context"
	"errors"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/models"
)

var ErrRoutineLinkNotFound = errors.New("routine link not found")

type RoutineLinkRepository interface {
	RoutineLinkReader
	FindMuscleGroup(ctx context.Context, userID uint, routineID uint, muscleGroupID uint) (models.RoutineMuscleGroupDetail, error)
	AddMuscleGroup(ctx context.Context, userID uint, link *models.WeeklyRoutineMuscleGroup) error
	RemoveMuscleGroup(ctx context.Context, userID uint, routineID uint, muscleGroupID uint) error
	FindExercise(ctx context.Context, userID uint, linkID uint) (models.RoutineExerciseDetail, error)
	AddExercise(ctx context.Context, userID uint, link *models.WeeklyRoutineExercise) error
	UpdateExercise(ctx context.Context, userID uint, linkID uint, patch models.RoutineExercisePatch) (models.RoutineExerciseDetail, error)
	RemoveExercise(ctx context.Context, userID uint, linkID uint) error
}

type RoutineExerciseInput struct {
	WeeklyRoutineID uint
	ExerciseID      uint
	Sets            int
	Reps            int
}

// RoutineLinkService edits one association row at a time. A routine that
// the caller does not own is reported as ErrRoutineNotFound.
type RoutineLinkService struct {
	links RoutineLinkRepository
}

func NewRoutineLinkService(links RoutineLinkRepository) *RoutineLinkService {
	return &RoutineLinkService{links: links}
}

func (service *RoutineLinkService) ListMuscleGroups(ctx context.Context, userID uint, routineID uint) ([]models.RoutineMuscleGroupDetail, error) {
	return service.links.ListMuscleGroups(ctx, userID, routineID)
}

func (service *RoutineLinkService) GetMuscleGroup(ctx context.Context, userID uint, routineID uint, muscleGroupID uint) (models.RoutineMuscleGroupDetail, error) {
	link, err := service.links.FindMuscleGroup(ctx, userID, routineID, muscleGroupID)
	return link, linkStoreError(err, ErrRoutineLinkNotFound)
}

func (service *RoutineLinkService) AddMuscleGroup(ctx context.Context, userID uint, routineID uint, muscleGroupID uint) (models.RoutineMuscleGroupDetail, error) {
	if routineID == 0 {
		return models.RoutineMuscleGroupDetail{}, ErrRoutineNotFound
	}
	if muscleGroupID == 0 {
		return models.RoutineMuscleGroupDetail{}, ErrUnknownMuscleGroup
	}

	link := models.WeeklyRoutineMuscleGroup{WeeklyRoutineID: routineID, MuscleGroupID: muscleGroupID}
	if err := service.links.AddMuscleGroup(ctx, userID, &link); err != nil {
		return models.RoutineMuscleGroupDetail{}, linkStoreError(err, ErrRoutineNotFound)
	}
	return service.GetMuscleGroup(ctx, userID, routineID, muscleGroupID)
}

func (service *RoutineLinkService) RemoveMuscleGroup(ctx context.Context, userID uint, routineID uint, muscleGroupID uint) error {
	return linkStoreError(service.links.RemoveMuscleGroup(ctx, userID, routineID, muscleGroupID), ErrRoutineLinkNotFound)
}

func (service *RoutineLinkService) ListExercises(ctx context.Context, userID uint, routineID uint) ([]models.RoutineExerciseDetail, error) {
	return service.links.ListExercises(ctx, userID, routineID)
}

func (service *RoutineLinkService) GetExercise(ctx context.Context, userID uint, linkID uint) (models.RoutineExerciseDetail, error) {
	link, err := service.links.FindExercise(ctx, userID, linkID)
	return link, linkStoreError(err, ErrRoutineLinkNotFound)
}

func (service *RoutineLinkService) AddExercise(ctx context.Context, userID uint, input RoutineExerciseInput) (models.RoutineExerciseDetail, error) {
	if input.WeeklyRoutineID == 0 {
		return models.RoutineExerciseDetail{}, ErrRoutineNotFound
	}
	if err := validateRoutineInput(ExerciseSpecInput{ExerciseID: input.ExerciseID, Sets: input.Sets, Reps: input.Reps}); err != nil {
		if errors.Is(err, ErrExercisesRequired) {
			return models.RoutineExerciseDetail{}, ErrUnknownExercise
		}
		return models.RoutineExerciseDetail{}, err
	}

	link := models.WeeklyRoutineExercise{
		WeeklyRoutineID: input.WeeklyRoutineID,
		ExerciseID:      input.ExerciseID,
		Sets:            input.Sets,
		Reps:            input.Reps,
	}
	if err := service.links.AddExercise(ctx, userID, &link); err != nil {
		return models.RoutineExerciseDetail{}, linkStoreError(err, ErrRoutineNotFound)
	}
	return service.GetExercise(ctx, userID, link.ID)
}

func (service *RoutineLinkService) UpdateExercise(ctx context.Context, userID uint, linkID uint, patch models.RoutineExercisePatch) (models.RoutineExerciseDetail, error) {
	if patch.IsEmpty() {
		return models.RoutineExerciseDetail{}, ErrEmptyPatch
	}
	for _, value := range []models.Optional[int]{patch.Sets, patch.Reps} {
		if value.Set && (value.Value == nil || *value.Value <= 0) {
			return models.RoutineExerciseDetail{}, ErrInvalidExerciseVolume
		}
	}

	link, err := service.links.UpdateExercise(ctx, userID, linkID, patch)
	return link, linkStoreError(err, ErrRoutineLinkNotFound)
}

func (service *RoutineLinkService) RemoveExercise(ctx context.Context, userID uint, linkID uint) error {
	return linkStoreError(service.links.RemoveExercise(ctx, userID, linkID), ErrRoutineLinkNotFound)
}

// linkStoreError maps store failures; notFound distinguishes a missing link
// from a routine the caller cannot see.
func linkStoreError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return notFound
	case errors.Is(err, db.ErrDuplicateRoutineMuscleGroup):
		return ErrDuplicateMuscleGroup
	case errors.Is(err, db.ErrDuplicateRoutineExercise):
		return ErrDuplicateExercise
	case errors.Is(err, db.ErrUnknownMuscleGroup):
		return ErrUnknownMuscleGroup
	case errors.Is(err, db.ErrUnknownExercise):
		return ErrUnknownExercise
	default:
		return err
	}
}
