package services

import (
	"context"
	"testing"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLinkRepo struct {
	stubLinkReader
	addErr  error
	added   []models.WeeklyRoutineExercise
	patches []models.RoutineExercisePatch
}

func (stub *stubLinkRepo) FindMuscleGroup(_ context.Context, userID uint, routineID uint, muscleGroupID uint) (models.RoutineMuscleGroupDetail, error) {
	return models.RoutineMuscleGroupDetail{WeeklyRoutineID: routineID, MuscleGroupID: muscleGroupID, UserID: userID}, nil
}

func (stub *stubLinkRepo) AddMuscleGroup(context.Context, uint, *models.WeeklyRoutineMuscleGroup) error {
	return stub.addErr
}

func (stub *stubLinkRepo) RemoveMuscleGroup(context.Context, uint, uint, uint) error {
	return db.ErrNotFound
}

func (stub *stubLinkRepo) FindExercise(_ context.Context, _ uint, linkID uint) (models.RoutineExerciseDetail, error) {
	for _, link := range stub.added {
		if link.ID == linkID {
			return models.RoutineExerciseDetail{ID: link.ID, WeeklyRoutineID: link.WeeklyRoutineID, ExerciseID: link.ExerciseID, Sets: link.Sets, Reps: link.Reps}, nil
		}
	}
	return models.RoutineExerciseDetail{}, db.ErrNotFound
}

func (stub *stubLinkRepo) AddExercise(_ context.Context, _ uint, link *models.WeeklyRoutineExercise) error {
	if stub.addErr != nil {
		return stub.addErr
	}
	link.ID = uint(len(stub.added) + 1)
	stub.added = append(stub.added, *link)
	return nil
}

func (stub *stubLinkRepo) UpdateExercise(ctx context.Context, userID uint, linkID uint, patch models.RoutineExercisePatch) (models.RoutineExerciseDetail, error) {
	stub.patches = append(stub.patches, patch)
	return stub.FindExercise(ctx, userID, linkID)
}

func (stub *stubLinkRepo) RemoveExercise(context.Context, uint, uint) error {
	return nil
}

func TestAddRoutineExercise(t *testing.T) {
	repo := &stubLinkRepo{}
	service := NewRoutineLinkService(repo)
	ctx := context.Background()

	link, err := service.AddExercise(ctx, 1, RoutineExerciseInput{WeeklyRoutineID: 3, ExerciseID: 2, Sets: 4, Reps: 8})
	require.NoError(t, err)
	assert.Equal(t, 4, link.Sets)
	assert.Equal(t, 8, link.Reps)

	_, err = service.AddExercise(ctx, 1, RoutineExerciseInput{ExerciseID: 2, Sets: 4, Reps: 8})
	assert.ErrorIs(t, err, ErrRoutineNotFound)
	_, err = service.AddExercise(ctx, 1, RoutineExerciseInput{WeeklyRoutineID: 3, Sets: 4, Reps: 8})
	assert.ErrorIs(t, err, ErrUnknownExercise)
	_, err = service.AddExercise(ctx, 1, RoutineExerciseInput{WeeklyRoutineID: 3, ExerciseID: 2, Sets: 0, Reps: 8})
	assert.ErrorIs(t, err, ErrInvalidExerciseVolume)

	repo.addErr = db.ErrDuplicateRoutineExercise
	_, err = service.AddExercise(ctx, 1, RoutineExerciseInput{WeeklyRoutineID: 3, ExerciseID: 2, Sets: 4, Reps: 8})
	assert.ErrorIs(t, err, ErrDuplicateExercise)

	repo.addErr = db.ErrNotFound
	_, err = service.AddExercise(ctx, 2, RoutineExerciseInput{WeeklyRoutineID: 3, ExerciseID: 2, Sets: 4, Reps: 8})
	assert.ErrorIs(t, err, ErrRoutineNotFound)
}

func TestUpdateRoutineExerciseVolume(t *testing.T) {
	repo := &stubLinkRepo{}
	service := NewRoutineLinkService(repo)
	ctx := context.Background()

	link, err := service.AddExercise(ctx, 1, RoutineExerciseInput{WeeklyRoutineID: 3, ExerciseID: 2, Sets: 4, Reps: 8})
	require.NoError(t, err)

	_, err = service.UpdateExercise(ctx, 1, link.ID, models.RoutineExercisePatch{})
	assert.ErrorIs(t, err, ErrEmptyPatch)
	_, err = service.UpdateExercise(ctx, 1, link.ID, models.RoutineExercisePatch{Reps: models.Some(-2)})
	assert.ErrorIs(t, err, ErrInvalidExerciseVolume)
	_, err = service.UpdateExercise(ctx, 1, link.ID, models.RoutineExercisePatch{Sets: models.Null[int]()})
	assert.ErrorIs(t, err, ErrInvalidExerciseVolume)

	_, err = service.UpdateExercise(ctx, 1, link.ID, models.RoutineExercisePatch{Sets: models.Some(5)})
	require.NoError(t, err)
	assert.Len(t, repo.patches, 1)

	_, err = service.UpdateExercise(ctx, 1, 99, models.RoutineExercisePatch{Sets: models.Some(5)})
	assert.ErrorIs(t, err, ErrRoutineLinkNotFound)
}

func TestRoutineMuscleGroupLinks(t *testing.T) {
	repo := &stubLinkRepo{}
	service := NewRoutineLinkService(repo)
	ctx := context.Background()

	_, err := service.AddMuscleGroup(ctx, 1, 3, 0)
	assert.ErrorIs(t, err, ErrUnknownMuscleGroup)

	link, err := service.AddMuscleGroup(ctx, 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), link.MuscleGroupID)

	repo.addErr = db.ErrDuplicateRoutineMuscleGroup
	_, err = service.AddMuscleGroup(ctx, 1, 3, 2)
	assert.ErrorIs(t, err, ErrDuplicateMuscleGroup)

	assert.ErrorIs(t, service.RemoveMuscleGroup(ctx, 1, 3, 2), ErrRoutineLinkNotFound)
}
