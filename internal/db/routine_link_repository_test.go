package db

import (
	"testing"

	"github.com/alexpadev/trainR/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineLinksAreOwnerScoped(t *testing.T) {
	fixture := newRepositoryFixture(t)
	owner := fixture.createUser(t, "ana")
	stranger := fixture.createUser(t, "eve")

	routine := models.WeeklyRoutine{UserID: owner.ID, DayOfWeek: 1, RoutineType: models.RoutineUpper}
	_, err := fixture.repositories.WeeklyRoutines.CreateFull(fixture.ctx, &routine, RoutinePlan{
		MuscleGroupIDs: []uint{fixture.muscleGroups[0].ID},
		Exercises:      []ExerciseSpec{{ExerciseID: fixture.exercises[0].ID, Sets: 3, Reps: 10}},
	})
	require.NoError(t, err)

	links, err := fixture.repositories.RoutineLinks.ListExercises(fixture.ctx, owner.ID, 0)
	require.NoError(t, err)
	require.Len(t, links, 1)
	linkID := links[0].ID

	_, err = fixture.repositories.RoutineLinks.FindExercise(fixture.ctx, stranger.ID, linkID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = fixture.repositories.RoutineLinks.UpdateExercise(fixture.ctx, stranger.ID, linkID, models.RoutineExercisePatch{Sets: models.Some(9)})
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, fixture.repositories.RoutineLinks.RemoveExercise(fixture.ctx, stranger.ID, linkID), ErrNotFound)
	require.ErrorIs(t, fixture.repositories.RoutineLinks.RemoveMuscleGroup(fixture.ctx, stranger.ID, routine.ID, fixture.muscleGroups[0].ID), ErrNotFound)

	foreign := models.WeeklyRoutineExercise{WeeklyRoutineID: routine.ID, ExerciseID: fixture.exercises[1].ID, Sets: 1, Reps: 1}
	require.ErrorIs(t, fixture.repositories.RoutineLinks.AddExercise(fixture.ctx, stranger.ID, &foreign), ErrNotFound)

	strangerLinks, err := fixture.repositories.RoutineLinks.ListMuscleGroups(fixture.ctx, stranger.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, strangerLinks)

	updated, err := fixture.repositories.RoutineLinks.UpdateExercise(fixture.ctx, owner.ID, linkID, models.RoutineExercisePatch{Sets: models.Some(5), Reps: models.Some(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Sets)
	assert.Equal(t, 5, updated.Reps)
}

func TestRoutineLinkAddValidatesTargets(t *testing.T) {
	fixture := newRepositoryFixture(t)
	owner := fixture.createUser(t, "ana")

	routine := models.WeeklyRoutine{UserID: owner.ID, DayOfWeek: 1, RoutineType: models.RoutineUpper}
	_, err := fixture.repositories.WeeklyRoutines.CreateFull(fixture.ctx, &routine, RoutinePlan{
		MuscleGroupIDs: []uint{fixture.muscleGroups[0].ID},
		Exercises:      []ExerciseSpec{{ExerciseID: fixture.exercises[0].ID, Sets: 3, Reps: 10}},
	})
	require.NoError(t, err)

	duplicateGroup := models.WeeklyRoutineMuscleGroup{WeeklyRoutineID: routine.ID, MuscleGroupID: fixture.muscleGroups[0].ID}
	require.ErrorIs(t, fixture.repositories.RoutineLinks.AddMuscleGroup(fixture.ctx, owner.ID, &duplicateGroup), ErrDuplicateRoutineMuscleGroup)

	unknownGroup := models.WeeklyRoutineMuscleGroup{WeeklyRoutineID: routine.ID, MuscleGroupID: 404}
	require.ErrorIs(t, fixture.repositories.RoutineLinks.AddMuscleGroup(fixture.ctx, owner.ID, &unknownGroup), ErrUnknownMuscleGroup)

	duplicateExercise := models.WeeklyRoutineExercise{WeeklyRoutineID: routine.ID, ExerciseID: fixture.exercises[0].ID, Sets: 1, Reps: 1}
	require.ErrorIs(t, fixture.repositories.RoutineLinks.AddExercise(fixture.ctx, owner.ID, &duplicateExercise), ErrDuplicateRoutineExercise)

	unknownExercise := models.WeeklyRoutineExercise{WeeklyRoutineID: routine.ID, ExerciseID: 404, Sets: 1, Reps: 1}
	require.ErrorIs(t, fixture.repositories.RoutineLinks.AddExercise(fixture.ctx, owner.ID, &unknownExercise), ErrUnknownExercise)

	group := models.WeeklyRoutineMuscleGroup{WeeklyRoutineID: routine.ID, MuscleGroupID: fixture.muscleGroups[1].ID}
	require.NoError(t, fixture.repositories.RoutineLinks.AddMuscleGroup(fixture.ctx, owner.ID, &group))

	detail, err := fixture.repositories.RoutineLinks.FindMuscleGroup(fixture.ctx, owner.ID, routine.ID, fixture.muscleGroups[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Back", detail.MuscleGroupName)

	require.NoError(t, fixture.repositories.RoutineLinks.RemoveMuscleGroup(fixture.ctx, owner.ID, routine.ID, fixture.muscleGroups[1].ID))
	_, err = fixture.repositories.RoutineLinks.FindMuscleGroup(fixture.ctx, owner.ID, routine.ID, fixture.muscleGroups[1].ID)
	require.ErrorIs(t, err, ErrNotFound)
}
