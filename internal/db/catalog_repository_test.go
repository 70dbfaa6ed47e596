package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexpadev/trainR/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteMuscleGroupWithExercisesIsRejected(t *testing.T) {
	fixture := newRepositoryFixture(t)
	chest := fixture.muscleGroups[0]

	err := fixture.repositories.Catalog.DeleteMuscleGroup(fixture.ctx, chest.ID)
	require.ErrorIs(t, err, ErrMuscleGroupInUse)
	require.ErrorIs(t, err, ErrReferenceInUse)

	_, err = fixture.repositories.Catalog.FindMuscleGroup(fixture.ctx, chest.ID)
	require.NoError(t, err)
	_, err = fixture.repositories.Catalog.FindExercise(fixture.ctx, fixture.exercises[0].ID)
	require.NoError(t, err)

	empty := models.MuscleGroup{Name: "Calves", Category: models.CategoryLower}
	require.NoError(t, fixture.repositories.Catalog.CreateMuscleGroup(fixture.ctx, &empty))
	require.NoError(t, fixture.repositories.Catalog.DeleteMuscleGroup(fixture.ctx, empty.ID))
	require.ErrorIs(t, fixture.repositories.Catalog.DeleteMuscleGroup(fixture.ctx, empty.ID), ErrNotFound)
}

func TestDeleteExerciseUsedByRoutineIsRejected(t *testing.T) {
	fixture := newRepositoryFixture(t)
	user := fixture.createUser(t, "ana")

	routine := models.WeeklyRoutine{UserID: user.ID, DayOfWeek: 1, RoutineType: models.RoutineUpper}
	_, err := fixture.repositories.WeeklyRoutines.CreateFull(fixture.ctx, &routine, RoutinePlan{
		MuscleGroupIDs: []uint{fixture.muscleGroups[0].ID},
		Exercises:      []ExerciseSpec{{ExerciseID: fixture.exercises[0].ID, Sets: 3, Reps: 10}},
	})
	require.NoError(t, err)

	require.ErrorIs(t, fixture.repositories.Catalog.DeleteExercise(fixture.ctx, fixture.exercises[0].ID), ErrExerciseInUse)
	require.NoError(t, fixture.repositories.Catalog.DeleteExercise(fixture.ctx, fixture.exercises[1].ID))
}

func TestCatalogRejectsDuplicateNames(t *testing.T) {
	fixture := newRepositoryFixture(t)

	duplicate := models.MuscleGroup{Name: "Chest", Category: models.CategoryUpper}
	require.ErrorIs(t, fixture.repositories.Catalog.CreateMuscleGroup(fixture.ctx, &duplicate), ErrDuplicateName)

	_, err := fixture.repositories.Catalog.UpdateMuscleGroup(fixture.ctx, fixture.muscleGroups[1].ID, models.MuscleGroupPatch{Name: models.Some("Chest")})
	require.ErrorIs(t, err, ErrDuplicateName)

	_, err = fixture.repositories.Catalog.UpdateExercise(fixture.ctx, fixture.exercises[1].ID, models.ExercisePatch{Name: models.Some("Squat")})
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestExerciseReadsJoinMuscleGroupName(t *testing.T) {
	fixture := newRepositoryFixture(t)

	exercises, err := fixture.repositories.Catalog.ListExercises(fixture.ctx, fixture.muscleGroups[0].ID)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	for _, exercise := range exercises {
		assert.Equal(t, "Chest", exercise.MuscleGroupName)
	}

	updated, err := fixture.repositories.Catalog.UpdateExercise(fixture.ctx, fixture.exercises[1].ID, models.ExercisePatch{
		MuscleGroupID: models.Some(fixture.muscleGroups[1].ID),
		Description:   models.Some("bodyweight"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Back", updated.MuscleGroupName)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "bodyweight", *updated.Description)

	_, err = fixture.repositories.Catalog.UpdateExercise(fixture.ctx, fixture.exercises[1].ID, models.ExercisePatch{MuscleGroupID: models.Some(uint(999))})
	require.ErrorIs(t, err, ErrUnknownMuscleGroup)

	missing := models.Exercise{Name: "Lunge", MuscleGroupID: 999}
	require.ErrorIs(t, fixture.repositories.Catalog.CreateExercise(fixture.ctx, &missing), ErrUnknownMuscleGroup)
}

func TestListMuscleGroupsFiltersByCategory(t *testing.T) {
	fixture := newRepositoryFixture(t)

	lower, err := fixture.repositories.Catalog.ListMuscleGroups(fixture.ctx, models.CategoryLower)
	require.NoError(t, err)
	require.Len(t, lower, 1)
	assert.Equal(t, "Quads", lower[0].Name)

	all, err := fixture.repositories.Catalog.ListMuscleGroups(fixture.ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSeedCatalogIsAllOrNothing(t *testing.T) {
	database := openSQLiteForMigrationBootstrapTest(t, filepath.Join(t.TempDir(), "trainr-seed.db"))
	catalog := NewCatalogRepository(database)
	ctx := context.Background()

	broken := []CatalogSeed{
		{
			Group:     models.MuscleGroup{Name: "Chest", Category: models.CategoryUpper},
			Exercises: []models.Exercise{{Name: "Bench press"}},
		},
		{
			Group:     models.MuscleGroup{Name: "Back", Category: models.CategoryUpper},
			Exercises: []models.Exercise{{Name: "Bench press"}},
		},
	}
	seeded, err := catalog.SeedCatalog(ctx, broken)
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.False(t, seeded)

	groups, err := catalog.ListMuscleGroups(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, groups, "a failed seed must leave no partial catalog")

	broken[1].Exercises[0].Name = "Pull up"
	seeded, err = catalog.SeedCatalog(ctx, broken)
	require.NoError(t, err)
	assert.True(t, seeded)

	exercises, err := catalog.ListExercises(ctx, 0)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "Back", exercises[1].MuscleGroupName)

	seeded, err = catalog.SeedCatalog(ctx, []CatalogSeed{{Group: models.MuscleGroup{Name: "Quads", Category: models.CategoryLower}}})
	require.NoError(t, err)
	assert.False(t, seeded)
}
