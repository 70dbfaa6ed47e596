package db

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/alexpadev/trainR/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repositoryFixture struct {
	database     *gorm.DB
	repositories *Repositories
	ctx          context.Context
	muscleGroups []models.MuscleGroup
	exercises    []models.Exercise
}

func newRepositoryFixture(t *testing.T) *repositoryFixture {
	t.Helper()

	database := openSQLiteForMigrationBootstrapTest(t, filepath.Join(t.TempDir(), "trainr-repositories.db"))
	fixture := &repositoryFixture{
		database:     database,
		repositories: NewRepositories(database),
		ctx:          context.Background(),
	}

	for _, group := range []models.MuscleGroup{
		{Name: "Chest", Category: models.CategoryUpper},
		{Name: "Back", Category: models.CategoryUpper},
		{Name: "Quads", Category: models.CategoryLower},
	} {
		group := group
		require.NoError(t, fixture.repositories.Catalog.CreateMuscleGroup(fixture.ctx, &group))
		fixture.muscleGroups = append(fixture.muscleGroups, group)
	}

	for index, spec := range []struct {
		name  string
		group int
	}{
		{name: "Bench press", group: 0},
		{name: "Push up", group: 0},
		{name: "Pull up", group: 1},
		{name: "Squat", group: 2},
	} {
		exercise := models.Exercise{Name: spec.name, MuscleGroupID: fixture.muscleGroups[spec.group].ID}
		require.NoError(t, fixture.repositories.Catalog.CreateExercise(fixture.ctx, &exercise), "exercise %d", index)
		fixture.exercises = append(fixture.exercises, exercise)
	}

	return fixture
}

func (fixture *repositoryFixture) createUser(t *testing.T, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "hash",
	}
	require.NoError(t, fixture.repositories.Users.Create(fixture.ctx, &user))
	return user
}

func (fixture *repositoryFixture) countRows(t *testing.T, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, fixture.database.Model(model).Count(&count).Error)
	return count
}

func stringPointer(value string) *string {
	return &value
}
