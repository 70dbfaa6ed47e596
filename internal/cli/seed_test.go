package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	groups, err := DefaultCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, groups)

	names := map[string]struct{}{}
	for _, group := range groups {
		assert.Contains(t, []string{"upper", "lower"}, group.Category, group.Name)
		assert.NotEmpty(t, group.Exercises, group.Name)
		for _, exercise := range group.Exercises {
			_, duplicate := names[exercise.Name]
			assert.False(t, duplicate, "exercise %q listed twice", exercise.Name)
			names[exercise.Name] = struct{}{}
		}
	}
}

func TestLoadCatalogRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: Core\n  category: upper\n  colour: red\n"), 0o600))

	_, err := LoadCatalog(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))
	_, err = LoadCatalog(path)
	require.ErrorContains(t, err, "empty")

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRunSeedCatalogSeedsOnlyOnce(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	catalog := "- name: Core\n  category: upper\n  exercises:\n    - name: Plank\n      description: Hold a straight line.\n    - name: Dead bug\n"
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o600))

	service := services.NewCatalogService(db.NewCatalogRepository(database))
	var output bytes.Buffer
	require.NoError(t, RunSeedCatalog(context.Background(), service, path, &output))
	assert.Contains(t, output.String(), "Seeded 1 muscle groups and 2 exercises")

	exercises, err := service.ListExercises(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	for _, exercise := range exercises {
		assert.Equal(t, "Core", exercise.MuscleGroupName)
	}

	output.Reset()
	require.NoError(t, RunSeedCatalog(context.Background(), service, "", &output))
	assert.True(t, strings.Contains(output.String(), "nothing seeded"), output.String())
}
