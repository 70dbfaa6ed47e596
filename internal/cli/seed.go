package cli

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexpadev/trainR/internal/services"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

type CatalogSeeder interface {
	SeedMuscleGroups(ctx context.Context, groups []services.SeedMuscleGroup) (bool, error)
}

// DefaultCatalog returns the built-in muscle groups and exercises.
func DefaultCatalog() ([]services.SeedMuscleGroup, error) {
	return decodeCatalog(bytes.NewReader(defaultCatalog))
}

// LoadCatalog reads a YAML catalog file; an empty path selects the built-in one.
func LoadCatalog(path string) ([]services.SeedMuscleGroup, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	groups, err := decodeCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

func decodeCatalog(reader io.Reader) ([]services.SeedMuscleGroup, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var groups []services.SeedMuscleGroup
	if err := decoder.Decode(&groups); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(groups) == 0 {
		return nil, errors.New("catalog is empty")
	}
	return groups, nil
}

// RunSeedCatalog loads the catalog at path and inserts it when the store has
// no muscle groups yet.
func RunSeedCatalog(ctx context.Context, seeder CatalogSeeder, path string, output io.Writer) error {
	if output == nil {
		output = os.Stdout
	}

	groups, err := LoadCatalog(path)
	if err != nil {
		return err
	}

	seeded, err := seeder.SeedMuscleGroups(ctx, groups)
	if err != nil {
		return err
	}
	if !seeded {
		color.New(color.FgYellow).Fprintln(output, "Catalog already has muscle groups, nothing seeded")
		return nil
	}

	exercises := 0
	for _, group := range groups {
		exercises += len(group.Exercises)
	}
	color.New(color.FgGreen).Fprintf(output, "Seeded %d muscle groups and %d exercises\n", len(groups), exercises)
	return nil
}
