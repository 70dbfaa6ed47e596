package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/models"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMuscleGroupNotFound = errors.New("muscle group not found")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrInvalidCatalogName  = errors.New("invalid catalog name")
	ErrInvalidCategory     = errors.New("invalid muscle group category")
	ErrCatalogNameTaken    = errors.New("catalog name already exists")
	ErrUnknownMuscleGroup  = errors.New("unknown muscle group")
	ErrMuscleGroupInUse    = errors.New("muscle group is in use")
	ErrExerciseInUse       = errors.New("exercise is in use")
	ErrInvalidDescription  = errors.New("invalid exercise description")
)

const (
	maxCatalogNameLength         = 100
	maxExerciseDescriptionLength = 2000
)

type CatalogRepository interface {
	ListMuscleGroups(ctx context.Context, category string) ([]models.MuscleGroup, error)
	FindMuscleGroup(ctx context.Context, id uint) (models.MuscleGroup, error)
	SeedCatalog(ctx context.Context, seeds []db.CatalogSeed) (bool, error)
	CreateMuscleGroup(ctx context.Context, group *models.MuscleGroup) error
	UpdateMuscleGroup(ctx context.Context, id uint, patch models.MuscleGroupPatch) (models.MuscleGroup, error)
	DeleteMuscleGroup(ctx context.Context, id uint) error
	ListExercises(ctx context.Context, muscleGroupID uint) ([]models.ExerciseDetail, error)
	FindExercise(ctx context.Context, id uint) (models.ExerciseDetail, error)
	CreateExercise(ctx context.Context, exercise *models.Exercise) error
	UpdateExercise(ctx context.Context, id uint, patch models.ExercisePatch) (models.ExerciseDetail, error)
	DeleteExercise(ctx context.Context, id uint) error
}

type MuscleGroupInput struct {
	Name     string
	Category string
}

type ExerciseInput struct {
	Name          string
	Description   *string
	MuscleGroupID uint
}

type Catalog struct {
	MuscleGroups []models.MuscleGroup    `json:"muscle_groups"`
	Exercises    []models.ExerciseDetail `json:"exercises"`
}

type CatalogService struct {
	catalog CatalogRepository
}

func NewCatalogService(catalog CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Snapshot loads muscle groups and exercises concurrently.
func (service *CatalogService) Snapshot(ctx context.Context) (Catalog, error) {
	var snapshot Catalog
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		muscleGroups, err := service.catalog.ListMuscleGroups(groupCtx, "")
		if err != nil {
			return fmt.Errorf("list muscle groups: %w", err)
		}
		snapshot.MuscleGroups = muscleGroups
		return nil
	})
	group.Go(func() error {
		exercises, err := service.catalog.ListExercises(groupCtx, 0)
		if err != nil {
			return fmt.Errorf("list exercises: %w", err)
		}
		snapshot.Exercises = exercises
		return nil
	})
	if err := group.Wait(); err != nil {
		return Catalog{}, err
	}
	return snapshot, nil
}

func (service *CatalogService) ListMuscleGroups(ctx context.Context, categoryRaw string) ([]models.MuscleGroup, error) {
	category := strings.ToLower(strings.TrimSpace(categoryRaw))
	if category != "" && !models.IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return service.catalog.ListMuscleGroups(ctx, category)
}

func (service *CatalogService) GetMuscleGroup(ctx context.Context, id uint) (models.MuscleGroup, error) {
	group, err := service.catalog.FindMuscleGroup(ctx, id)
	return group, catalogStoreError(err)
}

func (service *CatalogService) CreateMuscleGroup(ctx context.Context, input MuscleGroupInput) (models.MuscleGroup, error) {
	name, err := normalizeCatalogName(input.Name)
	if err != nil {
		return models.MuscleGroup{}, err
	}
	category, err := normalizeCategory(input.Category)
	if err != nil {
		return models.MuscleGroup{}, err
	}

	group := models.MuscleGroup{Name: name, Category: category}
	if err := service.catalog.CreateMuscleGroup(ctx, &group); err != nil {
		return models.MuscleGroup{}, catalogStoreError(err)
	}
	return group, nil
}

func (service *CatalogService) UpdateMuscleGroup(ctx context.Context, id uint, patch models.MuscleGroupPatch) (models.MuscleGroup, error) {
	if patch.IsEmpty() {
		return models.MuscleGroup{}, ErrEmptyPatch
	}
	if patch.Name.Set {
		if patch.Name.Value == nil {
			return models.MuscleGroup{}, ErrInvalidCatalogName
		}
		name, err := normalizeCatalogName(*patch.Name.Value)
		if err != nil {
			return models.MuscleGroup{}, err
		}
		patch.Name = models.Some(name)
	}
	if patch.Category.Set {
		if patch.Category.Value == nil {
			return models.MuscleGroup{}, ErrInvalidCategory
		}
		category, err := normalizeCategory(*patch.Category.Value)
		if err != nil {
			return models.MuscleGroup{}, err
		}
		patch.Category = models.Some(category)
	}

	group, err := service.catalog.UpdateMuscleGroup(ctx, id, patch)
	return group, catalogStoreError(err)
}

func (service *CatalogService) DeleteMuscleGroup(ctx context.Context, id uint) error {
	return catalogStoreError(service.catalog.DeleteMuscleGroup(ctx, id))
}

func (service *CatalogService) ListExercises(ctx context.Context, muscleGroupID uint) ([]models.ExerciseDetail, error) {
	return service.catalog.ListExercises(ctx, muscleGroupID)
}

func (service *CatalogService) GetExercise(ctx context.Context, id uint) (models.ExerciseDetail, error) {
	exercise, err := service.catalog.FindExercise(ctx, id)
	return exercise, exerciseStoreError(err)
}

func (service *CatalogService) CreateExercise(ctx context.Context, input ExerciseInput) (models.ExerciseDetail, error) {
	name, err := normalizeCatalogName(input.Name)
	if err != nil {
		return models.ExerciseDetail{}, err
	}
	description, err := normalizeDescription(input.Description)
	if err != nil {
		return models.ExerciseDetail{}, err
	}
	if input.MuscleGroupID == 0 {
		return models.ExerciseDetail{}, ErrUnknownMuscleGroup
	}

	exercise := models.Exercise{Name: name, Description: description, MuscleGroupID: input.MuscleGroupID}
	if err := service.catalog.CreateExercise(ctx, &exercise); err != nil {
		return models.ExerciseDetail{}, exerciseStoreError(err)
	}
	return service.GetExercise(ctx, exercise.ID)
}

func (service *CatalogService) UpdateExercise(ctx context.Context, id uint, patch models.ExercisePatch) (models.ExerciseDetail, error) {
	if patch.IsEmpty() {
		return models.ExerciseDetail{}, ErrEmptyPatch
	}
	if patch.Name.Set {
		if patch.Name.Value == nil {
			return models.ExerciseDetail{}, ErrInvalidCatalogName
		}
		name, err := normalizeCatalogName(*patch.Name.Value)
		if err != nil {
			return models.ExerciseDetail{}, err
		}
		patch.Name = models.Some(name)
	}
	if patch.Description.Set {
		description, err := normalizeDescription(patch.Description.Value)
		if err != nil {
			return models.ExerciseDetail{}, err
		}
		patch.Description = models.Optional[string]{Set: true, Value: description}
	}
	if patch.MuscleGroupID.Set && (patch.MuscleGroupID.Value == nil || *patch.MuscleGroupID.Value == 0) {
		return models.ExerciseDetail{}, ErrUnknownMuscleGroup
	}

	exercise, err := service.catalog.UpdateExercise(ctx, id, patch)
	return exercise, exerciseStoreError(err)
}

func (service *CatalogService) DeleteExercise(ctx context.Context, id uint) error {
	return exerciseStoreError(service.catalog.DeleteExercise(ctx, id))
}

// SeedMuscleGroups inserts groups and their exercises when the catalog is
// empty. Every seed is validated first and the writes share one transaction,
// so a failure leaves the catalog empty. It reports whether anything was
// written.
func (service *CatalogService) SeedMuscleGroups(ctx context.Context, groups []SeedMuscleGroup) (bool, error) {
	seeds := make([]db.CatalogSeed, 0, len(groups))
	for _, seed := range groups {
		name, err := normalizeCatalogName(seed.Name)
		if err != nil {
			return false, fmt.Errorf("seed muscle group %q: %w", seed.Name, err)
		}
		category, err := normalizeCategory(seed.Category)
		if err != nil {
			return false, fmt.Errorf("seed muscle group %q: %w", seed.Name, err)
		}

		catalogSeed := db.CatalogSeed{Group: models.MuscleGroup{Name: name, Category: category}}
		for _, exercise := range seed.Exercises {
			exerciseName, err := normalizeCatalogName(exercise.Name)
			if err != nil {
				return false, fmt.Errorf("seed exercise %q: %w", exercise.Name, err)
			}
			description, err := normalizeDescription(&exercise.Description)
			if err != nil {
				return false, fmt.Errorf("seed exercise %q: %w", exercise.Name, err)
			}
			catalogSeed.Exercises = append(catalogSeed.Exercises, models.Exercise{Name: exerciseName, Description: description})
		}
		seeds = append(seeds, catalogSeed)
	}

	seeded, err := service.catalog.SeedCatalog(ctx, seeds)
	if err != nil {
		if mapped := catalogStoreError(err); mapped != err {
			return false, fmt.Errorf("%w: %v", mapped, err)
		}
		return false, err
	}
	return seeded, nil
}

type SeedMuscleGroup struct {
	Name      string         `yaml:"name"`
	Category  string         `yaml:"category"`
	Exercises []SeedExercise `yaml:"exercises"`
}

type SeedExercise struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func normalizeCatalogName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || utf8.RuneCountInString(name) > maxCatalogNameLength {
		return "", ErrInvalidCatalogName
	}
	return name, nil
}

func normalizeCategory(raw string) (string, error) {
	category := strings.ToLower(strings.TrimSpace(raw))
	if !models.IsValidCategory(category) {
		return "", ErrInvalidCategory
	}
	return category, nil
}

func normalizeDescription(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	description := strings.TrimSpace(*raw)
	if description == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(description) > maxExerciseDescriptionLength {
		return nil, ErrInvalidDescription
	}
	return &description, nil
}

func catalogStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return ErrMuscleGroupNotFound
	case errors.Is(err, db.ErrDuplicate):
		return ErrCatalogNameTaken
	case errors.Is(err, db.ErrReferenceInUse):
		return ErrMuscleGroupInUse
	default:
		return err
	}
}

func exerciseStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return ErrExerciseNotFound
	case errors.Is(err, db.ErrDuplicate):
		return ErrCatalogNameTaken
	case errors.Is(err, db.ErrUnknownMuscleGroup):
		return ErrUnknownMuscleGroup
	case errors.Is(err, db.ErrReferenceInUse):
		return ErrExerciseInUse
	default:
		return err
	}
}
