package db

import (
	"context"
	"fmt"

	"github.com/alexpadev/trainR/internal/models"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	database *gorm.DB
}

func NewCatalogRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{database: database}
}

func (repo *CatalogRepository) ListMuscleGroups(ctx context.Context, category string) ([]models.MuscleGroup, error) {
	groups := make([]models.MuscleGroup, 0)
	query := repo.database.WithContext(ctx).Order("id ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (repo *CatalogRepository) FindMuscleGroup(ctx context.Context, id uint) (models.MuscleGroup, error) {
	var group models.MuscleGroup
	if err := repo.database.WithContext(ctx).First(&group, id).Error; err != nil {
		return models.MuscleGroup{}, translateError(err, nil, nil)
	}
	return group, nil
}

// CatalogSeed is one muscle group and the exercises filed under it.
type CatalogSeed struct {
	Group     models.MuscleGroup
	Exercises []models.Exercise
}

// SeedCatalog writes every seed in one transaction, and only while the
// catalog has no muscle groups. It reports whether anything was written.
func (repo *CatalogRepository) SeedCatalog(ctx context.Context, seeds []CatalogSeed) (bool, error) {
	seeded := false
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MuscleGroup{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, seed := range seeds {
			group := seed.Group
			if err := tx.Create(&group).Error; err != nil {
				return fmt.Errorf("seed muscle group %q: %w", group.Name, translateError(err, ErrDuplicateName, nil))
			}
			for _, exercise := range seed.Exercises {
				exercise.MuscleGroupID = group.ID
				if err := tx.Create(&exercise).Error; err != nil {
					return fmt.Errorf("seed exercise %q: %w", exercise.Name, translateError(err, ErrDuplicateName, nil))
				}
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

func (repo *CatalogRepository) CreateMuscleGroup(ctx context.Context, group *models.MuscleGroup) error {
	return translateError(repo.database.WithContext(ctx).Create(group).Error, ErrDuplicateName, nil)
}

func (repo *CatalogRepository) UpdateMuscleGroup(ctx context.Context, id uint, patch models.MuscleGroupPatch) (models.MuscleGroup, error) {
	updates := map[string]any{}
	if patch.Name.Set && patch.Name.Value != nil {
		updates["name"] = *patch.Name.Value
	}
	if patch.Category.Set && patch.Category.Value != nil {
		updates["category"] = *patch.Category.Value
	}
	query := repo.database.WithContext(ctx).Model(&models.MuscleGroup{})
	if err := updateCatalogRow(query, id, updates, nil); err != nil {
		return models.MuscleGroup{}, err
	}
	return repo.FindMuscleGroup(ctx, id)
}

// DeleteMuscleGroup refuses while exercises or routines still point at the
// group, leaving every row intact.
func (repo *CatalogRepository) DeleteMuscleGroup(ctx context.Context, id uint) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.MuscleGroup{}, id).Error; err != nil {
			return translateError(err, nil, nil)
		}

		inUse, err := hasReferences(tx, id,
			reference{model: &models.Exercise{}, column: "muscle_group_id"},
			reference{model: &models.WeeklyRoutineMuscleGroup{}, column: "muscle_group_id"},
		)
		if err != nil {
			return err
		}
		if inUse {
			return ErrMuscleGroupInUse
		}

		return translateError(tx.Delete(&models.MuscleGroup{}, id).Error, nil, ErrMuscleGroupInUse)
	})
}

func (repo *CatalogRepository) ListExercises(ctx context.Context, muscleGroupID uint) ([]models.ExerciseDetail, error) {
	exercises := make([]models.ExerciseDetail, 0)
	query := repo.exerciseDetails(ctx)
	if muscleGroupID != 0 {
		query = query.Where("e.muscle_group_id = ?", muscleGroupID)
	}
	if err := query.Order("e.id ASC").Scan(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *CatalogRepository) FindExercise(ctx context.Context, id uint) (models.ExerciseDetail, error) {
	var exercise models.ExerciseDetail
	if err := repo.exerciseDetails(ctx).Where("e.id = ?", id).Take(&exercise).Error; err != nil {
		return models.ExerciseDetail{}, translateError(err, nil, nil)
	}
	return exercise, nil
}

func (repo *CatalogRepository) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRows(tx, &models.MuscleGroup{}, []uint{exercise.MuscleGroupID}, ErrUnknownMuscleGroup); err != nil {
			return err
		}
		return translateError(tx.Create(exercise).Error, ErrDuplicateName, ErrUnknownMuscleGroup)
	})
}

func (repo *CatalogRepository) UpdateExercise(ctx context.Context, id uint, patch models.ExercisePatch) (models.ExerciseDetail, error) {
	updates := map[string]any{}
	if patch.Name.Set && patch.Name.Value != nil {
		updates["name"] = *patch.Name.Value
	}
	if patch.Description.Set {
		updates["description"] = patch.Description.Value
	}
	if patch.MuscleGroupID.Set && patch.MuscleGroupID.Value != nil {
		updates["muscle_group_id"] = *patch.MuscleGroupID.Value
	}

	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if groupID, ok := updates["muscle_group_id"].(uint); ok {
			if err := requireRows(tx, &models.MuscleGroup{}, []uint{groupID}, ErrUnknownMuscleGroup); err != nil {
				return err
			}
		}
		return updateCatalogRow(tx.Model(&models.Exercise{}), id, updates, ErrUnknownMuscleGroup)
	})
	if err != nil {
		return models.ExerciseDetail{}, err
	}
	return repo.FindExercise(ctx, id)
}

func (repo *CatalogRepository) DeleteExercise(ctx context.Context, id uint) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Exercise{}, id).Error; err != nil {
			return translateError(err, nil, nil)
		}

		inUse, err := hasReferences(tx, id, reference{model: &models.WeeklyRoutineExercise{}, column: "exercise_id"})
		if err != nil {
			return err
		}
		if inUse {
			return ErrExerciseInUse
		}

		return translateError(tx.Delete(&models.Exercise{}, id).Error, nil, ErrExerciseInUse)
	})
}

func (repo *CatalogRepository) exerciseDetails(ctx context.Context) *gorm.DB {
	return repo.database.WithContext(ctx).
		Table("exercises AS e").
		Select("e.id, e.name, e.description, e.muscle_group_id, mg.name AS muscle_group_name, e.created_at").
		Joins("JOIN muscle_groups AS mg ON mg.id = e.muscle_group_id")
}

// updateCatalogRow applies updates to the row with id. An empty update only
// checks that the row exists.
func updateCatalogRow(query *gorm.DB, id uint, updates map[string]any, onForeignKey error) error {
	if len(updates) == 0 {
		var count int64
		if err := query.Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return nil
	}

	result := query.Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error, ErrDuplicateName, onForeignKey)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type reference struct {
	model  any
	column string
}

func hasReferences(tx *gorm.DB, id uint, references ...reference) (bool, error) {
	for _, ref := range references {
		var count int64
		if err := tx.Model(ref.model).Where(ref.column+" = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// requireRows fails with missing unless every id exists in model's table.
func requireRows(tx *gorm.DB, model any, ids []uint, missing error) error {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(model).Where("id IN ?", unique).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(unique)) {
		return missing
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
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
