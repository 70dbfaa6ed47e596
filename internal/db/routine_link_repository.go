package db

import (
	"context"

	"github.com/alexpadev/trainR/internal/models"
	"gorm.io/gorm"
)

// RoutineLinkRepository manages single association rows. Every query is
// scoped to routines owned by the given user.
type RoutineLinkRepository struct {
	database *gorm.DB
}

func NewRoutineLinkRepository(database *gorm.DB) *RoutineLinkRepository {
	return &RoutineLinkRepository{database: database}
}

func (repo *RoutineLinkRepository) ListMuscleGroups(ctx context.Context, userID uint, routineID uint) ([]models.RoutineMuscleGroupDetail, error) {
	links := make([]models.RoutineMuscleGroupDetail, 0)
	query := routineMuscleGroupDetails(repo.database.WithContext(ctx)).Where("wr.user_id = ?", userID)
	if routineID != 0 {
		query = query.Where("wrmg.weekly_routine_id = ?", routineID)
	}
	if err := query.Order("wrmg.weekly_routine_id ASC, wrmg.muscle_group_id ASC").Scan(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (repo *RoutineLinkRepository) FindMuscleGroup(ctx context.Context, userID uint, routineID uint, muscleGroupID uint) (models.RoutineMuscleGroupDetail, error) {
	var link models.RoutineMuscleGroupDetail
	if err := routineMuscleGroupDetails(repo.database.WithContext(ctx)).
		Where("wr.user_id = ? AND wrmg.weekly_routine_id = ? AND wrmg.muscle_group_id = ?", userID, routineID, muscleGroupID).
		Take(&link).Error; err != nil {
		return models.RoutineMuscleGroupDetail{}, translateError(err, nil, nil)
	}
	return link, nil
}

func (repo *RoutineLinkRepository) AddMuscleGroup(ctx context.Context, userID uint, link *models.WeeklyRoutineMuscleGroup) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireOwnedRoutine(tx, link.WeeklyRoutineID, userID); err != nil {
			return err
		}
		if err := requireRows(tx, &models.MuscleGroup{}, []uint{link.MuscleGroupID}, ErrUnknownMuscleGroup); err != nil {
			return err
		}
		return translateError(tx.Create(link).Error, ErrDuplicateRoutineMuscleGroup, ErrUnknownMuscleGroup)
	})
}

func (repo *RoutineLinkRepository) RemoveMuscleGroup(ctx context.Context, userID uint, routineID uint, muscleGroupID uint) error {
	result := repo.database.WithContext(ctx).
		Where("weekly_routine_id = ? AND muscle_group_id = ?", routineID, muscleGroupID).
		Where("weekly_routine_id IN (?)", ownedRoutineIDs(repo.database, userID)).
		Delete(&models.WeeklyRoutineMuscleGroup{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *RoutineLinkRepository) ListExercises(ctx context.Context, userID uint, routineID uint) ([]models.RoutineExerciseDetail, error) {
	links := make([]models.RoutineExerciseDetail, 0)
	query := routineExerciseDetails(repo.database.WithContext(ctx)).Where("wr.user_id = ?", userID)
	if routineID != 0 {
		query = query.Where("wre.weekly_routine_id = ?", routineID)
	}
	if err := query.Order("wre.weekly_routine_id ASC, wre.id ASC").Scan(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (repo *RoutineLinkRepository) FindExercise(ctx context.Context, userID uint, linkID uint) (models.RoutineExerciseDetail, error) {
	var link models.RoutineExerciseDetail
	if err := routineExerciseDetails(repo.database.WithContext(ctx)).
		Where("wr.user_id = ? AND wre.id = ?", userID, linkID).
		Take(&link).Error; err != nil {
		return models.RoutineExerciseDetail{}, translateError(err, nil, nil)
	}
	return link, nil
}

func (repo *RoutineLinkRepository) AddExercise(ctx context.Context, userID uint, link *models.WeeklyRoutineExercise) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireOwnedRoutine(tx, link.WeeklyRoutineID, userID); err != nil {
			return err
		}
		if err := requireRows(tx, &models.Exercise{}, []uint{link.ExerciseID}, ErrUnknownExercise); err != nil {
			return err
		}
		return translateError(tx.Create(link).Error, ErrDuplicateRoutineExercise, ErrUnknownExercise)
	})
}

func (repo *RoutineLinkRepository) UpdateExercise(ctx context.Context, userID uint, linkID uint, patch models.RoutineExercisePatch) (models.RoutineExerciseDetail, error) {
	updates := map[string]any{}
	if patch.Sets.Set && patch.Sets.Value != nil {
		updates["sets"] = *patch.Sets.Value
	}
	if patch.Reps.Set && patch.Reps.Value != nil {
		updates["reps"] = *patch.Reps.Value
	}
	if len(updates) == 0 {
		return repo.FindExercise(ctx, userID, linkID)
	}

	result := repo.database.WithContext(ctx).
		Model(&models.WeeklyRoutineExercise{}).
		Where("id = ?", linkID).
		Where("weekly_routine_id IN (?)", ownedRoutineIDs(repo.database, userID)).
		Updates(updates)
	if result.Error != nil {
		return models.RoutineExerciseDetail{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.RoutineExerciseDetail{}, ErrNotFound
	}
	return repo.FindExercise(ctx, userID, linkID)
}

func (repo *RoutineLinkRepository) RemoveExercise(ctx context.Context, userID uint, linkID uint) error {
	result := repo.database.WithContext(ctx).
		Where("id = ?", linkID).
		Where("weekly_routine_id IN (?)", ownedRoutineIDs(repo.database, userID)).
		Delete(&models.WeeklyRoutineExercise{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func routineMuscleGroupDetails(database *gorm.DB) *gorm.DB {
	return database.
		Table("weekly_routine_muscle_groups AS wrmg").
		Select("wrmg.weekly_routine_id, wrmg.muscle_group_id, mg.name AS muscle_group_name, mg.category, wr.day_of_week, wr.user_id").
		Joins("JOIN weekly_routines AS wr ON wr.id = wrmg.weekly_routine_id").
		Joins("JOIN muscle_groups AS mg ON mg.id = wrmg.muscle_group_id")
}

func routineExerciseDetails(database *gorm.DB) *gorm.DB {
	return database.
		Table("weekly_routine_exercises AS wre").
		Select("wre.id, wre.weekly_routine_id, wre.exercise_id, wre.sets, wre.reps, e.name AS exercise_name, mg.name AS muscle_group_name, wre.created_at").
		Joins("JOIN weekly_routines AS wr ON wr.id = wre.weekly_routine_id").
		Joins("JOIN exercises AS e ON e.id = wre.exercise_id").
		Joins("JOIN muscle_groups AS mg ON mg.id = e.muscle_group_id")
}

func ownedRoutineIDs(database *gorm.DB, userID uint) *gorm.DB {
	return database.Session(&gorm.Session{NewDB: true}).
		Model(&models.WeeklyRoutine{}).
		Select("id").
		Where("user_id = ?", userID)
}
