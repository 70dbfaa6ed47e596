package db

import (
	"context"
	"time"

	"github.com/alexpadev/trainR/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExerciseSpec struct {
	ExerciseID uint
	Sets       int
	Reps       int
}

type EntrySpec struct {
	Date  models.Date
	Meals models.Meals
}

// RoutinePlan is the full association set of one routine plus an optional
// daily entry to point at it.
type RoutinePlan struct {
	MuscleGroupIDs []uint
	Exercises      []ExerciseSpec
	Entry          *EntrySpec
}

// RoutineSnapshot is a routine with both association sets and the upserted
// entry, read back inside the transaction that wrote them.
type RoutineSnapshot struct {
	Routine      models.WeeklyRoutineDetail
	MuscleGroups []models.RoutineMuscleGroupDetail
	Exercises    []models.RoutineExerciseDetail
	Entry        *models.DailyEntry
}

type WeeklyRoutineRepository struct {
	database *gorm.DB
}

func NewWeeklyRoutineRepository(database *gorm.DB) *WeeklyRoutineRepository {
	return &WeeklyRoutineRepository{database: database}
}

func (repo *WeeklyRoutineRepository) ListForUser(ctx context.Context, userID uint) ([]models.WeeklyRoutineDetail, error) {
	routines := make([]models.WeeklyRoutineDetail, 0)
	if err := routineDetails(repo.database.WithContext(ctx)).
		Where("wr.user_id = ?", userID).
		Order("wr.day_of_week ASC").
		Scan(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}

func (repo *WeeklyRoutineRepository) FindForUser(ctx context.Context, routineID uint, userID uint) (models.WeeklyRoutineDetail, error) {
	var routine models.WeeklyRoutineDetail
	if err := routineDetails(repo.database.WithContext(ctx)).
		Where("wr.id = ? AND wr.user_id = ?", routineID, userID).
		Take(&routine).Error; err != nil {
		return models.WeeklyRoutineDetail{}, translateError(err, nil, nil)
	}
	return routine, nil
}

// CreateFull inserts the routine, both association sets and the optional
// daily entry upsert in one transaction. Any failure leaves no rows behind.
func (repo *WeeklyRoutineRepository) CreateFull(ctx context.Context, routine *models.WeeklyRoutine, plan RoutinePlan) (RoutineSnapshot, error) {
	var snapshot RoutineSnapshot
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(routine).Error; err != nil {
			return translateError(err, ErrDuplicateRoutineDay, nil)
		}

		if err := insertPlan(tx, routine.ID, plan); err != nil {
			return err
		}

		var err error
		snapshot, err = finishPlan(tx, routine.ID, routine.UserID, plan)
		return err
	})
	if err != nil {
		return RoutineSnapshot{}, err
	}
	return snapshot, nil
}

// ReplacePlan deletes every association of an owned routine and inserts the
// submitted set, then touches the routine's updated_at.
func (repo *WeeklyRoutineRepository) ReplacePlan(ctx context.Context, routineID uint, userID uint, plan RoutinePlan) (RoutineSnapshot, error) {
	var snapshot RoutineSnapshot
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireOwnedRoutine(tx, routineID, userID); err != nil {
			return err
		}

		if err := tx.Where("weekly_routine_id = ?", routineID).Delete(&models.WeeklyRoutineMuscleGroup{}).Error; err != nil {
			return err
		}
		if err := tx.Where("weekly_routine_id = ?", routineID).Delete(&models.WeeklyRoutineExercise{}).Error; err != nil {
			return err
		}

		if err := insertPlan(tx, routineID, plan); err != nil {
			return err
		}

		if err := tx.Model(&models.WeeklyRoutine{}).
			Where("id = ?", routineID).
			Update("updated_at", time.Now().UTC()).Error; err != nil {
			return err
		}

		var err error
		snapshot, err = finishPlan(tx, routineID, userID, plan)
		return err
	})
	if err != nil {
		return RoutineSnapshot{}, err
	}
	return snapshot, nil
}

func (repo *WeeklyRoutineRepository) UpdateForUser(ctx context.Context, routineID uint, userID uint, patch models.WeeklyRoutinePatch) (models.WeeklyRoutineDetail, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if patch.DayOfWeek.Set && patch.DayOfWeek.Value != nil {
		updates["day_of_week"] = *patch.DayOfWeek.Value
	}
	if patch.RoutineType.Set && patch.RoutineType.Value != nil {
		updates["routine_type"] = *patch.RoutineType.Value
	}

	result := repo.database.WithContext(ctx).
		Model(&models.WeeklyRoutine{}).
		Where("id = ? AND user_id = ?", routineID, userID).
		Updates(updates)
	if result.Error != nil {
		return models.WeeklyRoutineDetail{}, translateError(result.Error, ErrDuplicateRoutineDay, nil)
	}
	if result.RowsAffected == 0 {
		return models.WeeklyRoutineDetail{}, ErrNotFound
	}
	return repo.FindForUser(ctx, routineID, userID)
}

// DeleteForUser detaches daily entries from the routine, removes both
// association sets and then the routine itself.
func (repo *WeeklyRoutineRepository) DeleteForUser(ctx context.Context, routineID uint, userID uint) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireOwnedRoutine(tx, routineID, userID); err != nil {
			return err
		}

		if err := tx.Model(&models.DailyEntry{}).
			Where("weekly_routine_id = ?", routineID).
			Updates(map[string]any{"weekly_routine_id": nil, "updated_at": time.Now().UTC()}).Error; err != nil {
			return err
		}
		if err := tx.Where("weekly_routine_id = ?", routineID).Delete(&models.WeeklyRoutineMuscleGroup{}).Error; err != nil {
			return err
		}
		if err := tx.Where("weekly_routine_id = ?", routineID).Delete(&models.WeeklyRoutineExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.WeeklyRoutine{}, routineID).Error
	})
}

// finishPlan upserts the optional entry and reads the routine back, so callers
// never need a second query after commit.
func finishPlan(tx *gorm.DB, routineID uint, userID uint, plan RoutinePlan) (RoutineSnapshot, error) {
	var snapshot RoutineSnapshot
	if plan.Entry != nil {
		upserted, err := upsertEntry(tx, userID, routineID, *plan.Entry)
		if err != nil {
			return RoutineSnapshot{}, err
		}
		snapshot.Entry = &upserted
	}

	if err := routineDetails(tx).
		Where("wr.id = ? AND wr.user_id = ?", routineID, userID).
		Take(&snapshot.Routine).Error; err != nil {
		return RoutineSnapshot{}, translateError(err, nil, nil)
	}

	snapshot.MuscleGroups = make([]models.RoutineMuscleGroupDetail, 0)
	if err := routineMuscleGroupDetails(tx).
		Where("wrmg.weekly_routine_id = ?", routineID).
		Order("wrmg.muscle_group_id ASC").
		Scan(&snapshot.MuscleGroups).Error; err != nil {
		return RoutineSnapshot{}, err
	}

	snapshot.Exercises = make([]models.RoutineExerciseDetail, 0)
	if err := routineExerciseDetails(tx).
		Where("wre.weekly_routine_id = ?", routineID).
		Order("wre.id ASC").
		Scan(&snapshot.Exercises).Error; err != nil {
		return RoutineSnapshot{}, err
	}
	return snapshot, nil
}

func routineDetails(database *gorm.DB) *gorm.DB {
	return database.
		Table("weekly_routines AS wr").
		Select("wr.id, wr.user_id, u.username, wr.day_of_week, wr.routine_type, wr.created_at, wr.updated_at").
		Joins("JOIN users AS u ON u.id = wr.user_id")
}

func requireOwnedRoutine(tx *gorm.DB, routineID uint, userID uint) error {
	var count int64
	if err := tx.Model(&models.WeeklyRoutine{}).
		Where("id = ? AND user_id = ?", routineID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func insertPlan(tx *gorm.DB, routineID uint, plan RoutinePlan) error {
	groupIDs := uniqueIDs(plan.MuscleGroupIDs)
	if err := requireRows(tx, &models.MuscleGroup{}, groupIDs, ErrUnknownMuscleGroup); err != nil {
		return err
	}
	if len(groupIDs) > 0 {
		links := make([]models.WeeklyRoutineMuscleGroup, 0, len(groupIDs))
		for _, groupID := range groupIDs {
			links = append(links, models.WeeklyRoutineMuscleGroup{WeeklyRoutineID: routineID, MuscleGroupID: groupID})
		}
		if err := tx.Create(&links).Error; err != nil {
			return translateError(err, ErrDuplicateRoutineMuscleGroup, ErrUnknownMuscleGroup)
		}
	}

	exerciseIDs := make([]uint, 0, len(plan.Exercises))
	for _, spec := range plan.Exercises {
		exerciseIDs = append(exerciseIDs, spec.ExerciseID)
	}
	if err := requireRows(tx, &models.Exercise{}, exerciseIDs, ErrUnknownExercise); err != nil {
		return err
	}
	if len(plan.Exercises) > 0 {
		links := make([]models.WeeklyRoutineExercise, 0, len(plan.Exercises))
		for _, spec := range plan.Exercises {
			links = append(links, models.WeeklyRoutineExercise{
				WeeklyRoutineID: routineID,
				ExerciseID:      spec.ExerciseID,
				Sets:            spec.Sets,
				Reps:            spec.Reps,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return translateError(err, ErrDuplicateRoutineExercise, ErrUnknownExercise)
		}
	}
	return nil
}

// upsertEntry creates the (user, date) entry or overwrites its routine link
// and meals. The completion flag of an existing entry is preserved.
func upsertEntry(tx *gorm.DB, userID uint, routineID uint, spec EntrySpec) (models.DailyEntry, error) {
	entry := models.DailyEntry{
		UserID:          userID,
		Date:            spec.Date,
		WeeklyRoutineID: &routineID,
		Breakfast:       spec.Meals.Breakfast,
		Lunch:           spec.Meals.Lunch,
		Snack:           spec.Meals.Snack,
		Dinner:          spec.Meals.Dinner,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"weekly_routine_id", "breakfast", "lunch", "snack", "dinner", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		return models.DailyEntry{}, translateError(err, nil, ErrUnknownRoutine)
	}

	var stored models.DailyEntry
	if err := tx.Where("user_id = ? AND date = ?", userID, spec.Date).First(&stored).Error; err != nil {
		return models.DailyEntry{}, translateError(err, nil, nil)
	}
	return stored, nil
}
