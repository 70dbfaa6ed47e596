package db

import (
	"context"
	"errors"
	"time"

	"github.com/alexpadev/trainR/internal/models"
	"gorm.io/gorm"
)

type DailyEntryRepository struct {
	database *gorm.DB
}

func NewDailyEntryRepository(database *gorm.DB) *DailyEntryRepository {
	return &DailyEntryRepository{database: database}
}

// ListForUser returns the user's entries ordered by date. Zero bounds are
// open.
func (repo *DailyEntryRepository) ListForUser(ctx context.Context, userID uint, from models.Date, to models.Date) ([]models.DailyEntryDetail, error) {
	entries := make([]models.DailyEntryDetail, 0)
	query := dailyEntryDetails(repo.database.WithContext(ctx)).Where("de.user_id = ?", userID)
	if !from.IsZero() {
		query = query.Where("de.date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("de.date <= ?", to)
	}
	if err := query.Order("de.date ASC").Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *DailyEntryRepository) FindForUser(ctx context.Context, entryID uint, userID uint) (models.DailyEntryDetail, error) {
	var entry models.DailyEntryDetail
	if err := dailyEntryDetails(repo.database.WithContext(ctx)).
		Where("de.id = ? AND de.user_id = ?", entryID, userID).
		Take(&entry).Error; err != nil {
		return models.DailyEntryDetail{}, translateError(err, nil, nil)
	}
	return entry, nil
}

// Create inserts a new entry. A routine reference must belong to the same
// user; anything else is reported as ErrUnknownRoutine.
func (repo *DailyEntryRepository) Create(ctx context.Context, entry *models.DailyEntry) error {
	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if entry.WeeklyRoutineID != nil {
			if err := requireOwnedRoutine(tx, *entry.WeeklyRoutineID, entry.UserID); err != nil {
				if errors.Is(err, ErrNotFound) {
					return ErrUnknownRoutine
				}
				return err
			}
		}
		return translateError(tx.Create(entry).Error, ErrDuplicateEntryDate, ErrUnknownRoutine)
	})
}

// UpdateForUser writes the fields set in patch. A new routine link must name
// one of the user's own routines.
func (repo *DailyEntryRepository) UpdateForUser(ctx context.Context, entryID uint, userID uint, patch models.DailyEntryPatch) (models.DailyEntryDetail, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if patch.WeeklyRoutineID.Set {
		updates["weekly_routine_id"] = patch.WeeklyRoutineID.Value
	}
	if patch.Breakfast.Set {
		updates["breakfast"] = patch.Breakfast.Value
	}
	if patch.Lunch.Set {
		updates["lunch"] = patch.Lunch.Value
	}
	if patch.Snack.Set {
		updates["snack"] = patch.Snack.Value
	}
	if patch.Dinner.Set {
		updates["dinner"] = patch.Dinner.Value
	}
	if patch.Completed.Set && patch.Completed.Value != nil {
		updates["completed"] = *patch.Completed.Value
	}

	var updated models.DailyEntryDetail
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.DailyEntry{}).
			Where("id = ? AND user_id = ?", entryID, userID).
			Updates(updates)
		if result.Error != nil {
			return translateError(result.Error, nil, ErrUnknownRoutine)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		if patch.WeeklyRoutineID.Set && patch.WeeklyRoutineID.Value != nil {
			if err := requireOwnedRoutine(tx, *patch.WeeklyRoutineID.Value, userID); err != nil {
				if errors.Is(err, ErrNotFound) {
					return ErrUnknownRoutine
				}
				return err
			}
		}

		return dailyEntryDetails(tx).
			Where("de.id = ? AND de.user_id = ?", entryID, userID).
			Take(&updated).Error
	})
	if err != nil {
		return models.DailyEntryDetail{}, err
	}
	return updated, nil
}

func (repo *DailyEntryRepository) DeleteForUser(ctx context.Context, entryID uint, userID uint) error {
	result := repo.database.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.DailyEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func dailyEntryDetails(database *gorm.DB) *gorm.DB {
	return database.
		Table("daily_entries AS de").
		Select("de.id, de.user_id, de.date, de.weekly_routine_id, wr.day_of_week, wr.routine_type, de.breakfast, de.lunch, de.snack, de.dinner, de.completed, de.created_at, de.updated_at").
		Joins("LEFT JOIN weekly_routines AS wr ON wr.id = de.weekly_routine_id")
}
