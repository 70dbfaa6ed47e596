package services

import (
	"context"
	"errors"
	"strings"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/models"
)

var (
	ErrDailyEntryNotFound = errors.New("daily entry not found")
	ErrEntryDateTaken     = errors.New("daily entry already exists for date")
	ErrUnknownRoutine     = errors.New("unknown weekly routine")
	ErrInvalidDateRange   = errors.New("invalid date range")
)

type DailyEntryRepository interface {
	ListForUser(ctx context.Context, userID uint, from models.Date, to models.Date) ([]models.DailyEntryDetail, error)
	FindForUser(ctx context.Context, entryID uint, userID uint) (models.DailyEntryDetail, error)
	Create(ctx context.Context, entry *models.DailyEntry) error
	UpdateForUser(ctx context.Context, entryID uint, userID uint, patch models.DailyEntryPatch) (models.DailyEntryDetail, error)
	DeleteForUser(ctx context.Context, entryID uint, userID uint) error
}

type DailyEntryInput struct {
	Date            string
	WeeklyRoutineID *uint
	Meals           models.Meals
	Completed       bool
}

type DailyEntryService struct {
	entries DailyEntryRepository
}

func NewDailyEntryService(entries DailyEntryRepository) *DailyEntryService {
	return &DailyEntryService{entries: entries}
}

// List returns the caller's entries, optionally bounded by inclusive
// YYYY-MM-DD dates.
func (service *DailyEntryService) List(ctx context.Context, userID uint, fromRaw string, toRaw string) ([]models.DailyEntryDetail, error) {
	from, err := parseOptionalDate(fromRaw)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(toRaw)
	if err != nil {
		return nil, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from.Time) {
		return nil, ErrInvalidDateRange
	}
	return service.entries.ListForUser(ctx, userID, from, to)
}

func (service *DailyEntryService) Get(ctx context.Context, entryID uint, userID uint) (models.DailyEntryDetail, error) {
	entry, err := service.entries.FindForUser(ctx, entryID, userID)
	return entry, entryStoreError(err)
}

func (service *DailyEntryService) Create(ctx context.Context, userID uint, input DailyEntryInput) (models.DailyEntryDetail, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return models.DailyEntryDetail{}, ErrInvalidEntryDate
	}
	meals, err := NormalizeMeals(input.Meals)
	if err != nil {
		return models.DailyEntryDetail{}, err
	}
	if input.WeeklyRoutineID != nil && *input.WeeklyRoutineID == 0 {
		input.WeeklyRoutineID = nil
	}

	entry := models.DailyEntry{
		UserID:          userID,
		Date:            date,
		WeeklyRoutineID: input.WeeklyRoutineID,
		Breakfast:       meals.Breakfast,
		Lunch:           meals.Lunch,
		Snack:           meals.Snack,
		Dinner:          meals.Dinner,
		Completed:       input.Completed,
	}
	if err := service.entries.Create(ctx, &entry); err != nil {
		return models.DailyEntryDetail{}, entryStoreError(err)
	}
	return service.Get(ctx, entry.ID, userID)
}

// Update applies the fields present in patch. Completion may be toggled
// for any date. A routine id of 0 or null detaches the entry.
func (service *DailyEntryService) Update(ctx context.Context, entryID uint, userID uint, patch models.DailyEntryPatch) (models.DailyEntryDetail, error) {
	if patch.IsEmpty() {
		return models.DailyEntryDetail{}, ErrEmptyPatch
	}
	if patch.Completed.Set && patch.Completed.Value == nil {
		return models.DailyEntryDetail{}, ErrEmptyPatch
	}
	if patch.WeeklyRoutineID.Set && patch.WeeklyRoutineID.Value != nil && *patch.WeeklyRoutineID.Value == 0 {
		patch.WeeklyRoutineID = models.Null[uint]()
	}

	var err error
	if patch.Breakfast, err = normalizeOptionalMeal(patch.Breakfast); err != nil {
		return models.DailyEntryDetail{}, err
	}
	if patch.Lunch, err = normalizeOptionalMeal(patch.Lunch); err != nil {
		return models.DailyEntryDetail{}, err
	}
	if patch.Snack, err = normalizeOptionalMeal(patch.Snack); err != nil {
		return models.DailyEntryDetail{}, err
	}
	if patch.Dinner, err = normalizeOptionalMeal(patch.Dinner); err != nil {
		return models.DailyEntryDetail{}, err
	}

	entry, err := service.entries.UpdateForUser(ctx, entryID, userID, patch)
	return entry, entryStoreError(err)
}

func (service *DailyEntryService) Delete(ctx context.Context, entryID uint, userID uint) error {
	return entryStoreError(service.entries.DeleteForUser(ctx, entryID, userID))
}

func parseOptionalDate(raw string) (models.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return models.Date{}, nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, ErrInvalidEntryDate
	}
	return date, nil
}

func entryStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, db.ErrNotFound):
		return ErrDailyEntryNotFound
	case errors.Is(err, db.ErrDuplicateEntryDate):
		return ErrEntryDateTaken
	case errors.Is(err, db.ErrUnknownRoutine):
		return ErrUnknownRoutine
	default:
		return err
	}
}
