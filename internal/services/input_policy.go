package services

import (
	"errors"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/alexpadev/trainR/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ErrEmptyPatch  = errors.New("no fields to update")
	ErrInvalidMeal = errors.New("invalid meal text")
)

const maxMealLength = 2000

var (
	inputValidator = validator.New(validator.WithRequiredStructEnabled())
	mealPolicy     = bluemonday.StrictPolicy()
)

// NormalizeMeal strips markup from a meal description. Blank text becomes
// nil so the column stays NULL.
func NormalizeMeal(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	cleaned := strings.TrimSpace(html.UnescapeString(mealPolicy.Sanitize(*raw)))
	if cleaned == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(cleaned) > maxMealLength {
		return nil, ErrInvalidMeal
	}
	return &cleaned, nil
}

func NormalizeMeals(meals models.Meals) (models.Meals, error) {
	var err error
	normalized := models.Meals{}
	if normalized.Breakfast, err = NormalizeMeal(meals.Breakfast); err != nil {
		return models.Meals{}, err
	}
	if normalized.Lunch, err = NormalizeMeal(meals.Lunch); err != nil {
		return models.Meals{}, err
	}
	if normalized.Snack, err = NormalizeMeal(meals.Snack); err != nil {
		return models.Meals{}, err
	}
	if normalized.Dinner, err = NormalizeMeal(meals.Dinner); err != nil {
		return models.Meals{}, err
	}
	return normalized, nil
}

func normalizeOptionalMeal(value models.Optional[string]) (models.Optional[string], error) {
	if !value.Set {
		return value, nil
	}
	cleaned, err := NormalizeMeal(value.Value)
	if err != nil {
		return models.Optional[string]{}, err
	}
	return models.Optional[string]{Set: true, Value: cleaned}, nil
}

// firstValidationField reports the struct field of the first failed rule,
// "" when err is not a validation failure. Slice indexes are dropped.
func firstValidationField(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return ""
	}
	field := validationErrors[0].StructField()
	if index := strings.IndexByte(field, '['); index >= 0 {
		field = field[:index]
	}
	return field
}
