package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrReferenceMissing = errors.New("referenced record does not exist")
	ErrReferenceInUse   = errors.New("record is still referenced")
)

var (
	ErrUnknownMuscleGroup = fmt.Errorf("%w: muscle group", ErrReferenceMissing)
	ErrUnknownExercise    = fmt.Errorf("%w: exercise", ErrReferenceMissing)
	ErrUnknownRoutine     = fmt.Errorf("%w: weekly routine", ErrReferenceMissing)

	ErrDuplicateRoutineDay         = fmt.Errorf("%w: weekly routine for day", ErrDuplicate)
	ErrDuplicateRoutineMuscleGroup = fmt.Errorf("%w: weekly routine muscle group", ErrDuplicate)
	ErrDuplicateRoutineExercise    = fmt.Errorf("%w: weekly routine exercise", ErrDuplicate)
	ErrDuplicateEntryDate          = fmt.Errorf("%w: daily entry for date", ErrDuplicate)
	ErrDuplicateName               = fmt.Errorf("%w: name", ErrDuplicate)
	ErrDuplicateUsername           = fmt.Errorf("%w: username", ErrDuplicate)
	ErrDuplicateEmail              = fmt.Errorf("%w: email", ErrDuplicate)

	ErrMuscleGroupInUse = fmt.Errorf("%w: muscle group has exercises or routines", ErrReferenceInUse)
	ErrExerciseInUse    = fmt.Errorf("%w: exercise is used by routines", ErrReferenceInUse)
)

type sqlStateError interface {
	SQLState() string
}

// translateError maps driver specific failures to the store sentinels.
// onDuplicate and onForeignKey replace the generic sentinel when the caller
// knows which constraint is involved; nil keeps the generic one.
func translateError(err error, onDuplicate error, onForeignKey error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isUniqueViolation(err):
		if onDuplicate != nil {
			return onDuplicate
		}
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case isForeignKeyViolation(err):
		if onForeignKey != nil {
			return onForeignKey
		}
		return fmt.Errorf("%w: %v", ErrReferenceMissing, err)
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var stateErr sqlStateError
	if errors.As(err, &stateErr) && stateErr.SQLState() == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var stateErr sqlStateError
	if errors.As(err, &stateErr) && stateErr.SQLState() == "23503" {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
