package models

import "encoding/json"

// Optional distinguishes an absent JSON member from an explicit null. Set is
// true whenever the member was present; Value is nil for null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: &value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (optional *Optional[T]) UnmarshalJSON(data []byte) error {
	optional.Set = true
	if string(data) == "null" {
		optional.Value = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	optional.Value = &value
	return nil
}

// Or returns the receiver when it was set and fallback otherwise.
func (optional Optional[T]) Or(fallback Optional[T]) Optional[T] {
	if optional.Set {
		return optional
	}
	return fallback
}
