package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day without time of day or zone. It is stored and
// serialized as YYYY-MM-DD so that (user, date) uniqueness does not depend on
// driver time formatting.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(value time.Time) Date {
	return NewDate(value.Year(), value.Month(), value.Day())
}

func ParseDate(raw string) (Date, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Date{}, ErrInvalidDate
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return DateOf(parsed), nil
}

func (date Date) String() string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayout)
}

func (date Date) MarshalJSON() ([]byte, error) {
	if date.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(date.String())
}

func (date *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*date = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*date = parsed
	return nil
}

func (date Date) Value() (driver.Value, error) {
	if date.IsZero() {
		return nil, nil
	}
	return date.String(), nil
}

func (date *Date) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*date = Date{}
		return nil
	case time.Time:
		*date = DateOf(value)
		return nil
	case string:
		return date.scanText(value)
	case []byte:
		return date.scanText(string(value))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, src)
	}
}

func (date *Date) scanText(raw string) error {
	value := strings.TrimSpace(raw)
	if len(value) >= len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*date = parsed
	return nil
}
