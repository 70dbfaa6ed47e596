package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDateRejectsNonCalendarValues(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "2026-13-01", "01/02/2026", "2026-02-30"} {
		if _, err := ParseDate(raw); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q) error = %v, want ErrInvalidDate", raw, err)
		}
	}
}

func TestDateJSONUsesCalendarLayout(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(struct {
		Date Date `json:"date"`
	}{Date: NewDate(2026, time.March, 2)})
	if err != nil {
		t.Fatalf("marshal date: %v", err)
	}
	if string(payload) != `{"date":"2026-03-02"}` {
		t.Fatalf("unexpected payload %s", payload)
	}

	var decoded struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2026-03-04"}`), &decoded); err != nil {
		t.Fatalf("unmarshal date: %v", err)
	}
	if decoded.Date.String() != "2026-03-04" {
		t.Fatalf("expected 2026-03-04, got %s", decoded.Date)
	}
}

func TestDateScanAcceptsDriverRepresentations(t *testing.T) {
	t.Parallel()

	sources := []any{
		"2026-03-02",
		[]byte("2026-03-02"),
		"2026-03-02 00:00:00+00:00",
		time.Date(2026, time.March, 2, 18, 30, 0, 0, time.FixedZone("X", 3600)),
	}
	for _, source := range sources {
		var date Date
		if err := date.Scan(source); err != nil {
			t.Fatalf("Scan(%#v) returned error: %v", source, err)
		}
		if date.String() != "2026-03-02" {
			t.Fatalf("Scan(%#v) = %s, want 2026-03-02", source, date)
		}
	}

	var empty Date
	if err := empty.Scan(nil); err != nil || !empty.IsZero() {
		t.Fatalf("Scan(nil) = %v, %v", empty, err)
	}
}
