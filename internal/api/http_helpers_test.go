package api

import (
	"errors"
	"testing"
)

func TestParsePositiveID(t *testing.T) {
	t.Parallel()

	valid := map[string]uint{"1": 1, " 42 ": 42}
	for raw, want := range valid {
		got, err := parsePositiveID(raw)
		if err != nil {
			t.Fatalf("parsePositiveID(%q) unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parsePositiveID(%q) = %d, want %d", raw, got, want)
		}
	}

	for _, raw := range []string{"", "0", "-3", "abc", "1.5", "99999999999"} {
		if _, err := parsePositiveID(raw); !errors.Is(err, errInvalidID) {
			t.Fatalf("parsePositiveID(%q) expected errInvalidID, got %v", raw, err)
		}
	}
}

func TestAliasResolution(t *testing.T) {
	t.Parallel()

	three, ten := 3, 10
	if got := firstSet(nil, &three, &ten); got != 3 {
		t.Fatalf("firstSet() = %d, want 3", got)
	}
	if got := firstSet(nil, nil); got != 0 {
		t.Fatalf("firstSet() of nothing = %d, want 0", got)
	}

	oats := "oats"
	if got := firstString(nil, &oats); got == nil || *got != "oats" {
		t.Fatalf("firstString() = %v, want oats", got)
	}
	if got := firstNonBlank(" ", "2024-06-03"); got != "2024-06-03" {
		t.Fatalf("firstNonBlank() = %q", got)
	}
}
