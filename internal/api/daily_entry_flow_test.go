package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestDailyEntryScenario(t *testing.T) {
	ta := newTestApp(t)
	ana := ta.register(t, "ana")
	ben := ta.register(t, "ben")

	payload := ta.expect(t, http.MethodPost, "/api/daily-entries", ana, map[string]any{
		"fecha":    "2024-06-03",
		"desayuno": "  oats  ",
		"comida":   "",
	}, http.StatusCreated)
	var created entryResponse
	decodeJSON(t, payload, &created)
	if created.Date != "2024-06-03" || created.Completed {
		t.Fatalf("unexpected created entry: %s", payload)
	}
	if created.Breakfast == nil || *created.Breakfast != "oats" {
		t.Fatalf("expected trimmed breakfast, got %s", payload)
	}
	if created.Lunch != nil {
		t.Fatalf("expected blank lunch stored as null, got %q", *created.Lunch)
	}

	entryPath := fmt.Sprintf("/api/daily-entries/%d", created.ID)
	payload = ta.expect(t, http.MethodPut, entryPath, ana, map[string]any{"completed": true}, http.StatusOK)
	var updated entryResponse
	decodeJSON(t, payload, &updated)
	if !updated.Completed || updated.Breakfast == nil || *updated.Breakfast != "oats" {
		t.Fatalf("expected completion to flip and meals to stay, got %s", payload)
	}

	ta.expect(t, http.MethodGet, entryPath, ben, nil, http.StatusNotFound)
	ta.expect(t, http.MethodPut, entryPath, ben, map[string]any{"completed": false}, http.StatusNotFound)
	ta.expect(t, http.MethodDelete, entryPath, ben, nil, http.StatusNotFound)

	ta.expect(t, http.MethodPost, "/api/daily-entries", ana, map[string]any{"date": "2024-06-03"}, http.StatusConflict)

	payload = ta.expect(t, http.MethodPut, entryPath, ana, map[string]any{"cena": "soup", "desayuno": nil}, http.StatusOK)
	decodeJSON(t, payload, &updated)
	if updated.Breakfast != nil || updated.Dinner == nil || *updated.Dinner != "soup" {
		t.Fatalf("expected breakfast cleared and dinner set, got %s", payload)
	}
	if !updated.Completed {
		t.Fatal("expected completion to survive a meal update")
	}

	ta.expect(t, http.MethodDelete, entryPath, ana, nil, http.StatusOK)
	ta.expect(t, http.MethodGet, entryPath, ana, nil, http.StatusNotFound)
}

func TestDailyEntryValidation(t *testing.T) {
	ta := newTestApp(t)
	token := ta.register(t, "ana")

	ta.expect(t, http.MethodPost, "/api/daily-entries", token, map[string]any{"date": "03/06/2024"}, http.StatusBadRequest)
	ta.expect(t, http.MethodPost, "/api/daily-entries", token, map[string]any{"date": "2024-02-30"}, http.StatusBadRequest)
	ta.expect(t, http.MethodPost, "/api/daily-entries", token, map[string]any{
		"date":              "2024-06-03",
		"weekly_routine_id": 777,
	}, http.StatusBadRequest)

	payload := ta.expect(t, http.MethodPost, "/api/daily-entries", token, map[string]any{"date": "2024-06-03"}, http.StatusCreated)
	var created entryResponse
	decodeJSON(t, payload, &created)
	entryPath := fmt.Sprintf("/api/daily-entries/%d", created.ID)

	ta.expect(t, http.MethodPut, entryPath, token, map[string]any{}, http.StatusBadRequest)
	ta.expect(t, http.MethodPut, entryPath, token, map[string]any{"completed": nil}, http.StatusBadRequest)
	ta.expect(t, http.MethodGet, "/api/daily-entries/abc", token, nil, http.StatusBadRequest)
	ta.expect(t, http.MethodGet, "/api/daily-entries?from=2024-06-10&to=2024-06-01", token, nil, http.StatusBadRequest)
}

func TestDailyEntryListRangeAndRoutineLink(t *testing.T) {
	ta := newTestApp(t)
	token := ta.register(t, "ana")

	payload := ta.expect(t, http.MethodPost, "/api/weekly-routines", token, upperRoutineBody(1, 1), http.StatusCreated)
	var routine routineResponse
	decodeJSON(t, payload, &routine)

	for _, date := range []string{"2024-06-01", "2024-06-03", "2024-06-10"} {
		body := map[string]any{"date": date}
		if date == "2024-06-03" {
			body["weekly_routine_id"] = routine.ID
		}
		ta.expect(t, http.MethodPost, "/api/daily-entries", token, body, http.StatusCreated)
	}

	payload = ta.expect(t, http.MethodGet, "/api/daily-entries?from=2024-06-02&to=2024-06-09", token, nil, http.StatusOK)
	var entries []entryResponse
	decodeJSON(t, payload, &entries)
	if len(entries) != 1 || entries[0].Date != "2024-06-03" {
		t.Fatalf("expected one entry inside the range, got %s", payload)
	}
	if entries[0].RoutineType == nil || *entries[0].RoutineType != "upper" {
		t.Fatalf("expected the linked routine type, got %s", payload)
	}

	payload = ta.expect(t, http.MethodGet, "/api/daily-entries", token, nil, http.StatusOK)
	decodeJSON(t, payload, &entries)
	if len(entries) != 3 {
		t.Fatalf("expected all three entries without a range, got %d", len(entries))
	}
}

func TestDailyEntryRelinkToRoutine(t *testing.T) {
	ta := newTestApp(t)
	ana := ta.register(t, "ana")
	ben := ta.register(t, "ben")

	var anaRoutine, benRoutine routineResponse
	decodeJSON(t, ta.expect(t, http.MethodPost, "/api/weekly-routines", ana, upperRoutineBody(2, 1), http.StatusCreated), &anaRoutine)
	decodeJSON(t, ta.expect(t, http.MethodPost, "/api/weekly-routines", ben, upperRoutineBody(2, 1), http.StatusCreated), &benRoutine)

	var entry entryResponse
	decodeJSON(t, ta.expect(t, http.MethodPost, "/api/daily-entries", ana, map[string]any{"date": "2024-06-04", "lunch": "rice"}, http.StatusCreated), &entry)
	entryPath := fmt.Sprintf("/api/daily-entries/%d", entry.ID)

	var linked entryResponse
	decodeJSON(t, ta.expect(t, http.MethodPut, entryPath, ana, map[string]any{"weekly_routine_id": anaRoutine.ID}, http.StatusOK), &linked)
	if linked.WeeklyRoutineID == nil || *linked.WeeklyRoutineID != anaRoutine.ID {
		t.Fatalf("expected entry linked to routine %d, got %+v", anaRoutine.ID, linked)
	}
	if linked.RoutineType == nil || *linked.RoutineType != "upper" {
		t.Fatalf("expected routine_type upper, got %+v", linked)
	}

	ta.expect(t, http.MethodPut, entryPath, ana, map[string]any{"weekly_routine_id": benRoutine.ID}, http.StatusBadRequest)
	ta.expect(t, http.MethodPut, entryPath, ana, map[string]any{"weekly_routine_id": 4242}, http.StatusBadRequest)

	var detached entryResponse
	decodeJSON(t, ta.expect(t, http.MethodPut, entryPath, ana, map[string]any{"weekly_routine_id": nil}, http.StatusOK), &detached)
	if detached.WeeklyRoutineID != nil || detached.RoutineType != nil {
		t.Fatalf("expected entry detached, got %+v", detached)
	}
	if detached.Lunch == nil || *detached.Lunch != "rice" {
		t.Fatalf("expected lunch to survive relinking, got %+v", detached)
	}
}
