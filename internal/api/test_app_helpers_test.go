package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/i18n"
	"github.com/alexpadev/trainR/internal/metrics"
	"github.com/alexpadev/trainR/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

type testApp struct {
	app      *fiber.App
	handler  *Handler
	database *gorm.DB
}

// newTestApp serves a fresh SQLite database seeded with muscle groups
// Chest(1), Back(2), Quads(3) and exercises Bench press(1), Push up(2),
// Pull up(3), Row(4), Squat(5).
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithConfig(t, AppConfig{CORSOrigins: "*"})
}

func newTestAppWithConfig(t *testing.T, config AppConfig) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "trainr-api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(database); err != nil {
			t.Errorf("close sqlite: %v", err)
		}
	})

	manager, err := i18n.NewManager(i18n.LangEN)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler, err := NewHandler(database, HandlerConfig{
		SecretKey: []byte(testSecretKey),
		TokenTTL:  time.Hour,
		I18n:      manager,
		Logger:    logger,
		Metrics:   metrics.New(),
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	seedTestCatalog(t, database)
	return &testApp{app: NewApp(handler, config), handler: handler, database: database}
}

func seedTestCatalog(t *testing.T, database *gorm.DB) {
	t.Helper()

	catalog := db.NewCatalogRepository(database)
	ctx := context.Background()
	groups := []models.MuscleGroup{
		{Name: "Chest", Category: models.CategoryUpper},
		{Name: "Back", Category: models.CategoryUpper},
		{Name: "Quads", Category: models.CategoryLower},
	}
	for index := range groups {
		if err := catalog.CreateMuscleGroup(ctx, &groups[index]); err != nil {
			t.Fatalf("seed muscle group %s: %v", groups[index].Name, err)
		}
	}

	exercises := []models.Exercise{
		{Name: "Bench press", MuscleGroupID: groups[0].ID},
		{Name: "Push up", MuscleGroupID: groups[0].ID},
		{Name: "Pull up", MuscleGroupID: groups[1].ID},
		{Name: "Row", MuscleGroupID: groups[1].ID},
		{Name: "Squat", MuscleGroupID: groups[2].ID},
	}
	for index := range exercises {
		if err := catalog.CreateExercise(ctx, &exercises[index]); err != nil {
			t.Fatalf("seed exercise %s: %v", exercises[index].Name, err)
		}
	}
}

// do sends a JSON request and returns the status and raw body.
func (ta *testApp) do(t *testing.T, method string, path string, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode %s %s body: %v", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	return ta.send(t, request)
}

func (ta *testApp) send(t *testing.T, request *http.Request) (int, []byte) {
	t.Helper()

	response, err := ta.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", request.Method, request.URL.Path, err)
	}
	return response.StatusCode, payload
}

func (ta *testApp) expect(t *testing.T, method string, path string, token string, body any, expectedStatus int) []byte {
	t.Helper()

	status, payload := ta.do(t, method, path, token, body)
	if status != expectedStatus {
		t.Fatalf("%s %s expected status %d, got %d: %s", method, path, expectedStatus, status, payload)
	}
	return payload
}

func (ta *testApp) register(t *testing.T, username string) string {
	t.Helper()

	payload := ta.expect(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@x.com",
		"password": "pw123",
	}, http.StatusCreated)

	var session struct {
		Token string `json:"token"`
	}
	decodeJSON(t, payload, &session)
	if session.Token == "" {
		t.Fatalf("register %s returned no token", username)
	}
	return session.Token
}

func decodeJSON(t *testing.T, payload []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(payload, target); err != nil {
		t.Fatalf("decode response %s: %v", payload, err)
	}
}

func readAPIError(t *testing.T, payload []byte) string {
	t.Helper()

	body := map[string]string{}
	decodeJSON(t, payload, &body)
	return body["error"]
}

type routineResponse struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	DayOfWeek    int    `json:"day_of_week"`
	RoutineType  string `json:"routine_type"`
	MuscleGroups []struct {
		MuscleGroupID uint `json:"muscle_group_id"`
	} `json:"muscle_groups"`
	Exercises []struct {
		ID         uint `json:"id"`
		ExerciseID uint `json:"exercise_id"`
		Sets       int  `json:"sets"`
		Reps       int  `json:"reps"`
	} `json:"exercises"`
	DailyEntry *entryResponse `json:"daily_entry"`
}

type entryResponse struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"user_id"`
	Date            string  `json:"date"`
	WeeklyRoutineID *uint   `json:"weekly_routine_id"`
	RoutineType     *string `json:"routine_type"`
	Breakfast       *string `json:"breakfast"`
	Lunch           *string `json:"lunch"`
	Snack           *string `json:"snack"`
	Dinner          *string `json:"dinner"`
	Completed       bool    `json:"completed"`
}

func upperRoutineBody(day int, exerciseID uint) map[string]any {
	return map[string]any{
		"day_of_week":      day,
		"routine_type":     "upper",
		"muscle_group_ids": []uint{1, 2},
		"exercises": []map[string]any{
			{"exercise_id": exerciseID, "series": 3, "repeticiones": 10},
		},
	}
}
