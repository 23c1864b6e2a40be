package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/anoteng/Exerlog/internal/models"
)

type stubExerciseStore struct {
	createResult *models.Exercise
	createErr    error
	listResult   []models.Exercise
	listErr      error
	getResult    *models.Exercise
	getErr       error
	renameFound  bool
	renameErr    error
	deleteFound  bool
	deleteErr    error
	lastName     string
	lastID       int64
}

func (s *stubExerciseStore) Create(_ context.Context, name string) (*models.Exercise, error) {
	s.lastName = name
	return s.createResult, s.createErr
}

func (s *stubExerciseStore) List(_ context.Context) ([]models.Exercise, error) {
	return s.listResult, s.listErr
}

func (s *stubExerciseStore) Get(_ context.Context, id int64) (*models.Exercise, error) {
	s.lastID = id
	return s.getResult, s.getErr
}

func (s *stubExerciseStore) Rename(_ context.Context, id int64, name string) (bool, error) {
	s.lastID = id
	s.lastName = name
	return s.renameFound, s.renameErr
}

func (s *stubExerciseStore) Delete(_ context.Context, id int64) (bool, error) {
	s.lastID = id
	return s.deleteFound, s.deleteErr
}

func newExerciseApp(store *stubExerciseStore, ownerIDSeen *int64) *fiber.App {
	handler := &ExerciseHandler{
		store: func(ownerID int64) exerciseStore {
			if ownerIDSeen != nil {
				*ownerIDSeen = ownerID
			}
			return store
		},
	}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", int64(7))
		return c.Next()
	})
	app.Post("/exercises", handler.Create)
	app.Get("/exercises", handler.List)
	app.Get("/exercises/:id", handler.Get)
	app.Put("/exercises/:id", handler.Update)
	app.Delete("/exercises/:id", handler.Delete)
	return app
}

func TestCreateExerciseScopesStoreToCaller(t *testing.T) {
	store := &stubExerciseStore{
		createResult: &models.Exercise{ID: 3, Name: "Squat", UserID: 7},
	}
	var ownerID int64
	app := newExerciseApp(store, &ownerID)

	resp := postJSON(t, app, "/exercises", map[string]string{"name": "Squat"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if ownerID != 7 {
		t.Errorf("expected store scoped to user 7, got %d", ownerID)
	}
	if store.lastName != "Squat" {
		t.Errorf("expected name Squat, got %q", store.lastName)
	}

	var payload models.Exercise
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.ID != 3 || payload.Name != "Squat" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestCreateExerciseRequiresName(t *testing.T) {
	app := newExerciseApp(&stubExerciseStore{}, nil)

	resp := postJSON(t, app, "/exercises", map[string]string{})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListExercisesReturnsOwnedRows(t *testing.T) {
	store := &stubExerciseStore{
		listResult: []models.Exercise{
			{ID: 1, Name: "Squat", UserID: 7},
			{ID: 2, Name: "Bench", UserID: 7},
		},
	}
	app := newExerciseApp(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload []models.Exercise
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(payload) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(payload))
	}
}

func TestGetExerciseNotFound(t *testing.T) {
	store := &stubExerciseStore{getErr: pgx.ErrNoRows}
	app := newExerciseApp(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/exercises/99", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if store.lastID != 99 {
		t.Errorf("expected lookup of id 99, got %d", store.lastID)
	}
}

func TestUpdateExerciseNotFoundWhenNoRowMatched(t *testing.T) {
	store := &stubExerciseStore{renameFound: false}
	app := newExerciseApp(store, nil)

	req := httptest.NewRequest(http.MethodPut, "/exercises/5", jsonBody(t, map[string]string{"name": "Front squat"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateExerciseEchoesNewName(t *testing.T) {
	store := &stubExerciseStore{renameFound: true}
	app := newExerciseApp(store, nil)

	req := httptest.NewRequest(http.MethodPut, "/exercises/5", jsonBody(t, map[string]string{"name": "Front squat"}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastID != 5 || store.lastName != "Front squat" {
		t.Errorf("unexpected forwarding: id=%d name=%q", store.lastID, store.lastName)
	}
}

func TestDeleteExercise(t *testing.T) {
	store := &stubExerciseStore{deleteFound: true}
	app := newExerciseApp(store, nil)

	req := httptest.NewRequest(http.MethodDelete, "/exercises/5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	store.deleteFound = false
	req = httptest.NewRequest(http.MethodDelete, "/exercises/5", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after row gone, got %d", resp.StatusCode)
	}
}
