package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/anoteng/Exerlog/pkg/utils"
)

const testSecret = "testsecret"

func newGatedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthRequired(testSecret), func(c *fiber.Ctx) error {
		id, ok := UserID(c)
		if !ok {
			return c.Status(fiber.StatusInternalServerError).SendString("no user id")
		}
		return c.JSON(fiber.Map{"id": id})
	})
	return app
}

func TestMissingTokenAnswers403(t *testing.T) {
	app := newGatedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}

	var payload struct {
		Auth    bool   `json:"auth"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.Auth {
		t.Errorf("expected auth false")
	}
	if payload.Message == "" {
		t.Errorf("expected a message")
	}
}

func TestBadTokenAnswers401(t *testing.T) {
	app := newGatedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-access-token", "not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestTokenSignedWithOtherSecretAnswers401(t *testing.T) {
	app := newGatedApp()

	token, err := utils.GenerateToken(5, "othersecret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-access-token", token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestValidTokenInjectsUserID(t *testing.T) {
	app := newGatedApp()

	token, err := utils.GenerateToken(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("x-access-token", token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.ID != 42 {
		t.Errorf("expected user id 42, got %d", payload.ID)
	}
}
