package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stridetrack/stridetrack/internal/config"
	"github.com/stridetrack/stridetrack/internal/logging"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	cfg := config.Config{
		AppName:        "StrideTrack",
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		IdempotencyTTL: time.Minute,
	}
	if err := Setup(app, Deps{Cfg: cfg, Logger: logging.Discard()}); err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("app.Test %s: %v", path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var decoded map[string]any
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &decoded); err != nil {
			t.Fatalf("decode body %q: %v", payload, err)
		}
	}
	return resp.StatusCode, decoded
}

const adaBody = `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"secret","height":170}`

func TestRegisterLoginScenario(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/api/auth/register", adaBody)
	if status != fiber.StatusCreated {
		t.Fatalf("register: expected 201 got %d (%v)", status, body)
	}
	if _, ok := body["password"]; ok {
		t.Fatalf("register response leaked a password field")
	}
	if body["message"] == "" {
		t.Fatalf("register response missing message")
	}

	status, body = postJSON(t, app, "/api/auth/login", `{"email":"ada@example.com","password":"secret"}`)
	if status != fiber.StatusOK {
		t.Fatalf("login: expected 200 got %d (%v)", status, body)
	}
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatalf("login response missing token")
	}

	status, body = postJSON(t, app, "/api/auth/login", `{"email":"ada@example.com","password":"wrong"}`)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("bad login: expected 401 got %d", status)
	}
	if body["error"] != "Invalid email or password." {
		t.Fatalf("unexpected 401 body: %v", body)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app := setupTestApp(t)

	if status, _ := postJSON(t, app, "/api/auth/register", adaBody); status != fiber.StatusCreated {
		t.Fatalf("first register: expected 201 got %d", status)
	}
	status, body := postJSON(t, app, "/api/auth/register", adaBody)
	if status != fiber.StatusConflict {
		t.Fatalf("second register: expected 409 got %d (%v)", status, body)
	}
}

func TestRegisterValidationErrors(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/api/auth/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"secret","height":"tall"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", status)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "height") {
		t.Fatalf("expected error naming height, got %v", body)
	}

	status, _ = postJSON(t, app, "/api/auth/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"12345","height":170}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for five-char password, got %d", status)
	}
}

func TestUsersRegisterReturnsPublicFields(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/api/users/register", adaBody)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d (%v)", status, body)
	}
	if body["email"] != "ada@example.com" {
		t.Fatalf("expected email in response, got %v", body)
	}
	if _, ok := body["password"]; ok {
		t.Fatalf("response leaked password")
	}
	if _, ok := body["password_hash"]; ok {
		t.Fatalf("response leaked password hash")
	}
	if v, ok := body["is_verified"].(bool); !ok || v {
		t.Fatalf("expected is_verified false, got %v", body["is_verified"])
	}
}

func TestHealthAndRoot(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("health: expected 200 got %d", resp.StatusCode)
	}
	payload, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var health map[string]any
	if err := json.Unmarshal(payload, &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["status"] != "OK" || health["timestamp"] == "" {
		t.Fatalf("unexpected health body: %v", health)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	payload, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	var root map[string]any
	if err := json.Unmarshal(payload, &root); err != nil {
		t.Fatalf("decode root: %v", err)
	}
	if root["version"] != apiVersion {
		t.Fatalf("unexpected root body: %v", root)
	}
}
