package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/triagex/triagex/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "triagex-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key")

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func newRequestWithAuthHeader(method string, path string, header string) *http.Request {
	request := httptest.NewRequest(method, path, nil)
	request.Header.Set(fiber.HeaderAuthorization, header)
	return request
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body %s: %v", raw, err)
	}
	return payload
}

func dataField(t *testing.T, payload map[string]any) map[string]any {
	t.Helper()

	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object in payload, got %v", payload)
	}
	return data
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	body := `{"name":"Test User","email":"` + email + `","password":"strong-password"}`
	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", body)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register %s expected 201, got %d", email, response.StatusCode)
	}

	token, ok := dataField(t, decodeBody(t, response))["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected auth token for %s", email)
	}
	return token
}

func submitSymptoms(t *testing.T, app *fiber.App, token string, symptomsJSON string) map[string]any {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/triage", token, `{"symptoms":`+symptomsJSON+`}`)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("submit expected 201, got %d", response.StatusCode)
	}
	return decodeBody(t, response)
}
