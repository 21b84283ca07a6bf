package routes_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/task-forge/task_forge/internal/config"
	"github.com/task-forge/task_forge/internal/logging"
	"github.com/task-forge/task_forge/internal/server"
)

func testConfig() config.Config {
	return config.Config{
		AppName:         "taskforge-test",
		AppEnv:          config.EnvDevelopment,
		Port:            "8080",
		SecretKey:       "test-app-secret",
		JWTSecret:       "test-jwt-secret",
		JWTAlgorithm:    "HS256",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

// setupApp builds the full application against the in-memory repositories.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	srv, err := server.New(testConfig(), nil, nil, logging.Discard())
	require.NoError(t, err)
	return srv.App()
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded), "body: %s", payload)
	return decoded
}

func TestHome(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Welcome to Todo Management Application!", body["message"])
}

func TestRegisterSuccess(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/auth/register",
		`{"username":"alice","email":"a@x.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, body["id"])
	require.Equal(t, "alice", body["username"])
	require.Equal(t, "a@x.com", body["email"])
	require.NotContains(t, body, "password")
	require.NotContains(t, body, "password_hash")
}

func TestRegisterValidationErrors(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"bad email", `{"username":"alice","email":"not-an-email","password":"Abc123!@"}`},
		{"weak password", `{"username":"alice","email":"a@x.com","password":"password"}`},
		{"password with spaces", `{"username":"alice","email":"a@x.com","password":"Abc 123!@"}`},
		{"missing username", `{"email":"a@x.com","password":"Abc123!@"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := postJSON(t, app, "/auth/register", tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			errs, ok := body["errors"].([]any)
			require.True(t, ok, "expected errors list, got %v", body)
			require.NotEmpty(t, errs)
			first, ok := errs[0].(map[string]any)
			require.True(t, ok)
			require.Contains(t, first, "loc")
			require.Contains(t, first, "msg")
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	app := setupApp(t)

	resp, _ := postJSON(t, app, "/auth/register",
		`{"username":"alice","email":"a@x.com","password":"Abc123!@"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/auth/register",
		`{"username":"alice2","email":"a@x.com","password":"Abc123!@"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NotEmpty(t, body["error"])
}

func TestLoginFlow(t *testing.T) {
	app := setupApp(t)

	resp, _ := postJSON(t, app, "/auth/register",
		`{"username":"alice","email":"a@x.com","password":"Abc123!@"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/auth/login", `{"email":"a@x.com","password":"Abc123!@"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	access, _ := body["access_token"].(string)
	refresh, _ := body["refresh_token"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.NotEqual(t, access, refresh)
}

func TestLoginInvalidCredentialsIndistinguishable(t *testing.T) {
	app := setupApp(t)

	resp, _ := postJSON(t, app, "/auth/register",
		`{"username":"alice","email":"a@x.com","password":"Abc123!@"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	wrongResp, wrongBody := postJSON(t, app, "/auth/login", `{"email":"a@x.com","password":"Nope123!@"}`)
	unknownResp, unknownBody := postJSON(t, app, "/auth/login", `{"email":"nobody@x.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusUnauthorized, wrongResp.StatusCode)
	require.Equal(t, http.StatusUnauthorized, unknownResp.StatusCode)
	require.Equal(t, map[string]any{"error": "Invalid credentials"}, wrongBody)
	require.Equal(t, wrongBody, unknownBody)
}

func TestRefreshFlow(t *testing.T) {
	app := setupApp(t)

	postJSON(t, app, "/auth/register", `{"username":"alice","email":"a@x.com","password":"Abc123!@"}`)
	_, loginBody := postJSON(t, app, "/auth/login", `{"email":"a@x.com","password":"Abc123!@"}`)
	refresh, _ := loginBody["refresh_token"].(string)
	require.NotEmpty(t, refresh)

	resp, body := postJSON(t, app, "/auth/refresh", fmt.Sprintf(`{"refresh_token":%q}`, refresh))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["access_token"])

	resp, _ = postJSON(t, app, "/auth/refresh", `{"refresh_token":"garbage"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutes(t *testing.T) {
	app := setupApp(t)

	postJSON(t, app, "/auth/register", `{"username":"alice","email":"a@x.com","password":"Abc123!@"}`)
	_, loginBody := postJSON(t, app, "/auth/login", `{"email":"a@x.com","password":"Abc123!@"}`)
	access, _ := loginBody["access_token"].(string)
	require.NotEmpty(t, access)

	// No token: rejected before any handler runs.
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+access)
	resp, err = app.Test(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "a@x.com", body["email"])
	require.NotEmpty(t, body["user_id"])
}

func TestTaskLifecycle(t *testing.T) {
	app := setupApp(t)

	postJSON(t, app, "/auth/register", `{"username":"alice","email":"a@x.com","password":"Abc123!@"}`)
	_, loginBody := postJSON(t, app, "/auth/login", `{"email":"a@x.com","password":"Abc123!@"}`)
	access, _ := loginBody["access_token"].(string)

	req := httptest.NewRequest(fiber.MethodPost, "/tasks/", strings.NewReader(`{"title":"write tests","description":"for the todo api"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+access)
	resp, err := app.Test(req)
	require.NoError(t, err)
	created := decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "write tests", created["title"])
	require.Equal(t, false, created["completed"])
	require.NotEmpty(t, created["user_id"])

	req = httptest.NewRequest(fiber.MethodGet, "/tasks/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+access)
	resp, err = app.Test(req)
	require.NoError(t, err)
	listed := decodeBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tasks, ok := listed["tasks"].([]any)
	require.True(t, ok)
	require.Len(t, tasks, 1)
}
