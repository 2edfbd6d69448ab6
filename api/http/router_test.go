package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reson-hq/reson-api/api/http/handlers"
	"github.com/reson-hq/reson-api/api/http/presenter"
)

func newRouterApp() *fiber.App {
	respond := presenter.NewResponder(false)
	app := fiber.New(fiber.Config{ErrorHandler: respond.FiberError})
	Register(app, handlers.NewAccountHandler(nil, nil), handlers.NewHealthHandler(nil), nil)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRootRoute(t *testing.T) {
	status, body := get(t, newRouterApp(), "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Reson API", body["name"])
	assert.Equal(t, true, body["ok"])
}

func TestUnknownRouteAnswers404(t *testing.T) {
	status, body := get(t, newRouterApp(), "/no_such_route")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found", body["message"])
}

func TestHealthRouteIsMounted(t *testing.T) {
	status, body := get(t, newRouterApp(), "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
