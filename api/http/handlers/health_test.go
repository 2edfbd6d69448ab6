package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeReadiness struct {
	ReadyFn func(ctx context.Context) error
}

func (f *fakeReadiness) Ready(ctx context.Context) error { return f.ReadyFn(ctx) }

func TestHealth(t *testing.T) {
	app := newTestApp()
	h := NewHealthHandler(&fakeReadiness{})
	app.Get("/health", h.Health)

	status, body := doJSON(t, app, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["ts"])
}

func TestReady(t *testing.T) {
	readyErr := error(nil)
	h := NewHealthHandler(&fakeReadiness{
		ReadyFn: func(ctx context.Context) error { return readyErr },
	})
	app := newTestApp()
	app.Get("/ready", h.Ready)

	status, body := doJSON(t, app, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])

	readyErr = errors.New("postgres: connection refused")
	status, body = doJSON(t, app, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "not_ready", body["status"])
	assert.Contains(t, body["details"], "connection refused")
}
