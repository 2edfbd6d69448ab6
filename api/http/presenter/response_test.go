package presenter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reson-hq/reson-api/pkg/account"
	"github.com/reson-hq/reson-api/pkg/resource"
)

func respond(t *testing.T, production bool, err error) (int, ErrorResponse) {
	t.Helper()
	r := NewResponder(production)
	app := fiber.New(fiber.Config{ErrorHandler: r.FiberError})
	app.Get("/boom", func(c *fiber.Ctx) error { return err })

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var envelope ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp.StatusCode, envelope
}

func TestFailureMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        &resource.ValidationError{Message: "Missing required fields: job_id"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing required fields: job_id",
		},
		{
			name:       "not found names the entity",
			err:        &resource.NotFoundError{Entity: "Candidate"},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Candidate not found",
		},
		{
			name:       "duplicate email is distinct from generic validation",
			err:        account.ErrEmailExists,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Email address already exists",
		},
		{
			name:       "invalid credentials",
			err:        account.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid email or password",
		},
		{
			name:       "account not found",
			err:        account.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "User account not found",
		},
		{
			name:       "unexpected store failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := respond(t, false, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, envelope.Message)
		})
	}
}

func TestFailureDetailSuppressedInProduction(t *testing.T) {
	storeErr := errors.New("dial tcp 10.0.0.5:5432: connection refused")

	_, envelope := respond(t, false, storeErr)
	assert.Equal(t, storeErr.Error(), envelope.Error)

	_, envelope = respond(t, true, storeErr)
	assert.Empty(t, envelope.Error)
}

func TestFailureKeepsFiberErrors(t *testing.T) {
	status, envelope := respond(t, false, fiber.NewError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "Method Not Allowed", envelope.Message)
}
