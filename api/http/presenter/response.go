// Package presenter normalizes every handler outcome into a stable response
// shape. Failures of the same kind always share a status, whatever entity
// produced them.
package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/reson-hq/reson-api/pkg/account"
	"github.com/reson-hq/reson-api/pkg/resource"
)

// ErrorResponse is the failure envelope. Error carries diagnostic detail and
// is populated only outside production.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Responder maps domain failures onto HTTP responses.
type Responder struct {
	production bool
}

func NewResponder(production bool) *Responder {
	return &Responder{production: production}
}

// Failure converts err into the normalized failure envelope.
//
//	validation failure      -> 400, message names the offending fields
//	duplicate email         -> 400, distinct message
//	invalid credentials     -> 401, identical for unknown email and bad password
//	missing row             -> 404, entity named in the message
//	anything else           -> 500, detail suppressed in production
func (r *Responder) Failure(c *fiber.Ctx, err error) error {
	var verr *resource.ValidationError
	if errors.As(err, &verr) {
		return Error(c, http.StatusBadRequest, verr.Message)
	}
	var nf *resource.NotFoundError
	if errors.As(err, &nf) {
		return Error(c, http.StatusNotFound, nf.Entity+" not found")
	}
	switch {
	case errors.Is(err, account.ErrEmailExists):
		return Error(c, http.StatusBadRequest, "Email address already exists")
	case errors.Is(err, account.ErrInvalidCredentials):
		return Error(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, account.ErrNotFound):
		return Error(c, http.StatusNotFound, "User account not found")
	}
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return Error(c, ferr.Code, ferr.Message)
	}

	resp := ErrorResponse{Message: "Internal Server Error"}
	if !r.production {
		resp.Error = err.Error()
	}
	return JSON(c, http.StatusInternalServerError, resp)
}

// FiberError plugs Failure in as the app-level fiber error handler, so a
// handler can simply return a domain error.
func (r *Responder) FiberError(c *fiber.Ctx, err error) error {
	return r.Failure(c, err)
}
