package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/reson-hq/reson-api/api/http/presenter"
	"github.com/reson-hq/reson-api/pkg/account"
	"github.com/reson-hq/reson-api/pkg/resource"
	"github.com/reson-hq/reson-api/pkg/validation"
)

// AccountHandler serves the user account routes. Registration, login, and
// update go through the account use case so passwords are always hashed; the
// plain list and delete verbs reuse the generic engine.
type AccountHandler struct {
	uc    account.UseCase
	users resource.UseCase
}

func NewAccountHandler(uc account.UseCase, users resource.UseCase) *AccountHandler {
	return &AccountHandler{uc: uc, users: users}
}

// Mount registers the account routes under /user_accounts.
func (h *AccountHandler) Mount(app fiber.Router) {
	g := app.Group(resource.User.MountPath)
	g.Get("/", h.List)
	g.Post("/login", h.Login)
	g.Post("/", h.Register)
	g.Get("/:user_id", h.GetByID)
	g.Put("/:user_id", h.Update)
	g.Delete("/:user_id", h.Delete)
}

type registerRequest struct {
	Email    string `json:"user_email_address"`
	Name     string `json:"user_name"`
	Password string `json:"password"`
}

// @Summary Register a user account
// @Tags    user_accounts
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "Account details"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user_accounts [post]
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var body resource.Record
	if err := c.BodyParser(&body); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	if j := validation.ValidateRequiredFields(body, resource.User.RequiredCreate); !j.Valid {
		return presenter.Error(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(j.Missing, ", "))
	}
	email, _ := body["user_email_address"].(string)
	name, _ := body["user_name"].(string)
	plaintext, _ := body["password"].(string)

	id, err := h.uc.Register(c.Context(), email, name, plaintext)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"message": "User account created successfully",
		"user_id": id,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Log in with email and password
// @Tags    user_accounts
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "Credentials"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router  /user_accounts/login [post]
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	user, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			return presenter.JSON(c, http.StatusUnauthorized, fiber.Map{
				"status":  "false",
				"message": "Invalid email or password",
			})
		}
		return err
	}
	delete(user, "password")
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"user":    user,
		"status":  "true",
		"message": "Login successful",
	})
}

// @Summary List user accounts
// @Tags    user_accounts
// @Produce json
// @Success 200 {array} map[string]any
// @Router  /user_accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	rows, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, rows)
}

// GetByID keeps the long-standing lookup contract: a missing account answers
// 200 with status "false" rather than 404, and clients depend on it.
// @Summary Get a user account by id
// @Tags    user_accounts
// @Produce json
// @Param   user_id path int true "User ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user_accounts/{user_id} [get]
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	id, ok := validation.ValidateIDParam(c.Params("user_id"))
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid user ID")
	}
	user, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return presenter.JSON(c, http.StatusOK, fiber.Map{
				"status":  "false",
				"message": "User account not found",
			})
		}
		return err
	}
	delete(user, "password")
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"user":    user,
		"status":  "true",
		"message": "User retrieved successfully",
	})
}

// @Summary Update a user account
// @Tags    user_accounts
// @Accept  json
// @Produce json
// @Param   user_id path int true "User ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user_accounts/{user_id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id, ok := validation.ValidateIDParam(c.Params("user_id"))
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid user ID")
	}
	var body resource.Record
	if err := c.BodyParser(&body); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	if err := h.uc.Update(c.Context(), id, body); err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "User account updated successfully",
	})
}

// @Summary Delete a user account
// @Tags    user_accounts
// @Produce json
// @Param   user_id path int true "User ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user_accounts/{user_id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, ok := validation.ValidateIDParam(c.Params("user_id"))
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid user ID")
	}
	if err := h.users.Delete(c.Context(), id); err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "User account deleted successfully",
	})
}
