package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/reson-hq/reson-api/api/http/presenter"
	"github.com/reson-hq/reson-api/pkg/resource"
	"github.com/reson-hq/reson-api/pkg/validation"
)

// ResourceHandler serves the generic verbs of one described entity. Domain
// errors are returned as-is and mapped by the app-level error handler.
type ResourceHandler struct {
	desc resource.Descriptor
	uc   resource.UseCase
}

func NewResourceHandler(desc resource.Descriptor, uc resource.UseCase) *ResourceHandler {
	return &ResourceHandler{desc: desc, uc: uc}
}

// Mount registers the entity's routes on its mount path. Relation routes are
// registered before the id route so literal segments win over the :id match.
func (h *ResourceHandler) Mount(app fiber.Router) {
	g := app.Group(h.desc.MountPath)
	if h.desc.ListRoute {
		g.Get("/", h.List)
	}
	for _, rel := range h.desc.Relations {
		g.Get(rel.Path, h.Relation(rel))
	}
	g.Get("/:"+h.desc.IDColumn, h.GetByID)
	g.Post("/", h.Create)
	g.Put("/:"+h.desc.IDColumn, h.Update)
	g.Delete("/:"+h.desc.IDColumn, h.Delete)
}

func (h *ResourceHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, rows)
}

func (h *ResourceHandler) GetByID(c *fiber.Ctx) error {
	id, ok := validation.ValidateIDParam(c.Params(h.desc.IDColumn))
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid "+resource.IDLabel(h.desc.IDColumn)+" ID")
	}
	rec, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	var input resource.Record
	if err := c.BodyParser(&input); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	id, err := h.uc.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"message":       h.desc.Name + " created successfully",
		h.desc.IDColumn: id,
	})
}

func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	id, ok := validation.ValidateIDParam(c.Params(h.desc.IDColumn))
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid "+resource.IDLabel(h.desc.IDColumn)+" ID")
	}
	var input resource.Record
	if err := c.BodyParser(&input); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	if err := h.uc.Update(c.Context(), id, input); err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": h.desc.Name + " updated successfully",
	})
}

func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	id, ok := validation.ValidateIDParam(c.Params(h.desc.IDColumn))
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "Invalid "+resource.IDLabel(h.desc.IDColumn)+" ID")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": h.desc.Name + " deleted successfully",
	})
}

// Relation builds the handler for one get-by-foreign-key route. Each path key
// is validated before the lookup; the response convention follows rel.Mode.
func (h *ResourceHandler) Relation(rel resource.Relation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := make([]resource.Filter, 0, len(rel.Keys))
		for _, key := range rel.Keys {
			raw := c.Params(key.Param)
			switch key.Kind {
			case resource.KeyEmail:
				if !validation.IsValidEmail(raw) {
					return presenter.Error(c, http.StatusBadRequest, "Invalid email format")
				}
				filters = append(filters, resource.Filter{Column: key.Column, Value: raw})
			default:
				id, ok := validation.ValidateIDParam(raw)
				if !ok {
					return presenter.Error(c, http.StatusBadRequest, "Invalid "+resource.IDLabel(key.Column)+" ID")
				}
				filters = append(filters, resource.Filter{Column: key.Column, Value: id})
			}
		}

		rows, err := h.uc.FindBy(c.Context(), filters)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			switch rel.Mode {
			case resource.RelationList:
				return presenter.JSON(c, http.StatusOK, rows)
			case resource.RelationFirst:
				return presenter.JSON(c, http.StatusOK, nil)
			default:
				msg := rel.NotFoundMessage
				if msg == "" {
					msg = h.desc.Name + " not found"
				}
				return presenter.Error(c, http.StatusNotFound, msg)
			}
		}
		switch rel.Mode {
		case resource.RelationFirst, resource.RelationFirstOr404:
			return presenter.JSON(c, http.StatusOK, rows[0])
		default:
			return presenter.JSON(c, http.StatusOK, rows)
		}
	}
}
