package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/reson-hq/reson-api/api/http/handlers"
	"github.com/reson-hq/reson-api/api/http/presenter"
)

// Register wires all HTTP routes onto the given Fiber app. Entity routes are
// mounted at the root, matching the paths clients already use.
func Register(app *fiber.App, account *handlers.AccountHandler, health *handlers.HealthHandler, resources []*handlers.ResourceHandler) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(cors.New())

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Get("/", func(c *fiber.Ctx) error {
		return presenter.JSON(c, http.StatusOK, fiber.Map{"name": "Reson API", "ok": true})
	})

	account.Mount(app)
	for _, h := range resources {
		h.Mount(app)
	}

	// Fallback for anything no route claimed.
	app.Use(func(c *fiber.Ctx) error {
		return presenter.Error(c, http.StatusNotFound, "Route not found")
	})
}
