package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agentfactory/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, cat *handlers.CatalogHandler, gen *handlers.GenerateHandler, dl *handlers.DownloadHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Static catalogs the UI renders its selects from
	v1.Get("/frameworks", cat.Frameworks)
	v1.Get("/frameworks/:tag/requirements", cat.Requirements)
	v1.Get("/providers", cat.Providers)
	v1.Get("/templates", cat.Templates)

	// Generation pipeline
	g := v1.Group("/generations")
	g.Post("/", gen.Create)
	g.Post("/download", dl.Code)
}
