package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aksara-labs/gradewise-api/internal/config"
	"github.com/aksara-labs/gradewise-api/internal/handler"
	"github.com/aksara-labs/gradewise-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ResolutionHandler   *handler.ResolutionHandler
	GradingGroupHandler *handler.GradingGroupHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.ResolutionHandler != nil {
		assessments := api.Group("/assessments")
		deps.ResolutionHandler.RegisterAssessmentRoutes(assessments)
	}

	groups := api.Group("/grading-groups")
	if deps.GradingGroupHandler != nil {
		deps.GradingGroupHandler.Register(groups)
	}
	if deps.ResolutionHandler != nil {
		deps.ResolutionHandler.RegisterGroupRoutes(groups)
	}
}
