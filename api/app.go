package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduler/config"
)

// NewApp builds the fiber app serving the scheduler under /api/v1.
func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	v1 := app.Group("/api").Group("/v1")
	Register(v1, NewSchedulerHandlerImpl(cfg, logger))
	return app
}
