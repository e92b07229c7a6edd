package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/parts-pile/vehicles/config"
	h "github.com/parts-pile/vehicles/handlers"
	"github.com/parts-pile/vehicles/source"
	"github.com/parts-pile/vehicles/vehicle"
)

// New builds the fiber app serving svc. Routing is case-insensitive.
func New(cfg config.Config, svc *vehicle.Service, loader source.Loader) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "vehicles",
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
	}))
	app.Use(logger.New())
	if cfg.RateLimitMax > 0 {
		app.Use(h.RateLimiter(cfg.RateLimitMax, cfg.RateLimitExp))
	}

	api := h.New(svc, loader)
	api.Register(app)

	// Admin API group
	if cfg.AdminToken != "" {
		api.RegisterAdmin(app.Group("/api/admin", h.AdminRequired(cfg.AdminToken)))
	}

	// Health check
	app.Get("/health", api.HandleHealth)

	return app
}
