package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/UdayPS-4o/tradewithus/internal/config"
	"github.com/UdayPS-4o/tradewithus/internal/metrics"
	"github.com/UdayPS-4o/tradewithus/internal/middleware"
)

// New builds the Fiber application with timeouts and the global middleware
// stack. Routes are registered by the caller.
func New(cfg *config.Config, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.App.ReadTimeout.Std(),
		WriteTimeout: cfg.App.WriteTimeout.Std(),
		IdleTimeout:  cfg.App.IdleTimeout.Std(),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.ZapLogger(logger))
	app.Use(metrics.Middleware())

	return app
}
