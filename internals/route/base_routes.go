package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"gorm.io/gorm"

	"praktikum_backend/internals/configs"
	database "praktikum_backend/internals/databases"
	helper "praktikum_backend/internals/helpers"
	"praktikum_backend/internals/metrics"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("praktikum backend 🚀")
	})

	// liveness: tidak menyentuh DB
	app.Get("/health", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "ok", fiber.Map{
			"status":         "OK",
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    configs.AppEnv,
		})
	})

	app.Get("/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		start := time.Now()
		err := database.Ping(ctx, db)
		metrics.ObserveDBPing(time.Since(start))
		if err != nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "database tidak dapat dihubungi")
		}
		return helper.JsonOK(c, "ready", fiber.Map{"database": "Connected"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
