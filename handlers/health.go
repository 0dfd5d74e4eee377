package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/co2-watch/site/db"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	ds := service.Dataset()
	health := fiber.Map{
		"status":  "ok",
		"rows":    ds.Len(),
		"version": ds.Version,
		"source":  ds.Source,
	}

	// Only a SQLite-backed dataset has a database to check.
	if err := db.Ping(); err != nil {
		health["status"] = "unhealthy"
		health["database"] = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(health)
	}
	return c.JSON(health)
}
