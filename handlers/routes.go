package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts every route on app. Admin routes require basic auth.
func Register(app *fiber.App) {
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Dashboard
	app.Get("/", ParseFilter, HandleHome)
	app.Get("/dashboard", ParseFilter, HandleDashboard)
	app.Get("/dashboard/table", ParseFilter, HandleTable)
	app.Get("/charts/:name.:format", ParseFilter, HandleChart)
	app.Get("/export.csv", ParseFilter, HandleExport)

	// Health check
	app.Get("/health", HandleHealth)

	// API group
	api := app.Group("/api")
	api.Get("/options", HandleOptions)
	api.Get("/view", ParseFilter, HandleView)

	// Admin dashboard and management
	auth := AdminRequired()
	app.Get("/admin", AdminRateLimiter, auth, HandleAdmin)

	adminAPI := api.Group("/admin", AdminRateLimiter, auth)
	adminAPI.Post("/cache/clear", HandleClearCache)
	adminAPI.Post("/reload", HandleReload)
}
