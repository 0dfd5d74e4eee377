package handlers

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	g "maragu.dev/gomponents"

	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/password"
	"github.com/co2-watch/site/ui"
)

// AdminRequired guards the admin routes with basic auth against the
// configured user and Argon2id credential. With no credential configured
// the admin area is closed.
func AdminRequired() fiber.Handler {
	if config.AdminPasswordHash == "" {
		log.Printf("[admin] No admin password hash configured; admin routes disabled")
		return func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusForbidden, "Admin access is not configured")
		}
	}

	user, hash := config.AdminUser, config.AdminPasswordHash
	return basicauth.New(basicauth.Config{
		Realm: "CO2 Watch Admin",
		Authorizer: func(u, p string) bool {
			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			return password.Verify(p, hash) && userOK
		},
	})
}

func datasetInfo() ui.DatasetInfo {
	ds := service.Dataset()
	return ui.DatasetInfo{
		Source:        ds.Source,
		Rows:          ds.Len(),
		Columns:       len(ds.Header),
		Manufacturers: len(ds.Manufacturers()),
		FuelTypes:     len(ds.FuelTypes()),
		Version:       ds.Version,
		LoadedAt:      ds.LoadedAt,
		Watching:      watching,
	}
}

func adminSection(c *fiber.Ctx, message g.Node) error {
	return render(c, ui.AdminSection(datasetInfo(), service.CacheStats(), message))
}

func HandleAdmin(c *fiber.Ctx) error {
	if isHTMX(c) {
		return adminSection(c, nil)
	}
	return render(c, ui.AdminPage(datasetInfo(), service.CacheStats()))
}

func HandleClearCache(c *fiber.Ctx) error {
	service.ClearCache()
	if isHTMX(c) {
		return adminSection(c, ui.SuccessMessage("View cache cleared."))
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleReload reloads the dataset from its source. A failed reload keeps
// the current dataset and reports the error.
func HandleReload(c *fiber.Ctx) error {
	err := service.Reload()
	if isHTMX(c) {
		if err != nil {
			return adminSection(c, ui.FailureMessage(err.Error()))
		}
		return adminSection(c, ui.SuccessMessage("Dataset reloaded."))
	}

	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "ok", "version": service.Dataset().Version})
}
