package cookie

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/co2-watch/site/config"
)

const lastFilter = "last_filter"

// GetLastFilter returns the query of the last applied filter, or nil when
// there is none or it does not parse.
func GetLastFilter(c *fiber.Ctx) url.Values {
	raw := c.Cookies(lastFilter)
	if raw == "" {
		return nil
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return nil
	}
	return q
}

func SetLastFilter(c *fiber.Ctx, q url.Values) {
	c.Cookie(&fiber.Cookie{
		Name:     lastFilter,
		Value:    q.Encode(),
		MaxAge:   30 * 24 * 60 * 60, // 30 days
		HTTPOnly: true,
		Secure:   !config.ServerDebug,
		Path:     "/",
		SameSite: "Strict",
	})
}

func ClearLastFilter(c *fiber.Ctx) {
	c.ClearCookie(lastFilter)
}
