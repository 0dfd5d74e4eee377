package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// queryValues parses the raw query string, keeping repeated keys.
func queryValues(c *fiber.Ctx) url.Values {
	q, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return url.Values{}
	}
	return q
}

func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") != ""
}
