package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/co2-watch/site/cookie"
	"github.com/co2-watch/site/dashboard"
	"github.com/co2-watch/site/local"
)

// ParseFilter reads the filter and table page from the query into Locals.
// A bare visit to the home page restores the last applied filter from its
// cookie. Malformed queries are a 400.
func ParseFilter(c *fiber.Ctx) error {
	def := service.Options().Default
	q := queryValues(c)

	if len(q) == 0 && c.Path() == "/" {
		if last := cookie.GetLastFilter(c); last != nil {
			f, page, err := dashboard.ParseQuery(last, def)
			if err == nil {
				local.SetFilter(c, f)
				local.SetPage(c, page)
				return c.Next()
			}
			log.Printf("[filter] Ignoring stored filter: %v", err)
			cookie.ClearLastFilter(c)
		}
	}

	f, page, err := dashboard.ParseQuery(q, def)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	local.SetFilter(c, f)
	local.SetPage(c, page)
	return c.Next()
}

// currentFilter returns the filter ParseFilter stored, or the default.
func currentFilter(c *fiber.Ctx) dashboard.Filter {
	if f, ok := local.GetFilter(c); ok {
		return f
	}
	return service.Options().Default
}
