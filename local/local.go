package local

import (
	"github.com/gofiber/fiber/v2"

	"github.com/co2-watch/site/dashboard"
)

func GetFilter(c *fiber.Ctx) (dashboard.Filter, bool) {
	f, ok := c.Locals("filter").(dashboard.Filter)
	return f, ok
}

func SetFilter(c *fiber.Ctx, f dashboard.Filter) {
	c.Locals("filter", f)
}

func GetPage(c *fiber.Ctx) int {
	page, _ := c.Locals("page").(int)
	if page < 1 {
		return 1
	}
	return page
}

func SetPage(c *fiber.Ctx, page int) {
	c.Locals("page", page)
}
