package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/co2-watch/site/chart"
	"github.com/co2-watch/site/config"
)

// HandleChart exports one chart for the filter in the query. An optional
// width scales raster formats down.
func HandleChart(c *fiber.Ctx) error {
	name, err := chart.ParseName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	format, err := chart.ParseFormat(c.Params("format"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	width := c.QueryInt("width", 0)
	if width < 0 || width > config.ChartExportMaxPx {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("width must be between 1 and %d", config.ChartExportMaxPx))
	}

	v := service.View(currentFilter(c))
	ch, err := chart.Build(name, v)
	if errors.Is(err, chart.ErrNoData) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := chart.Render(ch, format, width, &buf); err != nil {
		log.Printf("[chart] Export %s.%s: %v", name, format, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render chart")
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderCacheControl, "no-cache")
	if c.QueryBool("download") {
		c.Attachment(fmt.Sprintf("%s.%s", name, format))
	}
	return c.Send(buf.Bytes())
}
