package handlers

import (
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// HandleExport streams the filtered rows, every column, as CSV.
func HandleExport(c *fiber.Ctx) error {
	v := service.View(currentFilter(c))

	c.Attachment("co2-emissions.csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")

	w := csv.NewWriter(c.Response().BodyWriter())
	if err := w.Write(v.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range v.Rows {
		if err := w.Write(r.Values); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
