package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/dashboard"
)

// HandleOptions returns the control options and defaults as JSON.
func HandleOptions(c *fiber.Ctx) error {
	return c.JSON(service.Options())
}

type viewResponse struct {
	Filter         dashboard.Filter      `json:"filter"`
	DatasetVersion uint64                `json:"dataset_version"`
	Count          int                   `json:"count"`
	Pages          int                   `json:"pages"`
	ByManufacturer []dashboard.GroupMean `json:"by_manufacturer"`
	ByFuelType     []dashboard.GroupMean `json:"by_fuel_type"`
}

// HandleView returns the row count and both aggregates for the filter.
func HandleView(c *fiber.Ctx) error {
	v := service.View(currentFilter(c))
	return c.JSON(viewResponse{
		Filter:         v.Filter,
		DatasetVersion: v.DatasetVersion,
		Count:          v.Len(),
		Pages:          v.Pages(config.TablePageSize),
		ByManufacturer: nonNil(v.ByManufacturer),
		ByFuelType:     nonNil(v.ByFuelType),
	})
}

func nonNil(means []dashboard.GroupMean) []dashboard.GroupMean {
	if means == nil {
		return []dashboard.GroupMean{}
	}
	return means
}
