package handlers

import (
	"bytes"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/co2-watch/site/chart"
	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/cookie"
	"github.com/co2-watch/site/dashboard"
	"github.com/co2-watch/site/local"
	"github.com/co2-watch/site/ui"
)

func HandleHome(c *fiber.Ctx) error {
	f := currentFilter(c)
	v := service.View(f)
	return render(c, ui.HomePage(service.Options(), f, dashboardData(v, local.GetPage(c), true)))
}

// HandleDashboard recomputes the table and charts for the submitted
// controls. The browser URL follows the filter so a reload keeps it.
func HandleDashboard(c *fiber.Ctx) error {
	f := currentFilter(c)
	v := service.View(f)

	q := f.Values()
	cookie.SetLastFilter(c, q)
	c.Set("HX-Push-Url", "/?"+q.Encode())

	return render(c, ui.DashboardRegion(dashboardData(v, local.GetPage(c), true)))
}

func HandleTable(c *fiber.Ctx) error {
	v := service.View(currentFilter(c))
	return render(c, ui.DataTable(dashboardData(v, local.GetPage(c), false)))
}

func dashboardData(v *dashboard.View, page int, withCharts bool) ui.Dashboard {
	rows, page := v.Page(page, config.TablePageSize)
	d := ui.Dashboard{
		Query:  v.Filter.Values(),
		Header: v.Header,
		Rows:   rows,
		Page:   page,
		Pages:  v.Pages(config.TablePageSize),
		Total:  v.Len(),
	}
	if withCharts {
		d.Charts = chartPanels(v)
	}
	return d
}

// chartPanels renders every chart as inline SVG. A chart with nothing to
// plot, or one that fails to render, gets an empty panel.
func chartPanels(v *dashboard.View) []ui.ChartPanel {
	panels := make([]ui.ChartPanel, 0, len(chart.Names))
	for _, name := range chart.Names {
		p := ui.ChartPanel{Name: string(name), Title: name.Title()}

		c, err := chart.Build(name, v)
		switch {
		case errors.Is(err, chart.ErrNoData):
		case err != nil:
			log.Printf("[chart] Build %s: %v", name, err)
		default:
			var buf bytes.Buffer
			if err := chart.Render(c, chart.SVG, 0, &buf); err != nil {
				log.Printf("[chart] Render %s: %v", name, err)
			} else {
				p.SVG = buf.Bytes()
			}
		}
		panels = append(panels, p)
	}
	return panels
}
