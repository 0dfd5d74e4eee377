package ui

import (
	"fmt"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/co2-watch/site/dashboard"
	"github.com/co2-watch/site/vehicle"
)

// ChartPanel is one rendered chart. An empty SVG means there was nothing
// to plot for the current filters.
type ChartPanel struct {
	Name  string
	Title string
	SVG   []byte
}

// Dashboard is the region below the controls that every change swaps.
type Dashboard struct {
	Query  url.Values
	Header []string
	Rows   []vehicle.Record
	Page   int
	Pages  int
	Total  int
	Charts []ChartPanel
}

func DashboardRegion(d Dashboard) g.Node {
	return Div(
		ID("dashboard"),
		Class("space-y-8"),
		Div(
			Class("flex items-center justify-between"),
			P(Class("text-gray-700"), g.Textf("%d vehicles match the current filters.", d.Total)),
			buttonSecondary("Download CSV", withHref("/export.csv?"+d.Query.Encode())),
		),
		DataTable(d),
		Div(
			Class("grid grid-cols-1 xl:grid-cols-2 gap-6"),
			g.Map(d.Charts, func(p ChartPanel) g.Node { return chartPanel(p, d.Query) }),
		),
	)
}

// DataTable renders one page of the filtered rows with every column.
func DataTable(d Dashboard) g.Node {
	return Div(
		ID("data-table"),
		Class("space-y-2"),
		g.If(d.Total == 0, emptyMessage("No vehicles match the current filters.")),
		g.If(d.Total > 0, Div(
			Class("overflow-x-auto border rounded"),
			Table(
				Class("min-w-full text-sm"),
				THead(
					Class("bg-gray-100"),
					Tr(g.Map(d.Header, func(h string) g.Node {
						return Th(Class("px-2 py-1 text-left font-semibold whitespace-nowrap"), g.Text(h))
					})),
				),
				TBody(g.Map(d.Rows, func(r vehicle.Record) g.Node {
					return Tr(
						Class("border-t"),
						g.Map(r.Values, func(v string) g.Node {
							return Td(Class("px-2 py-1 whitespace-nowrap"), g.Text(v))
						}),
					)
				})),
			),
		)),
		pager(d),
	)
}

func pager(d Dashboard) g.Node {
	return Div(
		Class("flex items-center justify-between text-sm"),
		pageButton("Previous", d.Query, d.Page-1, d.Page <= 1),
		Span(g.Textf("Page %d of %d", d.Page, d.Pages)),
		pageButton("Next", d.Query, d.Page+1, d.Page >= d.Pages),
	)
}

func pageButton(text string, q url.Values, page int, disabled bool) g.Node {
	if disabled {
		return button(text, compact(), withDisabled())
	}
	return button(text, compact(), swapping(hx.Get("/dashboard/table?"+pageQuery(q, page)), "#data-table"))
}

func pageQuery(q url.Values, page int) string {
	out := url.Values{}
	for k, vs := range q {
		out[k] = vs
	}
	out.Set(dashboard.ParamPage, strconv.Itoa(page))
	return out.Encode()
}

func chartPanel(p ChartPanel, q url.Values) g.Node {
	query := q.Encode()
	if len(p.SVG) == 0 {
		return card(
			H2(Class("text-lg font-semibold mb-2"), g.Text(p.Title)),
			emptyMessage("No data for the current filters."),
		)
	}

	return card(
		Div(
			ID("chart-"+p.Name),
			Class("overflow-x-auto"),
			g.Raw(string(p.SVG)),
		),
		Div(
			Class("flex gap-2 justify-end text-sm"),
			g.Map([]string{"png", "webp", "svg"}, func(format string) g.Node {
				href := fmt.Sprintf("/charts/%s.%s?%s", p.Name, format, query)
				return buttonSecondary(format, compact(), withHref(href), withClass("uppercase"))
			}),
		),
	)
}
