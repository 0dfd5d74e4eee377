package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/co2-watch/site/dashboard"
)

const dashboardTitle = "Monitoring of CO2 emissions"

func HomePage(opts dashboard.Options, f dashboard.Filter, d Dashboard) g.Node {
	return Page(
		dashboardTitle,
		"/",
		pageHeader(dashboardTitle),
		Div(
			Class("grid grid-cols-1 lg:grid-cols-4 gap-8"),
			Div(Class("lg:col-span-1"), card(FilterForm(opts, f))),
			Div(Class("lg:col-span-3"), DashboardRegion(d)),
		),
	)
}
