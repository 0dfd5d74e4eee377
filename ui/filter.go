package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/dashboard"
)

// FilterForm renders the dashboard controls with f selected. Any input
// refreshes the dashboard region; slider drags are debounced.
func FilterForm(opts dashboard.Options, f dashboard.Filter) g.Node {
	return Form(
		ID("filters"),
		Class("space-y-6"),
		hx.Get("/dashboard"),
		hx.Target("#dashboard"),
		hx.Swap("outerHTML"),
		hx.Trigger(fmt.Sprintf("input delay:%dms", config.SliderDebounce.Milliseconds())),
		hx.Indicator("#indicator"),
		Input(Type("hidden"), Name(dashboard.ParamApplied), Value("1")),
		manufacturerGroup(opts.Manufacturers, f.Manufacturers),
		fuelGroup(opts.FuelTypes, f.FuelTypes),
		g.Map(opts.Sliders, func(s dashboard.Slider) g.Node {
			return RangeSlider(s.Name, s.Label, s.Min, s.Max, s.Step, thresholdValue(f, s))
		}),
	)
}

func manufacturerGroup(all, selected []string) g.Node {
	checked := toSet(selected)
	boxes := make([]g.Node, 0, len(all))
	for i, m := range all {
		boxes = append(boxes, Checkbox(dashboard.ParamManufacturer, i, m, checked[m]))
	}

	return Div(
		Class("space-y-2"),
		sectionHeader("Manufacturer", "Select one or more manufacturers."),
		Div(
			Class("flex gap-2"),
			buttonSecondary("All", compact(), withAttributes(g.Attr("onclick", setManufacturers(true)))),
			buttonSecondary("None", compact(), withAttributes(g.Attr("onclick", setManufacturers(false)))),
		),
		Div(
			ID("manufacturers"),
			Class("max-h-64 overflow-y-auto border rounded p-2 space-y-1"),
			g.Group(boxes),
		),
	)
}

func setManufacturers(checked bool) string {
	return fmt.Sprintf(
		"document.querySelectorAll('#manufacturers input').forEach(function (e) { e.checked = %t }); htmx.trigger('#filters', 'input')",
		checked,
	)
}

func fuelGroup(all, selected []string) g.Node {
	checked := toSet(selected)
	radios := make([]g.Node, 0, len(all))
	for i, fuel := range all {
		radios = append(radios, Radio(dashboard.ParamFuel, i, fuel, checked[fuel]))
	}

	return Div(
		Class("space-y-2"),
		sectionHeader("Fuel Type", ""),
		Div(Class("space-y-1"), g.Group(radios)),
	)
}

func thresholdValue(f dashboard.Filter, s dashboard.Slider) float64 {
	switch s.Name {
	case dashboard.ParamMaxFuel:
		return f.MaxFuel
	case dashboard.ParamMaxPower:
		return f.MaxPower
	case dashboard.ParamMaxCapacity:
		return f.MaxCapacity
	}
	return s.Default
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
