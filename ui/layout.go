package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/co2-watch/site/config"
)

// ---- Page Layout ----

// Page wraps content in the site chrome. currentPath highlights the
// matching navigation link.
func Page(title, currentPath string, content ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       title,
		Description: "Filter and compare CO2 emissions of new passenger cars registered in the EU.",
		Language:    "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(Rel("stylesheet"), Href(config.TailwindCSSURL)),
			Script(Type("text/javascript"), Src(config.HTMXURL), Defer()),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-8 text-gray-900"),
				navigation(currentPath),
				Main(g.Group(content)),
				pageFooter(),
			),
		},
	})
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}

func pageFooter() g.Node {
	return Footer(
		Class("mt-12 pt-4 border-t text-xs text-gray-500"),
		g.Text("Source: EEA monitoring of CO2 emissions from new passenger cars. Values in g/km (WLTP)."),
	)
}
