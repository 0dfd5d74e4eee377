package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

func card(content ...g.Node) g.Node {
	return Div(
		Class("bg-white border border-gray-200 rounded-lg p-4 shadow-sm"),
		g.Group(content),
	)
}

func sectionHeader(title string, helpText string) g.Node {
	nodes := []g.Node{
		Label(Class("block font-bold"), g.Text(title)),
	}
	if helpText != "" {
		nodes = append(nodes,
			P(
				Class("text-sm text-gray-600 mb-2"),
				g.Text(helpText),
			),
		)
	}
	return g.Group(nodes)
}

// ---- Message Components ----

// FailureMessage reports an action that did not complete.
func FailureMessage(message string) g.Node {
	return notice("alert", "bg-red-100 border-red-500 text-red-700", message)
}

func SuccessMessage(message string) g.Node {
	return notice("status", "bg-green-100 border-green-500 text-green-700", message)
}

func notice(role, colors, message string) g.Node {
	return Div(
		Role(role),
		Class(colors+" border px-4 py-3 rounded"),
		g.Text(message),
	)
}

func emptyMessage(message string) g.Node {
	return Div(
		Class("flex justify-center items-center p-8 text-gray-500 italic"),
		g.Text(message),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		"",
		pageHeader(fmt.Sprintf("Error %d", code)),
		P(g.Text(message)),
		Div(Class("mt-8"), buttonSecondary("Back to the dashboard", withHref("/"))),
	)
}
