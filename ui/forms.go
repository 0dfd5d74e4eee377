package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

func FormGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block font-bold"), g.Text(labelText)),
		input,
	)
}

// Checkbox renders the n-th option of the checkbox group id.
func Checkbox(id string, n int, value string, checked bool, attrs ...g.Node) g.Node {
	return choice("checkbox", id, n, value, checked, attrs...)
}

// Radio renders the n-th option of the radio group id.
func Radio(id string, n int, value string, checked bool, attrs ...g.Node) g.Node {
	return choice("radio", id, n, value, checked, attrs...)
}

func choice(kind, id string, n int, value string, checked bool, attrs ...g.Node) g.Node {
	inputID := id + "-" + strconv.Itoa(n)
	inputAttrs := []g.Node{
		Type(kind),
		Name(id),
		Value(value),
		ID(inputID),
	}
	if checked {
		inputAttrs = append(inputAttrs, Checked())
	}
	inputAttrs = append(inputAttrs, attrs...)

	return Div(
		Class("flex items-center space-x-2"),
		Input(inputAttrs...),
		Label(For(inputID), g.Text(value)),
	)
}

// RangeSlider renders a range input with a label that follows its value.
func RangeSlider(name, label string, min, max, step, value float64) g.Node {
	valueID := name + "-value"
	return Div(
		Class("space-y-1"),
		Div(
			Class("flex justify-between"),
			Label(For(name), Class("font-bold"), g.Text(label)),
			Span(ID(valueID), Class("font-mono text-sm"), g.Text(formatNumber(value))),
		),
		Input(
			Type("range"),
			ID(name),
			Name(name),
			Min(formatNumber(min)),
			Max(formatNumber(max)),
			Step(formatNumber(step)),
			Value(formatNumber(value)),
			Class("w-full"),
			g.Attr("oninput", "document.getElementById('"+valueID+"').textContent = this.value"),
		),
		Div(
			Class("flex justify-between text-xs text-gray-500"),
			Span(g.Text(formatNumber(min))),
			Span(g.Text(formatNumber(max))),
		),
	)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
