package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ---- Buttons ----

type variant int

const (
	primary variant = iota
	secondary
	danger
)

var variantClasses = map[variant]string{
	primary:   "bg-blue-500 text-white hover:bg-blue-600",
	secondary: "text-blue-500 hover:underline",
	danger:    "bg-red-500 text-white hover:bg-red-600",
}

type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href     string
	disabled bool
	compact  bool
	class    string
	attrs    []g.Node
}

// withHref renders the button as a link.
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

func withDisabled() buttonOption {
	return func(c *buttonConfig) {
		c.disabled = true
	}
}

// compact is for buttons that sit inline with other controls.
func compact() buttonOption {
	return func(c *buttonConfig) {
		c.compact = true
	}
}

func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// swapping sends request with htmx and replaces target with the response.
func swapping(request g.Node, target string) buttonOption {
	return withAttributes(request, hx.Target(target), hx.Swap("outerHTML"))
}

func (v variant) render(text string, options ...buttonOption) g.Node {
	cfg := buttonConfig{}
	for _, option := range options {
		option(&cfg)
	}

	classes := []string{"rounded inline-block", variantClasses[v]}
	if cfg.compact {
		classes = append(classes, "px-2 py-1 text-sm")
	} else {
		classes = append(classes, "px-4 py-2")
	}
	if cfg.class != "" {
		classes = append(classes, cfg.class)
	}
	if cfg.disabled {
		classes = append(classes, "opacity-50 cursor-not-allowed")
	}
	class := Class(strings.Join(classes, " "))

	if cfg.href != "" {
		if cfg.disabled {
			return Span(class, g.Text(text))
		}
		return A(Href(cfg.href), class, g.Group(cfg.attrs), g.Text(text))
	}

	// Never type=submit: the filter form reacts to input events only.
	return Button(
		Type("button"),
		class,
		g.If(cfg.disabled, Disabled()),
		g.Group(cfg.attrs),
		g.Text(text),
	)
}

func button(text string, options ...buttonOption) g.Node {
	return primary.render(text, options...)
}

func buttonSecondary(text string, options ...buttonOption) g.Node {
	return secondary.render(text, options...)
}

func buttonDanger(text string, options ...buttonOption) g.Node {
	return danger.render(text, options...)
}
