package ui

import (
	"time"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/co2-watch/site/cache"
)

// DatasetInfo describes the dataset being served.
type DatasetInfo struct {
	Source        string
	Rows          int
	Columns       int
	Manufacturers int
	FuelTypes     int
	Version       uint64
	LoadedAt      time.Time
	Watching      bool
}

func AdminPage(info DatasetInfo, stats cache.Stats) g.Node {
	return Page(
		"Admin Dashboard",
		"/admin",
		AdminSection(info, stats, nil),
	)
}

// AdminSection is the swappable body of the admin page. message, when not
// nil, reports the outcome of the last action.
func AdminSection(info DatasetInfo, stats cache.Stats, message g.Node) g.Node {
	return Div(
		ID("admin-section"),
		H1(Class("text-4xl font-bold mb-8"), g.Text("Admin Dashboard")),
		Div(Class("text-gray-600 text-sm mb-6"), g.Text("Inspect the dataset and manage the view cache.")),
		g.If(message != nil, Div(Class("mb-6"), message)),
		datasetPanel(info),
		CacheStatsPanel(stats, "/api/admin/cache/clear", "/admin"),
	)
}

func datasetPanel(info DatasetInfo) g.Node {
	watching := "off"
	if info.Watching {
		watching = "on"
	}

	return Div(
		Class("bg-gray-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text("Dataset")),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-4 mb-4"),
			statCard("Source", "%s", info.Source),
			statCard("Version", "%d", info.Version),
			statCard("Loaded", "%s", info.LoadedAt.Format(time.RFC3339)),
			statCard("Hot Reload", "%s", watching),
			statCard("Rows", "%d", info.Rows),
			statCard("Columns", "%d", info.Columns),
			statCard("Manufacturers", "%d", info.Manufacturers),
			statCard("Fuel Types", "%d", info.FuelTypes),
		),
		buttonDanger("Reload Dataset",
			swapping(hx.Post("/api/admin/reload"), "#admin-section"),
			withAttributes(hx.Confirm("Reload the dataset from its source?")),
		),
	)
}

// CacheStatsPanel shows view cache metrics with clear and refresh actions.
func CacheStatsPanel(stats cache.Stats, clearEndpoint, refreshEndpoint string) g.Node {
	return Div(
		Class("bg-gray-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text(stats.Name)),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-4 mb-4"),
			statCard("Hits", "%d", stats.Hits),
			statCard("Misses", "%d", stats.Misses),
			statCard("Hit Rate", "%.1f%%", stats.HitRate),
			statCard("Current Items", "%d", stats.Items),
			statCard("Memory Used", "%.0f KB", stats.MemoryKB()),
			statCard("Keys Added", "%d", stats.KeysAdded),
			statCard("Keys Evicted", "%d", stats.KeysEvicted),
			statCard("Sets Rejected", "%d", stats.SetsRejected),
		),
		Div(
			Class("flex gap-4"),
			buttonDanger("Clear Cache", swapping(hx.Post(clearEndpoint), "#admin-section")),
			button("Refresh Stats", swapping(hx.Get(refreshEndpoint), "#admin-section")),
		),
	)
}

func statCard(label, format string, value interface{}) g.Node {
	return Div(
		Class("bg-white p-3 rounded border"),
		Strong(g.Text(label+": ")),
		g.Textf(format, value),
	)
}
