package config

import "time"

// Settings with their defaults. Load overrides them from the YAML config
// file, a .env file and the process environment, in that order.
var (
	// Dataset
	DataSource   = "Updated_Ireland_data.csv"
	DataTable    = "records"
	DataWatch    = false
	DataDebounce = 500 * time.Millisecond

	// Server
	ServerPort         = "8050"
	ServerDebug        = true
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute
	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second

	// Dashboard
	TablePageSize = 10
	ViewCacheTTL  = 10 * time.Minute

	// Charts
	ChartWidth       = 900
	ChartHeight      = 500
	ScatterWidth     = 600
	ScatterHeight    = 450
	ChartExportMaxPx = 2400
	ChartWebPQuality = float32(85)

	// Admin
	AdminUser         = "admin"
	AdminPasswordHash = ""

	// Assets
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@2.0.4"
)

const (
	// SliderStep is the increment of every threshold slider.
	SliderStep = 1

	// SliderDebounce delays the htmx request while a slider is dragged.
	SliderDebounce = 150 * time.Millisecond
)
