package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/co2-watch/site/chart"
	"github.com/co2-watch/site/dashboard"
	"github.com/co2-watch/site/vehicle"
)

// The default filter keeps only the first row.
const fixtureCSV = `Manuf_name_EU,Fuel_type,Fuel_consumption,Engine_power,Engine_capacity,EWLTP,Mass_running_order
TOYOTA,PETROL,3.0,60,900,110,1000
TOYOTA,PETROL,5.0,80,1200,120,1100
BMW AG,DIESEL,8.0,200,2400,145,1600
`

func TestRenderAll(t *testing.T) {
	ds, err := vehicle.LoadCSV(strings.NewReader(fixtureCSV), "fixture.csv")
	require.NoError(t, err)
	dir := t.TempDir()

	written, err := renderAll(dashboard.Compute(ds, dashboard.DefaultFilter(ds)), dir, chart.SVG, 0)
	require.NoError(t, err)
	require.Len(t, written, 4)

	for _, path := range written {
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), "<svg", path)
	}
	assert.Equal(t, filepath.Join(dir, "manufacturer.svg"), written[0])
}

func TestRenderAllSkipsEmptyCharts(t *testing.T) {
	ds, err := vehicle.LoadCSV(strings.NewReader(fixtureCSV), "fixture.csv")
	require.NoError(t, err)

	// No manufacturer selected: only the fuel chart has peers, and those
	// are also filtered by manufacturer, so nothing is drawn.
	f := dashboard.DefaultFilter(ds)
	f.Manufacturers = nil

	written, err := renderAll(dashboard.Compute(ds, f), t.TempDir(), chart.SVG, 0)
	require.NoError(t, err)
	assert.Empty(t, written)
}
