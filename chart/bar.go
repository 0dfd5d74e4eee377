package chart

import (
	"fmt"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/dashboard"
)

const (
	barWidth   = 36
	barSpacing = 12
)

// ManufacturerBar draws one bar per manufacturer, in the order given.
func ManufacturerBar(means []dashboard.GroupMean) (*gochart.BarChart, error) {
	if len(means) == 0 {
		return nil, ErrNoData
	}

	bars := make([]gochart.Value, 0, len(means))
	for i, m := range means {
		bars = append(bars, gochart.Value{
			Label: m.Key,
			Value: m.Mean,
			Style: barStyle(i),
		})
	}
	return newBarChart(Manufacturer.Title(), "CO2 Emission (g/km)", bars), nil
}

// FuelTypeBar draws one bar per fuel type, labelled with its rounded mean.
func FuelTypeBar(means []dashboard.GroupMean) (*gochart.BarChart, error) {
	if len(means) == 0 {
		return nil, ErrNoData
	}

	bars := make([]gochart.Value, 0, len(means))
	for i, m := range means {
		bars = append(bars, gochart.Value{
			Label: fmt.Sprintf("%s (%.1f)", m.Key, m.Mean),
			Value: m.Mean,
			Style: barStyle(i),
		})
	}
	return newBarChart(FuelType.Title(), "Average EWLTP", bars), nil
}

func barStyle(i int) gochart.Style {
	c := PaletteColor(i)
	return gochart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1}
}

func newBarChart(title, yName string, bars []gochart.Value) *gochart.BarChart {
	hi := 0.0
	lo := 0.0
	for _, b := range bars {
		hi = math.Max(hi, b.Value)
		lo = math.Min(lo, b.Value)
	}
	if hi == lo {
		hi = lo + 1
	}

	// Grow past the configured width rather than squeezing bars together.
	width := len(bars)*(barWidth+barSpacing) + 160
	if width < config.ChartWidth {
		width = config.ChartWidth
	}

	return &gochart.BarChart{
		Title:      title,
		Width:      width,
		Height:     config.ChartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.Style{TextRotationDegrees: 45},
		YAxis: gochart.YAxis{
			Name:  yName,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi * 1.1},
		},
		Bars: bars,
	}
}
