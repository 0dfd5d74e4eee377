package chart

import (
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/dashboard"
)

// ScatterLayout names the axes and title of a scatter chart.
type ScatterLayout struct {
	Title  string
	XLabel string
	YLabel string
}

var (
	PowerCapacityLayout = ScatterLayout{
		Title:  "Engine Capacity and Engine Power",
		XLabel: "Engine Power",
		YLabel: "Engine Capacity",
	}
	MassConsumptionLayout = ScatterLayout{
		Title:  "Scatter Plot of Mass vs Fuel Consumption",
		XLabel: "Mass",
		YLabel: "Fuel Consumption",
	}
)

const (
	minDot = 2.0
	maxDot = 10.0
)

// Scatter draws points without connecting lines. Dot colour follows the
// Viridis scale and dot size grows with the point weight. Points with a
// missing coordinate are skipped.
func Scatter(points []dashboard.Point, layout ScatterLayout) (*gochart.Chart, error) {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	ws := make([]float64, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
		ws = append(ws, p.Weight)
	}
	if len(xs) == 0 {
		return nil, ErrNoData
	}

	xmin, xmax := padRange(extent(xs))
	ymin, ymax := padRange(extent(ys))
	wmin, wmax := extent(ws)

	series := gochart.ContinuousSeries{
		Name:    layout.Title,
		XValues: xs,
		YValues: ys,
		Style: gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotWidthProvider: func(_, _ gochart.Range, index int, _, _ float64) float64 {
				return dotSize(ws[index], wmin, wmax)
			},
			DotColorProvider: func(_, _ gochart.Range, index int, _, _ float64) drawing.Color {
				return dotColor(ws[index], wmin, wmax)
			},
		},
	}

	return &gochart.Chart{
		Title:      layout.Title,
		Width:      config.ScatterWidth,
		Height:     config.ScatterHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  layout.XLabel,
			Range: &gochart.ContinuousRange{Min: xmin, Max: xmax},
		},
		YAxis: gochart.YAxis{
			Name:  layout.YLabel,
			Range: &gochart.ContinuousRange{Min: ymin, Max: ymax},
		},
		Series: []gochart.Series{series},
	}, nil
}

// extent returns the NaN-skipping min and max of vs, or NaN, NaN when
// nothing is left.
func extent(vs []float64) (float64, float64) {
	lo, hi := math.NaN(), math.NaN()
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return lo, hi
}

// scale maps v into [0, 1] over [lo, hi]. Degenerate ranges map to the
// middle and NaN to zero.
func scale(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v) || math.IsNaN(lo) || math.IsNaN(hi):
		return 0
	case hi <= lo:
		return 0.5
	}
	return math.Min(1, math.Max(0, (v-lo)/(hi-lo)))
}

func dotSize(w, lo, hi float64) float64 {
	return minDot + scale(w, lo, hi)*(maxDot-minDot)
}

func dotColor(w, lo, hi float64) drawing.Color {
	return gochart.Viridis(scale(w, lo, hi), 0, 1)
}
