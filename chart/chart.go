package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/chai2010/webp"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/draw"

	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/dashboard"
)

var (
	ErrNoData        = errors.New("no data for the current filters")
	ErrUnknownChart  = errors.New("unknown chart")
	ErrUnknownFormat = errors.New("unknown image format")
)

// Name identifies one of the four dashboard charts.
type Name string

const (
	Manufacturer    Name = "manufacturer"
	FuelType        Name = "fuel-type"
	PowerCapacity   Name = "power-capacity"
	MassConsumption Name = "mass-consumption"
)

// Names lists the charts in page order.
var Names = []Name{Manufacturer, FuelType, PowerCapacity, MassConsumption}

var titles = map[Name]string{
	Manufacturer:    "CO2 Emission Statistics by EU Manufacturer",
	FuelType:        "Average EWLTP by Fuel Type",
	PowerCapacity:   PowerCapacityLayout.Title,
	MassConsumption: MassConsumptionLayout.Title,
}

// Title returns the heading the chart is drawn with.
func (n Name) Title() string {
	return titles[n]
}

// ParseName validates a chart name from a URL.
func ParseName(s string) (Name, error) {
	for _, n := range Names {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChart, s)
}

// Format is an output encoding.
type Format string

const (
	SVG  Format = "svg"
	PNG  Format = "png"
	WebP Format = "webp"
)

// ParseFormat validates an output format from a URL.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case SVG, PNG, WebP:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case WebP:
		return "image/webp"
	}
	return "image/svg+xml"
}

// Renderable is implemented by go-chart's Chart and BarChart.
type Renderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

// Build returns the named chart for v.
func Build(name Name, v *dashboard.View) (Renderable, error) {
	switch name {
	case Manufacturer:
		return ManufacturerBar(v.ByManufacturer)
	case FuelType:
		return FuelTypeBar(v.ByFuelType)
	case PowerCapacity:
		return Scatter(v.PowerCapacity, PowerCapacityLayout)
	case MassConsumption:
		return Scatter(v.MassConsumption, MassConsumptionLayout)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
}

// Render writes c to w in format. WebP output is scaled down to width
// pixels when width is positive and smaller than the rendered chart.
func Render(c Renderable, format Format, width int, w io.Writer) error {
	switch format {
	case SVG:
		return c.Render(gochart.SVG, w)
	case PNG:
		if width <= 0 {
			return c.Render(gochart.PNG, w)
		}
		img, err := rasterize(c, width)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	case WebP:
		img, err := rasterize(c, width)
		if err != nil {
			return err
		}
		return webp.Encode(w, img, &webp.Options{Lossless: false, Quality: config.ChartWebPQuality})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// rasterize renders c as PNG, decodes it and scales it to width.
func rasterize(c Renderable, width int) (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	bounds := img.Bounds()
	if width <= 0 || width >= bounds.Dx() {
		return img, nil
	}
	if width > config.ChartExportMaxPx {
		width = config.ChartExportMaxPx
	}

	h := bounds.Dy() * width / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst, nil
}

// plotly is the qualitative palette the bars cycle through.
var plotly = []drawing.Color{
	drawing.ColorFromHex("636EFA"),
	drawing.ColorFromHex("EF553B"),
	drawing.ColorFromHex("00CC96"),
	drawing.ColorFromHex("AB63FA"),
	drawing.ColorFromHex("FFA15A"),
	drawing.ColorFromHex("19D3F3"),
	drawing.ColorFromHex("FF6692"),
	drawing.ColorFromHex("B6E880"),
	drawing.ColorFromHex("FF97FF"),
	drawing.ColorFromHex("FECB52"),
}

// PaletteColor returns the i-th palette colour, cycling.
func PaletteColor(i int) drawing.Color {
	return plotly[i%len(plotly)]
}

// padRange widens [min, max] so that go-chart never sees a zero-width
// axis.
func padRange(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return 0, 1
	}
	if min == max {
		pad := math.Abs(min) * 0.1
		if pad == 0 {
			pad = 1
		}
		return min - pad, max + pad
	}
	pad := (max - min) * 0.05
	return min - pad, max + pad
}
