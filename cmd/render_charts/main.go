package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/co2-watch/site/chart"
	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/dashboard"
	"github.com/co2-watch/site/vehicle"
)

func main() {
	var (
		data   = flag.String("data", config.DataSource, "Dataset CSV or SQLite database")
		table  = flag.String("table", config.DataTable, "Table for SQLite datasets")
		out    = flag.String("out", "charts", "Output directory")
		format = flag.String("format", "png", "Output format: svg, png or webp")
		width  = flag.Int("width", 0, "Scale raster output down to this width")
	)
	flag.Parse()

	f, err := chart.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	ds, err := vehicle.Open(*data, *table)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	written, err := renderAll(dashboard.Compute(ds, dashboard.DefaultFilter(ds)), *out, f, *width)
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range written {
		fmt.Println(path)
	}
}

// renderAll writes every chart of v into dir and returns the paths
// written. Charts with no data are skipped.
func renderAll(v *dashboard.View, dir string, format chart.Format, width int) ([]string, error) {
	var written []string
	for _, name := range chart.Names {
		c, err := chart.Build(name, v)
		if errors.Is(err, chart.ErrNoData) {
			log.Printf("[chart] Skipping %s: %v", name, err)
			continue
		}
		if err != nil {
			return written, err
		}

		path := filepath.Join(dir, fmt.Sprintf("%s.%s", name, format))
		if err := writeChart(c, path, format, width); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeChart(c chart.Renderable, path string, format chart.Format, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.Render(c, format, width, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
