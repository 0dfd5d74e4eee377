package dashboard

import (
	"github.com/co2-watch/site/vehicle"
)

// Point is one vehicle on a scatter chart. Weight (EWLTP) drives both the
// dot colour and its size.
type Point struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Weight float64 `json:"weight"`
}

// View is everything the dashboard renders for one filter.
type View struct {
	Filter         Filter
	DatasetVersion uint64
	Header         []string

	// Rows is the filtered subset. The table, the manufacturer chart and
	// both scatter charts are built from it.
	Rows []vehicle.Record

	// FuelPeers passes every predicate except fuel type. Restricted to
	// Filter.FuelTypes it equals Rows.
	FuelPeers []vehicle.Record

	ByManufacturer  []GroupMean
	ByFuelType      []GroupMean
	PowerCapacity   []Point
	MassConsumption []Point
}

// Compute applies f to ds in one pass and derives every output from the
// result.
func Compute(ds *vehicle.Dataset, f Filter) *View {
	m := compile(f)
	v := &View{
		Filter:         f,
		DatasetVersion: ds.Version,
		Header:         ds.Header,
	}

	for _, r := range ds.Records {
		if !m.matchIgnoringFuel(r) {
			continue
		}
		v.FuelPeers = append(v.FuelPeers, r)
		if m.fuels[r.FuelType] {
			v.Rows = append(v.Rows, r)
		}
	}

	v.ByManufacturer = EWLTPByManufacturer(v.Rows)
	v.ByFuelType = EWLTPByFuelType(v.FuelPeers)
	v.PowerCapacity = points(v.Rows, func(r vehicle.Record) (float64, float64) {
		return float64(r.EnginePower), r.EngineCapacity
	})
	v.MassConsumption = points(v.Rows, func(r vehicle.Record) (float64, float64) {
		return r.Mass, r.FuelConsumption
	})
	return v
}

// Len returns the number of filtered rows.
func (v *View) Len() int {
	return len(v.Rows)
}

// Pages returns the number of table pages of the given size, at least one.
func (v *View) Pages(size int) int {
	if size <= 0 {
		return 1
	}
	n := (len(v.Rows) + size - 1) / size
	if n == 0 {
		return 1
	}
	return n
}

// Page returns the rows of the 1-based page n, clamping n into range.
func (v *View) Page(n, size int) ([]vehicle.Record, int) {
	pages := v.Pages(size)
	if n < 1 {
		n = 1
	}
	if n > pages {
		n = pages
	}
	if size <= 0 {
		return v.Rows, 1
	}

	start := (n - 1) * size
	end := start + size
	if end > len(v.Rows) {
		end = len(v.Rows)
	}
	return v.Rows[start:end], n
}

func points(rows []vehicle.Record, xy func(vehicle.Record) (float64, float64)) []Point {
	pts := make([]Point, 0, len(rows))
	for _, r := range rows {
		x, y := xy(r)
		pts = append(pts, Point{X: x, Y: y, Weight: r.EWLTP})
	}
	return pts
}

// matcher is a Filter with its sets turned into lookups.
type matcher struct {
	f             Filter
	manufacturers map[string]bool
	fuels         map[string]bool
}

func compile(f Filter) matcher {
	m := matcher{
		f:             f,
		manufacturers: make(map[string]bool, len(f.Manufacturers)),
		fuels:         make(map[string]bool, len(f.FuelTypes)),
	}
	for _, s := range f.Manufacturers {
		m.manufacturers[s] = true
	}
	for _, s := range f.FuelTypes {
		m.fuels[s] = true
	}
	return m
}

func (m matcher) matchIgnoringFuel(r vehicle.Record) bool {
	return m.f.belowThresholds(r) && m.manufacturers[r.Manufacturer]
}
