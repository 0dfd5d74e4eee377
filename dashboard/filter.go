package dashboard

import (
	"sort"
	"strconv"
	"strings"

	"github.com/co2-watch/site/vehicle"
)

// Filter is the five-input selection driving every output of the
// dashboard. Set fields match by membership; an empty set matches nothing.
// Thresholds are strict upper bounds.
type Filter struct {
	Manufacturers []string `json:"manufacturers"`
	FuelTypes     []string `json:"fuel_types"`
	MaxFuel       float64  `json:"max_fuel"`
	MaxPower      float64  `json:"max_power"`
	MaxCapacity   float64  `json:"max_capacity"`
}

// DefaultFilter is the selection shown on first visit: every manufacturer,
// the first fuel type in file order, and each threshold at half of its
// column maximum.
func DefaultFilter(ds *vehicle.Dataset) Filter {
	f := Filter{
		Manufacturers: append([]string(nil), ds.Manufacturers()...),
		MaxFuel:       ds.Bounds(vehicle.ColFuelConsumption).Max / 2,
		MaxPower:      ds.Bounds(vehicle.ColEnginePower).Max / 2,
		MaxCapacity:   ds.Bounds(vehicle.ColEngineCapacity).Max / 2,
	}
	if fuels := ds.FuelTypes(); len(fuels) > 0 {
		f.FuelTypes = []string{fuels[0]}
	}
	return f
}

// Match reports whether r passes all five predicates.
func (f Filter) Match(r vehicle.Record) bool {
	return f.MatchIgnoringFuel(r) && contains(f.FuelTypes, r.FuelType)
}

// MatchIgnoringFuel reports whether r passes every predicate except the
// fuel-type one.
func (f Filter) MatchIgnoringFuel(r vehicle.Record) bool {
	return f.belowThresholds(r) && contains(f.Manufacturers, r.Manufacturer)
}

// belowThresholds applies the three strict upper bounds. NaN compares
// false, so a row with a blank threshold column never passes.
func (f Filter) belowThresholds(r vehicle.Record) bool {
	return r.FuelConsumption < f.MaxFuel &&
		float64(r.EnginePower) < f.MaxPower &&
		r.EngineCapacity < f.MaxCapacity
}

// Key returns a canonical representation of f. Two filters selecting the
// same sets in a different order share a key.
func (f Filter) Key() string {
	var b strings.Builder
	writeSet(&b, f.Manufacturers)
	b.WriteByte('|')
	writeSet(&b, f.FuelTypes)
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(f.MaxFuel, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(f.MaxPower, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(f.MaxCapacity, 'g', -1, 64))
	return b.String()
}

func writeSet(b *strings.Builder, values []string) {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	for i, v := range sorted {
		if i > 0 && sorted[i-1] == v {
			continue
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(v))
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
