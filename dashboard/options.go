package dashboard

import (
	"math"

	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/vehicle"
)

// Slider describes one threshold control.
type Slider struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Column  string  `json:"column"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// Options is what the filter controls offer for a dataset.
type Options struct {
	Manufacturers []string `json:"manufacturers"`
	FuelTypes     []string `json:"fuel_types"`
	Sliders       []Slider `json:"sliders"`
	Default       Filter   `json:"default"`
}

// Query parameter names of the three thresholds.
const (
	ParamMaxFuel     = "max_fuel"
	ParamMaxPower    = "max_power"
	ParamMaxCapacity = "max_capacity"
)

// NewOptions derives control options from ds.
func NewOptions(ds *vehicle.Dataset) Options {
	def := DefaultFilter(ds)
	return Options{
		Manufacturers: ds.Manufacturers(),
		FuelTypes:     ds.FuelTypes(),
		Sliders: []Slider{
			slider(ds, ParamMaxFuel, "Fuel Consumption", vehicle.ColFuelConsumption, def.MaxFuel),
			slider(ds, ParamMaxPower, "Engine Power", vehicle.ColEnginePower, def.MaxPower),
			slider(ds, ParamMaxCapacity, "Engine Capacity", vehicle.ColEngineCapacity, def.MaxCapacity),
		},
		Default: def,
	}
}

func slider(ds *vehicle.Dataset, name, label, column string, def float64) Slider {
	rg := ds.Bounds(column)
	s := Slider{
		Name:    name,
		Label:   label,
		Column:  column,
		Min:     rg.Min,
		Max:     rg.Max,
		Step:    config.SliderStep,
		Default: def,
	}
	// A column with no values still renders as a usable control.
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		s.Min, s.Max, s.Default = 0, 0, 0
	}
	return s
}
