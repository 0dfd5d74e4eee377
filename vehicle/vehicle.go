package vehicle

import (
	"errors"
	"math"
	"sort"
	"time"
)

// Column names of the emissions dataset.
const (
	ColManufacturer    = "Manuf_name_EU"
	ColFuelType        = "Fuel_type"
	ColFuelConsumption = "Fuel_consumption"
	ColEnginePower     = "Engine_power"
	ColEngineCapacity  = "Engine_capacity"
	ColEWLTP           = "EWLTP"
	ColMass            = "Mass_running_order"
)

// RequiredColumns lists the columns every source must provide.
var RequiredColumns = []string{
	ColManufacturer,
	ColFuelType,
	ColFuelConsumption,
	ColEnginePower,
	ColEngineCapacity,
	ColEWLTP,
	ColMass,
}

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyDataset  = errors.New("dataset has no rows")
)

// Record is one vehicle of the emissions dataset. Numeric fields hold NaN
// when the source cell is blank, except EnginePower which is always set.
type Record struct {
	Manufacturer    string
	FuelType        string
	FuelConsumption float64
	EnginePower     int
	EngineCapacity  float64
	EWLTP           float64
	Mass            float64

	// Values holds every cell as read, aligned with Dataset.Header.
	Values []string
}

// Numeric returns the value of a numeric column by name.
func (r Record) Numeric(column string) (float64, bool) {
	switch column {
	case ColFuelConsumption:
		return r.FuelConsumption, true
	case ColEnginePower:
		return float64(r.EnginePower), true
	case ColEngineCapacity:
		return r.EngineCapacity, true
	case ColEWLTP:
		return r.EWLTP, true
	case ColMass:
		return r.Mass, true
	}
	return math.NaN(), false
}

// Range is the closed interval of a numeric column.
type Range struct {
	Min float64
	Max float64
}

// Dataset is the in-memory table. It is never mutated after construction.
type Dataset struct {
	Header   []string
	Records  []Record
	Source   string
	LoadedAt time.Time
	Version  uint64

	manufacturers []string
	fuelTypes     []string
	bounds        map[string]Range
}

// NewDataset builds the derived lookups for records read from source.
func NewDataset(header []string, records []Record, source string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{
		Header:   header,
		Records:  records,
		Source:   source,
		LoadedAt: time.Now(),
		bounds:   make(map[string]Range),
	}

	seenMake := make(map[string]bool)
	seenFuel := make(map[string]bool)
	for _, r := range records {
		if !seenMake[r.Manufacturer] {
			seenMake[r.Manufacturer] = true
			ds.manufacturers = append(ds.manufacturers, r.Manufacturer)
		}
		if !seenFuel[r.FuelType] {
			seenFuel[r.FuelType] = true
			ds.fuelTypes = append(ds.fuelTypes, r.FuelType)
		}
	}
	sort.Strings(ds.manufacturers)

	for _, col := range []string{ColFuelConsumption, ColEnginePower, ColEngineCapacity, ColEWLTP, ColMass} {
		ds.bounds[col] = columnRange(records, col)
	}

	return ds, nil
}

func columnRange(records []Record, column string) Range {
	rg := Range{Min: math.NaN(), Max: math.NaN()}
	for _, r := range records {
		v, _ := r.Numeric(column)
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(rg.Min) || v < rg.Min {
			rg.Min = v
		}
		if math.IsNaN(rg.Max) || v > rg.Max {
			rg.Max = v
		}
	}
	return rg
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Manufacturers returns the distinct manufacturer names, sorted.
func (d *Dataset) Manufacturers() []string {
	return d.manufacturers
}

// FuelTypes returns the distinct fuel types in order of first appearance.
func (d *Dataset) FuelTypes() []string {
	return d.fuelTypes
}

// Bounds returns the min and max of a numeric column, ignoring NaN. Both
// ends are NaN when the column has no values.
func (d *Dataset) Bounds(column string) Range {
	if rg, ok := d.bounds[column]; ok {
		return rg
	}
	return Range{Min: math.NaN(), Max: math.NaN()}
}
