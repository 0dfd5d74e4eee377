package dashboard

import (
	"math"
	"sort"

	"github.com/co2-watch/site/vehicle"
)

// GroupMean is the average of a measure over one group of rows.
type GroupMean struct {
	Key   string  `json:"key"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// MeanBy groups rows by key and averages value within each group. NaN
// values are skipped and groups left with no values are dropped. Groups
// come back in order of first appearance.
func MeanBy(rows []vehicle.Record, key func(vehicle.Record) string, value func(vehicle.Record) float64) []GroupMean {
	type acc struct {
		sum   float64
		count int
	}
	sums := make(map[string]*acc)
	var order []string

	for _, r := range rows {
		v := value(r)
		if math.IsNaN(v) {
			continue
		}
		k := key(r)
		a, ok := sums[k]
		if !ok {
			a = &acc{}
			sums[k] = a
			order = append(order, k)
		}
		a.sum += v
		a.count++
	}

	means := make([]GroupMean, 0, len(order))
	for _, k := range order {
		a := sums[k]
		means = append(means, GroupMean{Key: k, Mean: a.sum / float64(a.count), Count: a.count})
	}
	return means
}

// EWLTPByManufacturer averages EWLTP per manufacturer, highest first.
func EWLTPByManufacturer(rows []vehicle.Record) []GroupMean {
	means := MeanBy(rows, manufacturerOf, ewltpOf)
	sort.SliceStable(means, func(i, j int) bool {
		if means[i].Mean != means[j].Mean {
			return means[i].Mean > means[j].Mean
		}
		return means[i].Key < means[j].Key
	})
	return means
}

// EWLTPByFuelType averages EWLTP per fuel type, rounded to one decimal,
// lowest first.
func EWLTPByFuelType(rows []vehicle.Record) []GroupMean {
	means := MeanBy(rows, fuelTypeOf, ewltpOf)
	for i := range means {
		means[i].Mean = Round1(means[i].Mean)
	}
	sort.SliceStable(means, func(i, j int) bool {
		return means[i].Mean < means[j].Mean
	})
	return means
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func manufacturerOf(r vehicle.Record) string { return r.Manufacturer }
func fuelTypeOf(r vehicle.Record) string     { return r.FuelType }
func ewltpOf(r vehicle.Record) float64       { return r.EWLTP }
