package dashboard

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// Query parameter names of the set controls and paging.
const (
	ParamManufacturer = "manufacturer"
	ParamFuel         = "fuel"
	ParamPage         = "page"

	// ParamApplied marks a submitted form. Without it the defaults apply;
	// with it an absent set parameter means the user cleared that set.
	ParamApplied = "applied"
)

var ErrBadQuery = errors.New("invalid filter")

// ParseQuery builds the filter described by q, falling back to def for
// anything the query does not set. It also returns the requested 1-based
// table page.
func ParseQuery(q url.Values, def Filter) (Filter, int, error) {
	f := def
	applied := q.Get(ParamApplied) != ""

	if vs, ok := q[ParamManufacturer]; ok || applied {
		f.Manufacturers = nonEmpty(vs)
	}
	if vs, ok := q[ParamFuel]; ok || applied {
		f.FuelTypes = nonEmpty(vs)
	}

	var err error
	if f.MaxFuel, err = parseThreshold(q, ParamMaxFuel, def.MaxFuel); err != nil {
		return Filter{}, 0, err
	}
	if f.MaxPower, err = parseThreshold(q, ParamMaxPower, def.MaxPower); err != nil {
		return Filter{}, 0, err
	}
	if f.MaxCapacity, err = parseThreshold(q, ParamMaxCapacity, def.MaxCapacity); err != nil {
		return Filter{}, 0, err
	}

	page := 1
	if s := q.Get(ParamPage); s != "" {
		page, err = strconv.Atoi(s)
		if err != nil || page < 1 {
			return Filter{}, 0, fmt.Errorf("%w: %s=%q", ErrBadQuery, ParamPage, s)
		}
	}

	return f, page, nil
}

func parseThreshold(q url.Values, name string, def float64) (float64, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadQuery, name, s)
	}
	return v, nil
}

func nonEmpty(vs []string) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Values encodes f as query parameters that ParseQuery reads back to f.
func (f Filter) Values() url.Values {
	q := url.Values{}
	q.Set(ParamApplied, "1")
	for _, m := range f.Manufacturers {
		q.Add(ParamManufacturer, m)
	}
	for _, fuel := range f.FuelTypes {
		q.Add(ParamFuel, fuel)
	}
	q.Set(ParamMaxFuel, strconv.FormatFloat(f.MaxFuel, 'g', -1, 64))
	q.Set(ParamMaxPower, strconv.FormatFloat(f.MaxPower, 'g', -1, 64))
	q.Set(ParamMaxCapacity, strconv.FormatFloat(f.MaxCapacity, 'g', -1, 64))
	return q
}
