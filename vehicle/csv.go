package vehicle

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadCSVFile reads the dataset from a CSV file on disk.
func LoadCSVFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return LoadCSV(f, path)
}

// LoadCSV parses the dataset from r. The first row is the header and must
// contain every column in RequiredColumns.
func LoadCSV(r io.Reader, source string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", source, ErrEmptyDataset)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	idx, err := indexColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", source, line, err)
		}
		records = append(records, rec)
	}

	ds, err := NewDataset(header, records, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	log.Printf("[dataset] Loaded %d rows, %d columns from %s", ds.Len(), len(header), source)
	return ds, nil
}

// columnIndex maps each required column to its position in a row.
type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(RequiredColumns))
	for i, name := range header {
		idx[name] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRow(row []string, idx columnIndex) (Record, error) {
	for i := range row {
		row[i] = strings.TrimSpace(row[i])
	}

	power, err := parseInt(row[idx[ColEnginePower]])
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", ColEnginePower, err)
	}

	return Record{
		Manufacturer:    row[idx[ColManufacturer]],
		FuelType:        row[idx[ColFuelType]],
		FuelConsumption: parseFloat(row[idx[ColFuelConsumption]]),
		EnginePower:     power,
		EngineCapacity:  parseFloat(row[idx[ColEngineCapacity]]),
		EWLTP:           parseFloat(row[idx[ColEWLTP]]),
		Mass:            parseFloat(row[idx[ColMass]]),
		Values:          row,
	}, nil
}

// parseFloat returns NaN for blank or unparseable cells.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// parseInt coerces a cell to an integer, truncating any fraction. Blank and
// non-numeric cells cannot be coerced.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to integer", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %q to integer", s)
	}
	return int(f), nil
}
