package vehicle

import (
	"database/sql"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/co2-watch/site/db"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads the dataset from a table written by cmd/import_csv.
// Columns beyond RequiredColumns are kept for display.
func LoadSQLite(conn *sql.DB, table string) (*Dataset, error) {
	if !ValidTableName(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	source := "sqlite:" + table

	rows, err := conn.Query(fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table, err)
	}
	idx, err := indexColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	var records []Record
	line := 0
	for rows.Next() {
		line++
		cells := make([]sql.NullString, len(header))
		dest := make([]interface{}, len(header))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s row %d: %w", table, line, err)
		}

		row := make([]string, len(header))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", source, line, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	ds, err := NewDataset(header, records, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	log.Printf("[dataset] Loaded %d rows, %d columns from %s", ds.Len(), len(header), source)
	return ds, nil
}

// ValidTableName reports whether table is a plain SQL identifier, safe to
// interpolate into a query.
func ValidTableName(table string) bool {
	return tableNamePattern.MatchString(table)
}

// IsSQLiteSource reports whether source names a SQLite database rather
// than a CSV file.
func IsSQLiteSource(source string) bool {
	if strings.HasPrefix(source, "sqlite:") {
		return true
	}
	lower := strings.ToLower(source)
	return strings.HasSuffix(lower, ".db") || strings.HasSuffix(lower, ".sqlite")
}

// Open loads the dataset from source. SQLite sources are opened through the
// shared db connection and read from table.
func Open(source, table string) (*Dataset, error) {
	if !IsSQLiteSource(source) {
		return LoadCSVFile(source)
	}

	path := strings.TrimPrefix(source, "sqlite:")
	if err := db.Init(path); err != nil {
		return nil, fmt.Errorf("open dataset database: %w", err)
	}
	return LoadSQLite(db.Get(), table)
}
