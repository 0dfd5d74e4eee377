package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/co2-watch/site/vehicle"
)

func main() {
	var (
		csvFile = flag.String("csv", "Updated_Ireland_data.csv", "CSV file to import")
		dbFile  = flag.String("db", "emissions.db", "SQLite database to write")
		table   = flag.String("table", "records", "Table to (re)create")
	)
	flag.Parse()

	ds, err := vehicle.LoadCSVFile(*csvFile)
	if err != nil {
		log.Fatalf("Failed to load CSV: %v", err)
	}

	db, err := sql.Open("sqlite3", *dbFile)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := importDataset(db, ds, *table); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	fmt.Printf("Imported %d rows into %s.%s\n", ds.Len(), *dbFile, *table)
}

// importDataset replaces table with the rows of ds in one transaction.
// Required numeric columns are stored typed, with NULL for missing values;
// every other column is stored as text.
func importDataset(db *sql.DB, ds *vehicle.Dataset, table string) error {
	if !vehicle.ValidTableName(table) {
		return fmt.Errorf("invalid table name %q", table)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, table)); err != nil {
		return fmt.Errorf("drop %s: %w", table, err)
	}
	if _, err := tx.Exec(createTableSQL(table, ds.Header)); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}

	stmt, err := tx.Prepare(insertSQL(table, ds.Header))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range ds.Records {
		if _, err := stmt.Exec(rowArgs(ds.Header, r)...); err != nil {
			return fmt.Errorf("insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func columnType(name string) string {
	switch name {
	case vehicle.ColEnginePower:
		return "INTEGER"
	case vehicle.ColFuelConsumption, vehicle.ColEngineCapacity, vehicle.ColEWLTP, vehicle.ColMass:
		return "REAL"
	}
	return "TEXT"
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func createTableSQL(table string, header []string) string {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = quoteIdent(h) + " " + columnType(h)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(cols, ", "))
}

func insertSQL(table string, header []string) string {
	cols := make([]string, len(header))
	marks := make([]string, len(header))
	for i, h := range header {
		cols[i] = quoteIdent(h)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(cols, ", "), strings.Join(marks, ", "))
}

func rowArgs(header []string, r vehicle.Record) []interface{} {
	args := make([]interface{}, len(header))
	for i, h := range header {
		switch columnType(h) {
		case "INTEGER":
			args[i] = r.EnginePower
		case "REAL":
			v, _ := r.Numeric(h)
			if math.IsNaN(v) {
				args[i] = nil
			} else {
				args[i] = v
			}
		default:
			args[i] = r.Values[i]
		}
	}
	return args
}
