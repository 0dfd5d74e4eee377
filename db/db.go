package db

import (
	"database/sql"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var (
	db      *sql.DB
	once    sync.Once
	initErr error
)

// Init opens the SQLite database at path. Only the first call opens a
// connection; later calls return the outcome of the first.
func Init(path string) error {
	once.Do(func() {
		db, initErr = sql.Open("sqlite3", "file:"+path+"?mode=ro&_query_only=true")
		if initErr != nil {
			log.Printf("[db] Failed to open database: %v", initErr)
			return
		}

		if initErr = db.Ping(); initErr != nil {
			log.Printf("[db] Failed to ping database: %v", initErr)
			return
		}

		log.Printf("[db] Database opened read-only: %s", path)
	})
	return initErr
}

// Get returns the database connection
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init() first.")
	}
	return db
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

// Ping reports whether the connection, if any, is alive. A process serving
// a CSV dataset has no connection and is always healthy here.
func Ping() error {
	if db == nil {
		return nil
	}
	return db.Ping()
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
