package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
	"github.com/parts-pile/vehicles/vehicle"
)

var db *sql.DB

// Init opens the SQLite database at databaseURL and verifies it with a ping
// bounded by ctx. A previous connection is closed once the new one is up; on
// failure the previous connection stays in place.
func Init(ctx context.Context, databaseURL string) error {
	conn, err := sql.Open("sqlite3", databaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("ping database %s: %w", databaseURL, err)
	}

	if db != nil {
		db.Close()
	}
	db = conn
	log.Printf("[db] Database initialized successfully: %s", databaseURL)
	return nil
}

// Get returns the database connection.
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init first.")
	}
	return db
}

// Ready reports whether a connection has been set up.
func Ready() bool {
	return db != nil
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

const schema = `CREATE TABLE IF NOT EXISTS Vehicle (
	id INTEGER PRIMARY KEY,
	make TEXT NOT NULL,
	model TEXT NOT NULL,
	submodel TEXT,
	date_of_manufacture TEXT NOT NULL DEFAULT '',
	transmission TEXT NOT NULL DEFAULT '',
	fuel TEXT NOT NULL DEFAULT '',
	engine_size TEXT NOT NULL DEFAULT ''
)`

const selectVehicles = `SELECT id, make, model, submodel, date_of_manufacture, transmission, fuel, engine_size FROM Vehicle ORDER BY id`

const insertVehicle = `INSERT INTO Vehicle (make, model, submodel, date_of_manufacture, transmission, fuel, engine_size) VALUES (?, ?, ?, ?, ?, ?, ?)`

// EnsureSchema creates the Vehicle table if it does not exist.
func EnsureSchema(ctx context.Context) error {
	_, err := Get().ExecContext(ctx, schema)
	return err
}

// LoadVehicles reads every row of the Vehicle table.
func LoadVehicles(ctx context.Context) ([]vehicle.Record, error) {
	rows, err := Get().QueryContext(ctx, selectVehicles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []vehicle.Record
	for rows.Next() {
		var r vehicle.Record
		var submodel sql.NullString
		if err := rows.Scan(&r.ID, &r.Make, &r.Model, &submodel,
			&r.DateOfManufacture, &r.Transmission, &r.Fuel, &r.EngineSize); err != nil {
			return nil, err
		}
		if submodel.Valid {
			s := submodel.String
			r.Submodel = &s
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// InsertVehicles inserts records in a single transaction and returns the
// number of rows written. The record IDs are ignored; SQLite assigns new ones.
func InsertVehicles(ctx context.Context, records []vehicle.Record) (int, error) {
	tx, err := Get().BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for i, r := range records {
		var submodel sql.NullString
		if r.Submodel != nil {
			submodel = sql.NullString{String: *r.Submodel, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, insertVehicle, r.Make, r.Model, submodel,
			r.DateOfManufacture, r.Transmission, r.Fuel, r.EngineSize); err != nil {
			return 0, fmt.Errorf("insert vehicle %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Loader reads the vehicle collection from the initialized database.
type Loader struct{}

// Load implements source.Loader.
func (Loader) Load(ctx context.Context) ([]vehicle.Record, error) {
	return LoadVehicles(ctx)
}

// String describes the loader for logs.
func (Loader) String() string {
	return "database"
}
