package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// DB wraps sql.DB for either SQLite or Postgres (via pgx).
type DB struct {
	Client *sql.DB
	Driver string
}

// NewDB opens a connection pool, verifies it and creates the schema if absent.
func NewDB(ctx context.Context, driver, connString string) (*DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := sql.Open(driver, connString)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if driver == DriverSQLite {
		// every statement is its own commit on a single connection; this also
		// keeps ":memory:" databases visible across calls.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(time.Hour)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	d := &DB{Client: db, Driver: driver}
	if err := d.createSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return d, nil
}

func (d *DB) createSchema(ctx context.Context) error {
	schema := sqliteSchema
	if d.Driver == DriverPostgres {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := d.Client.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Healthy verifies db connectivity.
func (d *DB) Healthy(ctx context.Context) bool {
	if d == nil || d.Client == nil {
		return false
	}
	return d.Client.PingContext(ctx) == nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Close()
}

// attendance.emp_id is declared against employee.emp_id on SQLite, where
// foreign keys stay off by default. Postgres would enforce the reference, and
// attendance must survive employee deletion, so it carries no constraint there.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS employee (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		emp_id      VARCHAR(50)  NOT NULL UNIQUE,
		name        VARCHAR(100) NOT NULL,
		email       VARCHAR(100) NOT NULL,
		department  VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		emp_id  VARCHAR(50) NOT NULL REFERENCES employee(emp_id),
		date    VARCHAR(20) NOT NULL,
		status  VARCHAR(10) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_emp_id ON attendance(emp_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS employee (
		id          BIGSERIAL PRIMARY KEY,
		emp_id      VARCHAR(50)  NOT NULL UNIQUE,
		name        VARCHAR(100) NOT NULL,
		email       VARCHAR(100) NOT NULL,
		department  VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id      BIGSERIAL PRIMARY KEY,
		emp_id  VARCHAR(50) NOT NULL,
		date    VARCHAR(20) NOT NULL,
		status  VARCHAR(10) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_emp_id ON attendance(emp_id)`,
}
