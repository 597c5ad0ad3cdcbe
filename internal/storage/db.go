// Package storage is the data access layer for students, projects, and grades.
package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB wraps the single store connection used for the lifetime of the process.
type DB struct {
	db     *sql.DB
	driver string
}

// Open opens the store with the given driver and DSN and creates the schema
// if it does not exist yet.
func Open(driver, dsn string) (*DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported driver %q (want %s or %s)", driver, DriverSQLite, DriverPostgres)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One caller, one connection; all statements run serially.
	db.SetMaxOpenConns(1)

	d := &DB{db: db, driver: driver}
	if err := d.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return d, nil
}

// OpenDB opens or creates a SQLite store at the given path.
func OpenDB(path string) (*DB, error) {
	return Open(DriverSQLite, path)
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Driver returns the driver name the store was opened with.
func (d *DB) Driver() string {
	return d.driver
}

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		github TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_students_github ON students(github);

	CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		max_grade INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_projects_title ON projects(title);

	CREATE TABLE IF NOT EXISTS grades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_github TEXT NOT NULL,
		project_title TEXT NOT NULL,
		grade REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_grades_student ON grades(student_github, project_title);
`

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS students (
		id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		github TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_students_github ON students(github);

	CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		max_grade INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_projects_title ON projects(title);

	CREATE TABLE IF NOT EXISTS grades (
		id SERIAL PRIMARY KEY,
		student_github TEXT NOT NULL,
		project_title TEXT NOT NULL,
		grade DOUBLE PRECISION NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_grades_student ON grades(student_github, project_title);
`

// createSchema creates the tables if they don't exist. There is no migration;
// an existing table is left as it is.
func (d *DB) createSchema() error {
	schema := sqliteSchema
	if d.driver == DriverPostgres {
		schema = postgresSchema
	}
	_, err := d.db.Exec(schema)
	return err
}

// rebind rewrites ? placeholders into the driver's bind syntax.
func (d *DB) rebind(query string) string {
	if d.driver != DriverPostgres {
		return query
	}
	return rebindDollar(query)
}

// rebindDollar converts ? placeholders to $1, $2, ...
// Queries in this package never contain a literal question mark.
func rebindDollar(query string) string {
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// withTx runs fn in a transaction and commits it if fn succeeds.
func (d *DB) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
