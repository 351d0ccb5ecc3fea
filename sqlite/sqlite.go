// Package sqlite provides the SQLite-backed session link store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection holding one capture session.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
// A session row is created on first open; its ID names the session.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait 5 seconds before failing on lock contention; the panel and a
	// capture invocation can share the session file.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := db.ensureSession(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to initialize session: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// SessionID returns the identifier of the session stored in this database.
func (db *DB) SessionID(ctx context.Context) (string, error) {
	var id string
	err := db.QueryRowContext(ctx, `SELECT id FROM session LIMIT 1`).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ResetSession discards the current session identity and returns a fresh
// one. Callers clear the link list alongside.
func (db *DB) ResetSession(ctx context.Context) (string, error) {
	if _, err := db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err := db.ExecContext(ctx, `INSERT INTO session (id, started_at) VALUES (?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return id, nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS session (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS links (
			url TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			position INTEGER NOT NULL,
			added_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_links_position ON links(position);
	`

	_, err := db.db.Exec(schema)
	return err
}

// ensureSession inserts the session row on first open.
func (db *DB) ensureSession() error {
	var count int
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := db.db.Exec(`INSERT INTO session (id, started_at) VALUES (?, ?)`,
		uuid.New().String(), time.Now().UTC().Format(time.RFC3339))
	return err
}
