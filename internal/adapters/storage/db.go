package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the subset of *sql.DB the stores depend on.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// DSN builds the sqlite connection string. The in-memory default matches
// the planner's session-scoped roster; file paths get the WAL and
// busy-timeout pragmas.
func DSN(path string) string {
	if path == "" || path == ":memory:" {
		return ":memory:"
	}
	return path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables exist; foreign keys enabled
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS team_member (
		name TEXT PRIMARY KEY,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS member_shift (
		member_name TEXT NOT NULL,
		position INTEGER NOT NULL,
		label TEXT NOT NULL,
		PRIMARY KEY (member_name, position),
		FOREIGN KEY (member_name) REFERENCES team_member(name) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS member_week_off (
		member_name TEXT NOT NULL,
		position INTEGER NOT NULL,
		day TEXT NOT NULL,
		PRIMARY KEY (member_name, position),
		FOREIGN KEY (member_name) REFERENCES team_member(name) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS week_cycle (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		start TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
