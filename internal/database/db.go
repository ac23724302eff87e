package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/taskloot/internal/util"
	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the sqlite connection holding the grant history.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the sqlite database at dbFile, creating the schema and
// applying migrations as needed.
func Open(ctx context.Context, dbFile string) (*Database, error) {
	conn, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &Database{DB: conn, dbFile: dbFile}
	if err := d.createTables(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS grants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task TEXT NOT NULL,
			reward TEXT NOT NULL,
			tier TEXT NOT NULL,
			chance REAL NOT NULL,
			link TEXT,
			saved_to_daily INTEGER DEFAULT 0,
			granted_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_grants_granted_at ON grants(granted_at);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// migrate brings databases created by older releases up to the current
// schema. ALTERs against already-migrated columns fail and are ignored.
func (d *Database) migrate(ctx context.Context) error {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE grants ADD COLUMN link TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE grants ADD COLUMN saved_to_daily INTEGER DEFAULT 0")
	return nil
}

// WithTx runs fn inside a transaction, rolling back when fn errors.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		util.LogError("transaction rollback failed", rbErr)
	}
	return err
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
