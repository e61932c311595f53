package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"healthlog/internal/domain/record"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const schema = `
CREATE TABLE IF NOT EXISTS health_log (
	identity TEXT PRIMARY KEY,
	record   TEXT NOT NULL
);`

// SQLiteStore persists records in a single-table SQLite database, one
// JSON-encoded blob per identity. The encoding is opaque to everything
// above the gateway.
type SQLiteStore struct {
	db *sql.DB
}

// SQLiteOption applies a configuration option to the SQLiteStore.
type SQLiteOption func(*sqliteConfig)

type sqliteConfig struct {
	busyTimeoutMS int
}

// WithBusyTimeout sets the SQLite busy timeout in milliseconds.
func WithBusyTimeout(ms int) SQLiteOption {
	return func(c *sqliteConfig) {
		if ms > 0 {
			c.busyTimeoutMS = ms
		}
	}
}

// NewSQLiteStore opens (creating if needed) the database at path and
// ensures the schema exists.
func NewSQLiteStore(ctx context.Context, path string, opts ...SQLiteOption) (*SQLiteStore, error) {
	cfg := &sqliteConfig{busyTimeoutMS: 5000}
	for _, opt := range opts {
		opt(cfg)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, cfg.busyTimeoutMS)
	db, err := openDB("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context, identity string) (*record.Record, error) {
	if identity == "" {
		return nil, ErrNoIdentity
	}

	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM health_log WHERE identity = ?`, identity).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}

	rec := record.New()
	if err := json.Unmarshal([]byte(blob), rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(ctx context.Context, identity string, rec *record.Record) error {
	if identity == "" {
		return ErrNoIdentity
	}
	if rec == nil {
		return ErrNilRecord
	}

	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO health_log (identity, record) VALUES (?, ?)
		 ON CONFLICT(identity) DO UPDATE SET record = excluded.record`,
		identity, string(blob))
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close sqlite store: %w", err)
	}
	return nil
}
