package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// NewSQLiteStorage opens the database file at path (":memory:" for a
// throwaway database) and migrates it.
func NewSQLiteStorage(ctx context.Context, path string) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// one connection: writes serialize anyway and ":memory:" is per connection
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrateSQLite(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &Storage{DB: conn, dialect: sqliteDialect{}}, nil
}
