package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// NewPostgresStorage connects, migrates the schema and returns the storage.
func NewPostgresStorage(ctx context.Context, connStr string) (*Storage, error) {
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := migratePostgres(connStr); err != nil {
		conn.Close()
		return nil, err
	}
	return &Storage{DB: conn, dialect: postgresDialect{}}, nil
}
