// Package db stores one record per user with the user's incomes and
// expenses embedded in it. Ledger mutations are single-record atomic
// updates on every engine.
package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Swamy718/Expense-Tracker-backend/models"
)

var (
	_ Repository = (*Storage)(nil)
	_ Repository = (*MongoStorage)(nil)
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrDuplicateEmail    = errors.New("duplicate email")
)

// Repository is the user store. Find methods return a nil user and a nil
// error when nothing matches. Append and Remove return the number of
// modified records; zero means the user (or, for Remove, the entry) was not
// there.
type Repository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)

	AppendIncome(ctx context.Context, username string, income models.Income) (int64, error)
	AppendExpense(ctx context.Context, username string, expense models.Expense) (int64, error)
	RemoveIncome(ctx context.Context, username, id string) (int64, error)
	RemoveExpense(ctx context.Context, username, id string) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}

// Open picks the engine from the connection string scheme:
//
//	postgres://... or postgresql://...  PostgreSQL, lists in JSONB columns
//	mongodb://... or mongodb+srv://...  MongoDB, native embedded arrays
//	sqlite://<path>                     SQLite file (or sqlite://:memory:)
func Open(ctx context.Context, databaseURL string) (Repository, error) {
	scheme, rest, ok := strings.Cut(databaseURL, "://")
	if !ok {
		return nil, fmt.Errorf("database url %q has no scheme", databaseURL)
	}
	var (
		repo Repository
		err  error
	)
	switch scheme {
	case "postgres", "postgresql":
		repo, err = NewPostgresStorage(ctx, databaseURL)
	case "sqlite", "sqlite3":
		repo, err = NewSQLiteStorage(ctx, rest)
	case "mongodb", "mongodb+srv":
		repo, err = NewMongoStorage(ctx, databaseURL, mongoDatabaseName(databaseURL))
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", scheme)
	}
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// SupportedScheme reports whether Open understands the url.
func SupportedScheme(databaseURL string) bool {
	scheme, _, ok := strings.Cut(databaseURL, "://")
	if !ok {
		return false
	}
	switch scheme {
	case "postgres", "postgresql", "sqlite", "sqlite3", "mongodb", "mongodb+srv":
		return true
	}
	return false
}

func mongoDatabaseName(uri string) string {
	if u, err := url.Parse(uri); err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return DefaultMongoDatabase
}
