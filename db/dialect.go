package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// dialect holds the engine specific SQL of Storage. Column names passed in
// are always package constants, never user input.
type dialect interface {
	existsSQL(column string) string
	insertUserSQL() string
	selectUserSQL(column string) string
	pushSQL(column, username, doc string) (string, []any)
	pullSQL(column, username, id string) (string, []any)
	// duplicate maps a unique violation to ErrDuplicateUsername or
	// ErrDuplicateEmail and returns nil for anything else.
	duplicate(err error) error
}

const selectColumns = "username, email, hashed_password, created_at, income_list, expense_list"

type postgresDialect struct{}

func (postgresDialect) existsSQL(column string) string {
	return fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM users WHERE %s = $1)", column)
}

func (postgresDialect) insertUserSQL() string {
	return `INSERT INTO users (username, email, hashed_password, created_at, income_list, expense_list)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb)`
}

func (postgresDialect) selectUserSQL(column string) string {
	return fmt.Sprintf("SELECT %s FROM users WHERE %s = $1", selectColumns, column)
}

func (postgresDialect) pushSQL(column, username, doc string) (string, []any) {
	q := fmt.Sprintf(`UPDATE users SET %[1]s = %[1]s || jsonb_build_array($2::jsonb) WHERE username = $1`, column)
	return q, []any{username, doc}
}

func (postgresDialect) pullSQL(column, username, id string) (string, []any) {
	q := fmt.Sprintf(`UPDATE users SET %[1]s = COALESCE((
			SELECT jsonb_agg(e ORDER BY ord)
			FROM jsonb_array_elements(%[1]s) WITH ORDINALITY AS t(e, ord)
			WHERE e->>'id' <> $2::text
		), '[]'::jsonb)
		WHERE username = $1 AND %[1]s @> jsonb_build_array(jsonb_build_object('id', $2::text))`, column)
	return q, []any{username, id}
}

func (postgresDialect) duplicate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	if pqErr.Constraint == "users_email_key" {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}

type sqliteDialect struct{}

func (sqliteDialect) existsSQL(column string) string {
	return fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM users WHERE %s = ?)", column)
}

func (sqliteDialect) insertUserSQL() string {
	return `INSERT INTO users (username, email, hashed_password, created_at, income_list, expense_list)
		VALUES (?, ?, ?, ?, json(?), json(?))`
}

func (sqliteDialect) selectUserSQL(column string) string {
	return fmt.Sprintf("SELECT %s FROM users WHERE %s = ?", selectColumns, column)
}

func (sqliteDialect) pushSQL(column, username, doc string) (string, []any) {
	q := fmt.Sprintf(`UPDATE users SET %[1]s = json_insert(%[1]s, '$[#]', json(?)) WHERE username = ?`, column)
	return q, []any{doc, username}
}

func (sqliteDialect) pullSQL(column, username, id string) (string, []any) {
	q := fmt.Sprintf(`UPDATE users SET %[1]s = (
			SELECT json_group_array(json(value)) FROM json_each(users.%[1]s)
			WHERE json_extract(value, '$.id') <> ?
		)
		WHERE username = ? AND EXISTS (
			SELECT 1 FROM json_each(users.%[1]s) WHERE json_extract(value, '$.id') = ?
		)`, column)
	return q, []any{id, username, id}
}

func (sqliteDialect) duplicate(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
	default:
		return nil
	}
	if strings.Contains(sqliteErr.Error(), "users.email") {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}
