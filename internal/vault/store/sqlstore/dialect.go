// Package sqlstore is the database/sql engine behind the sqlite and postgres
// drivers. Each resource is described once as a Table and served by one
// generic repository, so the five resources share their SQL shape and error
// mapping. Drivers supply a Dialect and their migrations.
package sqlstore

import (
	"context"
	"database/sql"
	"strconv"
)

// DBTX is the subset of database/sql used by repositories. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Dialect captures what differs between SQL engines.
type Dialect struct {
	Name string

	// Placeholder returns the bind marker for the n-th argument, 1-based.
	Placeholder func(n int) string

	// IsForeignKeyViolation reports whether err is the engine's error for a
	// write that references a missing parent row.
	IsForeignKeyViolation func(err error) bool
}

// QuestionPlaceholder binds with "?" (sqlite, mysql).
func QuestionPlaceholder(int) string { return "?" }

// DollarPlaceholder binds with "$n" (postgres).
func DollarPlaceholder(n int) string { return "$" + strconv.Itoa(n) }
