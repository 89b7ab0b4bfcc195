// Package sqlite opens the vault store on an embedded SQLite database using the
// pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/passvault/internal/vault/store/sqlstore"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Pragmas applied to every pooled connection.
const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Dialect is the sqlite flavour of the shared SQL engine.
var Dialect = sqlstore.Dialect{
	Name:                  "sqlite",
	Placeholder:           sqlstore.QuestionPlaceholder,
	IsForeignKeyViolation: isForeignKeyViolation,
}

// DSN turns a database file path into a connection string with foreign keys
// enforced. Strings that already carry a query are returned untouched.
func DSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path + "?" + pragmas
}

// NewStore opens the database at dsn and returns a store backed by it.
// SQLite permits a single writer, so the pool is held to one connection.
func NewStore(dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open(DriverName, DSN(dsn))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enforce FKs even when the caller supplied its own query string.
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sqlstore.New(db, Dialect, Migrate), nil
}

// isForeignKeyViolation matches both immediate FK failures (787) and the
// RESTRICT action on delete, which SQLite reports as a trigger constraint
// (1811).
func isForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return true
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(se.Error(), "FOREIGN KEY")
}
