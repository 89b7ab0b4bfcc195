// Package postgres opens the vault store on PostgreSQL through pgx's
// database/sql adapter.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/store/sqlstore"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DriverName is the database/sql driver registered by pgx/v5/stdlib.
const DriverName = "pgx"

const foreignKeyViolation = "23503"

// Dialect is the postgres flavour of the shared SQL engine.
var Dialect = sqlstore.Dialect{
	Name:                  "postgres",
	Placeholder:           sqlstore.DollarPlaceholder,
	IsForeignKeyViolation: isForeignKeyViolation,
}

// PoolConfig bounds the connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the database at url and returns a store backed by it.
func Open(url string, pool PoolConfig) (*sqlstore.Store, error) {
	db, err := sql.Open(DriverName, url)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	return New(db), nil
}

// New wraps an existing pool.
func New(db *sql.DB) *sqlstore.Store {
	return sqlstore.New(db, Dialect, Migrate)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
