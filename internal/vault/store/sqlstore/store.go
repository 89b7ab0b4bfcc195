package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/passvault/internal/vault/store"
)

// Migrator applies the driver's schema migrations to db.
type Migrator func(db *sql.DB) error

// Store implements store.Store over a *sql.DB.
type Store struct {
	db      *sql.DB
	dialect Dialect
	migrate Migrator
}

var _ store.Store = (*Store)(nil)

func New(db *sql.DB, d Dialect, migrate Migrator) *Store {
	return &Store{db: db, dialect: d, migrate: migrate}
}

// DB exposes the pool for metrics collection and tests.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ApplyMigrations() error {
	if s.migrate == nil {
		return fmt.Errorf("sqlstore: %s driver has no migrations", s.dialect.Name)
	}
	return s.migrate(s.db)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.dialect), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback after Commit returns sql.ErrTxDone and is harmless; it also
	// covers panics in fn.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users {
	return newRepo(s.db, s.dialect, &usersTable)
}

func (s *Store) Credentials() store.Credentials {
	return newRepo(s.db, s.dialect, &credentialsTable)
}

func (s *Store) EmailAccounts() store.EmailAccounts {
	return newRepo(s.db, s.dialect, &emailAccountsTable)
}

func (s *Store) CreditCards() store.CreditCards {
	return newRepo(s.db, s.dialect, &creditCardsTable)
}

func (s *Store) Devices() store.Devices {
	return newRepo(s.db, s.dialect, &devicesTable)
}

// errNestedTx is returned when a Tx-scoped store is asked for another tx.
var errNestedTx = errors.New("sqlstore: nested transactions are not supported")
