package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/passvault/internal/vault/store"
)

type txStore struct {
	tx      *sql.Tx
	dialect Dialect
}

func newTx(tx *sql.Tx, d Dialect) *txStore {
	return &txStore{tx: tx, dialect: d}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the owner of the transaction commits or rolls back.
func (t *txStore) Close() error { return nil }

// Ping is a no-op: a live transaction already holds a connection.
func (t *txStore) Ping(context.Context) error { return nil }

func (t *txStore) Tx(context.Context) (store.Tx, error) { return nil, errNestedTx }

func (t *txStore) WithTx(context.Context, func(store.Tx) error) error { return errNestedTx }

// ApplyMigrations is a no-op; migrations run before any transaction.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Users() store.Users {
	return newRepo(t.tx, t.dialect, &usersTable)
}

func (t *txStore) Credentials() store.Credentials {
	return newRepo(t.tx, t.dialect, &credentialsTable)
}

func (t *txStore) EmailAccounts() store.EmailAccounts {
	return newRepo(t.tx, t.dialect, &emailAccountsTable)
}

func (t *txStore) CreditCards() store.CreditCards {
	return newRepo(t.tx, t.dialect, &creditCardsTable)
}

func (t *txStore) Devices() store.Devices {
	return newRepo(t.tx, t.dialect, &devicesTable)
}
