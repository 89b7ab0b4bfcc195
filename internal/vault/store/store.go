package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// ErrForeignKey reports a write that referenced a missing parent row.
	ErrForeignKey = errors.New("store: foreign key violation")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Resource repositories hang off it so a transaction can
// hand out the same repositories bound to its connection.
type Store interface {
	Users() Users
	Credentials() Credentials
	EmailAccounts() EmailAccounts
	CreditCards() CreditCards
	Devices() Devices

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. The connection is released on every path.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	Close() error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Repository is the CRUD surface shared by every resource table.
type Repository[T any] interface {
	// List returns every row ordered by id.
	List(ctx context.Context) ([]T, error)

	// Get returns ErrNotFound when id is absent.
	Get(ctx context.Context, id int64) (T, error)

	// Create inserts v and returns the stored row with its id and created_at.
	Create(ctx context.Context, v T) (T, error)

	// Update writes every mutable column of v, keyed by its id, and returns
	// the stored row. Returns ErrNotFound when the id is absent.
	Update(ctx context.Context, v T) (T, error)

	// Delete returns ErrNotFound when id is absent.
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// OwnedRepository is a Repository whose rows belong to a user.
type OwnedRepository[T any] interface {
	Repository[T]

	CountByUser(ctx context.Context, userID int64) (int64, error)
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

type (
	Users         = Repository[domain.User]
	Credentials   = OwnedRepository[domain.Credential]
	EmailAccounts = OwnedRepository[domain.EmailAccount]
	CreditCards   = OwnedRepository[domain.CreditCard]
	Devices       = OwnedRepository[domain.Device]
)
