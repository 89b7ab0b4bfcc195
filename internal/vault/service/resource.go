// Package service holds the vault's business rules. Every resource is served
// by one generic Resource: mutations run in a single transaction, owned
// records are checked against their user before they are written, and
// updates overlay a partial patch onto the stored row before validating and
// writing it back.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
)

// DeleteOptions tunes Delete. Cascade only affects users.
type DeleteOptions struct {
	Cascade bool
}

// Resource implements list, get, create, update and delete for T, patched
// by P.
type Resource[T any, P domain.Patch[T]] struct {
	Store store.Store

	// Kind names the resource in logs.
	Kind string
	// NotFound is returned when the requested row is absent.
	NotFound error

	Repo func(s store.Store) store.Repository[T]
	ID   func(v *T) int64

	// Owner returns the owning user id, nil for unowned resources.
	Owner func(v *T) int64
	// Defaults fills omitted fields before a create is validated.
	Defaults func(v *T)
	// BeforeDelete runs inside the delete transaction once the row is known
	// to exist.
	BeforeDelete func(ctx context.Context, tx store.Tx, id int64, opts DeleteOptions) error
}

func (r *Resource[T, P]) List(ctx context.Context) ([]T, error) {
	return r.Repo(r.Store).List(ctx)
}

func (r *Resource[T, P]) Get(ctx context.Context, id int64) (T, error) {
	v, err := r.Repo(r.Store).Get(ctx, id)
	return v, r.mapErr(err)
}

// Create validates v, checks its owner exists and inserts it, returning the
// stored row.
func (r *Resource[T, P]) Create(ctx context.Context, v T) (T, error) {
	log := slogx.FromContext(ctx)

	if r.Defaults != nil {
		r.Defaults(&v)
	}
	if err := validateEntity(&v); err != nil {
		return v, err
	}

	var created T
	err := r.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := r.checkOwner(ctx, tx, &v); err != nil {
			return err
		}

		var err error
		created, err = r.Repo(tx).Create(ctx, v)
		return r.mapErr(err)
	})
	if err != nil {
		return created, err
	}

	log.Debug(r.Kind+" created", slog.Int64("id", r.ID(&created)))
	return created, nil
}

// Update overlays p onto the stored row and writes the result. Absent rows
// are reported before empty patches.
func (r *Resource[T, P]) Update(ctx context.Context, id int64, p P) (T, error) {
	log := slogx.FromContext(ctx)

	var updated T
	err := r.Store.WithTx(ctx, func(tx store.Tx) error {
		repo := r.Repo(tx)

		cur, err := repo.Get(ctx, id)
		if err != nil {
			return r.mapErr(err)
		}
		if p.Empty() {
			return ErrNoFieldsToUpdate
		}

		var prevOwner int64
		if r.Owner != nil {
			prevOwner = r.Owner(&cur)
		}

		p.Apply(&cur)
		if err := validateEntity(&cur); err != nil {
			return err
		}

		if r.Owner != nil && r.Owner(&cur) != prevOwner {
			if err := r.checkOwner(ctx, tx, &cur); err != nil {
				return err
			}
		}

		updated, err = repo.Update(ctx, cur)
		return r.mapErr(err)
	})
	if err != nil {
		return updated, err
	}

	log.Debug(r.Kind+" updated", slog.Int64("id", id))
	return updated, nil
}

func (r *Resource[T, P]) Delete(ctx context.Context, id int64, opts DeleteOptions) error {
	log := slogx.FromContext(ctx)

	err := r.Store.WithTx(ctx, func(tx store.Tx) error {
		repo := r.Repo(tx)

		ok, err := repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return r.NotFound
		}

		if r.BeforeDelete != nil {
			if err := r.BeforeDelete(ctx, tx, id, opts); err != nil {
				return err
			}
		}

		err = repo.Delete(ctx, id)
		if errors.Is(err, store.ErrForeignKey) {
			// Rows still reference this one.
			return ErrUserHasDependents
		}
		return r.mapErr(err)
	})
	if err != nil {
		return err
	}

	log.Debug(r.Kind+" deleted", slog.Int64("id", id))
	return nil
}

func (r *Resource[T, P]) checkOwner(ctx context.Context, tx store.Tx, v *T) error {
	if r.Owner == nil {
		return nil
	}

	userID := r.Owner(v)
	ok, err := tx.Users().Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		slogx.FromContext(ctx).Warn(r.Kind+" references missing user", slog.Int64("user_id", userID))
		return ErrParentNotFound
	}
	return nil
}

func (r *Resource[T, P]) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return r.NotFound
	case errors.Is(err, store.ErrForeignKey):
		return ErrParentNotFound
	default:
		return err
	}
}
