package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/passvault/internal/vault/store"
)

// repo serves store.OwnedRepository for any Table. For unowned tables the
// owner methods are never reachable through the store.Repository interface.
type repo[T any] struct {
	db      DBTX
	dialect Dialect
	table   *Table[T]
}

func newRepo[T any](db DBTX, d Dialect, t *Table[T]) *repo[T] {
	return &repo[T]{db: db, dialect: d, table: t}
}

func (r *repo[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.table.listSQL())
	if err != nil {
		return nil, r.wrap("list", err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var v T
		if err := rows.Scan(r.table.Dest(&v)...); err != nil {
			return nil, r.wrap("list", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap("list", err)
	}
	return out, nil
}

func (r *repo[T]) Get(ctx context.Context, id int64) (T, error) {
	var v T
	err := r.db.QueryRowContext(ctx, r.table.getSQL(r.dialect), id).Scan(r.table.Dest(&v)...)
	if err != nil {
		return v, r.wrap("get", err)
	}
	return v, nil
}

func (r *repo[T]) Create(ctx context.Context, v T) (T, error) {
	var out T
	err := r.db.QueryRowContext(ctx, r.table.insertSQL(r.dialect), r.table.Values(&v)...).
		Scan(r.table.Dest(&out)...)
	if err != nil {
		return out, r.wrap("create", err)
	}
	return out, nil
}

func (r *repo[T]) Update(ctx context.Context, v T) (T, error) {
	args := append(r.table.Values(&v), r.table.ID(&v))

	var out T
	err := r.db.QueryRowContext(ctx, r.table.updateSQL(r.dialect), args...).
		Scan(r.table.Dest(&out)...)
	if err != nil {
		return out, r.wrap("update", err)
	}
	return out, nil
}

func (r *repo[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.table.deleteSQL(r.dialect), id)
	if err != nil {
		return r.wrap("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return r.wrap("delete", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *repo[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, r.table.existsSQL(r.dialect), id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, r.wrap("exists", err)
	}
	return true, nil
}

func (r *repo[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, r.table.countSQL()).Scan(&n); err != nil {
		return 0, r.wrap("count", err)
	}
	return n, nil
}

func (r *repo[T]) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, r.table.countByOwnerSQL(r.dialect), userID).Scan(&n); err != nil {
		return 0, r.wrap("count by user", err)
	}
	return n, nil
}

func (r *repo[T]) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.table.deleteByOwnerSQL(r.dialect), userID)
	if err != nil {
		return 0, r.wrap("delete by user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, r.wrap("delete by user", err)
	}
	return n, nil
}

// wrap maps driver errors onto store sentinels and tags the rest with the
// table and operation.
func (r *repo[T]) wrap(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case r.dialect.IsForeignKeyViolation != nil && r.dialect.IsForeignKeyViolation(err):
		return fmt.Errorf("%s %s: %w: %v", r.table.Name, op, store.ErrForeignKey, err)
	default:
		return fmt.Errorf("%s %s: %w", r.table.Name, op, err)
	}
}
