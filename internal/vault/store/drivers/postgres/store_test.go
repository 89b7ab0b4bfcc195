package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
	"github.com/aussiebroadwan/passvault/internal/vault/store/drivers/postgres"
	"github.com/aussiebroadwan/passvault/internal/vault/store/sqlstore"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*sqlstore.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return postgres.New(db), mock
}

const credentialColumns = "credential_id, user_id, title, username, url, notes, password_encrypted, created_at"

func TestCreateUsesDollarPlaceholdersAndReturning(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO credentials (user_id, title, username, url, notes, password_encrypted) " +
		"VALUES ($1, $2, $3, $4, $5, $6) RETURNING " + credentialColumns).
		WithArgs(int64(7), "github", nil, nil, nil, "s3cret").
		WillReturnRows(sqlmock.NewRows([]string{
			"credential_id", "user_id", "title", "username", "url", "notes", "password_encrypted", "created_at",
		}).AddRow(int64(1), int64(7), "github", nil, nil, nil, "s3cret", now))

	title := "github"
	got, err := s.Credentials().Create(context.Background(), domain.Credential{
		UserID:            7,
		Title:             &title,
		PasswordEncrypted: "s3cret",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID)
	require.Equal(t, "github", *got.Title)
	require.Nil(t, got.URL)
	require.Equal(t, now, got.CreatedAt)
}

func TestUpdateBindsKeyLast(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("UPDATE users SET username = $1, master_password_hash = $2, email = $3 " +
		"WHERE user_id = $4 RETURNING user_id, username, master_password_hash, email, created_at").
		WithArgs("alice", "h2", nil, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "master_password_hash", "email", "created_at"}).
			AddRow(int64(3), "alice", "h2", nil, now))

	got, err := s.Users().Update(context.Background(), domain.User{ID: 3, Username: "alice", MasterPasswordHash: "h2"})
	require.NoError(t, err)
	require.Equal(t, "h2", got.MasterPasswordHash)
}

func TestForeignKeyViolationIsMapped(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("INSERT INTO credentials (user_id, title, username, url, notes, password_encrypted) " +
		"VALUES ($1, $2, $3, $4, $5, $6) RETURNING " + credentialColumns).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	_, err := s.Credentials().Create(context.Background(), domain.Credential{UserID: 999, PasswordEncrypted: "p"})
	require.ErrorIs(t, err, store.ErrForeignKey)
}

func TestGetMissingRow(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT " + credentialColumns + " FROM credentials WHERE credential_id = $1").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"credential_id"}))

	_, err := s.Credentials().Get(context.Background(), 5)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteMissingRow(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM devices WHERE device_id = $1").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, s.Devices().Delete(context.Background(), 5), store.ErrNotFound)
}

func TestWithTxCommitsAndRollsBack(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM credit_cards WHERE user_id = $1").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.CreditCards().DeleteByUser(ctx, 2)
		require.Equal(t, int64(3), n)
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = s.WithTx(ctx, func(store.Tx) error { return boom })
	require.ErrorIs(t, err, boom)
}

func TestStorageErrorsAreWrapped(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT COUNT(*) FROM email_accounts").
		WillReturnError(errors.New("connection reset"))

	_, err := s.EmailAccounts().Count(context.Background())
	require.EqualError(t, err, "email_accounts count: connection reset")
}
