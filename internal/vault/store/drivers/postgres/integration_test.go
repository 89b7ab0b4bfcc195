package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
	"github.com/aussiebroadwan/passvault/internal/vault/store/drivers/postgres"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresRoundTrip(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=1 to run.")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("vault_test"),
		tcpostgres.WithUsername("vault"),
		tcpostgres.WithPassword("vault"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(ctx) })

	url, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := postgres.Open(url, postgres.PoolConfig{MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	u, err := s.Users().Create(ctx, domain.User{Username: "alice", MasterPasswordHash: "h"})
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)

	got, err := s.Users().Get(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u, got)

	purchased := domain.NewDate(2024, time.May, 1)
	d, err := s.Devices().Create(ctx, domain.Device{
		UserID:                 u.ID,
		DeviceType:             domain.DeviceTypeTablet,
		AdminPasswordEncrypted: "p",
		PurchaseDate:           &purchased,
	})
	require.NoError(t, err)
	require.Equal(t, "2024-05-01", d.PurchaseDate.String())

	_, err = s.Credentials().Create(ctx, domain.Credential{UserID: 999, PasswordEncrypted: "p"})
	require.ErrorIs(t, err, store.ErrForeignKey)

	require.ErrorIs(t, s.Users().Delete(ctx, u.ID), store.ErrForeignKey)
	require.Zero(t, s.DB().Stats().InUse)
}
