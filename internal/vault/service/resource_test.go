package service_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/passvault/internal/vault/store/sqlstore"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T) (*service.Services, *sqlstore.Store) {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return service.New(s), s
}

func ptr[V any](v V) *V { return &v }

func createUser(t *testing.T, svc *service.Services, name string) domain.User {
	t.Helper()
	u, err := svc.Users.Create(context.Background(), domain.User{Username: name, MasterPasswordHash: "hash-" + name})
	require.NoError(t, err)
	return u
}

func TestExampleScenario(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	alice, err := svc.Users.Create(ctx, domain.User{Username: "alice", MasterPasswordHash: "h1"})
	require.NoError(t, err)
	require.Equal(t, int64(1), alice.ID)
	require.Nil(t, alice.Email)

	cred, err := svc.Credentials.Create(ctx, domain.Credential{
		UserID:            1,
		Title:             ptr("gmail"),
		PasswordEncrypted: "x",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), cred.ID)
	require.Equal(t, "gmail", *cred.Title)

	_, err = svc.Credentials.Create(ctx, domain.Credential{UserID: 999, PasswordEncrypted: "y"})
	require.ErrorIs(t, err, service.ErrParentNotFound)

	all, err := svc.Credentials.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestRoundTrip(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	t.Run("user", func(t *testing.T) {
		got, err := svc.Users.Get(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u, got)
	})

	t.Run("credential", func(t *testing.T) {
		c, err := svc.Credentials.Create(ctx, domain.Credential{UserID: u.ID, URL: ptr("https://example.com"), PasswordEncrypted: "p"})
		require.NoError(t, err)
		got, err := svc.Credentials.Get(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, c, got)
	})

	t.Run("email account", func(t *testing.T) {
		e, err := svc.EmailAccounts.Create(ctx, domain.EmailAccount{UserID: u.ID, EmailAddress: "a@example.com", PasswordEncrypted: "p"})
		require.NoError(t, err)
		require.False(t, e.TwoFactorEnabled)
		got, err := svc.EmailAccounts.Get(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, e, got)
	})

	t.Run("credit card", func(t *testing.T) {
		exp := domain.NewDate(2029, time.June, 30)
		c, err := svc.CreditCards.Create(ctx, domain.CreditCard{
			UserID:              u.ID,
			CardNumberEncrypted: "4111",
			CVVEncrypted:        "999",
			ExpirationDate:      &exp,
		})
		require.NoError(t, err)
		require.Equal(t, domain.CardTypeCredit, c.CardType)
		got, err := svc.CreditCards.Get(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, c, got)
		require.Equal(t, "4111", got.CardNumberEncrypted)
	})

	t.Run("device", func(t *testing.T) {
		d, err := svc.Devices.Create(ctx, domain.Device{UserID: u.ID, AdminPasswordEncrypted: "p"})
		require.NoError(t, err)
		require.Equal(t, domain.DeviceTypeLaptop, d.DeviceType)
		got, err := svc.Devices.Get(ctx, d.ID)
		require.NoError(t, err)
		require.Equal(t, d, got)
	})
}

func TestDeleteThenGet(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	c, err := svc.Credentials.Create(ctx, domain.Credential{UserID: u.ID, PasswordEncrypted: "p"})
	require.NoError(t, err)
	e, err := svc.EmailAccounts.Create(ctx, domain.EmailAccount{UserID: u.ID, EmailAddress: "a@b.c", PasswordEncrypted: "p"})
	require.NoError(t, err)
	cc, err := svc.CreditCards.Create(ctx, domain.CreditCard{UserID: u.ID, CardNumberEncrypted: "1", CVVEncrypted: "2"})
	require.NoError(t, err)
	d, err := svc.Devices.Create(ctx, domain.Device{UserID: u.ID, AdminPasswordEncrypted: "p"})
	require.NoError(t, err)

	require.NoError(t, svc.Credentials.Delete(ctx, c.ID, service.DeleteOptions{}))
	_, err = svc.Credentials.Get(ctx, c.ID)
	require.ErrorIs(t, err, service.ErrCredentialNotFound)

	require.NoError(t, svc.EmailAccounts.Delete(ctx, e.ID, service.DeleteOptions{}))
	_, err = svc.EmailAccounts.Get(ctx, e.ID)
	require.ErrorIs(t, err, service.ErrEmailAccountNotFound)

	require.NoError(t, svc.CreditCards.Delete(ctx, cc.ID, service.DeleteOptions{}))
	_, err = svc.CreditCards.Get(ctx, cc.ID)
	require.ErrorIs(t, err, service.ErrCreditCardNotFound)

	require.NoError(t, svc.Devices.Delete(ctx, d.ID, service.DeleteOptions{}))
	_, err = svc.Devices.Get(ctx, d.ID)
	require.ErrorIs(t, err, service.ErrDeviceNotFound)

	require.NoError(t, svc.Users.Delete(ctx, u.ID, service.DeleteOptions{}))
	_, err = svc.Users.Get(ctx, u.ID)
	require.ErrorIs(t, err, service.ErrUserNotFound)

	require.ErrorIs(t, svc.Users.Delete(ctx, u.ID, service.DeleteOptions{}), service.ErrUserNotFound)
}

func TestCreateWithMissingParentInsertsNothing(t *testing.T) {
	svc, s := newServices(t)
	ctx := context.Background()

	_, err := svc.EmailAccounts.Create(ctx, domain.EmailAccount{UserID: 42, EmailAddress: "a@b.c", PasswordEncrypted: "p"})
	require.ErrorIs(t, err, service.ErrParentNotFound)
	_, err = svc.CreditCards.Create(ctx, domain.CreditCard{UserID: 42, CardNumberEncrypted: "1", CVVEncrypted: "2"})
	require.ErrorIs(t, err, service.ErrParentNotFound)
	_, err = svc.Devices.Create(ctx, domain.Device{UserID: 42, AdminPasswordEncrypted: "p"})
	require.ErrorIs(t, err, service.ErrParentNotFound)

	for _, count := range []func(context.Context) (int64, error){
		s.EmailAccounts().Count, s.CreditCards().Count, s.Devices().Count,
	} {
		n, err := count(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	}
	require.Zero(t, s.DB().Stats().InUse)
}

func TestEmailAccountPartialUpdate(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	e, err := svc.EmailAccounts.Create(ctx, domain.EmailAccount{
		UserID:            u.ID,
		EmailAddress:      "alice@example.com",
		RecoveryEmail:     ptr("backup@example.com"),
		TwoFactorEnabled:  true,
		PasswordEncrypted: "p",
	})
	require.NoError(t, err)

	updated, err := svc.EmailAccounts.Update(ctx, e.ID, domain.EmailAccountPatch{Provider: ptr("fastmail")})
	require.NoError(t, err)

	want := e
	want.Provider = ptr("fastmail")
	require.Equal(t, want, updated)

	_, err = svc.EmailAccounts.Update(ctx, e.ID, domain.EmailAccountPatch{})
	require.ErrorIs(t, err, service.ErrNoFieldsToUpdate)

	// Absent rows are reported before empty patches.
	_, err = svc.EmailAccounts.Update(ctx, 999, domain.EmailAccountPatch{})
	require.ErrorIs(t, err, service.ErrEmailAccountNotFound)
}

func TestUpdateValidatesMergedEntity(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	d, err := svc.Devices.Create(ctx, domain.Device{UserID: u.ID, AdminPasswordEncrypted: "p"})
	require.NoError(t, err)

	bad := domain.DeviceType("Phone")
	_, err = svc.Devices.Update(ctx, d.ID, domain.DevicePatch{DeviceType: &bad})
	require.ErrorIs(t, err, service.ErrInvalidInput)

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "device_type", verr.Fields[0].Field)

	got, err := svc.Devices.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DeviceTypeLaptop, got.DeviceType)
}

func TestCreditCardOwnerChange(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	c, err := svc.CreditCards.Create(ctx, domain.CreditCard{UserID: alice.ID, CardNumberEncrypted: "1", CVVEncrypted: "2"})
	require.NoError(t, err)

	moved, err := svc.CreditCards.Update(ctx, c.ID, domain.CreditCardPatch{UserID: &bob.ID})
	require.NoError(t, err)
	require.Equal(t, bob.ID, moved.UserID)

	_, err = svc.CreditCards.Update(ctx, c.ID, domain.CreditCardPatch{UserID: ptr(int64(999))})
	require.ErrorIs(t, err, service.ErrParentNotFound)
}

func TestUserFullReplace(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	got, err := svc.Users.Update(ctx, u.ID, domain.UserPatch{
		Username:           ptr("alice2"),
		MasterPasswordHash: ptr("h2"),
		Email:              ptr("a2@example.com"),
	})
	require.NoError(t, err)
	require.Equal(t, "alice2", got.Username)
	require.Equal(t, "h2", got.MasterPasswordHash)
	require.Equal(t, "a2@example.com", *got.Email)
	require.Equal(t, u.CreatedAt, got.CreatedAt)
}

func TestUserDeleteWithDependents(t *testing.T) {
	svc, s := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	_, err := svc.Credentials.Create(ctx, domain.Credential{UserID: u.ID, PasswordEncrypted: "p"})
	require.NoError(t, err)
	_, err = svc.Devices.Create(ctx, domain.Device{UserID: u.ID, AdminPasswordEncrypted: "p"})
	require.NoError(t, err)

	err = svc.Users.Delete(ctx, u.ID, service.DeleteOptions{})
	require.ErrorIs(t, err, service.ErrUserHasDependents)

	_, err = svc.Users.Get(ctx, u.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Users.Delete(ctx, u.ID, service.DeleteOptions{Cascade: true}))

	n, err := s.Credentials().CountByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Zero(t, n)
	n, err = s.Devices().CountByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = svc.Users.Get(ctx, u.ID)
	require.ErrorIs(t, err, service.ErrUserNotFound)
	require.Zero(t, s.DB().Stats().InUse)
}

func TestUserDeleteRestrictedWithoutCleanup(t *testing.T) {
	svc, s := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	_, err := svc.Devices.Create(ctx, domain.Device{UserID: u.ID, AdminPasswordEncrypted: "p"})
	require.NoError(t, err)

	// Without the dependent check the store's RESTRICT action has to surface.
	users := service.NewUsersService(s)
	users.BeforeDelete = nil

	err = users.Delete(ctx, u.ID, service.DeleteOptions{})
	require.ErrorIs(t, err, service.ErrUserHasDependents)

	_, err = users.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Zero(t, s.DB().Stats().InUse)
}

func TestDevicePartialUpdate(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	bought, err := domain.ParseDate("2024-02-29")
	require.NoError(t, err)

	d, err := svc.Devices.Create(ctx, domain.Device{
		UserID:                 u.ID,
		DeviceType:             domain.DeviceTypeLaptop,
		Brand:                  ptr("Framework"),
		Model:                  ptr("13"),
		SerialNumber:           ptr("FW-0001"),
		AdminPasswordEncrypted: "admin",
		PurchaseDate:           &bought,
	})
	require.NoError(t, err)

	updated, err := svc.Devices.Update(ctx, d.ID, domain.DevicePatch{OperatingSystem: ptr("NixOS")})
	require.NoError(t, err)

	want := d
	want.OperatingSystem = ptr("NixOS")
	require.Equal(t, want, updated)
	require.Equal(t, "2024-02-29", updated.PurchaseDate.String())

	got, err := svc.Devices.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestCredentialPartialUpdate(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	c, err := svc.Credentials.Create(ctx, domain.Credential{
		UserID:            u.ID,
		Title:             ptr("gmail"),
		Username:          ptr("alice"),
		URL:               ptr("https://mail.google.com"),
		PasswordEncrypted: "x",
	})
	require.NoError(t, err)

	updated, err := svc.Credentials.Update(ctx, c.ID, domain.CredentialPatch{PasswordEncrypted: ptr("rotated")})
	require.NoError(t, err)

	want := c
	want.PasswordEncrypted = "rotated"
	require.Equal(t, want, updated)

	got, err := svc.Credentials.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()
	u := createUser(t, svc, "alice")

	_, err := svc.Users.Create(ctx, domain.User{Username: "bob"})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []service.FieldError{{Field: "master_password_hash", Message: "field required"}}, verr.Fields)

	_, err = svc.Devices.Create(ctx, domain.Device{
		UserID:                 u.ID,
		Brand:                  ptr(strings.Repeat("x", 51)),
		AdminPasswordEncrypted: "p",
	})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "brand", verr.Fields[0].Field)

	_, err = svc.CreditCards.Create(ctx, domain.CreditCard{UserID: u.ID, CardNumberEncrypted: "1", CVVEncrypted: "2", CardType: "Store"})
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestPoolReleasedAfterFailures(t *testing.T) {
	svc, s := newServices(t)
	ctx := context.Background()

	_, _ = svc.Devices.Update(ctx, 1, domain.DevicePatch{Notes: ptr("x")})
	_ = svc.CreditCards.Delete(ctx, 1, service.DeleteOptions{})
	_, _ = svc.Credentials.Create(ctx, domain.Credential{UserID: 1, PasswordEncrypted: "p"})

	require.Zero(t, s.DB().Stats().InUse)
}
