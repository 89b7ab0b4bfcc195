package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
)

type (
	UsersService         = Resource[domain.User, domain.UserPatch]
	CredentialsService   = Resource[domain.Credential, domain.CredentialPatch]
	EmailAccountsService = Resource[domain.EmailAccount, domain.EmailAccountPatch]
	CreditCardsService   = Resource[domain.CreditCard, domain.CreditCardPatch]
	DevicesService       = Resource[domain.Device, domain.DevicePatch]
)

func NewUsersService(s store.Store) *UsersService {
	return &UsersService{
		Store:        s,
		Kind:         "user",
		NotFound:     ErrUserNotFound,
		Repo:         func(s store.Store) store.Repository[domain.User] { return s.Users() },
		ID:           func(u *domain.User) int64 { return u.ID },
		BeforeDelete: deleteUserDependents,
	}
}

func NewCredentialsService(s store.Store) *CredentialsService {
	return &CredentialsService{
		Store:    s,
		Kind:     "credential",
		NotFound: ErrCredentialNotFound,
		Repo:     func(s store.Store) store.Repository[domain.Credential] { return s.Credentials() },
		ID:       func(c *domain.Credential) int64 { return c.ID },
		Owner:    func(c *domain.Credential) int64 { return c.UserID },
	}
}

func NewEmailAccountsService(s store.Store) *EmailAccountsService {
	return &EmailAccountsService{
		Store:    s,
		Kind:     "email account",
		NotFound: ErrEmailAccountNotFound,
		Repo:     func(s store.Store) store.Repository[domain.EmailAccount] { return s.EmailAccounts() },
		ID:       func(e *domain.EmailAccount) int64 { return e.ID },
		Owner:    func(e *domain.EmailAccount) int64 { return e.UserID },
	}
}

func NewCreditCardsService(s store.Store) *CreditCardsService {
	return &CreditCardsService{
		Store:    s,
		Kind:     "credit card",
		NotFound: ErrCreditCardNotFound,
		Repo:     func(s store.Store) store.Repository[domain.CreditCard] { return s.CreditCards() },
		ID:       func(c *domain.CreditCard) int64 { return c.ID },
		Owner:    func(c *domain.CreditCard) int64 { return c.UserID },
		Defaults: (*domain.CreditCard).SetDefaults,
	}
}

func NewDevicesService(s store.Store) *DevicesService {
	return &DevicesService{
		Store:    s,
		Kind:     "device",
		NotFound: ErrDeviceNotFound,
		Repo:     func(s store.Store) store.Repository[domain.Device] { return s.Devices() },
		ID:       func(d *domain.Device) int64 { return d.ID },
		Owner:    func(d *domain.Device) int64 { return d.UserID },
		Defaults: (*domain.Device).SetDefaults,
	}
}

// ownedRows is the slice of an owned repository the dependency scan needs.
type ownedRows interface {
	CountByUser(ctx context.Context, userID int64) (int64, error)
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

// deleteUserDependents refuses to orphan records unless the caller asked for
// a cascade, in which case the records go in the same transaction as the
// user.
func deleteUserDependents(ctx context.Context, tx store.Tx, userID int64, opts DeleteOptions) error {
	owned := []struct {
		table string
		rows  ownedRows
	}{
		{"credentials", tx.Credentials()},
		{"email_accounts", tx.EmailAccounts()},
		{"credit_cards", tx.CreditCards()},
		{"devices", tx.Devices()},
	}

	log := slogx.FromContext(ctx)

	if !opts.Cascade {
		for _, o := range owned {
			n, err := o.rows.CountByUser(ctx, userID)
			if err != nil {
				return err
			}
			if n > 0 {
				log.Warn("user delete blocked by dependents",
					slog.Int64("user_id", userID),
					slog.String("table", o.table),
					slog.Int64("count", n),
				)
				return ErrUserHasDependents
			}
		}
		return nil
	}

	for _, o := range owned {
		n, err := o.rows.DeleteByUser(ctx, userID)
		if err != nil {
			return err
		}
		if n > 0 {
			log.Info("cascaded user delete",
				slog.Int64("user_id", userID),
				slog.String("table", o.table),
				slog.Int64("deleted", n),
			)
		}
	}
	return nil
}

// Services bundles one service per resource over a shared store.
type Services struct {
	Users         *UsersService
	Credentials   *CredentialsService
	EmailAccounts *EmailAccountsService
	CreditCards   *CreditCardsService
	Devices       *DevicesService
}

func New(s store.Store) *Services {
	return &Services{
		Users:         NewUsersService(s),
		Credentials:   NewCredentialsService(s),
		EmailAccounts: NewEmailAccountsService(s),
		CreditCards:   NewCreditCardsService(s),
		Devices:       NewDevicesService(s),
	}
}
