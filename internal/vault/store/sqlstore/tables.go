package sqlstore

import "github.com/aussiebroadwan/passvault/internal/vault/domain"

var usersTable = Table[domain.User]{
	Name:    "users",
	Key:     "user_id",
	Columns: []string{"username", "master_password_hash", "email"},
	Values: func(u *domain.User) []any {
		return []any{u.Username, u.MasterPasswordHash, nullString(u.Email)}
	},
	Dest: func(u *domain.User) []any {
		return []any{&u.ID, &u.Username, &u.MasterPasswordHash, &u.Email, scanTime(&u.CreatedAt)}
	},
	ID: func(u *domain.User) int64 { return u.ID },
}

var credentialsTable = Table[domain.Credential]{
	Name:    "credentials",
	Key:     "credential_id",
	Owner:   "user_id",
	Columns: []string{"user_id", "title", "username", "url", "notes", "password_encrypted"},
	Values: func(c *domain.Credential) []any {
		return []any{
			c.UserID, nullString(c.Title), nullString(c.Username), nullString(c.URL),
			nullString(c.Notes), c.PasswordEncrypted,
		}
	},
	Dest: func(c *domain.Credential) []any {
		return []any{&c.ID, &c.UserID, &c.Title, &c.Username, &c.URL, &c.Notes, &c.PasswordEncrypted, scanTime(&c.CreatedAt)}
	},
	ID: func(c *domain.Credential) int64 { return c.ID },
}

var emailAccountsTable = Table[domain.EmailAccount]{
	Name:  "email_accounts",
	Key:   "email_id",
	Owner: "user_id",
	Columns: []string{
		"user_id", "email_address", "provider", "recovery_email",
		"two_factor_enabled", "password_encrypted",
	},
	Values: func(e *domain.EmailAccount) []any {
		return []any{
			e.UserID, e.EmailAddress, nullString(e.Provider), nullString(e.RecoveryEmail),
			e.TwoFactorEnabled, e.PasswordEncrypted,
		}
	},
	Dest: func(e *domain.EmailAccount) []any {
		return []any{
			&e.ID, &e.UserID, &e.EmailAddress, &e.Provider, &e.RecoveryEmail,
			&e.TwoFactorEnabled, &e.PasswordEncrypted, scanTime(&e.CreatedAt),
		}
	},
	ID: func(e *domain.EmailAccount) int64 { return e.ID },
}

var creditCardsTable = Table[domain.CreditCard]{
	Name:  "credit_cards",
	Key:   "card_id",
	Owner: "user_id",
	Columns: []string{
		"user_id", "card_holder_name", "card_number_encrypted", "expiration_date",
		"cvv_encrypted", "billing_address", "card_type",
	},
	Values: func(c *domain.CreditCard) []any {
		return []any{
			c.UserID, nullString(c.CardHolderName), c.CardNumberEncrypted, nullDate(c.ExpirationDate),
			c.CVVEncrypted, nullString(c.BillingAddress), string(c.CardType),
		}
	},
	Dest: func(c *domain.CreditCard) []any {
		return []any{
			&c.ID, &c.UserID, &c.CardHolderName, &c.CardNumberEncrypted, &c.ExpirationDate,
			&c.CVVEncrypted, &c.BillingAddress, &c.CardType, scanTime(&c.CreatedAt),
		}
	},
	ID: func(c *domain.CreditCard) int64 { return c.ID },
}

var devicesTable = Table[domain.Device]{
	Name:  "devices",
	Key:   "device_id",
	Owner: "user_id",
	Columns: []string{
		"user_id", "device_type", "brand", "model", "serial_number",
		"operating_system", "admin_password_encrypted", "purchase_date", "notes",
	},
	Values: func(d *domain.Device) []any {
		return []any{
			d.UserID, string(d.DeviceType), nullString(d.Brand), nullString(d.Model),
			nullString(d.SerialNumber), nullString(d.OperatingSystem), d.AdminPasswordEncrypted,
			nullDate(d.PurchaseDate), nullString(d.Notes),
		}
	},
	Dest: func(d *domain.Device) []any {
		return []any{
			&d.ID, &d.UserID, &d.DeviceType, &d.Brand, &d.Model, &d.SerialNumber,
			&d.OperatingSystem, &d.AdminPasswordEncrypted, &d.PurchaseDate, &d.Notes, scanTime(&d.CreatedAt),
		}
	},
	ID: func(d *domain.Device) int64 { return d.ID },
}

// Bind values are reduced to driver primitives so every driver receives the
// same types regardless of its parameter conversion rules.

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullDate(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}
