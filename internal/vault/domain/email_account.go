package domain

import "time"

type EmailAccount struct {
	ID                int64     `json:"email_id"`
	UserID            int64     `json:"user_id" validate:"required,gt=0"`
	EmailAddress      string    `json:"email_address" validate:"required"`
	Provider          *string   `json:"provider"`
	RecoveryEmail     *string   `json:"recovery_email"`
	TwoFactorEnabled  bool      `json:"two_factor_enabled"`
	PasswordEncrypted string    `json:"password_encrypted" validate:"required"`
	CreatedAt         time.Time `json:"created_at"`
}

// EmailAccountPatch has no UserID: an email account never changes owner.
type EmailAccountPatch struct {
	EmailAddress      *string
	Provider          *string
	RecoveryEmail     *string
	TwoFactorEnabled  *bool
	PasswordEncrypted *string
}

func (p EmailAccountPatch) Empty() bool {
	return p.EmailAddress == nil && p.Provider == nil && p.RecoveryEmail == nil &&
		p.TwoFactorEnabled == nil && p.PasswordEncrypted == nil
}

func (p EmailAccountPatch) Apply(e *EmailAccount) {
	set(&e.EmailAddress, p.EmailAddress)
	setOptional(&e.Provider, p.Provider)
	setOptional(&e.RecoveryEmail, p.RecoveryEmail)
	set(&e.TwoFactorEnabled, p.TwoFactorEnabled)
	set(&e.PasswordEncrypted, p.PasswordEncrypted)
}
