package vaultsdk

import "time"

// ============================================================================
// Common Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a machine readable code, e.g. "not_found".
	Error string `json:"error"`

	// Detail is a human readable message, e.g. "Credential not found".
	Detail string `json:"detail"`

	// Fields lists per-field validation failures, when there are any.
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse is returned by delete endpoints.
type MessageResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Users
// ============================================================================

// User never carries the master password hash.
type User struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	Username           string  `json:"username"`
	MasterPasswordHash string  `json:"master_password_hash"`
	Email              *string `json:"email,omitempty"`
}

// UpdateUserRequest changes only the fields that are set.
type UpdateUserRequest struct {
	Username           *string `json:"username,omitempty"`
	MasterPasswordHash *string `json:"master_password_hash,omitempty"`
	Email              *string `json:"email,omitempty"`
}

// ============================================================================
// Credentials
// ============================================================================

type Credential struct {
	CredentialID int64     `json:"credential_id"`
	UserID       int64     `json:"user_id"`
	Title        *string   `json:"title"`
	Username     *string   `json:"username"`
	URL          *string   `json:"url"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateCredentialRequest struct {
	UserID            int64   `json:"user_id"`
	Title             *string `json:"title,omitempty"`
	Username          *string `json:"username,omitempty"`
	URL               *string `json:"url,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	PasswordEncrypted string  `json:"password_encrypted"`
}

// UpdateCredentialRequest has no user_id: credentials never change owner.
type UpdateCredentialRequest struct {
	Title             *string `json:"title,omitempty"`
	Username          *string `json:"username,omitempty"`
	URL               *string `json:"url,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	PasswordEncrypted *string `json:"password_encrypted,omitempty"`
}

type CredentialSecret struct {
	CredentialID      int64  `json:"credential_id"`
	PasswordEncrypted string `json:"password_encrypted"`
}

// ============================================================================
// Email Accounts
// ============================================================================

type EmailAccount struct {
	EmailID          int64     `json:"email_id"`
	UserID           int64     `json:"user_id"`
	EmailAddress     string    `json:"email_address"`
	Provider         *string   `json:"provider"`
	RecoveryEmail    *string   `json:"recovery_email"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateEmailAccountRequest struct {
	UserID            int64   `json:"user_id"`
	EmailAddress      string  `json:"email_address"`
	Provider          *string `json:"provider,omitempty"`
	RecoveryEmail     *string `json:"recovery_email,omitempty"`
	TwoFactorEnabled  bool    `json:"two_factor_enabled"`
	PasswordEncrypted string  `json:"password_encrypted"`
}

// UpdateEmailAccountRequest has no user_id: email accounts never change
// owner. At least one field must be set.
type UpdateEmailAccountRequest struct {
	EmailAddress      *string `json:"email_address,omitempty"`
	Provider          *string `json:"provider,omitempty"`
	RecoveryEmail     *string `json:"recovery_email,omitempty"`
	TwoFactorEnabled  *bool   `json:"two_factor_enabled,omitempty"`
	PasswordEncrypted *string `json:"password_encrypted,omitempty"`
}

type EmailAccountSecret struct {
	EmailID           int64  `json:"email_id"`
	PasswordEncrypted string `json:"password_encrypted"`
}

// ============================================================================
// Credit Cards
// ============================================================================

// Card types.
const (
	CardTypeCredit  = "Credit"
	CardTypeDebit   = "Debit"
	CardTypePrepaid = "Prepaid"
)

// CreditCard never carries the card number or CVV.
type CreditCard struct {
	CardID         int64     `json:"card_id"`
	UserID         int64     `json:"user_id"`
	CardHolderName *string   `json:"card_holder_name"`
	ExpirationDate *string   `json:"expiration_date" example:"2030-01-31"`
	BillingAddress *string   `json:"billing_address"`
	CardType       string    `json:"card_type"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateCreditCardRequest struct {
	UserID         int64   `json:"user_id"`
	CardNumber     string  `json:"card_number"`
	CVV            string  `json:"cvv"`
	CardHolderName *string `json:"card_holder_name,omitempty"`
	// ExpirationDate is YYYY-MM-DD.
	ExpirationDate *string `json:"expiration_date,omitempty" example:"2030-01-31"`
	BillingAddress *string `json:"billing_address,omitempty"`
	// CardType defaults to Credit.
	CardType string `json:"card_type,omitempty"`
}

// UpdateCreditCardRequest may move the card to another user.
type UpdateCreditCardRequest struct {
	UserID         *int64  `json:"user_id,omitempty"`
	CardNumber     *string `json:"card_number,omitempty"`
	CVV            *string `json:"cvv,omitempty"`
	CardHolderName *string `json:"card_holder_name,omitempty"`
	ExpirationDate *string `json:"expiration_date,omitempty" example:"2030-01-31"`
	BillingAddress *string `json:"billing_address,omitempty"`
	CardType       *string `json:"card_type,omitempty"`
}

type CreditCardSecret struct {
	CardID     int64  `json:"card_id"`
	CardNumber string `json:"card_number"`
	CVV        string `json:"cvv"`
}

// ============================================================================
// Devices
// ============================================================================

// Device types.
const (
	DeviceTypeLaptop  = "Laptop"
	DeviceTypeDesktop = "Desktop"
	DeviceTypeTablet  = "Tablet"
	DeviceTypeOther   = "Other"
)

// Device never carries the admin password.
type Device struct {
	DeviceID        int64     `json:"device_id"`
	UserID          int64     `json:"user_id"`
	DeviceType      string    `json:"device_type"`
	Brand           *string   `json:"brand"`
	Model           *string   `json:"model"`
	SerialNumber    *string   `json:"serial_number"`
	OperatingSystem *string   `json:"operating_system"`
	PurchaseDate    *string   `json:"purchase_date" example:"2024-05-01"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateDeviceRequest struct {
	UserID int64 `json:"user_id"`
	// DeviceType defaults to Laptop.
	DeviceType             string  `json:"device_type,omitempty"`
	Brand                  *string `json:"brand,omitempty"`
	Model                  *string `json:"model,omitempty"`
	SerialNumber           *string `json:"serial_number,omitempty"`
	OperatingSystem        *string `json:"operating_system,omitempty"`
	AdminPasswordEncrypted string  `json:"admin_password_encrypted"`
	PurchaseDate           *string `json:"purchase_date,omitempty" example:"2024-05-01"`
	Notes                  *string `json:"notes,omitempty"`
}

// UpdateDeviceRequest has no user_id: devices never change owner.
type UpdateDeviceRequest struct {
	DeviceType             *string `json:"device_type,omitempty"`
	Brand                  *string `json:"brand,omitempty"`
	Model                  *string `json:"model,omitempty"`
	SerialNumber           *string `json:"serial_number,omitempty"`
	OperatingSystem        *string `json:"operating_system,omitempty"`
	AdminPasswordEncrypted *string `json:"admin_password_encrypted,omitempty"`
	PurchaseDate           *string `json:"purchase_date,omitempty" example:"2024-05-01"`
	Notes                  *string `json:"notes,omitempty"`
}

type DeviceSecret struct {
	DeviceID               int64  `json:"device_id"`
	AdminPasswordEncrypted string `json:"admin_password_encrypted"`
}

// String returns a pointer to s, for optional request fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int64 returns a pointer to n.
func Int64(n int64) *int64 { return &n }
