package domain

import "time"

// Credential is a website or application login. PasswordEncrypted is stored
// exactly as the client supplied it.
type Credential struct {
	ID                int64     `json:"credential_id"`
	UserID            int64     `json:"user_id" validate:"required,gt=0"`
	Title             *string   `json:"title"`
	Username          *string   `json:"username"`
	URL               *string   `json:"url"`
	Notes             *string   `json:"notes"`
	PasswordEncrypted string    `json:"password_encrypted" validate:"required"`
	CreatedAt         time.Time `json:"created_at"`
}

// CredentialPatch has no UserID: a credential never changes owner.
type CredentialPatch struct {
	Title             *string
	Username          *string
	URL               *string
	Notes             *string
	PasswordEncrypted *string
}

func (p CredentialPatch) Empty() bool {
	return p.Title == nil && p.Username == nil && p.URL == nil &&
		p.Notes == nil && p.PasswordEncrypted == nil
}

func (p CredentialPatch) Apply(c *Credential) {
	setOptional(&c.Title, p.Title)
	setOptional(&c.Username, p.Username)
	setOptional(&c.URL, p.URL)
	setOptional(&c.Notes, p.Notes)
	set(&c.PasswordEncrypted, p.PasswordEncrypted)
}
