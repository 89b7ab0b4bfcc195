package domain

import "time"

type User struct {
	ID                 int64     `json:"user_id"`
	Username           string    `json:"username" validate:"required"`
	MasterPasswordHash string    `json:"master_password_hash" validate:"required"`
	Email              *string   `json:"email"`
	CreatedAt          time.Time `json:"created_at"`
}

type UserPatch struct {
	Username           *string
	MasterPasswordHash *string
	Email              *string
}

func (p UserPatch) Empty() bool {
	return p.Username == nil && p.MasterPasswordHash == nil && p.Email == nil
}

func (p UserPatch) Apply(u *User) {
	set(&u.Username, p.Username)
	set(&u.MasterPasswordHash, p.MasterPasswordHash)
	setOptional(&u.Email, p.Email)
}
