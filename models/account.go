package models

import "time"

// Account is a registered forum member.
type Account struct {
	// ID is the internal identifier assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique public name shown next to threads.
	Username string `json:"username"`

	// Email is unique and matched case-insensitively at login.
	Email string `json:"email"`

	// PasswordHash is the encoded PBKDF2 hash. Never serialized.
	PasswordHash string `json:"-"`

	// Rank is the member's permission level.
	Rank Rank `json:"rank"`

	// CreatedAt is when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Account.
func (a Account) TableName() string {
	return "accounts"
}

// NewAccountRequest is the JSON body of POST /api/account/new.
type NewAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest carries the credentials submitted to POST /api/account/login.
type LoginRequest struct {
	Email     string
	Password  string
	UserAgent string
}
