package models

import "time"

// Session is a login session referenced by the sid cookie.
type Session struct {
	// ID is a UUIDv7 string; it is the jti claim of the cookie token.
	ID string `json:"id"`

	// AccountID is the owner of the session.
	AccountID int64 `json:"account_id"`

	// UserAgent is the User-Agent header seen at login.
	UserAgent string `json:"user_agent"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table associated with Session.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
