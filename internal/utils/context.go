// Package utils provides helpers shared by the forum API layers: typed
// context keys, password hashing, session token signing, JSON responses,
// an HTTP client and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// AccountIDCtxKey stores the authenticated account id (int64).
	AccountIDCtxKey = contextKey("accountID")

	// SessionIDCtxKey stores the current session id (string).
	SessionIDCtxKey = contextKey("sessionID")
)

// WithSession returns a copy of ctx carrying the session and account ids.
func WithSession(ctx context.Context, sessionID string, accountID int64) context.Context {
	ctx = context.WithValue(ctx, SessionIDCtxKey, sessionID)
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}

// GetAccountIDFromContext returns the account id stored by the auth
// middleware. ok is false when it is missing or of an unexpected type.
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetSessionIDFromContext returns the session id stored by the auth
// middleware.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
