package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the signed value of the sid cookie.
//
// The jti claim holds the session id and the sub claim the account id, so a
// forged or expired cookie is rejected before the session table is read.
type SessionToken struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form stored in the cookie.
	SignedString string `json:"-"`

	SessionID string `json:"-"`
	AccountID int64  `json:"-"`
}

// GetAccountID parses the sub claim as an account id.
func (t *SessionToken) GetAccountID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account id from token: %w", err)
	}

	accountID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account id from token to int64: %w", err)
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
