package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/threadboard/models"
	"github.com/golang-jwt/jwt/v5"
)

// SignSessionToken creates the HS256-signed value of the sid cookie.
//
// Claims: jti = sessionID, sub = accountID, iat = now, exp = expiresAt.
func SignSessionToken(sessionID string, accountID int64, expiresAt time.Time, signKey string) (models.SessionToken, error) {
	if sessionID == "" || signKey == "" || expiresAt.IsZero() {
		return models.SessionToken{}, errors.New("invalid params for signing session token")
	}

	claims := &jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   strconv.FormatInt(accountID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{
		Token:        token,
		SignedString: tokenString,
		SessionID:    sessionID,
		AccountID:    accountID,
	}, nil
}

// ParseSessionToken verifies the signature and expiry of a sid cookie value
// and extracts the session and account ids.
//
// An expired but correctly signed token yields an error matching
// jwt.ErrTokenExpired together with the ids it carries, so callers can clean
// up the session it names.
func ParseSessionToken(tokenString, signKey string) (models.SessionToken, error) {
	token, parsed, err := parseSessionClaims(tokenString, signKey, jwt.WithExpirationRequired())
	if errors.Is(err, jwt.ErrTokenExpired) {
		expiredToken, expired, reparseErr := parseSessionClaims(tokenString, signKey, jwt.WithoutClaimsValidation())
		if reparseErr != nil {
			return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
		}
		sessionToken, idErr := sessionTokenFrom(expiredToken, expired, tokenString)
		if idErr != nil {
			return models.SessionToken{}, idErr
		}
		return sessionToken, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	return sessionTokenFrom(token, parsed, tokenString)
}

func parseSessionClaims(tokenString, signKey string, opts ...jwt.ParserOption) (*jwt.Token, *models.SessionToken, error) {
	parsed := &models.SessionToken{}
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)

	return token, parsed, err
}

func sessionTokenFrom(token *jwt.Token, parsed *models.SessionToken, tokenString string) (models.SessionToken, error) {
	if parsed.ID == "" {
		return models.SessionToken{}, errors.New("empty session id in token")
	}

	accountID, err := parsed.GetAccountID()
	if err != nil {
		return models.SessionToken{}, err
	}

	return models.SessionToken{
		Token:            token,
		RegisteredClaims: parsed.RegisteredClaims,
		SignedString:     tokenString,
		SessionID:        parsed.ID,
		AccountID:        accountID,
	}, nil
}
