package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func TestSignSessionToken_RoundTrip(t *testing.T) {
	expires := time.Now().Add(time.Hour)

	token, err := SignSessionToken("sid-1", 42, expires, testSignKey)
	require.NoError(t, err)
	assert.NotEmpty(t, token.String())

	parsed, err := ParseSessionToken(token.SignedString, testSignKey)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", parsed.SessionID)
	assert.Equal(t, int64(42), parsed.AccountID)
	assert.Equal(t, expires.Unix(), parsed.ExpiresAt.Unix())
}

func TestSignSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		expires   time.Time
		key       string
	}{
		{"empty session id", "", time.Now().Add(time.Hour), testSignKey},
		{"zero expiry", "sid", time.Time{}, testSignKey},
		{"empty key", "sid", time.Now().Add(time.Hour), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SignSessionToken(tt.sessionID, 1, tt.expires, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestParseSessionToken_WrongKey(t *testing.T) {
	token, err := SignSessionToken("sid-1", 1, time.Now().Add(time.Hour), testSignKey)
	require.NoError(t, err)

	_, err = ParseSessionToken(token.SignedString, "other-key")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseSessionToken_Expired(t *testing.T) {
	token, err := SignSessionToken("sid-1", 1, time.Now().Add(-time.Minute), testSignKey)
	require.NoError(t, err)

	parsed, err := ParseSessionToken(token.SignedString, testSignKey)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
	assert.Equal(t, "sid-1", parsed.SessionID)
	assert.Equal(t, int64(1), parsed.AccountID)
}

func TestParseSessionToken_ExpiredWithWrongKeyCarriesNoIDs(t *testing.T) {
	token, err := SignSessionToken("sid-1", 1, time.Now().Add(-time.Minute), testSignKey)
	require.NoError(t, err)

	parsed, err := ParseSessionToken(token.SignedString, "other-key")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	assert.Empty(t, parsed.SessionID)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	_, err := ParseSessionToken("not.a.token", testSignKey)
	assert.Error(t, err)
}

func TestParseSessionToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		ID:        "sid-1",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseSessionToken(unsigned, testSignKey)
	assert.Error(t, err)
}

func TestParseSessionToken_MissingSessionID(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ParseSessionToken(signed, testSignKey)
	assert.Error(t, err)
}
