package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	passwordHashScheme = "pbkdf2-sha256"
	passwordSaltSize   = 16
	passwordKeySize    = 32
)

// ErrMalformedPasswordHash is returned by VerifyPassword when the stored
// value is not in the format produced by HashPassword.
var ErrMalformedPasswordHash = errors.New("malformed password hash")

// HashPassword derives a PBKDF2-HMAC-SHA256 key from password with a fresh
// random salt and returns it encoded as
//
//	pbkdf2-sha256$<iterations>$<salt>$<key>
//
// where salt and key are unpadded base64. The iteration count travels with
// the hash, so it can be raised later without invalidating stored values.
func HashPassword(password string, iterations int) (string, error) {
	if iterations <= 0 {
		return "", fmt.Errorf("invalid iteration count %d", iterations)
	}

	salt := make([]byte, passwordSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, passwordKeySize, sha256.New)

	return strings.Join([]string{
		passwordHashScheme,
		strconv.Itoa(iterations),
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	}, "$"), nil
}

// VerifyPassword reports whether password matches the encoded hash.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != passwordHashScheme {
		return false, ErrMalformedPasswordHash
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false, ErrMalformedPasswordHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false, ErrMalformedPasswordHash
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(want) == 0 {
		return false, ErrMalformedPasswordHash
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
