package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required input fields are empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrWrongPassword is returned when the password does not match the
	// account's stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidSessionToken is returned for a sid cookie whose signature or
	// claims cannot be verified.
	ErrInvalidSessionToken = errors.New("invalid session token")
	// ErrSessionExpired is returned for sessions past their expiry.
	ErrSessionExpired = errors.New("session expired")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when no
	// version is configured.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
