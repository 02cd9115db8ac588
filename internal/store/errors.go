package store

import (
	"errors"
	"fmt"
)

// Domain errors returned by repositories. Match with errors.Is.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUsernameTaken is matched by every *UsernameTakenError.
	ErrUsernameTaken = errors.New("username is taken")

	// ErrEmailTaken is returned when the email (compared case-insensitively)
	// already belongs to another account.
	ErrEmailTaken = errors.New("email is taken")

	// ErrSessionNotFound is returned when the session row does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrThreadNotFound is returned when no thread has the requested id.
	ErrThreadNotFound = errors.New("thread not found")

	// ErrUnknownAuthor is returned when a thread references a missing account.
	ErrUnknownAuthor = errors.New("thread author does not exist")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
)

// UsernameTakenError reports a registration with a username that already
// exists.
type UsernameTakenError struct {
	Username string
}

func (e *UsernameTakenError) Error() string {
	return fmt.Sprintf("The username %s is taken.", e.Username)
}

func (e *UsernameTakenError) Is(target error) bool {
	return target == ErrUsernameTaken
}
