package store

import (
	"context"
	"time"

	"github.com/MKhiriev/threadboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists forum accounts.
type AccountRepository interface {
	// CreateAccount inserts account and returns it with id and created_at
	// set. Fails with *UsernameTakenError or ErrEmailTaken on duplicates.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	// FindAccountByEmail matches email case-insensitively.
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByID(ctx context.Context, id int64) (models.Account, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, id string) (models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	// DeleteExpiredSessions removes sessions that expired at or before now
	// and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ThreadRepository persists threads.
type ThreadRepository interface {
	CreateThread(ctx context.Context, thread models.Thread) (models.Thread, error)
	FindThread(ctx context.Context, id int64) (models.Thread, error)
	// ListThreads returns threads newest first.
	ListThreads(ctx context.Context, page models.ThreadPage) ([]models.Thread, error)
}
