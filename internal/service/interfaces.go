package service

import (
	"context"
	"time"

	"github.com/MKhiriev/threadboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService registers and authenticates forum accounts.
type AccountService interface {
	Register(ctx context.Context, req models.NewAccountRequest) (models.Account, error)
	// Authenticate returns the account owning email (case-insensitive) when
	// password matches.
	Authenticate(ctx context.Context, email, password string) (models.Account, error)
	FindAccount(ctx context.Context, id int64) (models.Account, error)
}

// SessionService manages login sessions and their signed cookie tokens.
type SessionService interface {
	Create(ctx context.Context, account models.Account, userAgent string) (models.Session, models.SessionToken, error)
	// Resolve verifies a cookie token and loads its live session.
	Resolve(ctx context.Context, token string) (models.Session, error)
	Revoke(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context) (int64, error)
	Duration() time.Duration
}

// ThreadService creates and lists threads.
type ThreadService interface {
	Create(ctx context.Context, accountID int64, title, body string) (models.Thread, error)
	Get(ctx context.Context, id int64) (models.Thread, error)
	List(ctx context.Context, limit, offset uint64) (models.ThreadList, error)
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
