package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/threadboard/internal/config"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/store"
	"github.com/MKhiriev/threadboard/internal/utils"
	"github.com/MKhiriev/threadboard/models"
	"github.com/golang-jwt/jwt/v5"
)

// IDGenerator produces unique session ids.
type IDGenerator interface {
	Generate() string
}

type sessionService struct {
	sessionRepository store.SessionRepository
	ids               IDGenerator
	now               func() time.Time

	signKey  string
	duration time.Duration

	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, ids IDGenerator, now func() time.Time, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		ids:               ids,
		now:               now,
		signKey:           cfg.SessionSignKey,
		duration:          cfg.SessionDuration,
		logger:            logger,
	}
}

// Create stores a new session for account and signs its cookie token.
func (s *sessionService) Create(ctx context.Context, account models.Account, userAgent string) (models.Session, models.SessionToken, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	session := models.Session{
		ID:        s.ids.Generate(),
		AccountID: account.ID,
		UserAgent: userAgent,
		CreatedAt: now,
		ExpiresAt: now.Add(s.duration),
	}

	token, err := utils.SignSessionToken(session.ID, session.AccountID, session.ExpiresAt, s.signKey)
	if err != nil {
		log.Err(err).Msg("session token signing failed")
		return models.Session{}, models.SessionToken{}, fmt.Errorf("session token signing failed: %w", err)
	}

	if err = s.sessionRepository.CreateSession(ctx, session); err != nil {
		return models.Session{}, models.SessionToken{}, err
	}

	log.Info().Int64("account_id", account.ID).Str("session_id", session.ID).Msg("session created")
	return session, token, nil
}

// Resolve verifies token, loads the session it names and checks that it
// belongs to the token's account and has not expired. Expired sessions are
// deleted.
func (s *sessionService) Resolve(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ParseSessionToken(token, s.signKey)
	if errors.Is(err, jwt.ErrTokenExpired) {
		s.deleteExpired(ctx, parsed.SessionID)
		return models.Session{}, ErrSessionExpired
	}
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}

	session, err := s.sessionRepository.FindSession(ctx, parsed.SessionID)
	if err != nil {
		return models.Session{}, err
	}

	if session.AccountID != parsed.AccountID {
		log.Warn().Str("session_id", session.ID).Msg("session token account mismatch")
		return models.Session{}, ErrInvalidSessionToken
	}

	if session.Expired(s.now()) {
		s.deleteExpired(ctx, session.ID)
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

func (s *sessionService) deleteExpired(ctx context.Context, sessionID string) {
	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("session_id", sessionID).Msg("failed to delete expired session")
	}
}

func (s *sessionService) Revoke(ctx context.Context, sessionID string) error {
	return s.sessionRepository.DeleteSession(ctx, sessionID)
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
}

func (s *sessionService) Duration() time.Duration {
	return s.duration
}
