// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/threadboard/internal/logger"
)

const DefaultJanitorInterval = 10 * time.Minute

// SessionPurger deletes sessions whose expiry has passed.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionJanitor periodically removes expired sessions so the sessions table
// does not grow with abandoned logins.
type SessionJanitor struct {
	purger   SessionPurger
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionJanitor(purger SessionPurger, interval time.Duration, log *logger.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &SessionJanitor{
		purger:   purger,
		interval: interval,
		logger:   log.Named("session-janitor"),
	}
}

// Run purges once immediately and then on every tick until ctx is done.
func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.purge(ctx)
	for {
		select {
		case <-ctx.Done():
			j.logger.Debug().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *SessionJanitor) purge(ctx context.Context) {
	n, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Msg("failed to purge expired sessions")
		}
		return
	}
	if n > 0 {
		j.logger.Info().Int64("purged", n).Msg("expired sessions removed")
	}
}
