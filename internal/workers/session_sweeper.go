// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/logger"
)

// ExpiredSessionPurger drops expired sessions and reports how many were
// removed.
type ExpiredSessionPurger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// SessionSweeper periodically purges expired sessions so that sessions which
// are never read again do not pile up in memory.
type SessionSweeper struct {
	sessions ExpiredSessionPurger
	interval time.Duration

	logger *logger.Logger
}

func NewSessionSweeper(sessions ExpiredSessionPurger, cfg config.Workers, logger *logger.Logger) *SessionSweeper {
	interval := cfg.SessionSweepInterval
	if interval <= 0 {
		interval = config.DefaultSessionSweepInterval
	}

	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	purged, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*SessionSweeper.sweep").Msg("error purging expired sessions")
		return
	}

	if purged > 0 {
		s.logger.Debug().Int("purged", purged).Msg("expired sessions purged")
	}
}
