package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/metrics"
	"github.com/MKhiriev/media-finder/internal/store"
	"github.com/MKhiriev/media-finder/internal/utils"
	"github.com/MKhiriev/media-finder/models"
)

type sessionService struct {
	sessionStore store.SessionStore
	tokens       utils.TokenGenerator
	lifetime     time.Duration

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewSessionService builds a SessionService whose sessions live for
// cfg.SessionDuration from the moment they are created.
func NewSessionService(sessionStore store.SessionStore, tokens utils.TokenGenerator, cfg config.App, logger *logger.Logger) SessionService {
	lifetime := cfg.SessionDuration
	if lifetime <= 0 {
		lifetime = config.DefaultSessionDuration
	}

	return &sessionService{
		sessionStore: sessionStore,
		tokens:       tokens,
		lifetime:     lifetime,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger,
	}
}

func (s *sessionService) Lifetime() time.Duration {
	return s.lifetime
}

func (s *sessionService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := s.tokens.Generate()
	if err != nil {
		log.Err(err).Str("func", "*sessionService.CreateSession").Msg("error generating session token")
		return models.Session{}, fmt.Errorf("error creating session: %w", err)
	}

	now := s.now()
	session := models.Session{
		Token:     token,
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.lifetime),
	}

	if err = s.sessionStore.Save(ctx, session); err != nil {
		log.Err(err).Str("func", "*sessionService.CreateSession").Int64("user_id", user.UserID).Msg("error saving session")
		return models.Session{}, fmt.Errorf("error creating session: %w", err)
	}

	metrics.RecordSession(metrics.SessionCreated, 1)
	log.Debug().Int64("user_id", user.UserID).Time("expires_at", session.ExpiresAt).Msg("session created")
	return session, nil
}

// ValidateSession never reports a store miss as a fault; only real storage
// failures come back as something other than ErrUnauthenticated.
func (s *sessionService) ValidateSession(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrUnauthenticated
	}

	log := logger.FromContext(ctx)

	session, err := s.sessionStore.Get(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrUnauthenticated
		}
		log.Err(err).Str("func", "*sessionService.ValidateSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("error validating session: %w", err)
	}

	if session.IsExpired(s.now()) {
		if err = s.sessionStore.Delete(ctx, token); err != nil {
			log.Err(err).Str("func", "*sessionService.ValidateSession").Msg("error purging expired session")
		} else {
			metrics.RecordSession(metrics.SessionExpired, 1)
		}
		return models.Session{}, ErrUnauthenticated
	}

	return session, nil
}

func (s *sessionService) DestroySession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessionStore.Delete(ctx, token); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.DestroySession").Msg("error deleting session")
		return fmt.Errorf("error destroying session: %w", err)
	}

	metrics.RecordSession(metrics.SessionDestroyed, 1)
	return nil
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int, error) {
	purged, err := s.sessionStore.PurgeExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error purging expired sessions: %w", err)
	}

	metrics.RecordSession(metrics.SessionExpired, purged)
	return purged, nil
}
