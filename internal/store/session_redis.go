package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/models"
)

const sessionKeyPrefix = "session:"

// redisSessionStore keeps sessions in Redis as JSON values whose TTL matches
// the remaining session lifetime, so Redis itself drops expired sessions.
type redisSessionStore struct {
	client *redis.Client
	logger *logger.Logger
	now    func() time.Time
}

// NewRedisSessionStore constructs a [SessionStore] on top of client.
func NewRedisSessionStore(client *redis.Client, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating redis session store")
	return &redisSessionStore{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (r *redisSessionStore) Save(ctx context.Context, session models.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		// nothing to keep
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.Token), data, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Save").Msg("error saving session")
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

func (r *redisSessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Get").Msg("error reading session")
		return models.Session{}, fmt.Errorf("error reading session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("error decoding session: %w", err)
	}
	return session, nil
}

func (r *redisSessionStore) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Delete").Msg("error deleting session")
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// PurgeExpired is a no-op: keys expire through their TTL.
func (r *redisSessionStore) PurgeExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}
