package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/logger"
)

// Storages bundles every storage dependency of the services.
type Storages struct {
	DB               *DB
	UserRepository   UserRepository
	SearchRepository SearchRepository
	SessionStore     SessionStore
	// MediaCache is nil when Redis is not configured.
	MediaCache MediaCache

	redis *redis.Client
}

// NewStorages connects the database, applies migrations and, when a Redis URL
// is configured, moves sessions and the media cache to Redis.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	storages := &Storages{
		DB:               db,
		UserRepository:   NewUserRepository(db, log),
		SearchRepository: NewSearchRepository(db, log),
	}

	if cfg.Redis.URL == "" {
		storages.SessionStore = NewMemorySessionStore()
		return storages, nil
	}

	client, err := NewConnectRedis(ctx, cfg.Redis, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	storages.redis = client
	storages.SessionStore = NewRedisSessionStore(client, log)
	storages.MediaCache = NewRedisMediaCache(client, log)

	return storages, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
