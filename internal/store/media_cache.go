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

const mediaKeyPrefix = "media:"

// redisMediaCache implements [MediaCache] with plain Redis string keys.
type redisMediaCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisMediaCache constructs a [MediaCache] on top of client.
func NewRedisMediaCache(client *redis.Client, logger *logger.Logger) MediaCache {
	logger.Debug().Msg("creating redis media cache")
	return &redisMediaCache{
		client: client,
		logger: logger,
	}
}

func (c *redisMediaCache) Get(ctx context.Context, key string) (models.MediaResponse, bool, error) {
	data, err := c.client.Get(ctx, mediaKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.MediaResponse{}, false, nil
	}
	if err != nil {
		return models.MediaResponse{}, false, fmt.Errorf("error reading cached media: %w", err)
	}

	var resp models.MediaResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return models.MediaResponse{}, false, fmt.Errorf("error decoding cached media: %w", err)
	}
	return resp, true, nil
}

func (c *redisMediaCache) Set(ctx context.Context, key string, resp models.MediaResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("error encoding media: %w", err)
	}

	if err := c.client.Set(ctx, mediaKeyPrefix+key, data, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisMediaCache.Set").Msg("error caching media")
		return fmt.Errorf("error caching media: %w", err)
	}
	return nil
}
