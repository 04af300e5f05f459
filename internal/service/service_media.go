// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/media-finder/internal/adapter"
	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/metrics"
	"github.com/MKhiriev/media-finder/internal/store"
	"github.com/MKhiriev/media-finder/models"
)

type mediaService struct {
	providers map[string]adapter.MediaProvider
	video     adapter.VideoProvider

	// cache is nil when no Redis is configured.
	cache    store.MediaCache
	cacheTTL time.Duration

	logger *logger.Logger
}

// NewMediaService builds a MediaService over the given providers. cache may
// be nil, in which case every request goes upstream.
func NewMediaService(providers *adapter.Providers, cache store.MediaCache, cfg config.Adapter, logger *logger.Logger) MediaService {
	return &mediaService{
		providers: map[string]adapter.MediaProvider{
			models.ProviderOpenverse: providers.Openverse,
			models.ProviderYouTube:   providers.YouTube,
			models.ProviderPexels:    providers.Pexels,
			models.ProviderFreesound: providers.Freesound,
		},
		video:    providers.YouTube,
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}
}

func (m *mediaService) Search(ctx context.Context, provider string, q models.MediaQuery) (models.MediaResponse, error) {
	p, ok := m.providers[provider]
	if !ok || p == nil {
		return models.MediaResponse{}, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	q.Query = strings.TrimSpace(q.Query)
	if q.Page < 1 {
		q.Page = 1
	}

	key := searchCacheKey(provider, q)
	return m.cached(ctx, provider, key, func() (models.MediaResponse, error) {
		return p.Search(ctx, q)
	})
}

func (m *mediaService) VideoDetails(ctx context.Context, id string) (models.MediaResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.MediaResponse{}, fmt.Errorf("%w: video id is required", ErrValidation)
	}

	key := models.ProviderYouTube + ":video:" + url.QueryEscape(id)
	return m.cached(ctx, models.ProviderYouTube, key, func() (models.MediaResponse, error) {
		return m.video.VideoDetails(ctx, id)
	})
}

// cached answers from the cache when possible and stores successful upstream
// answers. Cache faults are logged and never fail the request.
func (m *mediaService) cached(ctx context.Context, provider, key string, fetch func() (models.MediaResponse, error)) (models.MediaResponse, error) {
	log := logger.FromContext(ctx)

	if m.cache != nil {
		resp, hit, err := m.cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("func", "*mediaService.cached").Str("provider", provider).Msg("media cache read failed")
		}
		if hit {
			metrics.RecordMediaRequest(provider, true, resp.StatusCode, 0)
			return resp, nil
		}
	}

	start := time.Now()
	resp, err := fetch()
	if err != nil {
		metrics.RecordMediaRequest(provider, false, 0, time.Since(start))
		return models.MediaResponse{}, fmt.Errorf("media request to %s failed: %w", provider, err)
	}
	metrics.RecordMediaRequest(provider, false, resp.StatusCode, time.Since(start))

	if m.cache != nil && m.cacheTTL > 0 && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err = m.cache.Set(ctx, key, resp, m.cacheTTL); err != nil {
			log.Warn().Err(err).Str("func", "*mediaService.cached").Str("provider", provider).Msg("media cache write failed")
		}
	}

	return resp, nil
}

// searchCacheKey is stable for equal queries: url.Values encodes keys in
// sorted order.
func searchCacheKey(provider string, q models.MediaQuery) string {
	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("page", strconv.Itoa(q.Page))
	if provider == models.ProviderOpenverse {
		mediaType := q.MediaType
		if mediaType == "" {
			mediaType = "image"
		}
		params.Set("mediaType", mediaType)
	}

	return provider + ":search:" + params.Encode()
}
