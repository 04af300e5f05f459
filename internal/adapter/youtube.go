package adapter

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/models"
)

// youtubeProvider talks to the YouTube Data API v3. The key travels as the
// "key" query parameter.
type youtubeProvider struct {
	restProvider
}

func NewYouTubeProvider(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) (VideoProvider, error) {
	base, err := newRestProvider(models.ProviderYouTube, baseURL, apiKey, timeout, log)
	if err != nil {
		return nil, err
	}
	return &youtubeProvider{restProvider: base}, nil
}

// Search lists videos matching q.Query. The API pages with opaque tokens, so
// q.Page is not forwarded.
func (p *youtubeProvider) Search(ctx context.Context, q models.MediaQuery) (models.MediaResponse, error) {
	if err := p.requireKey(); err != nil {
		return models.MediaResponse{}, err
	}

	req := p.client.R().SetQueryParams(map[string]string{
		"part":       "snippet",
		"q":          q.Query,
		"maxResults": strconv.Itoa(resultsPerPage),
		"type":       "video",
		"key":        p.apiKey,
	})

	return p.get(ctx, req, "/search")
}

func (p *youtubeProvider) VideoDetails(ctx context.Context, id string) (models.MediaResponse, error) {
	if err := p.requireKey(); err != nil {
		return models.MediaResponse{}, err
	}

	req := p.client.R().SetQueryParams(map[string]string{
		"part": "snippet,contentDetails,statistics",
		"id":   id,
		"key":  p.apiKey,
	})

	return p.get(ctx, req, "/videos")
}
