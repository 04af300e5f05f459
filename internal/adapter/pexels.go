package adapter

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/models"
)

// pexelsProvider searches Pexels photos. The key is sent verbatim in the
// Authorization header.
type pexelsProvider struct {
	restProvider
}

func NewPexelsProvider(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) (MediaProvider, error) {
	base, err := newRestProvider(models.ProviderPexels, baseURL, apiKey, timeout, log)
	if err != nil {
		return nil, err
	}
	return &pexelsProvider{restProvider: base}, nil
}

func (p *pexelsProvider) Search(ctx context.Context, q models.MediaQuery) (models.MediaResponse, error) {
	if err := p.requireKey(); err != nil {
		return models.MediaResponse{}, err
	}

	req := p.client.R().
		SetHeader("Authorization", p.apiKey).
		SetQueryParams(map[string]string{
			"query":    q.Query,
			"page":     strconv.Itoa(pageOrFirst(q.Page)),
			"per_page": strconv.Itoa(resultsPerPage),
		})

	return p.get(ctx, req, "/search")
}
