package adapter

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/models"
)

// freesoundFields is the subset of sound attributes the frontend renders.
const freesoundFields = "id,name,username,previews,images,license,url"

// freesoundProvider runs Freesound text searches. Authorization uses the
// "Token <key>" scheme.
type freesoundProvider struct {
	restProvider
}

func NewFreesoundProvider(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) (MediaProvider, error) {
	base, err := newRestProvider(models.ProviderFreesound, baseURL, apiKey, timeout, log)
	if err != nil {
		return nil, err
	}
	return &freesoundProvider{restProvider: base}, nil
}

// Search converts the 1-based page of q to the 0-based page Freesound
// expects.
func (p *freesoundProvider) Search(ctx context.Context, q models.MediaQuery) (models.MediaResponse, error) {
	if err := p.requireKey(); err != nil {
		return models.MediaResponse{}, err
	}

	req := p.client.R().
		SetHeader("Authorization", "Token "+p.apiKey).
		SetQueryParams(map[string]string{
			"query":     q.Query,
			"page":      strconv.Itoa(pageOrFirst(q.Page) - 1),
			"page_size": strconv.Itoa(resultsPerPage),
			"fields":    freesoundFields,
		})

	return p.get(ctx, req, "/search/text/")
}
