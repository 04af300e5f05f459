package adapter

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/models"
)

// openverseProvider searches Openverse images and audio. Openverse needs no
// API key for anonymous use.
type openverseProvider struct {
	restProvider
}

func NewOpenverseProvider(baseURL string, timeout time.Duration, log *logger.Logger) (MediaProvider, error) {
	base, err := newRestProvider(models.ProviderOpenverse, baseURL, "", timeout, log)
	if err != nil {
		return nil, err
	}
	return &openverseProvider{restProvider: base}, nil
}

// Search queries /{mediaType}s/. An empty media type means images.
func (p *openverseProvider) Search(ctx context.Context, q models.MediaQuery) (models.MediaResponse, error) {
	mediaType := q.MediaType
	if mediaType == "" {
		mediaType = "image"
	}

	req := p.client.R().
		SetQueryParam("q", q.Query).
		SetQueryParam("page", strconv.Itoa(pageOrFirst(q.Page)))

	return p.get(ctx, req, "/"+mediaType+"s/")
}

func pageOrFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
