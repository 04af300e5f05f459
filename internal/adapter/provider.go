package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/utils"
	"github.com/MKhiriev/media-finder/models"
)

// resultsPerPage matches the page size the frontend renders.
const resultsPerPage = 15

// restProvider holds what every provider shares: the resty client pointed
// at the provider base URL and the API key, if any.
type restProvider struct {
	name   string
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

func newRestProvider(name, baseURL, apiKey string, timeout time.Duration, log *logger.Logger) (restProvider, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return restProvider{}, fmt.Errorf("%w for %s: %w", ErrInvalidBaseURL, name, err)
	}

	return restProvider{
		name:   name,
		client: utils.NewHTTPClient(normalized, timeout),
		apiKey: strings.TrimSpace(apiKey),
		logger: log,
	}, nil
}

func (p restProvider) Name() string {
	return p.name
}

// requireKey fails fast for providers that cannot work without a key.
func (p restProvider) requireKey() error {
	if p.apiKey == "" {
		return fmt.Errorf("%w: %s", ErrProviderNotConfigured, p.name)
	}
	return nil
}

// get performs the request and turns the answer into a relayable response.
// Only transport failures are returned as errors.
func (p restProvider) get(ctx context.Context, req *resty.Request, path string) (models.MediaResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := req.SetContext(ctx).Get(path)
	if err != nil {
		log.Err(err).Str("func", "restProvider.get").Str("provider", p.name).Msg("provider request failed")
		return models.MediaResponse{}, fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, p.name, err)
	}

	if httpErr := mapHTTPError(resp); httpErr != nil {
		log.Warn().Err(httpErr).Str("provider", p.name).Int("status", resp.StatusCode()).Msg("provider answered with an error")
	} else {
		log.Debug().Str("provider", p.name).Int("status", resp.StatusCode()).Dur("took", resp.Time()).Msg("provider answered")
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	return models.MediaResponse{
		StatusCode:  resp.StatusCode(),
		ContentType: contentType,
		Body:        resp.Body(),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
