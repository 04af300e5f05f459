package adapter

import (
	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/logger"
)

// Providers bundles every media provider client.
type Providers struct {
	Openverse MediaProvider
	YouTube   VideoProvider
	Pexels    MediaProvider
	Freesound MediaProvider
}

// NewProviders builds all provider clients from cfg. Missing API keys are not
// an error here; the affected provider reports [ErrProviderNotConfigured] on
// use.
func NewProviders(cfg config.Adapter, log *logger.Logger) (*Providers, error) {
	openverse, err := NewOpenverseProvider(cfg.OpenverseURL, cfg.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	youtube, err := NewYouTubeProvider(cfg.YouTubeURL, cfg.YouTubeAPIKey, cfg.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	pexels, err := NewPexelsProvider(cfg.PexelsURL, cfg.PexelsAPIKey, cfg.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	freesound, err := NewFreesoundProvider(cfg.FreesoundURL, cfg.FreesoundAPIKey, cfg.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	for name, key := range map[string]string{
		"youtube":   cfg.YouTubeAPIKey,
		"pexels":    cfg.PexelsAPIKey,
		"freesound": cfg.FreesoundAPIKey,
	} {
		if key == "" {
			log.Warn().Str("provider", name).Msg("api key is not set, provider is disabled")
		}
	}

	return &Providers{
		Openverse: openverse,
		YouTube:   youtube,
		Pexels:    pexels,
		Freesound: freesound,
	}, nil
}
