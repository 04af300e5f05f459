// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound clients for the third-party media
// APIs proxied by MediaFinder: Openverse, YouTube, Pexels and Freesound.
//
// Every provider relays the upstream answer (status, content type and body)
// untouched. Only transport failures become errors ([ErrUpstreamUnavailable]);
// a provider whose API key is missing answers [ErrProviderNotConfigured]
// without calling out.
package adapter

import (
	"context"

	"github.com/MKhiriev/media-finder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MediaProvider searches one third-party media API.
type MediaProvider interface {
	// Name returns the provider identifier (see models.Provider*).
	Name() string

	// Search runs q against the provider.
	Search(ctx context.Context, q models.MediaQuery) (models.MediaResponse, error)
}

// VideoProvider is a [MediaProvider] that can also describe a single video.
type VideoProvider interface {
	MediaProvider

	// VideoDetails fetches snippet, content details and statistics of the
	// video with the given id.
	VideoDetails(ctx context.Context, id string) (models.MediaResponse, error)
}
