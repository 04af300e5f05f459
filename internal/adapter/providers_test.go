// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

// newUpstream starts a fake provider that records the last request and
// answers with status and body.
func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()

	var last http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = *r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &last
}

// ── Openverse ───────────────────────────────────────────────────────────────

func TestOpenverse_Search(t *testing.T) {
	srv, last := newUpstream(t, http.StatusOK, `{"results":[{"id":"1"}]}`)

	p, err := NewOpenverseProvider(srv.URL, testTimeout, logger.Nop())
	require.NoError(t, err)

	resp, err := p.Search(context.Background(), models.MediaQuery{Query: "red fox", MediaType: "audio", Page: 2})
	require.NoError(t, err)

	assert.Equal(t, "/audios/", last.URL.Path)
	assert.Equal(t, "red fox", last.URL.Query().Get("q"))
	assert.Equal(t, "2", last.URL.Query().Get("page"))
	assert.Equal(t, "application/json", last.Header.Get("Accept"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.JSONEq(t, `{"results":[{"id":"1"}]}`, string(resp.Body))
}

func TestOpenverse_DefaultsToImagesAndFirstPage(t *testing.T) {
	srv, last := newUpstream(t, http.StatusOK, `{}`)

	p, err := NewOpenverseProvider(srv.URL, testTimeout, logger.Nop())
	require.NoError(t, err)

	_, err = p.Search(context.Background(), models.MediaQuery{Query: "cats"})
	require.NoError(t, err)

	assert.Equal(t, "/images/", last.URL.Path)
	assert.Equal(t, "1", last.URL.Query().Get("page"))
}

func TestOpenverse_RelaysUpstreamError(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusTooManyRequests, `{"detail":"slow down"}`)

	p, err := NewOpenverseProvider(srv.URL, testTimeout, logger.Nop())
	require.NoError(t, err)

	resp, err := p.Search(context.Background(), models.MediaQuery{Query: "cats", Page: 1})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"slow down"}`, string(resp.Body))
}

// ── YouTube ─────────────────────────────────────────────────────────────────

func TestYouTube_Search(t *testing.T) {
	srv, last := newUpstream(t, http.StatusOK, `{"items":[]}`)

	p, err := NewYouTubeProvider(srv.URL, "yt-key", testTimeout, logger.Nop())
	require.NoError(t, err)

	resp, err := p.Search(context.Background(), models.MediaQuery{Query: "lofi", Page: 3})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	q := last.URL.Query()
	assert.Equal(t, "/search", last.URL.Path)
	assert.Equal(t, "snippet", q.Get("part"))
	assert.Equal(t, "lofi", q.Get("q"))
	assert.Equal(t, "15", q.Get("maxResults"))
	assert.Equal(t, "video", q.Get("type"))
	assert.Equal(t, "yt-key", q.Get("key"))
}

func TestYouTube_VideoDetails(t *testing.T) {
	srv, last := newUpstream(t, http.StatusOK, `{"items":[{"id":"abc"}]}`)

	p, err := NewYouTubeProvider(srv.URL, "yt-key", testTimeout, logger.Nop())
	require.NoError(t, err)

	resp, err := p.VideoDetails(context.Background(), "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"id":"abc"}]}`, string(resp.Body))

	q := last.URL.Query()
	assert.Equal(t, "/videos", last.URL.Path)
	assert.Equal(t, "snippet,contentDetails,statistics", q.Get("part"))
	assert.Equal(t, "abc", q.Get("id"))
}

func TestYouTube_NotConfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()

	p, err := NewYouTubeProvider(srv.URL, "  ", testTimeout, logger.Nop())
	require.NoError(t, err)

	_, err = p.Search(context.Background(), models.MediaQuery{Query: "x", Page: 1})
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
	_, err = p.VideoDetails(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
	assert.False(t, called, "no request must leave without a key")
}

// ── Pexels ──────────────────────────────────────────────────────────────────

func TestPexels_Search(t *testing.T) {
	srv, last := newUpstream(t, http.StatusOK, `{"photos":[]}`)

	p, err := NewPexelsProvider(srv.URL, "px-key", testTimeout, logger.Nop())
	require.NoError(t, err)

	_, err = p.Search(context.Background(), models.MediaQuery{Query: "sea", Page: 4})
	require.NoError(t, err)

	q := last.URL.Query()
	assert.Equal(t, "/search", last.URL.Path)
	assert.Equal(t, "px-key", last.Header.Get("Authorization"))
	assert.Equal(t, "sea", q.Get("query"))
	assert.Equal(t, "4", q.Get("page"))
	assert.Equal(t, "15", q.Get("per_page"))
}

// ── Freesound ───────────────────────────────────────────────────────────────

func TestFreesound_SearchUsesZeroBasedPage(t *testing.T) {
	srv, last := newUpstream(t, http.StatusOK, `{"results":[]}`)

	p, err := NewFreesoundProvider(srv.URL, "fs-key", testTimeout, logger.Nop())
	require.NoError(t, err)

	_, err = p.Search(context.Background(), models.MediaQuery{Query: "rain", Page: 1})
	require.NoError(t, err)

	q := last.URL.Query()
	assert.Equal(t, "/search/text/", last.URL.Path)
	assert.Equal(t, "Token fs-key", last.Header.Get("Authorization"))
	assert.Equal(t, "rain", q.Get("query"))
	assert.Equal(t, "0", q.Get("page"))
	assert.Equal(t, "15", q.Get("page_size"))
	assert.Equal(t, freesoundFields, q.Get("fields"))
}

// ── transport failures ──────────────────────────────────────────────────────

func TestProvider_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p, err := NewOpenverseProvider(url, testTimeout, logger.Nop())
	require.NoError(t, err)

	_, err = p.Search(context.Background(), models.MediaQuery{Query: "cats", Page: 1})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestProvider_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	p, err := NewPexelsProvider(srv.URL, "k", 50*time.Millisecond, logger.Nop())
	require.NoError(t, err)

	_, err = p.Search(context.Background(), models.MediaQuery{Query: "cats", Page: 1})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://api.pexels.com/v1/", want: "https://api.pexels.com/v1"},
		{in: "api.openverse.org/v1", want: "https://api.openverse.org/v1"},
		{in: "  http://localhost:8080  ", want: "http://localhost:8080"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewProviders(t *testing.T) {
	cfg := config.Adapter{
		OpenverseURL:   "https://api.openverse.org/v1",
		YouTubeURL:     "https://www.googleapis.com/youtube/v3",
		PexelsURL:      "https://api.pexels.com/v1",
		FreesoundURL:   "https://freesound.org/apiv2",
		PexelsAPIKey:   "k",
		RequestTimeout: time.Second,
	}

	p, err := NewProviders(cfg, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.ProviderOpenverse, p.Openverse.Name())
	assert.Equal(t, models.ProviderYouTube, p.YouTube.Name())
	assert.Equal(t, models.ProviderPexels, p.Pexels.Name())
	assert.Equal(t, models.ProviderFreesound, p.Freesound.Name())
}

func TestNewProviders_InvalidURL(t *testing.T) {
	_, err := NewProviders(config.Adapter{OpenverseURL: ""}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}
