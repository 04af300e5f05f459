// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/media-finder/internal/adapter"
	"github.com/MKhiriev/media-finder/internal/app"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/service"
	"github.com/MKhiriev/media-finder/internal/validators"
	"github.com/MKhiriev/media-finder/models"
)

// mediaSearch returns the proxy handler for one provider.
func (h *Handler) mediaSearch(provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		params := r.URL.Query()

		query := models.MediaQuery{
			Query: strings.TrimSpace(params.Get("query")),
			Page:  1,
		}
		if raw := params.Get("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil {
				writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidPage)
				return
			}
			query.Page = page
		}

		fields := []string{validators.FieldQuery, validators.FieldPage}
		if provider == models.ProviderOpenverse {
			query.MediaType = params.Get("mediaType")
			if query.MediaType == "" {
				query.MediaType = validators.MediaTypeImage
			}
			fields = append(fields, validators.FieldMediaType)
		}

		if err := h.validator.Validate(ctx, query, fields...); err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrValidation, err))
			return
		}

		resp, err := h.services.MediaService.Search(ctx, provider, query)
		if err != nil {
			h.writeMediaError(w, r, provider, err)
			return
		}

		relay(w, r, resp)
	}
}

func (h *Handler) youtubeVideo(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeErrorMessage(w, http.StatusBadRequest, app.MsgVideoIDRequired)
		return
	}

	resp, err := h.services.MediaService.VideoDetails(r.Context(), id)
	if err != nil {
		h.writeMediaError(w, r, models.ProviderYouTube, err)
		return
	}

	relay(w, r, resp)
}

func (h *Handler) writeMediaError(w http.ResponseWriter, r *http.Request, provider string, err error) {
	if errors.Is(err, adapter.ErrProviderNotConfigured) {
		logger.FromRequest(r).Warn().Str("provider", provider).Msg("media provider has no API key")
		writeErrorMessage(w, http.StatusServiceUnavailable, fmt.Sprintf(app.MsgProviderNotConfigured, provider))
		return
	}

	writeError(w, r, err)
}

// relay writes an upstream answer unchanged.
func relay(w http.ResponseWriter, r *http.Request, resp models.MediaResponse) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to relay media response")
	}
}
