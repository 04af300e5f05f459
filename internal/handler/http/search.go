package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/media-finder/internal/app"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/utils"
	"github.com/MKhiriev/media-finder/models"
)

// The search routes sit behind requireAuth, so a session is always present.

func (h *Handler) saveSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := utils.GetSessionFromContext(ctx)

	var request models.SaveSearchRequest
	if err := decodeBody(r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	if _, err := h.services.SearchService.SaveSearch(ctx, session.UserID, request.Query); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSearchSaved}, http.StatusOK)
}

func (h *Handler) recentSearches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := utils.GetSessionFromContext(ctx)

	// zero lets the store apply its default
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidLimit)
			return
		}
		limit = parsed
	}

	records, err := h.services.SearchService.ListRecent(ctx, session.UserID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if records == nil {
		records = []models.SearchRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) deleteSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := utils.GetSessionFromContext(ctx)

	searchID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || searchID <= 0 {
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidSearchID)
		return
	}

	if err = h.services.SearchService.DeleteSearch(ctx, session.UserID, searchID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSearchDeleted}, http.StatusOK)
}
