package http

import (
	"net/http"

	"github.com/MKhiriev/media-finder/internal/app"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/utils"
	"github.com/MKhiriev/media-finder/models"
)

func (h *Handler) apiTest(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAPIConnected}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())
	utils.WriteJSON(w, session.User(), http.StatusOK)
}

// debugSession reports what the server knows about the caller's session.
// The token itself is never written back.
func (h *Handler) debugSession(w http.ResponseWriter, r *http.Request) {
	response := models.DebugSessionResponse{SessionExists: h.sessionToken(r) != ""}

	if session, ok := utils.GetSessionFromContext(r.Context()); ok {
		user := session.User()
		response.HasUser = true
		response.UserData = &user
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var request models.ContactRequest
	if err := decodeBody(r, &request); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	if err := h.services.ContactService.Submit(r.Context(), request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ContactResponse{Success: true, Message: app.MsgContactSubmitted}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(w, http.StatusNotFound, app.MsgNotFound)
}
