package http

import (
	"net/http"

	"github.com/MKhiriev/media-finder/internal/app"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/utils"
	"github.com/MKhiriev/media-finder/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeBody(r, &creds); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")

	if !h.startSession(w, r, user) {
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Message: app.MsgRegistered, User: user.Summary()}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeBody(r, &creds); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")

	if !h.startSession(w, r, user) {
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Message: app.MsgLoggedIn, User: user.Summary()}, http.StatusOK)
}

// startSession drops the session the request arrived with, if any, and
// issues a fresh one for user. It reports false after writing an error.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	ctx := r.Context()

	if previous := h.sessionToken(r); previous != "" {
		if err := h.services.SessionService.DestroySession(ctx, previous); err != nil {
			writeError(w, r, err)
			return false
		}
	}

	session, err := h.services.SessionService.CreateSession(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return false
	}

	h.setSessionCookie(w, session)
	return true
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SessionService.DestroySession(r.Context(), h.sessionToken(r)); err != nil {
		writeError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, models.AuthCheckResponse{Authenticated: false}, http.StatusOK)
		return
	}

	user := session.User()
	utils.WriteJSON(w, models.AuthCheckResponse{Authenticated: true, User: &user}, http.StatusOK)
}
