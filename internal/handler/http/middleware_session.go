package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/media-finder/internal/app"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/service"
	"github.com/MKhiriev/media-finder/internal/utils"
)

// withSession resolves the session cookie of every request. A valid session
// is stored in the request context under [utils.SessionCtxKey]; requests
// without one continue anonymously. Only session store faults stop the
// request.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.ValidateSession(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				next.ServeHTTP(w, r)
				return
			}
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", session.UserID)
		})
		ctx = l.WithContext(utils.WithSession(ctx, session))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth rejects anonymous requests with 401 before they reach any
// handler.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("anonymous request to protected route")
			writeErrorMessage(w, http.StatusUnauthorized, app.MsgNotAuthenticated)
			return
		}

		next.ServeHTTP(w, r)
	})
}
