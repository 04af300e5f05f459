// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/media-finder/models"
)

// cookieSettings describes the session cookie. The cookie only ever carries
// the opaque session token.
type cookieSettings struct {
	name   string
	secure bool
	// maxAge is the cookie lifetime in seconds.
	maxAge int
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   h.cookie.maxAge,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken returns the token of the session cookie, or "" without one.
func (h *Handler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.cookie.name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
