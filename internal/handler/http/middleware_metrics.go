package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/media-finder/internal/metrics"
)

// withMetrics records request count and latency labelled by the matched
// chi route pattern, so /search/1 and /search/2 share one series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := metrics.RequestStarted(r.Method)
		mw := newResponseWriter(w)

		next.ServeHTTP(mw, r)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		done(route, mw.Status())
	})
}
