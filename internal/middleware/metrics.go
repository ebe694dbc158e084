package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bagworks/backend/internal/metrics"
)

// Metrics records request counts and latency. The path label uses the
// routed template (e.g. /api/agents/{id}) so IDs do not explode the series.
func Metrics() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := metrics.RequestStarted()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}
			done(r.Method, path, sw.status, time.Since(start))
		})
	}
}
