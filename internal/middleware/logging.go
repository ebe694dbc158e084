package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bagworks/backend/internal/logging"
)

// RequestLogging assigns each request a trace ID, echoes it in the
// X-Trace-ID response header, and logs the completed request.
func RequestLogging(log *logging.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get("X-Trace-ID")
			if traceID == "" {
				traceID = logging.NewTraceID()
			}
			ctx := logging.WithTraceID(r.Context(), traceID)
			w.Header().Set("X-Trace-ID", traceID)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r.WithContext(ctx))
			log.LogRequest(ctx, r.Method, r.URL.Path, sw.status, time.Since(start))
		})
	}
}
