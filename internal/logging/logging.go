// Package logging provides the structured logger used across the backend,
// plus per-request trace IDs.
package logging

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey struct{}

// Logger wraps a zerolog logger with the printf-style API the services use.
type Logger struct {
	z zerolog.Logger
}

// New creates a logger tagged with the given service name.
func New(service string) *Logger {
	z := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("service", service).
		Logger()
	return &Logger{z: z}
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.z.Debug().Msg(fmt.Sprintf(format, args...))
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.z.Info().Msg(fmt.Sprintf(format, args...))
}

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) {
	l.z.Warn().Msg(fmt.Sprintf(format, args...))
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.z.Error().Msg(fmt.Sprintf(format, args...))
}

// LogRequest logs a completed HTTP request with its trace ID.
func (l *Logger) LogRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	evt := l.z.Info()
	if status >= http.StatusInternalServerError {
		evt = l.z.Error()
	}
	evt.Str("trace_id", TraceID(ctx)).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("duration", duration).
		Msg("request")
}

// NewTraceID generates a fresh trace identifier.
func NewTraceID() string {
	return uuid.NewString()
}

// WithTraceID stores a trace ID on the context.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// TraceID returns the trace ID stored on the context, or "" if none.
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}
