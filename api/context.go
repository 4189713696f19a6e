package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

type keyType string

const (
	requestIDKey keyType = "requestID"
)

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ctxGetRequestID retrieves the request ID from the context, empty when absent
func ctxGetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// requestLogger decorates logger with the request's method, path and ID
func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	return logger.With().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("requestId", ctxGetRequestID(r.Context())).
		Logger()
}
