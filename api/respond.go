package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes data as the response body with the given status code
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	// Marshal the data first so a failure can still become a clean 500
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError logs err in full and writes only its public message to the caller.
// Server errors log at error level unless a retry may succeed.
func (r Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	logger := requestLogger(r.logger, req)

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		apiErr = errs.NewInternalErrorWithCause(err)
	}

	event := logger.Warn()
	if apiErr.StatusCode >= http.StatusInternalServerError && !errs.IsTransient(apiErr) {
		event = logger.Error()
	}
	if apiErr.Field != "" {
		event = event.Str("field", apiErr.Field)
	}
	event.
		Int("status", apiErr.StatusCode).
		Str("kind", errs.Kind(apiErr)).
		Str("error", apiErr.GetFullError()).
		Msg("Request failed")

	r.WriteJSON(w, apiErr.StatusCode, ErrorResponse{Error: apiErr.PublicMessage()})
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) *errs.ApiErr {
	return errs.NewDatabaseError(operation, entity, cause)
}
