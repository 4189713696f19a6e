package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErr_PublicMessageHidesDetails(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("save", "contact message", cause).WithMessage("Failed to save message")

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "Failed to save message", err.PublicMessage())
	assert.Contains(t, err.Error(), "Failed to save contact message")
	assert.Contains(t, err.GetFullError(), "disk I/O error")
	assert.True(t, IsDiskSpaceFullError(err))
}

func TestApiErr_PublicMessageDefaultsToSentinel(t *testing.T) {
	err := NewMissingRequiredFieldError("email")

	assert.Equal(t, "missing required field", err.PublicMessage())
	assert.Equal(t, "email", err.Field)
	assert.True(t, IsMissingRequiredFieldError(err))
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestClassifyDatabaseError(t *testing.T) {
	cases := []struct {
		cause error
		want  error
	}{
		{errors.New("database is locked"), ErrDatabaseLock},
		{errors.New("UNIQUE constraint failed: projects.id"), ErrUniqueConstraintViolation},
		{errors.New("database or disk is full"), ErrDiskSpaceFull},
		{errors.New("file is not a database"), ErrDatabaseCorruption},
		{errors.New("sql: database is closed"), ErrDatabaseConnection},
		{errors.New("no such table: projects"), ErrDatabaseQuery},
		{nil, ErrDatabaseQuery},
	}

	for _, tc := range cases {
		name := "nil"
		if tc.cause != nil {
			name = tc.cause.Error()
		}
		t.Run(name, func(t *testing.T) {
			err := NewDatabaseError("find", "projects", tc.cause)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		})
	}
}

func TestNewInternalErrorWithCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalErrorWithCause(cause)

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "Internal Server Error", err.PublicMessage())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.GetFullError(), "boom")
}

func TestKind(t *testing.T) {
	cases := map[string]error{
		"not_found":              NewNotFoundError("route"),
		"cors_blocked":           NewCORSError("https://evil.test"),
		"missing_field":          NewMissingRequiredFieldError("name"),
		"invalid_json":           NewInvalidJSONError(errors.New("unexpected EOF")),
		"malformed_payload":      Malformed("contact request"),
		"unsupported_media_type": NewUnsupportedMediaTypeError("text/plain", []string{"application/json"}),
		"body_too_large":         NewMaxBodySizeExceededError(10),
		"schema_init":            NewSchemaInitError("projects", errors.New("boom")),
		"seed":                   NewSeedError("projects", errors.New("boom")),
		"database_lock":          NewDatabaseError("find", "projects", errors.New("database is locked")),
		"unique_violation":       NewDatabaseError("save", "projects", errors.New("UNIQUE constraint failed: projects.id")),
		"disk_full":              NewDatabaseError("save", "projects", errors.New("database or disk is full")),
		"database_corruption":    NewDatabaseError("find", "projects", errors.New("file is not a database")),
		"database_connection":    NewDatabaseError("find", "projects", errors.New("sql: database is closed")),
		"database_query":         NewDatabaseError("find", "projects", errors.New("no such table: projects")),
		"rate_limited":           NewUpstreamError("resend", http.StatusTooManyRequests, "slow down"),
		"invalid_api_key":        NewUpstreamError("resend", http.StatusForbidden, "bad key"),
		"service_unavailable":    NewUpstreamError("resend", http.StatusBadGateway, "oops"),
		"service_unreachable":    NewServiceUnreachableError("twilio", errors.New("dial tcp")),
		"environment":            NewEnvironmentVariableError("RESEND_API_KEY"),
		"partial_failure":        NewPartialFailureError("contact notification", []string{"sms: down"}),
		"internal":               NewInternalErrorWithCause(errors.New("boom")),
	}

	for want, err := range cases {
		t.Run(want, func(t *testing.T) {
			assert.Equal(t, want, Kind(err))
			assert.Equal(t, want, Kind(fmt.Errorf("wrapped: %w", err)))
		})
	}

	assert.Equal(t, "", Kind(nil))
	assert.Equal(t, "", Kind(errors.New("plain")))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(NewDatabaseError("save", "contact message", errors.New("database is locked"))))
	assert.True(t, IsTransient(NewUpstreamError("resend", http.StatusTooManyRequests, "slow down")))
	assert.False(t, IsTransient(NewDatabaseError("save", "contact message", errors.New("database or disk is full"))))
	assert.False(t, IsTransient(NewMissingRequiredFieldError("name")))
}

func TestStartupErrors(t *testing.T) {
	cause := errors.New("boom")

	schemaErr := NewSchemaInitError("projects", cause)
	assert.ErrorIs(t, schemaErr, ErrSchemaInit)
	assert.ErrorIs(t, schemaErr, cause)

	seedErr := NewSeedError("testimonials", cause)
	assert.ErrorIs(t, seedErr, ErrSeed)
	assert.Contains(t, seedErr.Error(), "testimonials")
}

func TestNewUpstreamError(t *testing.T) {
	assert.True(t, IsRateLimitError(NewUpstreamError("resend", http.StatusTooManyRequests, "slow down")))
	assert.True(t, IsInvalidAPIKeyError(NewUpstreamError("resend", http.StatusUnauthorized, "bad key")))
	assert.True(t, IsServiceUnavailableError(NewUpstreamError("resend", http.StatusInternalServerError, "oops")))
}

func TestNotFound(t *testing.T) {
	err := NewNotFoundError("route")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "route: not found", err.PublicMessage())
}
