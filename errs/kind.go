package errs

import "errors"

// Kind names the category of err for log fields. It returns "" when err
// matches none of the sentinels in this package.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsNotFound(err):
		return "not_found"
	case IsCORSBlocked(err):
		return "cors_blocked"

	case IsMissingRequiredFieldError(err):
		return "missing_field"
	case IsInvalidJSONError(err):
		return "invalid_json"
	case IsMalformedPayloadError(err):
		return "malformed_payload"
	case IsUnsupportedMediaTypeError(err):
		return "unsupported_media_type"
	case IsMaxBodySizeExceededError(err):
		return "body_too_large"

	case errors.Is(err, ErrSchemaInit):
		return "schema_init"
	case errors.Is(err, ErrSeed):
		return "seed"
	case IsDatabaseLockError(err):
		return "database_lock"
	case IsUniqueConstraintViolationError(err):
		return "unique_violation"
	case IsDiskSpaceFullError(err):
		return "disk_full"
	case IsDatabaseCorruptionError(err):
		return "database_corruption"
	case IsDatabaseConnectionError(err):
		return "database_connection"
	case IsDatabaseQueryError(err):
		return "database_query"

	case IsRateLimitError(err):
		return "rate_limited"
	case IsInvalidAPIKeyError(err):
		return "invalid_api_key"
	case IsServiceUnavailableError(err):
		return "service_unavailable"
	case IsServiceUnreachableError(err):
		return "service_unreachable"
	case IsEnvironmentVariableError(err):
		return "environment"
	case IsPartialFailureError(err):
		return "partial_failure"

	case errors.Is(err, ErrInternal):
		return "internal"
	}
	return ""
}

// IsTransient reports whether retrying the same request may succeed.
func IsTransient(err error) bool {
	return IsDatabaseLockError(err) || IsRateLimitError(err) || IsServiceUnavailableError(err)
}
