package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// Database & Storage Specific Errors
var (
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrDatabaseLock              = errors.New("database lock timeout")
	ErrDiskSpaceFull             = errors.New("disk space full")
	ErrDatabaseCorruption        = errors.New("database corruption")
	ErrSchemaInit                = errors.New("schema initialization failed")
	ErrSeed                      = errors.New("seed insertion failed")
)

// NewDatabaseError creates a new database error with details about the operation.
// Every storage failure maps to 500; the sentinel records what kind of failure it was.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        classifyDatabaseError(cause),
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

// classifyDatabaseError matches SQLite error text. The driver's typed errors
// are not reachable through gorm without importing the cgo driver here.
func classifyDatabaseError(cause error) error {
	if cause == nil {
		return ErrDatabaseQuery
	}

	errStr := strings.ToLower(cause.Error())
	switch {
	case strings.Contains(errStr, "database is locked"),
		strings.Contains(errStr, "database table is locked"),
		strings.Contains(errStr, "sqlite_busy"):
		return ErrDatabaseLock
	case strings.Contains(errStr, "unique constraint failed"):
		return ErrUniqueConstraintViolation
	case strings.Contains(errStr, "database or disk is full"),
		strings.Contains(errStr, "disk i/o error"):
		return ErrDiskSpaceFull
	case strings.Contains(errStr, "malformed"),
		strings.Contains(errStr, "not a database"):
		return ErrDatabaseCorruption
	case strings.Contains(errStr, "database is closed"),
		strings.Contains(errStr, "unable to open database"):
		return ErrDatabaseConnection
	}
	return ErrDatabaseQuery
}

func NewSchemaInitError(table string, cause error) error {
	return fmt.Errorf("%w: table %s: %w", ErrSchemaInit, table, cause)
}

func NewSeedError(table string, cause error) error {
	return fmt.Errorf("%w: table %s: %w", ErrSeed, table, cause)
}

// Database & Storage Error Type Checkers
func IsDatabaseQueryError(err error) bool {
	return errors.Is(err, ErrDatabaseQuery)
}

func IsDatabaseConnectionError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}

func IsUniqueConstraintViolationError(err error) bool {
	return errors.Is(err, ErrUniqueConstraintViolation)
}

func IsDatabaseLockError(err error) bool {
	return errors.Is(err, ErrDatabaseLock)
}

func IsDiskSpaceFullError(err error) bool {
	return errors.Is(err, ErrDiskSpaceFull)
}

func IsDatabaseCorruptionError(err error) bool {
	return errors.Is(err, ErrDatabaseCorruption)
}
