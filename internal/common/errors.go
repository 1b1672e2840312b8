package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound    = errors.New("requested resource not found")
	ErrBadRequest  = errors.New("bad request")
	ErrConflict    = errors.New("resource conflict") // e.g., username already exists
	ErrValidation  = errors.New("validation failed")
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrStorage     = errors.New("storage unavailable")
)

// ConflictError reports a duplicate resource with the legacy message shape
// ("<name> already exists"). It unwraps to ErrConflict.
type ConflictError struct {
	Resource string
}

func (e *ConflictError) Error() string {
	return e.Resource + " already exists"
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// HTTPStatusFromError maps domain errors to HTTP status codes. The numbers
// follow the documented wire contract: duplicate usernames respond 400 (not
// 409) and validation failures respond 422.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRateLimited) {
		return http.StatusTooManyRequests
	}
	if errors.Is(err, ErrStorage) {
		return http.StatusInternalServerError
	}

	// Check for pgx specific errors (unique constraint races that slipped
	// past the application-level pre-check).
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // Unique violation
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
