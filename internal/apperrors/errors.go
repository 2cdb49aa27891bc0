// Package apperrors defines the error taxonomy shared by the service layer
// and the HTTP handlers. Services return these; the API layer owns the
// mapping to status codes.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound covers both missing rows and rows owned by another user,
	// so callers cannot probe for existence.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when a caller addresses another user's
	// account by explicit id.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is deliberately uniform for unknown users and
	// wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when no valid session accompanies a
	// request.
	ErrUnauthenticated = errors.New("authentication required")

	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// ValidationError carries per-field messages for a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for a field and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = message
	return e
}

// Empty reports whether no field messages were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// UpstreamError wraps a failure from the external generation provider. The
// raw upstream text travels through to the client.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Upstreamf builds an UpstreamError from a format string.
func Upstreamf(format string, args ...interface{}) *UpstreamError {
	return &UpstreamError{Message: fmt.Sprintf(format, args...)}
}
