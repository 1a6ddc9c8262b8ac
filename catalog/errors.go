package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid catalog configuration")
	// ErrRemote matches every failure talking to the backend
	ErrRemote = errors.New("catalog backend request failed")
	// ErrNotFound indicates the backend has no entry with the requested id
	ErrNotFound = errors.New("entry not found")
)

// APIError represents a non-2xx reply from the backend
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Is lets errors.Is match ErrRemote for every API error and ErrNotFound for 404s
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRemote:
		return true
	case ErrNotFound:
		return e.IsNotFound()
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
