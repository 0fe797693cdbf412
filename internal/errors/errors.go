package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrFormat is returned when an association request does not have the expected shape
	ErrFormat = errors.New("format_error")

	// ErrInvalidInput is returned when settings or arguments fail validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrServiceUnavailable is returned when the association service does not reply in time
	ErrServiceUnavailable = errors.New("association service unavailable")

	// ErrDirectoryNotFound is returned when a launch directory does not exist
	ErrDirectoryNotFound = errors.New("directory not found")
)

// FormatError represents a rejected association request with context
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("format error in field '%s': %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("format error: %s", e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(field, reason string) *FormatError {
	return &FormatError{Field: field, Reason: reason}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UnavailableError wraps the transport failure that made the service unreachable
type UnavailableError struct {
	Endpoint string
	Cause    error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("no reply from association service at '%s': %v", e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("no reply from association service at '%s'", e.Endpoint)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrServiceUnavailable
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// NewUnavailableError creates a new UnavailableError
func NewUnavailableError(endpoint string, cause error) *UnavailableError {
	return &UnavailableError{Endpoint: endpoint, Cause: cause}
}

// DirectoryNotFoundError represents a missing launch directory
type DirectoryNotFoundError struct {
	Path string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("directory '%s' not found", e.Path)
}

func (e *DirectoryNotFoundError) Is(target error) bool {
	return target == ErrDirectoryNotFound
}

// NewDirectoryNotFoundError creates a new DirectoryNotFoundError
func NewDirectoryNotFoundError(path string) *DirectoryNotFoundError {
	return &DirectoryNotFoundError{Path: path}
}
