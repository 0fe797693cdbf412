// Package api provides validation utilities for API request handling.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gcbaptista/smart-selector/internal/errors"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// FormatErrorResult converts a request parsing error into a ValidationResult.
// Errors that carry a field keep it; anything else is reported against the body.
func FormatErrorResult(err error) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if err == nil {
		return result
	}

	var formatErr *apperrors.FormatError
	if errors.As(err, &formatErr) {
		field := formatErr.Field
		if field == "" {
			field = "request_body"
		}
		result.AddError(field, formatErr.Reason)
		return result
	}

	result.AddError("request_body", err.Error())
	return result
}

// ReadRawBody reads the request body for handlers that validate the payload
// themselves. It returns false after sending an error reply.
func ReadRawBody(c *gin.Context) ([]byte, bool) {
	payload, err := c.GetRawData()
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			SendRequestTooLargeError(c, maxBytesErr.Limit)
			return nil, false
		}
		SendFormatError(c, FormatErrorResult(apperrors.NewFormatError("", "unreadable request body")))
		return nil, false
	}
	return payload, true
}
