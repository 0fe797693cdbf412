package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeFormatError     ErrorCode = "FORMAT_ERROR"
	ErrorCodeRequestTooLarge ErrorCode = "REQUEST_TOO_LARGE"
	ErrorCodeRateLimited     ErrorCode = "RATE_LIMITED"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// formatErrorTag is the error field of every format-error reply.
const formatErrorTag = "format_error"

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	sendAPIError(c, statusCode, APIErrorResponse(code, message, details...))
}

func sendAPIError(c *gin.Context, statusCode int, errorResponse *APIError) {
	// Add request ID if available
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.AbortWithStatusJSON(statusCode, errorResponse)
}

// SendFormatError sends the format-error reply: HTTP 400 with error "format_error".
func SendFormatError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    string(ErrorCodeFormatError),
		}
	}

	errorResponse := APIErrorResponse(ErrorCodeFormatError, "Request contained improper structure", details...)
	errorResponse.Error = formatErrorTag
	sendAPIError(c, http.StatusBadRequest, errorResponse)
}

// SendRequestTooLargeError sends a standardized body size error
func SendRequestTooLargeError(c *gin.Context, limit int64) {
	SendError(c, http.StatusRequestEntityTooLarge, ErrorCodeRequestTooLarge,
		fmt.Sprintf("Request body exceeds the limit of %d bytes", limit))
}

// SendRateLimitedError sends a standardized rate limit error
func SendRateLimitedError(c *gin.Context) {
	SendError(c, http.StatusTooManyRequests, ErrorCodeRateLimited,
		"Too many requests, retry later")
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}
