package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gcbaptista/go-fc-record/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeParseFailed      ErrorCode = "PARSE_FAILED"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeRequestTooLarge  ErrorCode = "REQUEST_TOO_LARGE"
)

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
	errorResponse := APIErrorResponse(code, message, details...)

	// Add request ID if available
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendParseError sends a parse failure, including the offending token when known
func SendParseError(c *gin.Context, err error) {
	var parseErr *apperrors.ParseError
	if !errors.As(err, &parseErr) {
		SendError(c, http.StatusBadRequest, ErrorCodeParseFailed, err.Error())
		return
	}

	detail := ErrorDetail{Message: parseErr.Reason, Code: "PARSE_ERROR"}
	if parseErr.Field == apperrors.TokenCountField {
		detail.Field = "line"
	} else {
		detail.Field = "field_" + strconv.Itoa(parseErr.Field)
	}
	SendError(c, http.StatusBadRequest, ErrorCodeParseFailed, apperrors.ErrParseFailure.Error(), detail)
}

// SendBindError sends 413 when the body exceeded the size limit, otherwise an invalid JSON error
func SendBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		SendError(c, http.StatusRequestEntityTooLarge, ErrorCodeRequestTooLarge,
			"Request body exceeds the limit of "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
		return
	}
	SendInvalidJSONError(c, err)
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}
