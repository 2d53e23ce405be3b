// Package api provides validation utilities for API request handling.
package api

import (
	"strings"

	"github.com/gcbaptista/go-fc-record/config"
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

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateParseRequest validates the body of a parse request.
// Blank lines pass through so the parser reports them as token count failures.
func ValidateParseRequest(req *ParseRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if strings.ContainsAny(strings.TrimRight(req.Line, "\r\n"), "\r\n") {
		result.AddError("line", "Line must not contain embedded newlines")
	}

	return result
}

// ValidateCompareRequest validates the body of a compare request
func ValidateCompareRequest(req *CompareRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req.A == nil {
		result.AddError("a", "Record a is required")
	}
	if req.B == nil {
		result.AddError("b", "Record b is required")
	}

	settings := config.ComparisonSettings{Epsilon: req.Epsilon}
	for _, msg := range settings.Validate() {
		result.AddError("epsilon", msg)
	}

	return result
}
