package errors

import (
	"errors"
	"fmt"
)

// ErrParseFailure is returned when a line cannot be parsed into a record.
// It is the only error kind produced by the parser.
var ErrParseFailure = errors.New("failed to parse record from string")

// TokenCountField is the Field value of a ParseError caused by a wrong token count.
const TokenCountField = -1

// ParseError represents a record parse failure with context about the offending token
type ParseError struct {
	Field  int    // zero-based token index, or TokenCountField
	Token  string // offending token, empty for token count failures
	Reason string
	cause  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Field == TokenCountField {
		return fmt.Sprintf("%s: %s", ErrParseFailure, e.Reason)
	}
	return fmt.Sprintf("%s: field %d (%q): %s", ErrParseFailure, e.Field, e.Token, e.Reason)
}

// Is reports whether target is ErrParseFailure.
func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailure
}

// Unwrap returns the underlying strconv error, if any.
func (e *ParseError) Unwrap() error { return e.cause }

// NewTokenCountError creates a ParseError for a line that does not hold exactly want tokens
func NewTokenCountError(got, want int) *ParseError {
	return &ParseError{
		Field:  TokenCountField,
		Reason: fmt.Sprintf("expected %d tokens, got %d", want, got),
	}
}

// NewFieldError creates a ParseError for a token that failed numeric conversion
func NewFieldError(field int, token, reason string, cause error) *ParseError {
	return &ParseError{Field: field, Token: token, Reason: reason, cause: cause}
}
