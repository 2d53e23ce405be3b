// Package parser converts single text lines into model.Record values.
package parser

import (
	"errors"
	"strconv"
	"strings"

	apperrors "github.com/gcbaptista/go-fc-record/internal/errors"
	"github.com/gcbaptista/go-fc-record/internal/tokenizer"
	"github.com/gcbaptista/go-fc-record/model"
)

// ErrParseFailure is matched by every error ParseRecord returns.
var ErrParseFailure = apperrors.ErrParseFailure

// ParseError carries the offending field index and token of a failed parse.
type ParseError = apperrors.ParseError

// FieldCount is the number of whitespace-separated tokens a record line must hold.
const FieldCount = 5

// ParseRecord parses a line of the form "<uint> <uint> <uint> <uint> <float>".
//
// Tokens may be separated by any run of whitespace. The four indices are parsed
// as base-10 uint64 values with an optional leading '+'. The weight accepts
// decimal and scientific notation plus "inf", "infinity" and "nan"; values too
// large for a float64 become ±Inf. Hex floats and digit separators are rejected.
// Every failure satisfies errors.Is(err, errors.ErrParseFailure) and no partial
// record is returned.
func ParseRecord(line string) (model.Record, error) {
	tokens := tokenizer.Fields(line)
	if len(tokens) != FieldCount {
		return model.Record{}, apperrors.NewTokenCountError(len(tokens), FieldCount)
	}

	var indices [4]uint64
	for i := range indices {
		v, err := parseIndex(tokens[i])
		if err != nil {
			return model.Record{}, apperrors.NewFieldError(i, tokens[i], "invalid non-negative integer", err)
		}
		indices[i] = v
	}

	weight, err := parseWeight(tokens[4])
	if err != nil {
		return model.Record{}, apperrors.NewFieldError(4, tokens[4], "invalid float", err)
	}

	return model.NewRecord(indices[0], indices[1], indices[2], indices[3], weight), nil
}

func parseIndex(token string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, 64)
}

// parseWeight is strconv.ParseFloat restricted to decimal notation.
// Overflow is not an error: the ±Inf ParseFloat reports is kept.
func parseWeight(token string) (float64, error) {
	if strings.ContainsAny(token, "_xX") {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

// MustParseRecord is like ParseRecord but panics on failure.
// Intended for fixtures and tests.
func MustParseRecord(line string) model.Record {
	r, err := ParseRecord(line)
	if err != nil {
		panic(err)
	}
	return r
}
