package services

import (
	"math"

	"github.com/gcbaptista/go-fc-record/config"
	"github.com/gcbaptista/go-fc-record/model"
	"github.com/gcbaptista/go-fc-record/parser"
)

// ComparisonResult reports both equality semantics for a pair of records.
type ComparisonResult struct {
	ExactEqual  bool    `json:"exact_equal"`
	ApproxEqual bool    `json:"approx_equal"`
	Epsilon     float64 `json:"epsilon"`
	WeightDelta float64 `json:"weight_delta"` // |a.weight - b.weight|
}

// RecordParser turns one line of text into a record.
type RecordParser interface {
	ParseRecord(line string) (model.Record, error)
}

// RecordComparator compares two records under the given settings.
type RecordComparator interface {
	Compare(a, b model.Record, settings config.ComparisonSettings) ComparisonResult
}

// RecordManager combines parsing and comparison; it is what the API depends on.
type RecordManager interface {
	RecordParser
	RecordComparator
}

// RecordService is the default RecordManager, delegating to the parser and model packages.
// It holds no state and is safe for concurrent use.
type RecordService struct{}

// NewRecordService creates a new RecordService.
func NewRecordService() *RecordService {
	return &RecordService{}
}

// ParseRecord implements RecordParser.
func (s *RecordService) ParseRecord(line string) (model.Record, error) {
	return parser.ParseRecord(line)
}

// Compare implements RecordComparator.
func (s *RecordService) Compare(a, b model.Record, settings config.ComparisonSettings) ComparisonResult {
	eps := settings.ResolvedEpsilon()
	return ComparisonResult{
		ExactEqual:  a.Equal(b),
		ApproxEqual: a.ApproxEqual(b, eps),
		Epsilon:     eps,
		WeightDelta: math.Abs(a.Weight - b.Weight),
	}
}
