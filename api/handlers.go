package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fc-record/config"
	"github.com/gcbaptista/go-fc-record/model"
	"github.com/gcbaptista/go-fc-record/services"
)

// API holds dependencies for API handlers.
type API struct {
	records services.RecordManager
}

// NewAPI creates a new API handler structure.
func NewAPI(records services.RecordManager) *API {
	return &API{records: records}
}

// SetupRoutes defines all the API routes.
func SetupRoutes(router *gin.Engine, records services.RecordManager) {
	apiHandler := NewAPI(records)

	router.GET("/health", apiHandler.HealthCheckHandler)

	recordRoutes := router.Group("/records")
	{
		recordRoutes.POST("/parse", apiHandler.ParseRecordHandler)      // Parse a single line
		recordRoutes.POST("/compare", apiHandler.CompareRecordsHandler) // Exact and approximate comparison
	}
}

// ParseRequest is the body of POST /records/parse
type ParseRequest struct {
	Line string `json:"line"`
}

// CompareRequest is the body of POST /records/compare
type CompareRequest struct {
	A       *model.Record `json:"a"`
	B       *model.Record `json:"b"`
	Epsilon *float64      `json:"epsilon,omitempty"` // Defaults to model.DefaultEpsilon
}

// RecordView is the JSON form of a record. JSON has no NaN or Inf, so a
// non-finite weight is reported as null with its text in NonFiniteWeight.
type RecordView struct {
	I               uint64   `json:"i"`
	J               uint64   `json:"j"`
	K               uint64   `json:"k"`
	L               uint64   `json:"l"`
	Weight          *float64 `json:"weight"`
	NonFiniteWeight string   `json:"non_finite_weight,omitempty"`
}

// CompareResponse is the body returned by POST /records/compare
type CompareResponse struct {
	ExactEqual  bool     `json:"exact_equal"`
	ApproxEqual bool     `json:"approx_equal"`
	Epsilon     float64  `json:"epsilon"`
	WeightDelta *float64 `json:"weight_delta"` // null when the difference is not finite
}

func finiteOrNil(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// NewRecordView converts a record to its JSON form.
func NewRecordView(r model.Record) RecordView {
	view := RecordView{I: r.I, J: r.J, K: r.K, L: r.L, Weight: finiteOrNil(r.Weight)}
	if view.Weight == nil {
		view.NonFiniteWeight = strconv.FormatFloat(r.Weight, 'g', -1, 64)
	}
	return view
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-fc-record",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// ParseRecordHandler parses one line into a record.
// Request Body: ParseRequest
func (api *API) ParseRecordHandler(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendBindError(c, err)
		return
	}

	if result := ValidateParseRequest(&req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	record, err := api.records.ParseRecord(req.Line)
	if err != nil {
		SendParseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": NewRecordView(record)})
}

// CompareRecordsHandler compares two records for exact and approximate equality.
// Request Body: CompareRequest
func (api *API) CompareRecordsHandler(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendBindError(c, err)
		return
	}

	if result := ValidateCompareRequest(&req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	res := api.records.Compare(*req.A, *req.B, config.ComparisonSettings{Epsilon: req.Epsilon})
	c.JSON(http.StatusOK, CompareResponse{
		ExactEqual:  res.ExactEqual,
		ApproxEqual: res.ApproxEqual,
		Epsilon:     res.Epsilon,
		WeightDelta: finiteOrNil(res.WeightDelta),
	})
}
