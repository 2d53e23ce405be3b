// Package config provides configuration structures for record comparison and
// the HTTP server that wraps the parser.
package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/gcbaptista/go-fc-record/model"
)

// ComparisonSettings controls approximate equality between two records.
// A nil Epsilon means model.DefaultEpsilon.
type ComparisonSettings struct {
	Epsilon *float64 `json:"epsilon,omitempty"` // Maximum absolute weight difference (e.g., 1e-9)
}

// WithEpsilon returns settings using the given tolerance.
func WithEpsilon(epsilon float64) ComparisonSettings {
	return ComparisonSettings{Epsilon: &epsilon}
}

// ResolvedEpsilon returns the configured tolerance or model.DefaultEpsilon.
func (settings ComparisonSettings) ResolvedEpsilon() float64 {
	if settings.Epsilon == nil {
		return model.DefaultEpsilon
	}
	return *settings.Epsilon
}

// Validate returns a list of problems with the settings, empty if they are usable.
func (settings ComparisonSettings) Validate() []string {
	var errors []string

	if settings.Epsilon == nil {
		return errors
	}

	eps := *settings.Epsilon
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		errors = append(errors, "Epsilon must be a finite number")
	} else if eps < 0 {
		errors = append(errors, "Epsilon must be non-negative, got "+strconv.FormatFloat(eps, 'g', -1, 64))
	}

	return errors
}

// ServerSettings contains options for the HTTP wrapper.
type ServerSettings struct {
	Port            string `json:"port"`              // Port to listen on (e.g., "8080")
	MaxRequestBytes int64  `json:"max_request_bytes"` // Upper bound on request body size
}

// DefaultServerSettings returns the settings used when no flags are given.
func DefaultServerSettings() ServerSettings {
	return ServerSettings{
		Port:            "8080",
		MaxRequestBytes: 1 << 20,
	}
}

// ApplyDefaults fills zero-valued fields with defaults
func (settings *ServerSettings) ApplyDefaults() {
	defaults := DefaultServerSettings()
	if strings.TrimSpace(settings.Port) == "" {
		settings.Port = defaults.Port
	}
	if settings.MaxRequestBytes <= 0 {
		settings.MaxRequestBytes = defaults.MaxRequestBytes
	}
}

// Validate returns a list of problems with the server settings
func (settings *ServerSettings) Validate() []string {
	var errors []string

	port, err := strconv.Atoi(settings.Port)
	if err != nil || port < 1 || port > 65535 {
		errors = append(errors, "Invalid port '"+settings.Port+"' (must be 1-65535)")
	}
	if settings.MaxRequestBytes <= 0 {
		errors = append(errors, "max_request_bytes must be positive")
	}

	return errors
}
