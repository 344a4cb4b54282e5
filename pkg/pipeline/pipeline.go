// Package pipeline provides the core analysis pipeline for Circuitry.
//
// This package implements the complete load → enumerate → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a graph from a JSON document or a dependency manifest
//  2. Enumerate: Find every elementary circuit within the length bounds
//  3. Render: Generate output in various formats (DOT, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline,
// and the enumerate and render stages are cached by content hash.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  "graph.json",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Analyze(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gregorio-gerardi/circuitry/pkg/cache"
	"github.com/gregorio-gerardi/circuitry/pkg/digraph/cycles"
	"github.com/gregorio-gerardi/circuitry/pkg/report"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Format constants for output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// DefaultScale is the default raster scale factor for PNG output.
const DefaultScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the analysis pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Source names where the graph came from (file path, manifest type,
	// or "api"); it is recorded on the report.
	Source string `json:"source,omitempty"`

	// Enumerate options. Zero values mean "unbounded": they are mapped to
	// the cycles package sentinels by ValidateAndSetDefaults.
	MinLength int `json:"min_length,omitempty"`
	MaxLength int `json:"max_length,omitempty"`

	// Render options. An empty Formats slice disables the render stage.
	Formats []string `json:"formats,omitempty"`
	RankDir string   `json:"rank_dir,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Refresh bypasses cache reads (results are still written back).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Report is the completed analysis: graph, bounds, circuits, stats.
	Report *report.Report

	// GraphHash is the content hash of the input graph document.
	GraphHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount  int
	EdgeCount    int
	CircuitCount int
	SearchTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SearchHit bool // Whether the circuit search result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBounds checks that the effective length bounds form a non-empty
// interval. Sentinel values always pass.
func ValidateBounds(minLen, maxLen int) error {
	if minLen == cycles.NoMinLimit || maxLen == cycles.NoMaxLimit {
		return nil
	}
	if minLen > maxLen {
		return fmt.Errorf("invalid bounds: min %d exceeds max %d", minLen, maxLen)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. Zero-valued length bounds become the cycles sentinels, so an
// empty Options runs an unbounded search. This method is idempotent -
// calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MinLength <= 0 {
		o.MinLength = cycles.NoMinLimit
	}
	if o.MaxLength <= 0 {
		o.MaxLength = cycles.NoMaxLimit
	}
	if err := ValidateBounds(o.MinLength, o.MaxLength); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ShouldRender reports whether the render stage runs at all.
func (o *Options) ShouldRender() bool {
	return len(o.Formats) > 0
}

// Bounds returns the effective length bounds as a report value.
func (o *Options) Bounds() report.Bounds {
	return report.Bounds{MinLength: o.MinLength, MaxLength: o.MaxLength}
}

// ReportKeyOpts returns cache key options for the circuit search.
func (o *Options) ReportKeyOpts() cache.ReportKeyOpts {
	return cache.ReportKeyOpts{
		MinLength: o.MinLength,
		MaxLength: o.MaxLength,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Scale:  o.Scale,
	}
}
