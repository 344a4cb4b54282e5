// Package cache provides caching for analysis pipeline stages.
//
// Three backends are available:
//   - FileCache: persistent cache on local disk, used by the CLI
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching
//
// Cache keys are derived from content hashes so that identical inputs share
// entries regardless of where they came from. The [Keyer] interface generates
// keys for the three cacheable stages: parsed graph documents, circuit search
// results, and rendered artifacts.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type.
const (
	// TTLGraph is the lifetime of parsed graph documents.
	TTLGraph = 24 * time.Hour

	// TTLReport is the lifetime of circuit search results.
	TTLReport = 24 * time.Hour

	// TTLArtifact is the lifetime of rendered artifacts (DOT, SVG, PNG).
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for caching binary payloads.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
// Errors are reserved for backend failures, not for missing keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// GraphKey generates a key for parsed graph documents.
	GraphKey(sourceHash string, opts GraphKeyOpts) string

	// ReportKey generates a key for circuit search results.
	ReportKey(graphHash string, opts ReportKeyOpts) string

	// ArtifactKey generates a key for rendered artifacts.
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// GraphKeyOpts parameterizes graph document keys.
type GraphKeyOpts struct {
	Format string // source format: json, go.mod, package.json, Cargo.toml
}

// ReportKeyOpts parameterizes circuit search keys.
type ReportKeyOpts struct {
	MinLength int
	MaxLength int
}

// ArtifactKeyOpts parameterizes rendered artifact keys.
type ArtifactKeyOpts struct {
	Format string  // dot, svg or png
	Scale  float64 // raster scale factor (png only)
}

// DefaultKeyer generates hash-based keys with stage prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for parsed graph documents.
func (k *DefaultKeyer) GraphKey(sourceHash string, opts GraphKeyOpts) string {
	return hashKey("graph", sourceHash, opts)
}

// ReportKey generates a key for circuit search results.
func (k *DefaultKeyer) ReportKey(graphHash string, opts ReportKeyOpts) string {
	return hashKey("report", graphHash, opts)
}

// ArtifactKey generates a key for rendered artifacts.
func (k *DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
