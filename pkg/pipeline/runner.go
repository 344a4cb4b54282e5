package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gregorio-gerardi/circuitry/pkg/cache"
	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/digraph/cycles"
	"github.com/gregorio-gerardi/circuitry/pkg/graphio"
	"github.com/gregorio-gerardi/circuitry/pkg/observability"
	"github.com/gregorio-gerardi/circuitry/pkg/render"
	"github.com/gregorio-gerardi/circuitry/pkg/report"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Analyze runs the complete enumerate → render pipeline with caching.
func (r *Runner) Analyze(ctx context.Context, g *digraph.Digraph[string], opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	if g == nil {
		return nil, fmt.Errorf("analyze: nil graph")
	}

	result := &Result{
		GraphHash: GraphHash(g),
	}
	result.Stats.VertexCount = g.Len()
	result.Stats.EdgeCount = g.EdgeCount()

	// Stage 1: Enumerate
	searchStart := time.Now()
	rep, searchHit, err := r.SearchWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	result.Report = rep
	result.Stats.SearchTime = time.Since(searchStart)
	result.Stats.CircuitCount = len(rep.Circuits)
	result.CacheInfo.SearchHit = searchHit

	opts.Logger.Info("enumerated circuits",
		"vertices", g.Len(),
		"edges", g.EdgeCount(),
		"circuits", len(rep.Circuits),
		"duration", result.Stats.SearchTime)

	// Stage 2: Render
	if opts.ShouldRender() {
		renderStart := time.Now()
		artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, rep.Circuits, opts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
		result.CacheInfo.RenderHit = renderHit

		opts.Logger.Info("rendered outputs",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// SearchWithCacheInfo runs the circuit search with caching and returns
// cache hit info. A cached report is returned as stored, including its
// original ID and timestamp.
func (r *Runner) SearchWithCacheInfo(ctx context.Context, g *digraph.Digraph[string], opts Options) (*report.Report, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.ReportKey(GraphHash(g), opts.ReportKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var rep report.Report
			if err := json.Unmarshal(data, &rep); err == nil {
				observability.Cache().OnCacheHit(ctx, "report")
				return &rep, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "report")
	}

	hooks := observability.Pipeline()
	hooks.OnSearchStart(ctx, g.Len(), g.EdgeCount())

	start := time.Now()
	circuits, err := cycles.FindWithin(ctx, g, opts.MinLength, opts.MaxLength)
	elapsed := time.Since(start)
	hooks.OnSearchComplete(ctx, len(circuits), elapsed, err)
	if err != nil {
		return nil, false, err
	}

	rep := report.New(opts.Source, g, opts.Bounds(), circuits, elapsed)

	// Cache the result. Transient backend failures are retried so a
	// computed report is not lost to a dropped connection.
	if data, err := json.Marshal(rep); err == nil {
		err := cache.RetryWithBackoff(ctx, func() error {
			return r.Cache.Set(ctx, cacheKey, data, cache.TTLReport)
		})
		if err == nil {
			observability.Cache().OnCacheSet(ctx, "report", len(data))
		}
	}

	return rep, false, nil
}

// Search is a convenience wrapper that calls SearchWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Search(ctx context.Context, g *digraph.Digraph[string], opts Options) (*report.Report, error) {
	rep, _, err := r.SearchWithCacheInfo(ctx, g, opts)
	return rep, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. The circuits are highlighted in every format.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *digraph.Digraph[string], circuits [][]string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	dot := render.ToDOT(g, render.Options{
		RankDir:   opts.RankDir,
		Highlight: circuits,
	})
	dotHash := cache.Hash([]byte(dot))

	// Try to get all formats from cache
	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := !opts.Refresh
	if allCached {
		for _, format := range opts.Formats {
			if format == FormatDOT {
				artifacts[format] = []byte(dot)
				continue
			}
			cacheKey := r.Keyer.ArtifactKey(dotHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				allCached = false
				break
			}
			artifacts[format] = data
		}
	}
	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	for _, format := range opts.Formats {
		hooks.OnRenderStart(ctx, format)
		start := time.Now()
		data, err := r.renderFormat(ctx, dot, format, opts)
		hooks.OnRenderComplete(ctx, format, time.Since(start), err)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		if format != FormatDOT {
			cacheKey := r.Keyer.ArtifactKey(dotHash, opts.ArtifactKeyOpts(format))
			_ = cache.RetryWithBackoff(ctx, func() error {
				return r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
			})
		}
	}

	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *digraph.Digraph[string], circuits [][]string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, circuits, opts)
	return artifacts, err
}

// renderFormat produces one artifact from already-generated DOT text.
func (r *Runner) renderFormat(ctx context.Context, dot, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return render.SVG(ctx, dot)
	case FormatPNG:
		return render.PNG(ctx, dot, opts.Scale)
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// GraphHash returns the content hash of g's JSON document, the key the
// cached stages are filed under. The document is deterministic for a given
// graph, so repeated runs over the same input hash identically.
func GraphHash(g *digraph.Digraph[string]) string {
	var buf bytes.Buffer
	if err := graphio.Write(g, &buf); err != nil {
		return ""
	}
	return cache.Hash(buf.Bytes())
}
