package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/graphio"
	"github.com/gregorio-gerardi/circuitry/pkg/manifest"
	"github.com/gregorio-gerardi/circuitry/pkg/observability"
)

// Load reads the directed graph at path, auto-detecting the input kind.
// Recognized manifest file names (go.mod, package.json, Cargo.toml) are
// parsed as dependency manifests; everything else is decoded as a JSON
// graph document. The returned format names what was detected and feeds
// cache keys and log output.
func Load(ctx context.Context, path string) (g *digraph.Digraph[string], format string, err error) {
	hooks := observability.Pipeline()
	start := time.Now()

	if p, derr := manifest.Detect(path, manifest.Parsers()...); derr == nil {
		format = p.Type()
		hooks.OnParseStart(ctx, path, format)
		res, perr := p.Parse(path)
		if perr != nil {
			hooks.OnParseComplete(ctx, path, format, 0, time.Since(start), perr)
			return nil, format, perr
		}
		hooks.OnParseComplete(ctx, path, format, res.Graph.Len(), time.Since(start), nil)
		return res.Graph, format, nil
	}

	format = "json"
	hooks.OnParseStart(ctx, path, format)
	g, err = graphio.ReadFile(path)
	if err != nil {
		hooks.OnParseComplete(ctx, path, format, 0, time.Since(start), err)
		return nil, format, err
	}
	hooks.OnParseComplete(ctx, path, format, g.Len(), time.Since(start), nil)
	return g, format, nil
}

// IsManifest reports whether path names a supported dependency manifest
// rather than a graph document.
func IsManifest(path string) bool {
	_, err := manifest.Detect(filepath.Base(path), manifest.Parsers()...)
	return err == nil
}
