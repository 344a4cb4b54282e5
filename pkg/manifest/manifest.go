// Package manifest parses dependency manifests into directed graphs.
//
// Each parser reads one manifest format (go.mod, package.json, Cargo.toml)
// and produces a star-shaped graph: the project's own package at the center
// with an edge to every direct dependency. A self-dependency becomes a
// self-loop, which the circuit search reports as a circuit of length one.
//
// Use [Detect] to pick a parser by filename:
//
//	parser, err := manifest.Detect(path, manifest.Parsers()...)
//	if err != nil {
//	    return err
//	}
//	result, err := parser.Parse(path)
package manifest

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

// DefaultRoot is the vertex used for the project itself when the manifest
// does not name its own package.
const DefaultRoot = "__project__"

// Parser reads dependency information from local manifest files.
type Parser interface {
	// Parse reads the manifest at path and returns the dependency graph.
	Parse(path string) (*Result, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the manifest type identifier (e.g., "go.mod", "Cargo.toml").
	Type() string
}

// Result holds the parsed dependency data from a manifest file.
type Result struct {
	Graph *digraph.Digraph[string] // Root package and its direct dependencies
	Type  string                   // Parser type that produced this result
	Root  string                   // Vertex of the project itself
}

// Parsers returns the built-in parsers in detection order.
func Parsers() []Parser {
	return []Parser{&GoMod{}, &PackageJSON{}, &CargoToml{}}
}

// Detect finds a parser that supports the given file path.
// Returns an error with code UNSUPPORTED if no parser matches.
func Detect(path string, parsers ...Parser) (Parser, error) {
	name := filepath.Base(path)
	if err := errors.ValidateManifestFilename(name); err != nil {
		return nil, err
	}
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest: %s", name)
}

// star builds the root→dependency graph for a single manifest. Dependencies
// are sorted so the adjacency order does not depend on map iteration.
func star(root string, deps []string) *digraph.Digraph[string] {
	g := digraph.New[string]()
	g.AddVertex(root)
	slices.Sort(deps)
	for _, dep := range deps {
		g.AddEdge(root, dep)
	}
	return g
}

// wrapOpen maps file-open failures to coded errors.
func wrapOpen(path string, err error) error {
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
}
