package graphio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

// Write encodes a directed graph as an indented JSON document on w.
// The output can be re-imported with [Read] for round-trip processing.
func Write(g *digraph.Digraph[string], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDoc(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graph document")
	}
	return nil
}

// WriteFile writes a directed graph to a JSON file at path.
// This is a convenience wrapper around [Write] for file-based output.
func WriteFile(g *digraph.Digraph[string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return Write(g, f)
}
