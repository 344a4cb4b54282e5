package graphio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

// Read decodes a JSON graph document from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Edge endpoints that do not appear in "nodes" are created implicitly, so
// the "nodes" array only needs to list vertices without edges. Read returns
// an error if:
//   - The JSON is malformed (code PARSE_ERROR)
//   - A node has an empty or invalid ID (code INVALID_VERTEX)
//   - A node ID appears twice (code INVALID_INPUT)
//
// The returned graph is independent of r and can be modified safely after
// Read returns. Read does not close r.
func Read(r io.Reader) (*digraph.Digraph[string], error) {
	var doc Doc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode graph document")
	}
	return FromDoc(doc)
}

// ReadFile reads a JSON graph document from the file at path.
//
// ReadFile opens the file, decodes it using [Read], and closes the file.
// A missing file yields an error with code FILE_NOT_FOUND; decoding failures
// return the same errors as [Read].
func ReadFile(path string) (*digraph.Digraph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
