package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/matzehuels/layoutviz/pkg/errors"
	"github.com/matzehuels/layoutviz/pkg/layout"
)

type document struct {
	Nodes []node  `json:"nodes"`
	Edges []tuple `json:"edges"`
}

type node struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Label string   `json:"label"`
}

// tuple is an edge as written on disk: [source, target, type].
type tuple [3]int

func (t *tuple) UnmarshalJSON(b []byte) error {
	var raw []int
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("edge must have 3 elements, got %d", len(raw))
	}
	copy(t[:], raw)
	return nil
}

func coord(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// ReadJSON decodes a layout from r and validates its edges.
//
// ReadJSON returns a PARSE_ERROR if the JSON is malformed or an edge is not
// an integer triple, and an INDEX_OUT_OF_RANGE error naming the first edge
// whose endpoint lies outside the node range. An input with no nodes decodes
// successfully; emptiness is rejected by the consumers that need data.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*layout.Dataset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode layout")
	}

	ds := &layout.Dataset{
		Nodes: make([]layout.Node, len(doc.Nodes)),
		Edges: make([]layout.Edge, len(doc.Edges)),
	}
	for i, n := range doc.Nodes {
		ds.Nodes[i] = layout.Node{X: coord(n.X), Y: coord(n.Y), Label: n.Label}
	}
	for i, e := range doc.Edges {
		ds.Edges[i] = layout.Edge{Source: e[0], Target: e[1], Type: layout.EdgeType(e[2])}
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// ImportJSON reads the layout file at path.
//
// A missing file yields FILE_NOT_FOUND; any other open failure yields
// IO_ERROR. Decoding and validation errors are those of [ReadJSON], with the
// path added for context.
func ImportJSON(path string) (*layout.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	ds, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
