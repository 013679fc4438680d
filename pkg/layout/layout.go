package layout

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/layoutviz/pkg/errors"
)

// EdgeType enumerates edge categories. It only selects a render color.
type EdgeType int

// Edge categories emitted by the layout generator.
const (
	EdgeTypeDerivative EdgeType = iota
	EdgeTypeSubgenre
	EdgeTypeFusion
)

// String returns the category name, or "other" for unknown tags.
func (t EdgeType) String() string {
	switch t {
	case EdgeTypeDerivative:
		return "derivative"
	case EdgeTypeSubgenre:
		return "subgenre"
	case EdgeTypeFusion:
		return "fusion"
	default:
		return "other"
	}
}

// Known reports whether t is one of the named categories.
func (t EdgeType) Known() bool {
	return t >= EdgeTypeDerivative && t <= EdgeTypeFusion
}

// Node is a positioned vertex. Its identity is its index in Dataset.Nodes.
type Node struct {
	X     float64
	Y     float64
	Label string
}

// Edge connects two node indices.
type Edge struct {
	Source int
	Target int
	Type   EdgeType
}

// Tuple returns the edge as the [source, target, type] triple it was read from.
func (e Edge) Tuple() [3]int {
	return [3]int{e.Source, e.Target, int(e.Type)}
}

// Dataset is a full layout snapshot. The zero value is an empty dataset.
type Dataset struct {
	Nodes []Node
	Edges []Edge
}

// Len returns the node count.
func (d *Dataset) Len() int { return len(d.Nodes) }

// Empty reports whether the dataset has no nodes.
func (d *Dataset) Empty() bool { return len(d.Nodes) == 0 }

// Position returns node i's coordinates as a vector.
func (d *Dataset) Position(i int) r2.Vec {
	n := d.Nodes[i]
	return r2.Vec{X: n.X, Y: n.Y}
}

// Xs returns the x column in node order.
func (d *Dataset) Xs() []float64 {
	xs := make([]float64, len(d.Nodes))
	for i, n := range d.Nodes {
		xs[i] = n.X
	}
	return xs
}

// Ys returns the y column in node order.
func (d *Dataset) Ys() []float64 {
	ys := make([]float64, len(d.Nodes))
	for i, n := range d.Nodes {
		ys[i] = n.Y
	}
	return ys
}

// Validate checks that every edge endpoint lies in [0, Len()).
// The first offending edge is reported as an INDEX_OUT_OF_RANGE error whose
// cause is an *errors.IndexError.
func (d *Dataset) Validate() error {
	n := len(d.Nodes)
	for i, e := range d.Edges {
		for _, idx := range [2]int{e.Source, e.Target} {
			if idx < 0 || idx >= n {
				ie := &errors.IndexError{Edge: i, Tuple: e.Tuple(), Index: idx, Bounds: n}
				return errors.Wrap(errors.ErrCodeIndexOutOfRange, ie, "edge %d references a missing node", i)
			}
		}
	}
	return nil
}

// Degrees returns the per-node endpoint count. The dataset must be valid.
func (d *Dataset) Degrees() []int {
	deg := make([]int, len(d.Nodes))
	for _, e := range d.Edges {
		deg[e.Source]++
		deg[e.Target]++
	}
	return deg
}

// EdgeLength returns the Euclidean length of e.
func (d *Dataset) EdgeLength(e Edge) float64 {
	return r2.Norm(r2.Sub(d.Position(e.Source), d.Position(e.Target)))
}

// Finite reports whether both coordinates of node i are finite.
func (d *Dataset) Finite(i int) bool {
	n := d.Nodes[i]
	return !math.IsNaN(n.X) && !math.IsNaN(n.Y) && !math.IsInf(n.X, 0) && !math.IsInf(n.Y, 0)
}

// MaxDegree returns the largest value in degrees, or 0 for an empty slice.
func MaxDegree(degrees []int) int {
	if len(degrees) == 0 {
		return 0
	}
	return slices.Max(degrees)
}

// RankByDegree returns node indices sorted by degree descending.
// Equal degrees keep ascending index order.
func RankByDegree(degrees []int) []int {
	order := make([]int, len(degrees))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return degrees[b] - degrees[a]
	})
	return order
}
