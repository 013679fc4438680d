package report

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/layoutviz/pkg/errors"
	"github.com/matzehuels/layoutviz/pkg/layout"
)

// DefaultSampleLimit caps the node prefix used for pairwise distances.
const DefaultSampleLimit = 500

// Summary describes a distribution. Count is zero when there was no data,
// in which case the other fields are meaningless.
type Summary struct {
	Count  int
	Min    float64
	Median float64
	Mean   float64
	Max    float64
}

// Empty reports whether the summary was computed over no values.
func (s Summary) Empty() bool { return s.Count == 0 }

// Axis holds the shape metrics of one coordinate column.
type Axis struct {
	Min  float64
	Max  float64
	Mean float64
	Std  float64 // population standard deviation
}

// TypeCounts tallies edges per category.
type TypeCounts struct {
	Derivative int
	Subgenre   int
	Fusion     int
	Other      int
}

// Total returns the number of edges counted.
func (c TypeCounts) Total() int {
	return c.Derivative + c.Subgenre + c.Fusion + c.Other
}

// Report is the full set of layout statistics.
type Report struct {
	Nodes int
	Edges int

	X Axis
	Y Axis

	AnyNaN bool
	AnyInf bool

	MaxDegree int
	Isolated  int // nodes with degree 0
	Leaves    int // nodes with degree 1

	Overlaps int

	SampleSize  int // nodes in the pairwise prefix sample
	Pairwise    Summary
	EdgeLengths Summary
	EdgeTypes   TypeCounts
}

// Option configures Compute.
type Option func(*options)

type options struct {
	sampleLimit int
}

// WithSampleLimit overrides the pairwise sample cap. Values below 2 leave
// the default in place.
func WithSampleLimit(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.sampleLimit = n
		}
	}
}

// Compute derives the report for ds. degrees may be nil, in which case they
// are computed from ds; otherwise it must have one entry per node.
//
// Compute fails with EMPTY_DATASET when ds has no nodes and with
// INDEX_OUT_OF_RANGE when an edge endpoint is invalid.
func Compute(ds *layout.Dataset, degrees []int, opts ...Option) (*Report, error) {
	o := options{sampleLimit: DefaultSampleLimit}
	for _, opt := range opts {
		opt(&o)
	}

	if ds.Empty() {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "no data: layout has no nodes")
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if degrees == nil {
		degrees = ds.Degrees()
	}
	if len(degrees) != ds.Len() {
		return nil, errors.New(errors.ErrCodeIndexOutOfRange, "degree count %d does not match node count %d", len(degrees), ds.Len())
	}

	xs, ys := ds.Xs(), ds.Ys()
	r := &Report{
		Nodes:  ds.Len(),
		Edges:  len(ds.Edges),
		X:      axis(xs),
		Y:      axis(ys),
		AnyNaN: floats.HasNaN(xs) || floats.HasNaN(ys),
		AnyInf: hasInf(xs) || hasInf(ys),
	}

	r.MaxDegree = layout.MaxDegree(degrees)
	for _, d := range degrees {
		switch d {
		case 0:
			r.Isolated++
		case 1:
			r.Leaves++
		}
	}

	r.Overlaps = Overlaps(ds)

	sample := SampleDistances(ds, o.sampleLimit)
	r.SampleSize = min(o.sampleLimit, ds.Len())
	r.Pairwise = Summarize(sample)
	r.EdgeLengths = Summarize(EdgeLengths(ds))
	r.EdgeTypes = CountTypes(ds.Edges)

	return r, nil
}

// axis summarizes one coordinate column. A NaN anywhere in v makes every
// field NaN, independent of where it occurs.
func axis(v []float64) Axis {
	if floats.HasNaN(v) {
		nan := math.NaN()
		return Axis{Min: nan, Max: nan, Mean: nan, Std: nan}
	}
	// v is non-empty; the stats package only errors on empty input.
	mn, _ := stats.Min(v)
	mx, _ := stats.Max(v)
	mean, _ := stats.Mean(v)
	std, _ := stats.StandardDeviationPopulation(v)
	return Axis{Min: mn, Max: mx, Mean: mean, Std: std}
}

func hasInf(v []float64) bool {
	for _, x := range v {
		if math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// Summarize computes min, median, mean and max of v. An empty v yields a
// zero Summary.
func Summarize(v []float64) Summary {
	if len(v) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(v)}
	s.Min, _ = stats.Min(v)
	s.Median, _ = stats.Median(v)
	s.Mean, _ = stats.Mean(v)
	s.Max, _ = stats.Max(v)
	return s
}

// roundedKey buckets a position at one-decimal precision.
type roundedKey struct{ x, y float64 }

// roundTenth rounds halves away from zero, so 0.15 becomes 0.2.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Overlaps returns the number of distinct one-decimal rounded positions
// that hold more than one node. It depends only on the multiset of rounded
// positions, so node order does not matter. NaN coordinates never collide.
func Overlaps(ds *layout.Dataset) int {
	counts := make(map[roundedKey]int, ds.Len())
	for _, n := range ds.Nodes {
		counts[roundedKey{roundTenth(n.X), roundTenth(n.Y)}]++
	}
	overlaps := 0
	for _, c := range counts {
		if c > 1 {
			overlaps++
		}
	}
	return overlaps
}

// SampleDistances returns the Euclidean distance of every pair among the
// first min(limit, N) nodes, in (i, j) order with i < j.
func SampleDistances(ds *layout.Dataset, limit int) []float64 {
	n := min(limit, ds.Len())
	if n < 2 {
		return nil
	}
	dists := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		pi := ds.Position(i)
		for j := i + 1; j < n; j++ {
			dists = append(dists, r2.Norm(r2.Sub(pi, ds.Position(j))))
		}
	}
	return dists
}

// EdgeLengths returns the length of every edge in edge order.
func EdgeLengths(ds *layout.Dataset) []float64 {
	lens := make([]float64, len(ds.Edges))
	for i, e := range ds.Edges {
		lens[i] = ds.EdgeLength(e)
	}
	return lens
}

// CountTypes tallies edges by category.
func CountTypes(edges []layout.Edge) TypeCounts {
	var c TypeCounts
	for _, e := range edges {
		switch e.Type {
		case layout.EdgeTypeDerivative:
			c.Derivative++
		case layout.EdgeTypeSubgenre:
			c.Subgenre++
		case layout.EdgeTypeFusion:
			c.Fusion++
		default:
			c.Other++
		}
	}
	return c
}
