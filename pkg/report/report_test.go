package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/layoutviz/pkg/errors"
	"github.com/matzehuels/layoutviz/pkg/layout"
)

func triangle() *layout.Dataset {
	return &layout.Dataset{
		Nodes: []layout.Node{
			{X: 0, Y: 0, Label: "a"},
			{X: 0, Y: 0.04, Label: "b"},
			{X: 10, Y: 10, Label: "c"},
		},
		Edges: []layout.Edge{{Source: 0, Target: 1, Type: layout.EdgeTypeDerivative}},
	}
}

func TestComputeExample(t *testing.T) {
	r, err := Compute(triangle(), nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if r.Overlaps != 1 {
		t.Errorf("Overlaps = %d, want 1", r.Overlaps)
	}
	if r.MaxDegree != 1 {
		t.Errorf("MaxDegree = %d, want 1", r.MaxDegree)
	}
	if r.Isolated != 1 {
		t.Errorf("Isolated = %d, want 1", r.Isolated)
	}
	if r.Leaves != 2 {
		t.Errorf("Leaves = %d, want 2", r.Leaves)
	}
	if r.X.Min != 0 || r.X.Max != 10 {
		t.Errorf("X range = [%v, %v], want [0, 10]", r.X.Min, r.X.Max)
	}
	if r.AnyNaN || r.AnyInf {
		t.Errorf("AnyNaN = %v, AnyInf = %v, want false", r.AnyNaN, r.AnyInf)
	}
	if r.Pairwise.Count != 3 {
		t.Errorf("Pairwise.Count = %d, want 3", r.Pairwise.Count)
	}
	if math.Abs(r.Pairwise.Min-0.04) > 1e-12 {
		t.Errorf("Pairwise.Min = %v, want 0.04", r.Pairwise.Min)
	}
	if r.EdgeLengths.Count != 1 || math.Abs(r.EdgeLengths.Max-0.04) > 1e-12 {
		t.Errorf("EdgeLengths = %+v", r.EdgeLengths)
	}
	if r.EdgeTypes.Derivative != 1 || r.EdgeTypes.Total() != 1 {
		t.Errorf("EdgeTypes = %+v", r.EdgeTypes)
	}
}

func TestComputePopulationStd(t *testing.T) {
	ds := &layout.Dataset{Nodes: []layout.Node{{X: 2}, {X: 4}, {X: 4}, {X: 4}, {X: 5}, {X: 5}, {X: 7}, {X: 9}}}
	r, err := Compute(ds, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if r.X.Std != 2 {
		t.Errorf("X.Std = %v, want 2", r.X.Std)
	}
	if r.X.Mean != 5 {
		t.Errorf("X.Mean = %v, want 5", r.X.Mean)
	}
}

func TestComputeEmpty(t *testing.T) {
	_, err := Compute(&layout.Dataset{}, nil)
	if !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Fatalf("Compute() code = %v, want %v", errors.GetCode(err), errors.ErrCodeEmptyDataset)
	}
	if !strings.Contains(err.Error(), "no data") {
		t.Errorf("error %q should mention no data", err)
	}
}

func TestComputeIndexOutOfRange(t *testing.T) {
	ds := triangle()
	ds.Edges = append(ds.Edges, layout.Edge{Source: 1, Target: 3})
	_, err := Compute(ds, nil)
	if !errors.Is(err, errors.ErrCodeIndexOutOfRange) {
		t.Fatalf("Compute() code = %v, want %v", errors.GetCode(err), errors.ErrCodeIndexOutOfRange)
	}
}

func TestComputeNonFinite(t *testing.T) {
	ds := &layout.Dataset{Nodes: []layout.Node{{X: math.NaN(), Y: 0}, {X: 1, Y: math.Inf(-1)}}}
	r, err := Compute(ds, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if !r.AnyNaN {
		t.Error("AnyNaN = false, want true")
	}
	if !r.AnyInf {
		t.Error("AnyInf = false, want true")
	}
}

func TestComputeNaNAxisOrderIndependent(t *testing.T) {
	tests := []struct {
		name  string
		nodes []layout.Node
	}{
		{"nan first", []layout.Node{{X: math.NaN(), Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}},
		{"nan middle", []layout.Node{{X: 1, Y: 1}, {X: math.NaN(), Y: 0}, {X: 2, Y: 2}}},
		{"nan last", []layout.Node{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: math.NaN(), Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Compute(&layout.Dataset{Nodes: tt.nodes}, nil)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			x := r.X
			if !math.IsNaN(x.Min) || !math.IsNaN(x.Max) || !math.IsNaN(x.Mean) || !math.IsNaN(x.Std) {
				t.Errorf("X = %+v, want all NaN", x)
			}
			if math.IsNaN(r.Y.Min) || math.IsNaN(r.Y.Max) {
				t.Errorf("Y = %+v, want finite", r.Y)
			}
			if got := r.Lines()[2]; got != "X range: [NaN, NaN]" {
				t.Errorf("range line = %q", got)
			}
		})
	}
}

func TestOverlapsRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want int
	}{
		{"half rounds up", 0.15, 0.24, 1},
		{"negative half rounds down", -0.15, -0.24, 1},
		{"below half", 0.14, 0.24, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &layout.Dataset{Nodes: []layout.Node{{X: tt.a}, {X: tt.b}}}
			if got := Overlaps(ds); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestComputeSingleNode(t *testing.T) {
	r, err := Compute(&layout.Dataset{Nodes: []layout.Node{{X: 1, Y: 1}}}, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if !r.Pairwise.Empty() {
		t.Errorf("Pairwise = %+v, want empty", r.Pairwise)
	}
	if !r.EdgeLengths.Empty() {
		t.Errorf("EdgeLengths = %+v, want empty", r.EdgeLengths)
	}

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Pairwise distance (sample): n/a") {
		t.Errorf("report missing n/a pairwise line:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Edge lengths: n/a") {
		t.Errorf("report missing n/a edge line:\n%s", buf.String())
	}
}

func TestSampleDistancesCap(t *testing.T) {
	ds := &layout.Dataset{Nodes: make([]layout.Node, 10)}
	for i := range ds.Nodes {
		ds.Nodes[i].X = float64(i)
	}

	tests := []struct {
		limit int
		want  int
	}{
		{500, 45},
		{4, 6},
		{1, 0},
	}
	for _, tt := range tests {
		if got := len(SampleDistances(ds, tt.limit)); got != tt.want {
			t.Errorf("len(SampleDistances(limit=%d)) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestWithSampleLimit(t *testing.T) {
	ds := &layout.Dataset{Nodes: make([]layout.Node, 10)}
	r, err := Compute(ds, nil, WithSampleLimit(3))
	if err != nil {
		t.Fatal(err)
	}
	if r.SampleSize != 3 || r.Pairwise.Count != 3 {
		t.Errorf("SampleSize = %d, Pairwise.Count = %d, want 3, 3", r.SampleSize, r.Pairwise.Count)
	}
}

func TestSummarizeMedianEven(t *testing.T) {
	s := Summarize([]float64{4, 1, 3, 2})
	if s.Median != 2.5 {
		t.Errorf("Median = %v, want 2.5", s.Median)
	}
	if s.Min != 1 || s.Max != 4 || s.Mean != 2.5 {
		t.Errorf("Summarize() = %+v", s)
	}
}

func TestWriteTo(t *testing.T) {
	r, err := Compute(triangle(), nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	want := []string{
		"Nodes: 3",
		"Edges: 1",
		"X range: [0.0, 10.0]",
		"Y range: [0.0, 10.0]",
		"X std: 4.7, Y std: 4.7",
		"Any NaN: false",
		"Any Inf: false",
		"Max degree: 1",
		"Isolated (degree 0): 1, Degree 1: 2",
		"Positions with >1 node at same rounded coord: 1",
		"Pairwise distance (sample): min=0.04, median=14.1, mean=9.4",
		"Edge lengths: min=0.0, median=0.0, mean=0.0, max=0.0",
		"Edge types: derivative=1, subgenre=0, fusion=0, other=0",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWriteToDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	for _, buf := range []*bytes.Buffer{&a, &b} {
		r, err := Compute(triangle(), nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.WriteTo(buf); err != nil {
			t.Fatal(err)
		}
	}
	if a.String() != b.String() {
		t.Errorf("reports differ:\n%s\n---\n%s", a.String(), b.String())
	}
}
