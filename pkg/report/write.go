package report

import (
	"fmt"
	"io"
	"strings"
)

const notAvailable = "n/a"

// Lines returns the report as its fixed sequence of labeled lines.
func (r *Report) Lines() []string {
	return []string{
		fmt.Sprintf("Nodes: %d", r.Nodes),
		fmt.Sprintf("Edges: %d", r.Edges),
		fmt.Sprintf("X range: [%.1f, %.1f]", r.X.Min, r.X.Max),
		fmt.Sprintf("Y range: [%.1f, %.1f]", r.Y.Min, r.Y.Max),
		fmt.Sprintf("X std: %.1f, Y std: %.1f", r.X.Std, r.Y.Std),
		fmt.Sprintf("Any NaN: %t", r.AnyNaN),
		fmt.Sprintf("Any Inf: %t", r.AnyInf),
		fmt.Sprintf("Max degree: %d", r.MaxDegree),
		fmt.Sprintf("Isolated (degree 0): %d, Degree 1: %d", r.Isolated, r.Leaves),
		fmt.Sprintf("Positions with >1 node at same rounded coord: %d", r.Overlaps),
		pairwiseLine(r.Pairwise),
		edgeLengthLine(r.EdgeLengths),
		fmt.Sprintf("Edge types: derivative=%d, subgenre=%d, fusion=%d, other=%d",
			r.EdgeTypes.Derivative, r.EdgeTypes.Subgenre, r.EdgeTypes.Fusion, r.EdgeTypes.Other),
	}
}

func pairwiseLine(s Summary) string {
	if s.Empty() {
		return "Pairwise distance (sample): " + notAvailable
	}
	return fmt.Sprintf("Pairwise distance (sample): min=%.2f, median=%.1f, mean=%.1f", s.Min, s.Median, s.Mean)
}

func edgeLengthLine(s Summary) string {
	if s.Empty() {
		return "Edge lengths: " + notAvailable
	}
	return fmt.Sprintf("Edge lengths: min=%.1f, median=%.1f, mean=%.1f, max=%.1f", s.Min, s.Median, s.Mean, s.Max)
}

// WriteTo writes the report lines to w, one per line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, line := range r.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
