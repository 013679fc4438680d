package render

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/layoutviz/pkg/layout"
)

// coreSigmas is the core window half-width in standard deviations.
const coreSigmas = 2.0

// Window is an axis-aligned square view.
type Window struct {
	Center r2.Vec
	Radius float64 // half the side length
}

// Contains reports whether p lies strictly inside w on both axes.
func (w Window) Contains(p r2.Vec) bool {
	return math.Abs(p.X-w.Center.X) < w.Radius && math.Abs(p.Y-w.Center.Y) < w.Radius
}

// Bounds returns the window as data limits.
func (w Window) Bounds() Bounds {
	return Bounds{
		Min: r2.Vec{X: w.Center.X - w.Radius, Y: w.Center.Y - w.Radius},
		Max: r2.Vec{X: w.Center.X + w.Radius, Y: w.Center.Y + w.Radius},
	}
}

// CoreWindow returns the window centered at the mean position with
// half-width twice the larger of the x and y population standard deviations.
// ds must not be empty.
func CoreWindow(ds *layout.Dataset) Window {
	xs, ys := ds.Xs(), ds.Ys()
	cx, _ := stats.Mean(xs)
	cy, _ := stats.Mean(ys)
	sx, _ := stats.StandardDeviationPopulation(xs)
	sy, _ := stats.StandardDeviationPopulation(ys)
	return Window{
		Center: r2.Vec{X: cx, Y: cy},
		Radius: coreSigmas * math.Max(sx, sy),
	}
}

// Bounds is a data-space rectangle.
type Bounds struct {
	Min, Max r2.Vec
}

// Size returns the extent on each axis.
func (b Bounds) Size() r2.Vec { return r2.Sub(b.Max, b.Min) }

func (b Bounds) valid() bool {
	s := b.Size()
	return s.X > 0 && s.Y > 0 && !math.IsInf(s.X, 0) && !math.IsInf(s.Y, 0)
}

// pad grows b by frac of its extent on each side. A zero extent is widened
// to one unit around the center.
func (b Bounds) pad(frac float64) Bounds {
	s := b.Size()
	dx, dy := s.X*frac, s.Y*frac
	if s.X <= 0 {
		dx = 0.5
	}
	if s.Y <= 0 {
		dy = 0.5
	}
	return Bounds{
		Min: r2.Vec{X: b.Min.X - dx, Y: b.Min.Y - dy},
		Max: r2.Vec{X: b.Max.X + dx, Y: b.Max.Y + dy},
	}
}

// unitBounds is the fallback view when there is nothing finite to frame.
var unitBounds = Bounds{Min: r2.Vec{X: -1, Y: -1}, Max: r2.Vec{X: 1, Y: 1}}

// dataBounds returns the bounding box of all finite node positions.
func dataBounds(ds *layout.Dataset) (Bounds, bool) {
	var b Bounds
	found := false
	for i := range ds.Nodes {
		if !ds.Finite(i) {
			continue
		}
		p := ds.Position(i)
		if !found {
			b = Bounds{Min: p, Max: p}
			found = true
			continue
		}
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b, found
}

// Viewport maps data coordinates into a pixel rectangle with equal scale on
// both axes. The data limits are widened on the short axis so that the
// whole pixel rectangle is used.
type Viewport struct {
	Data  Bounds
	Pixel Rect
	scale float64
}

// Rect is a pixel rectangle with the origin at the top left.
type Rect struct {
	X, Y, W, H float64
}

func newViewport(data Bounds, px Rect) Viewport {
	if !data.valid() {
		data = data.pad(0)
	}
	if !data.valid() {
		data = unitBounds
	}
	s := data.Size()
	scale := math.Min(px.W/s.X, px.H/s.Y)
	c := r2.Scale(0.5, r2.Add(data.Min, data.Max))
	half := r2.Vec{X: px.W / scale / 2, Y: px.H / scale / 2}
	return Viewport{
		Data:  Bounds{Min: r2.Sub(c, half), Max: r2.Add(c, half)},
		Pixel: px,
		scale: scale,
	}
}

// Project converts a data point to pixel coordinates. Y grows upward in data
// space and downward on the canvas.
func (v Viewport) Project(p r2.Vec) (x, y float64) {
	x = v.Pixel.X + (p.X-v.Data.Min.X)*v.scale
	y = v.Pixel.Y + v.Pixel.H - (p.Y-v.Data.Min.Y)*v.scale
	return x, y
}

const (
	minMarkerArea   = 2.0  // points², keeps isolated nodes visible
	markerAreaRange = 30.0 // points² added at maximum degree
)

// MarkerArea returns a node's marker area in points²: the minimum plus a
// share of the range proportional to degree/maxDegree. When maxDegree is 0
// every node gets the minimum.
func MarkerArea(degree, maxDegree int) float64 {
	if maxDegree <= 0 {
		return minMarkerArea
	}
	return minMarkerArea + float64(degree)/float64(maxDegree)*markerAreaRange
}

// markerRadius converts a marker area in points² to a pixel radius. The
// marker diameter is the square root of its area.
func markerRadius(area, dpi float64) float64 {
	return math.Sqrt(area) / 2 * dpi / 72
}

// TopLabels walks rank in order and returns the first limit indices for
// which keep reports true. A nil keep accepts every index.
func TopLabels(rank []int, limit int, keep func(int) bool) []int {
	var out []int
	for _, i := range rank {
		if len(out) >= limit {
			break
		}
		if keep == nil || keep(i) {
			out = append(out, i)
		}
	}
	return out
}

func vecXY(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }
