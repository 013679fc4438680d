package render

import (
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/layoutviz/pkg/layout"
)

// Paint is a color with straight alpha.
type Paint struct {
	colorful.Color
	A float64
}

func (p Paint) rgba() (r, g, b, a float64) {
	c := p.Clamped()
	return c.R, c.G, c.B, p.A
}

var (
	figureBackground = mustHex("#222222")
	panelBackground  = mustHex("#111111")
	textColor        = mustHex("#dddddd")
	frameColor       = mustHex("#888888")
	labelColor       = colorful.Color{R: 1, G: 1, B: 1}
)

var edgePaints = map[layout.EdgeType]Paint{
	layout.EdgeTypeDerivative: {colorful.Color{R: 0.8, G: 0.2, B: 0.2}, 0.12},
	layout.EdgeTypeSubgenre:   {colorful.Color{R: 0.2, G: 0.8, B: 0.2}, 0.12},
	layout.EdgeTypeFusion:     {colorful.Color{R: 0.3, G: 0.3, B: 0.9}, 0.12},
}

var otherEdgePaint = Paint{colorful.Color{R: 0.5, G: 0.5, B: 0.5}, 0.1}

// EdgePaint returns the stroke paint for an edge category. Unknown tags get
// a neutral gray.
func EdgePaint(t layout.EdgeType) Paint {
	if p, ok := edgePaints[t]; ok {
		return p
	}
	return otherEdgePaint
}

const nodeAlpha = 0.8

// NodeHue returns a hue in [0, 360) derived from a hash of the decimal form
// of index i. It is stable across runs and platforms.
func NodeHue(i int) float64 {
	return float64(xxhash.Sum64String(strconv.Itoa(i)) % 360)
}

// NodePaint returns the fill for node i in the full-layout panel.
func NodePaint(i int) Paint {
	return Paint{colorful.Hsv(NodeHue(i), 1, 1), nodeAlpha}
}

// plasmaStops samples the plasma colormap at nine evenly spaced points.
var plasmaStops = []colorful.Color{
	mustHex("#0d0887"),
	mustHex("#4c02a1"),
	mustHex("#7e03a8"),
	mustHex("#a92395"),
	mustHex("#cc4778"),
	mustHex("#e56b5d"),
	mustHex("#f89441"),
	mustHex("#fdc328"),
	mustHex("#f0f921"),
}

// Plasma maps t in [0, 1] onto a perceptually ordered dark-blue to yellow
// scale. t outside the range is clamped; NaN maps to the low end.
func Plasma(t float64) colorful.Color {
	if math.IsNaN(t) || t <= 0 {
		return plasmaStops[0]
	}
	if t >= 1 {
		return plasmaStops[len(plasmaStops)-1]
	}
	pos := t * float64(len(plasmaStops)-1)
	i := int(pos)
	return plasmaStops[i].BlendRgb(plasmaStops[i+1], pos-float64(i))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
