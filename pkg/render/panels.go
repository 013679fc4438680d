package render

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/layoutviz/pkg/layout"
)

// Stroke widths and label sizes, in points.
const (
	fullEdgeWidth = 0.3
	coreEdgeWidth = 0.4

	coreLabelPoints    = 5.0
	coreLabelOffset    = 3.0
	heatmapLabelPoints = 6.0
	heatmapLabelOffset = 4.0
)

// Color bar geometry as fractions of the panel side.
const (
	colorbarReserve = 0.12
	colorbarGap     = 0.03
	colorbarWidth   = 0.025
)

func (f *frame) drawFull(cell Rect) error {
	vp := newViewport(autoscale(f.ds), plotArea(cell, 0))
	f.beginAxes(vp.Pixel)
	f.drawEdges(vp, fullEdgeWidth, nil)
	f.drawNodes(vp, NodePaint, nil)
	title := fmt.Sprintf("Full Layout (%d nodes, %d edges)", f.ds.Len(), len(f.ds.Edges))
	if err := f.endAxes(vp, title); err != nil {
		return err
	}
	return f.drawLegend(vp.Pixel)
}

func (f *frame) drawCore(cell Rect) error {
	win := CoreWindow(f.ds)
	vp := newViewport(win.Bounds(), plotArea(cell, 0))
	inside := func(i int) bool { return win.Contains(f.ds.Position(i)) }

	f.beginAxes(vp.Pixel)
	f.drawEdges(vp, coreEdgeWidth, func(e layout.Edge) bool {
		return inside(e.Source) && inside(e.Target)
	})
	f.drawNodes(vp, NodePaint, inside)
	if err := f.endAxes(vp, "Core (2σ zoom)"); err != nil {
		return err
	}
	labels := TopLabels(f.rank, f.opts.CoreLabels, inside)
	return f.drawLabels(vp, labels, coreLabelPoints, coreLabelOffset)
}

func (f *frame) drawHeatmap(cell Rect) error {
	vp := newViewport(autoscale(f.ds), plotArea(cell, colorbarReserve))
	lo, hi := slices.Min(f.degrees), slices.Max(f.degrees)
	scale := DegreeScale(lo, hi)

	f.beginAxes(vp.Pixel)
	f.drawNodes(vp, func(i int) Paint {
		return Paint{Plasma(scale(f.degrees[i])), 1}
	}, nil)
	if err := f.endAxes(vp, "Degree heatmap"); err != nil {
		return err
	}
	if err := f.drawColorbar(cell, vp.Pixel, lo, hi); err != nil {
		return err
	}
	labels := TopLabels(f.rank, f.opts.HeatmapLabels, nil)
	return f.drawLabels(vp, labels, heatmapLabelPoints, heatmapLabelOffset)
}

// DegreeScale normalizes degrees in [lo, hi] onto [0, 1]. When every node
// has the same degree the scale is constant 0.
func DegreeScale(lo, hi int) func(int) float64 {
	if hi <= lo {
		return func(int) float64 { return 0 }
	}
	span := float64(hi - lo)
	return func(d int) float64 { return float64(d-lo) / span }
}

// drawLegend names the edge categories in the top right corner of plot.
func (f *frame) drawLegend(plot Rect) error {
	face, err := f.fonts.Face(legendPoints)
	if err != nil {
		return err
	}
	dc := f.dc
	dc.SetFontFace(face)

	types := []layout.EdgeType{layout.EdgeTypeDerivative, layout.EdgeTypeSubgenre, layout.EdgeTypeFusion}
	line := f.pt(legendPoints * 1.4)
	swatch := f.pt(14)
	pad := f.pt(6)

	var textW float64
	for _, t := range types {
		w, _ := dc.MeasureString(t.String())
		textW = math.Max(textW, w)
	}
	boxW := pad*3 + swatch + textW
	boxH := pad*2 + line*float64(len(types))
	x0 := plot.X + plot.W - boxW - pad
	y0 := plot.Y + pad

	dc.SetRGBA(figureBackground.R, figureBackground.G, figureBackground.B, 0.8)
	dc.DrawRectangle(x0, y0, boxW, boxH)
	dc.Fill()

	dc.SetLineWidth(f.pt(1.5))
	for k, t := range types {
		y := y0 + pad + line*(float64(k)+0.5)
		c := EdgePaint(t).Clamped()
		dc.SetRGB(c.R, c.G, c.B)
		dc.DrawLine(x0+pad, y, x0+pad+swatch, y)
		dc.Stroke()
		dc.SetRGB(textColor.R, textColor.G, textColor.B)
		dc.DrawStringAnchored(t.String(), x0+pad*2+swatch, y, 0, 0.35)
	}
	return nil
}

// drawColorbar draws the plasma gradient beside plot with degree ticks.
func (f *frame) drawColorbar(cell, plot Rect, lo, hi int) error {
	dc := f.dc
	side := math.Min(cell.W, cell.H)
	bar := Rect{
		X: plot.X + plot.W + side*colorbarGap,
		Y: plot.Y,
		W: side * colorbarWidth,
		H: plot.H,
	}

	rows := int(math.Ceil(bar.H))
	for k := 0; k < rows; k++ {
		t := 1 - (float64(k)+0.5)/float64(rows)
		c := Plasma(t)
		dc.SetRGB(c.R, c.G, c.B)
		dc.DrawRectangle(bar.X, bar.Y+float64(k), bar.W, math.Min(1, bar.H-float64(k)))
		dc.Fill()
	}
	dc.SetRGB(frameColor.R, frameColor.G, frameColor.B)
	dc.SetLineWidth(f.pt(frameWidth))
	dc.DrawRectangle(bar.X, bar.Y, bar.W, bar.H)
	dc.Stroke()

	face, err := f.fonts.Face(tickPoints)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	tick := f.pt(tickLength)
	right := bar.X + bar.W

	ticks := []float64{float64(lo)}
	if hi > lo {
		ticks = integerTicks(niceTicks(float64(lo), float64(hi), 5))
	}
	for _, v := range ticks {
		y := bar.Y + bar.H
		if hi > lo {
			y -= (v - float64(lo)) / float64(hi-lo) * bar.H
		}
		dc.SetRGB(frameColor.R, frameColor.G, frameColor.B)
		dc.DrawLine(right, y, right+tick, y)
		dc.Stroke()
		dc.SetRGB(textColor.R, textColor.G, textColor.B)
		dc.DrawStringAnchored(tickLabel(v), right+tick*1.5, y, 0, 0.35)
	}

	labelX := right + side*colorbarReserve*0.55
	labelY := bar.Y + bar.H/2
	dc.Push()
	dc.RotateAbout(-math.Pi/2, labelX, labelY)
	dc.SetRGB(textColor.R, textColor.G, textColor.B)
	dc.DrawStringAnchored("Degree", labelX, labelY, 0.5, 0.5)
	dc.Pop()
	return nil
}

// integerTicks drops fractional ticks; degrees are whole numbers.
func integerTicks(ticks []float64) []float64 {
	out := ticks[:0]
	for _, v := range ticks {
		if v == math.Trunc(v) {
			out = append(out, v)
		}
	}
	return out
}
