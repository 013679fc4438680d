package render

import (
	"math"

	"github.com/matzehuels/layoutviz/pkg/layout"
)

// Panel margins as fractions of the panel side.
const (
	marginTop    = 0.06
	marginBottom = 0.05
	marginLeft   = 0.07
	marginRight  = 0.03

	dataPadding = 0.05 // autoscale margin around the data
)

// Point sizes of text and strokes.
const (
	titlePoints  = 12.0
	tickPoints   = 8.0
	legendPoints = 8.0
	tickLength   = 3.5
	frameWidth   = 0.8
)

// plotArea returns the axes rectangle inside a panel cell, leaving reserve
// (a fraction of the side) free on the right for a color bar.
func plotArea(cell Rect, reserve float64) Rect {
	side := math.Min(cell.W, cell.H)
	left := cell.X + side*marginLeft
	top := cell.Y + side*marginTop
	return Rect{
		X: left,
		Y: top,
		W: cell.W - side*(marginLeft+marginRight+reserve),
		H: cell.H - side*(marginTop+marginBottom),
	}
}

// autoscale frames every finite node with a small margin.
func autoscale(ds *layout.Dataset) Bounds {
	b, ok := dataBounds(ds)
	if !ok {
		return unitBounds
	}
	return b.pad(dataPadding)
}

// beginAxes paints the axes background and clips drawing to it.
func (f *frame) beginAxes(plot Rect) {
	dc := f.dc
	dc.SetRGB(panelBackground.R, panelBackground.G, panelBackground.B)
	dc.DrawRectangle(plot.X, plot.Y, plot.W, plot.H)
	dc.Fill()
	dc.DrawRectangle(plot.X, plot.Y, plot.W, plot.H)
	dc.Clip()
}

// endAxes lifts the clip and draws the frame, ticks and title.
func (f *frame) endAxes(vp Viewport, title string) error {
	dc := f.dc
	dc.ResetClip()

	plot := vp.Pixel
	dc.SetRGB(frameColor.R, frameColor.G, frameColor.B)
	dc.SetLineWidth(f.pt(frameWidth))
	dc.DrawRectangle(plot.X, plot.Y, plot.W, plot.H)
	dc.Stroke()

	face, err := f.fonts.Face(tickPoints)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	tick := f.pt(tickLength)
	bottom := plot.Y + plot.H

	for _, v := range niceTicks(vp.Data.Min.X, vp.Data.Max.X, 5) {
		x, _ := vp.Project(vecXY(v, vp.Data.Min.Y))
		dc.SetRGB(frameColor.R, frameColor.G, frameColor.B)
		dc.DrawLine(x, bottom, x, bottom+tick)
		dc.Stroke()
		dc.SetRGB(textColor.R, textColor.G, textColor.B)
		dc.DrawStringAnchored(tickLabel(v), x, bottom+tick*1.3, 0.5, 1)
	}
	for _, v := range niceTicks(vp.Data.Min.Y, vp.Data.Max.Y, 5) {
		_, y := vp.Project(vecXY(vp.Data.Min.X, v))
		dc.SetRGB(frameColor.R, frameColor.G, frameColor.B)
		dc.DrawLine(plot.X-tick, y, plot.X, y)
		dc.Stroke()
		dc.SetRGB(textColor.R, textColor.G, textColor.B)
		dc.DrawStringAnchored(tickLabel(v), plot.X-tick*1.3, y, 1, 0.35)
	}

	titleFace, err := f.fonts.Face(titlePoints)
	if err != nil {
		return err
	}
	dc.SetFontFace(titleFace)
	dc.SetRGB(textColor.R, textColor.G, textColor.B)
	dc.DrawStringAnchored(title, plot.X+plot.W/2, plot.Y-f.pt(6), 0.5, 0)
	return nil
}

// drawEdges strokes every edge accepted by keep (nil accepts all). Edges
// with a non-finite endpoint are skipped.
func (f *frame) drawEdges(vp Viewport, widthPoints float64, keep func(layout.Edge) bool) {
	dc := f.dc
	dc.SetLineWidth(f.pt(widthPoints))
	for _, e := range f.ds.Edges {
		if !f.ds.Finite(e.Source) || !f.ds.Finite(e.Target) {
			continue
		}
		if keep != nil && !keep(e) {
			continue
		}
		x1, y1 := vp.Project(f.ds.Position(e.Source))
		x2, y2 := vp.Project(f.ds.Position(e.Target))
		dc.SetRGBA(EdgePaint(e.Type).rgba())
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
}

// drawNodes fills a degree-sized dot for every finite node accepted by keep
// (nil accepts all), in node order.
func (f *frame) drawNodes(vp Viewport, paint func(int) Paint, keep func(int) bool) {
	dc := f.dc
	for i := range f.ds.Nodes {
		if !f.ds.Finite(i) || (keep != nil && !keep(i)) {
			continue
		}
		x, y := vp.Project(f.ds.Position(i))
		r := markerRadius(MarkerArea(f.degrees[i], f.maxDeg), f.opts.DPI)
		dc.SetRGBA(paint(i).rgba())
		dc.DrawCircle(x, y, r)
		dc.Fill()
	}
}

// drawLabels writes node labels centered just above their positions.
func (f *frame) drawLabels(vp Viewport, nodes []int, points, offsetPoints float64) error {
	face, err := f.fonts.Face(points)
	if err != nil {
		return err
	}
	dc := f.dc
	dc.SetFontFace(face)
	dc.SetRGB(labelColor.R, labelColor.G, labelColor.B)
	for _, i := range nodes {
		if !f.ds.Finite(i) {
			continue
		}
		x, y := vp.Project(f.ds.Position(i))
		dc.DrawStringAnchored(f.ds.Nodes[i].Label, x, y-f.pt(offsetPoints), 0.5, 0)
	}
	return nil
}
