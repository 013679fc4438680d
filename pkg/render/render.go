package render

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/matzehuels/layoutviz/pkg/errors"
	"github.com/matzehuels/layoutviz/pkg/fonts"
	"github.com/matzehuels/layoutviz/pkg/layout"
)

// Panels per figure.
const panelCount = 3

// Options sizes the figure and caps labeling.
type Options struct {
	PanelPixels   int     // side length of each square panel
	DPI           float64 // pixels per inch, converts point sizes
	CoreLabels    int     // labeled nodes in the core panel
	HeatmapLabels int     // labeled nodes in the heatmap panel
}

// DefaultOptions returns the 30×10-inch, 150 DPI figure.
func DefaultOptions() Options {
	return Options{PanelPixels: 1500, DPI: 150, CoreLabels: 30, HeatmapLabels: 15}
}

// Renderer draws layout figures.
type Renderer struct {
	opts Options
}

// New creates a renderer. Non-positive sizes fall back to the defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.PanelPixels <= 0 {
		opts.PanelPixels = def.PanelPixels
	}
	if opts.DPI <= 0 {
		opts.DPI = def.DPI
	}
	return &Renderer{opts: opts}
}

// Options returns the effective options.
func (r *Renderer) Options() Options { return r.opts }

// Size returns the figure dimensions in pixels.
func (r *Renderer) Size() (w, h int) {
	return panelCount * r.opts.PanelPixels, r.opts.PanelPixels
}

// frame is the drawing state shared by the panels of one figure.
type frame struct {
	dc      *gg.Context
	ds      *layout.Dataset
	degrees []int
	rank    []int
	maxDeg  int
	opts    Options
	fonts   *fonts.Set
}

// pt converts points to pixels.
func (f *frame) pt(points float64) float64 {
	return points * f.opts.DPI / 72
}

// Render draws the three-panel figure for ds. degrees must hold one entry
// per node, as returned by [layout.Dataset.Degrees].
//
// Render fails with EMPTY_DATASET for a dataset without nodes and with
// INDEX_OUT_OF_RANGE for invalid edges. It never touches the filesystem.
func (r *Renderer) Render(ds *layout.Dataset, degrees []int) (image.Image, error) {
	if ds.Empty() {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "no data: layout has no nodes")
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if len(degrees) != ds.Len() {
		return nil, errors.New(errors.ErrCodeIndexOutOfRange, "degree count %d does not match node count %d", len(degrees), ds.Len())
	}

	w, h := r.Size()
	f := &frame{
		dc:      gg.NewContext(w, h),
		ds:      ds,
		degrees: degrees,
		rank:    layout.RankByDegree(degrees),
		maxDeg:  layout.MaxDegree(degrees),
		opts:    r.opts,
		fonts:   fonts.NewSet(r.opts.DPI),
	}

	f.dc.SetRGB(figureBackground.R, figureBackground.G, figureBackground.B)
	f.dc.Clear()

	side := float64(r.opts.PanelPixels)
	steps := []func(Rect) error{f.drawFull, f.drawCore, f.drawHeatmap}
	for i, draw := range steps {
		if err := draw(Rect{X: float64(i) * side, Y: 0, W: side, H: side}); err != nil {
			return nil, err
		}
	}
	return f.dc.Image(), nil
}
