// Package pipeline runs the load → stats → render sequence for one layout.
//
// # Architecture
//
// The pipeline consists of three stages, run strictly in order over one
// in-memory snapshot:
//
//  1. Load: read and validate the layout JSON (package io)
//  2. Stats: compute the summary report (package report)
//  3. Render: draw the three-panel figure and write it as PNG (package render)
//
// Every stage finishes before anything becomes visible: the report is
// returned in the [Result] rather than printed, and the image is written
// atomically. A failing run therefore leaves neither a report nor an image
// behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, config.Default())
//	if err != nil {
//	    return err
//	}
//	result.Report.WriteTo(os.Stdout)
package pipeline

import (
	"image"
	"time"

	"github.com/matzehuels/layoutviz/pkg/config"
	"github.com/matzehuels/layoutviz/pkg/layout"
	"github.com/matzehuels/layoutviz/pkg/render"
	"github.com/matzehuels/layoutviz/pkg/report"
)

// Result holds everything a run produced.
type Result struct {
	Dataset *layout.Dataset
	Degrees []int
	Report  *report.Report
	Image   image.Image
	Output  string // path the image was written to
	Stats   Stats
}

// Stats records per-stage timing.
type Stats struct {
	LoadTime   time.Duration
	StatsTime  time.Duration
	RenderTime time.Duration
}

// Total returns the summed stage time.
func (s Stats) Total() time.Duration {
	return s.LoadTime + s.StatsTime + s.RenderTime
}

// RenderOptions derives renderer options from cfg.
func RenderOptions(cfg config.Config) render.Options {
	return render.Options{
		PanelPixels:   cfg.Figure.PanelPixels(),
		DPI:           cfg.Figure.DPI,
		CoreLabels:    cfg.Labels.Core,
		HeatmapLabels: cfg.Labels.Heatmap,
	}
}
