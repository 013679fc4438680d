// Package render draws the diagnostic figure for a graph layout.
//
// # Overview
//
// The figure is one PNG with three square panels side by side:
//
//  1. Full layout: every edge as a faint line colored by category, every
//     node as a dot sized by degree and colored by a hue hashed from its index.
//  2. Core zoom: the square window centered on the mean position with
//     half-width twice the larger coordinate standard deviation. Only edges
//     with both endpoints strictly inside are drawn, and the highest-degree
//     nodes inside the window are labeled.
//  3. Degree heatmap: every node colored on a plasma-like scale by degree,
//     with a color bar, and the highest-degree nodes labeled.
//
// Sizes are specified in typographic points and converted with the figure
// DPI, so a figure rendered at a lower DPI is a faithful thumbnail.
//
// # Usage
//
//	r := render.New(render.Options{PanelPixels: 1500, DPI: 150, CoreLabels: 30, HeatmapLabels: 15})
//	img, err := r.Render(ds, ds.Degrees())
//	if err != nil {
//	    return err
//	}
//	err = render.WritePNG("layout_visualization.png", img)
//
// Rendering is deterministic: the same dataset always yields the same pixels.
package render
