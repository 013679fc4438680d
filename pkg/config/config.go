// Package config holds the run configuration for layoutviz.
//
// [Default] reproduces the fixed behavior of the tool: read
// website/public/data.json, write layout_visualization.png as three
// 10×10-inch panels at 150 DPI. A TOML file can override any field:
//
//	input = "data/layout.json"
//	output = "out/layout.png"
//
//	[figure]
//	panel_inches = 8
//	dpi = 100
//
//	[stats]
//	sample_limit = 250
//
//	[labels]
//	core = 20
//	heatmap = 10
package config

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/layoutviz/pkg/errors"
	"github.com/matzehuels/layoutviz/pkg/report"
)

// Defaults.
const (
	DefaultInput       = "website/public/data.json"
	DefaultOutput      = "layout_visualization.png"
	DefaultPanelInches = 10.0
	DefaultDPI         = 150.0
	DefaultCoreLabels  = 30
	DefaultHeatLabels  = 15
)

// Config is the full run configuration.
type Config struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`

	Figure Figure `toml:"figure"`
	Stats  Stats  `toml:"stats"`
	Labels Labels `toml:"labels"`
}

// Figure sizes the output image. Each of the three panels is square.
type Figure struct {
	PanelInches float64 `toml:"panel_inches"`
	DPI         float64 `toml:"dpi"`
}

// Stats tunes the statistics report.
type Stats struct {
	SampleLimit int `toml:"sample_limit"`
}

// Labels caps the number of labeled nodes per panel.
type Labels struct {
	Core    int `toml:"core"`
	Heatmap int `toml:"heatmap"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Figure: Figure{PanelInches: DefaultPanelInches, DPI: DefaultDPI},
		Stats:  Stats{SampleLimit: report.DefaultSampleLimit},
		Labels: Labels{Core: DefaultCoreLabels, Heatmap: DefaultHeatLabels},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New(errors.ErrCodeInvalidConfig, "input path must not be empty")
	case c.Output == "":
		return errors.New(errors.ErrCodeInvalidConfig, "output path must not be empty")
	case c.Figure.PanelInches <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "figure.panel_inches must be positive, got %v", c.Figure.PanelInches)
	case c.Figure.DPI <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "figure.dpi must be positive, got %v", c.Figure.DPI)
	case c.Stats.SampleLimit < 2:
		return errors.New(errors.ErrCodeInvalidConfig, "stats.sample_limit must be at least 2, got %d", c.Stats.SampleLimit)
	case c.Labels.Core < 0 || c.Labels.Heatmap < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "label counts must not be negative")
	}
	return nil
}

// PanelPixels returns the side length of one panel in pixels.
func (f Figure) PanelPixels() int {
	return int(f.PanelInches*f.DPI + 0.5)
}
