package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutviz/pkg/config"
	"github.com/matzehuels/layoutviz/pkg/errors"
	"github.com/matzehuels/layoutviz/pkg/io"
	"github.com/matzehuels/layoutviz/pkg/layout"
	"github.com/matzehuels/layoutviz/pkg/observability"
	"github.com/matzehuels/layoutviz/pkg/render"
	"github.com/matzehuels/layoutviz/pkg/report"
)

// Runner executes the pipeline. It holds no run state, so one Runner can
// execute any number of runs in sequence.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs load → stats → render with cfg and writes the image to
// cfg.Output. The context is checked between stages; a stage in progress
// always runs to completion.
func (r *Runner) Execute(ctx context.Context, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	result := &Result{}

	// Stage 1: Load
	start := time.Now()
	ds, err := r.Load(ctx, cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Dataset = ds
	result.Degrees = ds.Degrees()
	result.Stats.LoadTime = time.Since(start)

	r.Logger.Info("loaded layout",
		"nodes", ds.Len(),
		"edges", len(ds.Edges),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Stats
	start = time.Now()
	rep, err := r.ComputeStats(ctx, ds, result.Degrees, cfg.Stats.SampleLimit)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	result.Report = rep
	result.Stats.StatsTime = time.Since(start)

	r.Logger.Info("computed statistics",
		"sample", rep.SampleSize,
		"duration", result.Stats.StatsTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	start = time.Now()
	img, err := r.Render(ctx, ds, result.Degrees, cfg)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Image = img
	result.Output = cfg.Output
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered figure",
		"output", cfg.Output,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the layout at path. A layout without nodes is
// rejected here so that no later stage produces output for it.
func (r *Runner) Load(ctx context.Context, path string) (*layout.Dataset, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	ds, err := io.ImportJSON(path)
	if err == nil && ds.Empty() {
		err = errors.New(errors.ErrCodeEmptyDataset, "no data: %s has no nodes", path)
	}

	var nodes, edges int
	if ds != nil {
		nodes, edges = ds.Len(), len(ds.Edges)
	}
	hooks.OnLoadComplete(ctx, path, nodes, edges, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// ComputeStats builds the statistics report.
func (r *Runner) ComputeStats(ctx context.Context, ds *layout.Dataset, degrees []int, sampleLimit int) (*report.Report, error) {
	hooks := observability.Pipeline()
	hooks.OnStatsStart(ctx, ds.Len())
	start := time.Now()

	rep, err := report.Compute(ds, degrees, report.WithSampleLimit(sampleLimit))
	hooks.OnStatsComplete(ctx, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("statistics",
		"max_degree", rep.MaxDegree,
		"overlaps", rep.Overlaps,
		"pairs", rep.Pairwise.Count)
	return rep, nil
}

// Render draws the figure in memory and writes it to cfg.Output.
func (r *Runner) Render(ctx context.Context, ds *layout.Dataset, degrees []int, cfg config.Config) (image.Image, error) {
	renderer := render.New(RenderOptions(cfg))
	w, h := renderer.Size()

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, w, h)
	start := time.Now()

	img, err := renderer.Render(ds, degrees)
	if err == nil {
		r.Logger.Debug("drew figure", "width", w, "height", h, "duration", time.Since(start))
		err = render.WritePNG(cfg.Output, img)
	}
	hooks.OnRenderComplete(ctx, cfg.Output, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return img, nil
}
