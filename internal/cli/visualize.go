package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/matzehuels/layoutviz/pkg/buildinfo"
	"github.com/matzehuels/layoutviz/pkg/config"
	"github.com/matzehuels/layoutviz/pkg/observability"
	"github.com/matzehuels/layoutviz/pkg/pipeline"
)

type runOptions struct {
	configPath string
	input      string
	output     string
}

// resolve loads the config file, if any, and applies flag overrides.
func (o runOptions) resolve() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.input != "" {
		cfg.Input = o.input
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	return cfg, cfg.Validate()
}

// runVisualize runs the pipeline, then prints the report and the output path.
// Nothing reaches Out unless the image was written.
func (c *CLI) runVisualize(ctx context.Context, opts runOptions) error {
	logger := loggerFromContext(ctx)

	cfg, err := opts.resolve()
	if err != nil {
		return err
	}
	logger.Debug("build", buildinfo.KeyVals()...)
	logger.Debug("config resolved",
		"input", cfg.Input,
		"output", cfg.Output,
		"panel", cfg.Figure.PanelPixels(),
		"dpi", cfg.Figure.DPI)

	observability.SetPipelineHooks(logHooks{})
	defer observability.Reset()

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, cfg)
	if err != nil {
		return err
	}

	if _, err := result.Report.WriteTo(c.Out); err != nil {
		return err
	}
	fmt.Fprintln(c.Out)
	printSuccess(c.Out, "Saved %s", result.Output)
	if abs, err := filepath.Abs(result.Output); err == nil && abs != result.Output {
		printFile(c.Out, abs)
	}

	prog.done(fmt.Sprintf("Visualized %s", filepath.Base(cfg.Input)))
	return nil
}

// logHooks reports pipeline stage events at debug level through the logger
// carried in the event context.
type logHooks struct{}

func (logHooks) OnLoadStart(ctx context.Context, path string) {
	loggerFromContext(ctx).Debug("loading layout", "path", path)
}

func (logHooks) OnLoadComplete(ctx context.Context, path string, nodes, edges int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("load failed", "path", path, "error", err)
		return
	}
	l.Debug("layout loaded", "nodes", nodes, "edges", edges, "duration", d)
}

func (logHooks) OnStatsStart(ctx context.Context, nodes int) {
	loggerFromContext(ctx).Debug("computing statistics", "nodes", nodes)
}

func (logHooks) OnStatsComplete(ctx context.Context, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("statistics failed", "error", err)
		return
	}
	l.Debug("statistics computed", "duration", d)
}

func (logHooks) OnRenderStart(ctx context.Context, width, height int) {
	loggerFromContext(ctx).Debug("rendering figure", "width", width, "height", height)
}

func (logHooks) OnRenderComplete(ctx context.Context, path string, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("render failed", "path", path, "error", err)
		return
	}
	l.Debug("figure written", "path", path, "duration", d)
}
