package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutviz/pkg/buildinfo"
)

const appName = "layoutviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives the statistics report and status lines.
	Out io.Writer
}

// New creates a new CLI instance that logs to w and prints to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. Running it without a
// subcommand loads the layout, prints its statistics and renders the figure.
func (c *CLI) RootCommand() *cobra.Command {
	var opts runOptions

	root := &cobra.Command{
		Use:   appName,
		Short: "Layoutviz inspects a 2D graph layout and renders it as a PNG",
		Long: `Layoutviz reads a node-link layout (positioned nodes plus typed edges),
prints summary statistics about its geometry and connectivity, and renders a
three-panel figure: the full layout, a zoom on the dense core and a degree
heatmap.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	root.Flags().StringVarP(&opts.input, "input", "i", "", "layout JSON (overrides config)")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG (overrides config)")

	root.AddCommand(c.completionCommand())

	return root
}
