// Package cli implements the layoutviz command-line interface.
//
// The root command loads a layout JSON file, prints its statistics report
// to stdout and writes a three-panel PNG. Settings come from an optional
// TOML file (--config) with --input and --output overrides.
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) enables
// debug-level output, including per-stage pipeline events. The logger is
// carried through context.Context.
package cli
