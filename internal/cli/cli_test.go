package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutviz/pkg/errors"
)

const exampleLayout = `{
	"nodes": [
		{"x": 0, "y": 0, "label": "Rock"},
		{"x": 0, "y": 0.04, "label": "Punk"},
		{"x": 10, "y": 10, "label": "Jazz"}
	],
	"edges": [[0, 1, 0]]
}`

// testCLI returns a CLI with captured stdout and stderr.
func testCLI(level log.Level) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	c := New(&logs, level)
	c.Out = &out
	return c, &out, &logs
}

// writeFixture writes the layout and a small-figure config into a temp dir.
func writeFixture(t *testing.T, layout string) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()
	input := filepath.Join(dir, "data.json")
	if err := os.WriteFile(input, []byte(layout), 0o644); err != nil {
		t.Fatal(err)
	}
	configPath = filepath.Join(dir, "layoutviz.toml")
	cfg := "input = " + quote(input) + "\noutput = " + quote(filepath.Join(dir, "out.png")) + `

[figure]
panel_inches = 1
dpi = 72
`
	if err := os.WriteFile(configPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, configPath
}

func quote(s string) string {
	return "'" + s + "'"
}

func execute(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(c.Out)
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func TestRootCommandRun(t *testing.T) {
	dir, configPath := writeFixture(t, exampleLayout)
	c, out, _ := testCLI(log.InfoLevel)

	if err := execute(c, "--config", configPath); err != nil {
		t.Fatalf("execute error = %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "Nodes: 3\nEdges: 1\n") {
		t.Errorf("stdout should start with node and edge counts, got:\n%s", got)
	}
	for _, want := range []string{
		"Positions with >1 node at same rounded coord: 1\n",
		"Edge types: derivative=1, subgenre=0, fusion=0, other=0\n",
		"Saved " + filepath.Join(dir, "out.png"),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stdout missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "Saved") < strings.Index(got, "Edge types") {
		t.Error("Saved line should follow the report")
	}
	if _, err := os.Stat(filepath.Join(dir, "out.png")); err != nil {
		t.Errorf("output image missing: %v", err)
	}
}

func TestRootCommandOutputOverride(t *testing.T) {
	dir, configPath := writeFixture(t, exampleLayout)
	override := filepath.Join(dir, "override.png")
	c, out, _ := testCLI(log.InfoLevel)

	if err := execute(c, "-c", configPath, "-o", override); err != nil {
		t.Fatalf("execute error = %v", err)
	}
	if _, err := os.Stat(override); err != nil {
		t.Errorf("override image missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.png")); !os.IsNotExist(err) {
		t.Error("configured output should not be written when overridden")
	}
	if !strings.Contains(out.String(), "Saved "+override) {
		t.Errorf("stdout should name the override path:\n%s", out.String())
	}
}

func TestRootCommandFailures(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		args   func(dir, configPath string) []string
		code   errors.Code
	}{
		{
			name:   "missing input",
			layout: exampleLayout,
			args: func(dir, configPath string) []string {
				return []string{"-c", configPath, "-i", filepath.Join(dir, "absent.json")}
			},
			code: errors.ErrCodeFileNotFound,
		},
		{
			name:   "edge out of range",
			layout: `{"nodes":[{"x":0,"y":0,"label":"a"}],"edges":[[0,5,1]]}`,
			args:   func(_, configPath string) []string { return []string{"-c", configPath} },
			code:   errors.ErrCodeIndexOutOfRange,
		},
		{
			name:   "empty dataset",
			layout: `{"nodes":[],"edges":[]}`,
			args:   func(_, configPath string) []string { return []string{"-c", configPath} },
			code:   errors.ErrCodeEmptyDataset,
		},
		{
			name:   "malformed json",
			layout: `{"nodes": [`,
			args:   func(_, configPath string) []string { return []string{"-c", configPath} },
			code:   errors.ErrCodeParse,
		},
		{
			name:   "missing config",
			layout: exampleLayout,
			args: func(dir, _ string) []string {
				return []string{"-c", filepath.Join(dir, "absent.toml")}
			},
			code: errors.ErrCodeFileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, configPath := writeFixture(t, tt.layout)
			c, out, _ := testCLI(log.InfoLevel)

			err := execute(c, tt.args(dir, configPath)...)
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want code %s", err, tt.code)
			}
			if out.Len() != 0 {
				t.Errorf("stdout should be empty on failure, got:\n%s", out.String())
			}
			if _, err := os.Stat(filepath.Join(dir, "out.png")); !os.IsNotExist(err) {
				t.Error("no image should be written on failure")
			}
		})
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	c, _, _ := testCLI(log.InfoLevel)
	if err := execute(c, "extra"); err == nil {
		t.Error("positional arguments should be rejected")
	}
}

func TestVerboseLogsStages(t *testing.T) {
	_, configPath := writeFixture(t, exampleLayout)
	c, _, logs := testCLI(log.DebugLevel)

	if err := execute(c, "--config", configPath); err != nil {
		t.Fatalf("execute error = %v", err)
	}
	for _, want := range []string{"loading layout", "statistics computed", "figure written", "Visualized data.json"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("debug log missing %q", want)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	c, out, _ := testCLI(log.InfoLevel)
	if err := execute(c, "completion", "bash"); err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(out.String(), appName) {
		t.Error("bash completion should reference the command name")
	}
}
