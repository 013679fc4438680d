// Package buildinfo exposes the layoutviz release stamp.
//
// The values default to a development build and are overridden at link time:
//
//	go build -ldflags "-X github.com/matzehuels/layoutviz/pkg/buildinfo.Version=v0.1.0 \
//	    -X github.com/matzehuels/layoutviz/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/layoutviz/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/layoutviz
package buildinfo

import "fmt"

// Link-time stamps.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template is the cobra version template printed by `layoutviz --version`.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

// KeyVals returns the stamp as alternating keys and values for structured
// loggers.
func KeyVals() []any {
	return []any{"version", Version, "commit", Commit, "built", Date}
}
