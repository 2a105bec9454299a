// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/cargodeps/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/cargodeps/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/cargodeps/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/cargodeps
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
