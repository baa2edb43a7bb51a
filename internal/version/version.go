// Package version holds build metadata stamped in by the linker.
package version

import "fmt"

// Set with -ldflags "-X github.com/dkoosis/spooltag/internal/version.Version=...".
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build metadata for --version.
func String() string {
	return fmt.Sprintf("spooltag %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
