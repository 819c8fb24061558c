// Package version carries build metadata, set with -ldflags "-X".
package version

import "fmt"

var (
	// Version is the current version of the application
	Version = "0.1.0-dev"

	// GitCommit is the git commit hash (set during build)
	GitCommit = "unknown"

	// BuildDate is the build date (set during build)
	BuildDate = "unknown"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("hook-runner version %s (commit: %s, built: %s)",
		Version, GitCommit, BuildDate)
}

// Stamp is the one-line provenance comment written into installed hook scripts.
func Stamp() string {
	return fmt.Sprintf("installed by hook-runner %s", Version)
}
