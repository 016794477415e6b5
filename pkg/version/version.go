// Package version exposes build metadata injected with -ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X github.com/rshade/dexterm/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string { return version }

// GetCommit returns the source revision.
func GetCommit() string { return commit }

// GetBuildDate returns the build timestamp.
func GetBuildDate() string { return date }

// String formats all build metadata on one line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", GetVersion(), GetCommit(), GetBuildDate())
}
