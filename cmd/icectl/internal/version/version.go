// Package version holds icectl build metadata, set with -ldflags at release time.
package version

import (
	"fmt"
	"runtime"
)

// Version is the icectl release.
var Version = "v0.1.0-dev"

// Commit is the git commit hash.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format.
var BuildTime = "unknown"

// String returns "icectl version v0.1.0 (commit abc1234, built 2026-01-02T03:04:05Z)".
func String() string {
	return fmt.Sprintf("icectl version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// Full adds the Go toolchain and platform to String.
func Full() string {
	return fmt.Sprintf("%s\ngo version %s (%s/%s)", String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
