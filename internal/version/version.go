// Package version holds build metadata injected via -ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build metadata line printed by `layoutcheck version`.
func String() string {
	return fmt.Sprintf("layoutcheck %s (commit=%s, date=%s, go=%s, %s/%s)",
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
