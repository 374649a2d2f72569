//go:build !darwin && !windows && !linux

package clip

import "log/slog"

// New returns the headless backend; there is no clipboard support on this
// platform.
func New() Backend {
	slog.Warn("no clipboard support on this platform, running headless")
	return headlessBackend{}
}
