//go:build darwin || windows || linux

package clip

import (
	"log/slog"

	"golang.design/x/clipboard"
)

// New returns the system clipboard backend, or a headless no-op backend if
// the display environment is unavailable (e.g. a headless server without X11
// or Wayland). clipboard.Init is called here rather than in init() so that
// `picst version` never touches the display.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return headlessBackend{}
	}
	return &pngBackend{
		name: "system clipboard (" + platformName + ")",
		read: func() []byte { return clipboard.Read(clipboard.FmtImage) },
		// The returned channel fires when another program overwrites the
		// clipboard; the watch loop notices that by polling instead.
		write: notifyWriter(func(data []byte) <-chan struct{} {
			return clipboard.Write(clipboard.FmtImage, data)
		}),
	}
}
