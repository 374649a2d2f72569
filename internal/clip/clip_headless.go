package clip

import "go.klb.dev/picst/internal/sample"

// headlessBackend is used when no display server is reachable (headless
// Linux servers, containers, CI). Every read and write fails with
// ErrUnavailable so the watch loop simply idles.
type headlessBackend struct{}

func (headlessBackend) Name() string { return "headless (no-op)" }

func (headlessBackend) ReadImage() (*sample.Sample, error) { return nil, ErrUnavailable }

func (headlessBackend) WriteImage(_ *sample.Sample) error { return ErrUnavailable }

func (headlessBackend) Close() {}
