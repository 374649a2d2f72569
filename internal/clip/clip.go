// Package clip is the clipboard port: it reads the current clipboard image as
// a sample and publishes resized samples back. Build constraints select the
// implementation:
//
//	clip_system.go  : macOS, Windows, Linux via golang.design/x/clipboard
//	clip_other.go   : every other platform, headless only
//	clip_headless.go: no display server; reads and writes always fail
package clip

import (
	"errors"
	"fmt"

	"go.klb.dev/picst/internal/sample"
)

var (
	// ErrNoImage means the clipboard is empty or holds something other than
	// an image.
	ErrNoImage = errors.New("clipboard holds no image")
	// ErrUnavailable means there is no usable system clipboard.
	ErrUnavailable = errors.New("clipboard unavailable")
	// ErrRejected means the clipboard refused the image.
	ErrRejected = errors.New("clipboard rejected the image")
)

// Backend is the interface that all clipboard implementations satisfy.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadImage returns the image currently on the clipboard, or an error
	// wrapping ErrNoImage when there is none.
	ReadImage() (*sample.Sample, error)

	// WriteImage replaces the clipboard contents with s encoded as PNG.
	WriteImage(s *sample.Sample) error

	// Close releases any resources held by the backend.
	Close()
}

// pngBackend adapts raw PNG read/write primitives to Backend.
type pngBackend struct {
	name  string
	read  func() []byte
	write func([]byte) error
}

func (b *pngBackend) Name() string { return b.name }

func (b *pngBackend) ReadImage() (*sample.Sample, error) {
	data := b.read()
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	s, err := sample.DecodePNG(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoImage, err)
	}
	return s, nil
}

func (b *pngBackend) WriteImage(s *sample.Sample) error {
	data, err := sample.EncodePNG(s)
	if err != nil {
		return err
	}
	if err := b.write(data); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

func (b *pngBackend) Close() {}

// notifyWriter adapts a write that signals failure by returning a nil
// change-notification channel.
func notifyWriter(write func([]byte) <-chan struct{}) func([]byte) error {
	return func(data []byte) error {
		if write(data) == nil {
			return ErrRejected
		}
		return nil
	}
}
