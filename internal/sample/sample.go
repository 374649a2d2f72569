// Package sample defines the raster image exchanged between the clipboard,
// the resampler and the watch loop, together with its content fingerprint.
//
// Pixels are always stored as 8-bit non-premultiplied RGBA, row-major with no
// padding, so two samples with the same dimensions and the same pixels have
// byte-identical Pix slices regardless of how they were decoded.
package sample

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/crypto/blake2b"
)

// Channels is the number of bytes per pixel in Pix.
const Channels = 4

// Sample is a decoded clipboard image.
type Sample struct {
	Width  uint32
	Height uint32
	Pix    []byte
}

// FromImage normalises img to NRGBA and copies its pixels into a new Sample.
func FromImage(img image.Image) *Sample {
	n := imaging.Clone(img)
	b := n.Bounds()
	return &Sample{
		Width:  uint32(b.Dx()),
		Height: uint32(b.Dy()),
		Pix:    n.Pix,
	}
}

// Image returns an *image.NRGBA view over the sample's pixels. The returned
// image shares Pix with s.
func (s *Sample) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    s.Pix,
		Stride: int(s.Width) * Channels,
		Rect:   image.Rect(0, 0, int(s.Width), int(s.Height)),
	}
}

// Validate reports whether Pix has the length implied by the dimensions.
func (s *Sample) Validate() error {
	if s.Width == 0 || s.Height == 0 {
		return errors.New("sample: empty image")
	}
	want := int(s.Width) * int(s.Height) * Channels
	if len(s.Pix) != want {
		return fmt.Errorf("sample: pixel buffer is %d bytes, want %d for %dx%d", len(s.Pix), want, s.Width, s.Height)
	}
	return nil
}

// DecodePNG decodes clipboard image bytes. Any format registered with the
// image package is accepted; the clipboard normally hands out PNG.
func DecodePNG(data []byte) (*Sample, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	s := FromImage(img)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodePNG encodes the sample for publishing to the clipboard.
func EncodePNG(s *Sample) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, s.Image(), imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Fingerprint identifies pixel content. It is comparable with ==.
type Fingerprint [blake2b.Size256]byte

// Fingerprint hashes the dimensions and pixels of s. Two samples with equal
// pixels and dimensions always yield equal fingerprints.
func (s *Sample) Fingerprint() Fingerprint {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[:4], s.Width)
	binary.BigEndian.PutUint32(dims[4:], s.Height)
	h.Write(dims[:])
	h.Write(s.Pix)

	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}

// String returns a short hex prefix for logs.
func (fp Fingerprint) String() string {
	return fmt.Sprintf("%x", fp[:6])
}
