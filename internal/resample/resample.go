// Package resample scales clipboard samples to a resolved size. Three
// interchangeable engines are available; all of them use a Lanczos filter.
package resample

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"go.klb.dev/picst/internal/sample"
	"go.klb.dev/picst/internal/sizing"
)

// DefaultEngine is used when no engine is configured.
const DefaultEngine = "imaging"

// Resampler produces a new sample of the requested size. src is not modified.
type Resampler interface {
	Name() string
	Resample(src *sample.Sample, size sizing.Size) (*sample.Sample, error)
}

var engines = map[string]func() Resampler{
	"imaging": func() Resampler { return imagingEngine{} },
	"nfnt":    func() Resampler { return nfntEngine{} },
	"bild":    func() Resampler { return bildEngine{} },
}

// Engines lists the accepted engine names.
func Engines() []string {
	names := make([]string, 0, len(engines))
	for n := range engines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New returns the named engine. An empty name selects DefaultEngine.
func New(name string) (Resampler, error) {
	if name == "" {
		name = DefaultEngine
	}
	ctor, ok := engines[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown resample engine %q (want one of %s)", name, strings.Join(Engines(), ", "))
	}
	return ctor(), nil
}

func check(src *sample.Sample, size sizing.Size) error {
	if size.Width == 0 || size.Height == 0 {
		return fmt.Errorf("resample: empty target size %s", size)
	}
	return src.Validate()
}

type imagingEngine struct{}

func (imagingEngine) Name() string { return "imaging (Lanczos)" }

func (imagingEngine) Resample(src *sample.Sample, size sizing.Size) (*sample.Sample, error) {
	if err := check(src, size); err != nil {
		return nil, err
	}
	out := imaging.Resize(src.Image(), int(size.Width), int(size.Height), imaging.Lanczos)
	return sample.FromImage(out), nil
}

type nfntEngine struct{}

func (nfntEngine) Name() string { return "nfnt (Lanczos3)" }

func (nfntEngine) Resample(src *sample.Sample, size sizing.Size) (*sample.Sample, error) {
	if err := check(src, size); err != nil {
		return nil, err
	}
	out := resize.Resize(uint(size.Width), uint(size.Height), src.Image(), resize.Lanczos3)
	return sample.FromImage(out), nil
}

type bildEngine struct{}

func (bildEngine) Name() string { return "bild (Lanczos)" }

func (bildEngine) Resample(src *sample.Sample, size sizing.Size) (*sample.Sample, error) {
	if err := check(src, size); err != nil {
		return nil, err
	}
	out := transform.Resize(src.Image(), int(size.Width), int(size.Height), transform.Lanczos)
	return sample.FromImage(out), nil
}
