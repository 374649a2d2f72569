// Package sizing turns a resize request into concrete target dimensions.
//
// A Request is one of three variants:
//
//	Dimensions:  explicit height and/or width, in pixels or percent
//	Ratio:       uniform scale factor in (0, 1]
//	Unspecified: nothing configured; everything is asked interactively
//
// Options is the configuration boundary: it rejects contradictory or
// out-of-range input before the watch loop starts, so Resolve never has to.
package sizing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRatio       = errors.New("invalid ratio")
	ErrInvalidDimension   = errors.New("invalid dimension")
	ErrInteractionAborted = errors.New("interaction aborted")
	ErrConflictingOptions = errors.New("conflicting options")
)

// Unit says how a dimension value is interpreted.
type Unit int

const (
	Pixel Unit = iota
	Percent
)

func (u Unit) String() string {
	if u == Percent {
		return "percent"
	}
	return "pixel"
}

// Dimension names one axis of an image.
type Dimension int

const (
	Height Dimension = iota
	Width
)

func (d Dimension) String() string {
	if d == Width {
		return "Width"
	}
	return "Height"
}

// Request is implemented by Dimensions, Ratio and Unspecified.
type Request interface {
	isRequest()
}

// Dimensions asks for an explicit target. A zero Height or Width means the
// value was not supplied.
type Dimensions struct {
	Height         uint32
	Width          uint32
	Unit           Unit
	PreserveAspect bool
}

// Ratio scales both axes uniformly.
type Ratio float64

// Unspecified defers every decision to the Asker.
type Unspecified struct{}

func (Dimensions) isRequest()  {}
func (Ratio) isRequest()       {}
func (Unspecified) isRequest() {}

// Size is a fully resolved target. Both fields are strictly positive.
type Size struct {
	Height uint32
	Width  uint32
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Options is the merged flag / config-file / environment input. Nil pointers
// mean "not set"; an explicit zero is kept so it can be rejected.
type Options struct {
	Height            *uint32
	Width             *uint32
	Percent           bool
	Ratio             *float64
	IgnoreAspectRatio bool
}

// Request validates the options and builds the single Request the watch
// loop will use for its whole lifetime.
func (o Options) Request() (Request, error) {
	hasDims := o.Height != nil || o.Width != nil

	if o.Ratio != nil {
		if hasDims || o.Percent || o.IgnoreAspectRatio {
			return nil, fmt.Errorf("%w: --ratio cannot be combined with --height, --width, --percent or --ignore-aspect-ratio", ErrConflictingOptions)
		}
		if err := CheckRatio(*o.Ratio); err != nil {
			return nil, err
		}
		return Ratio(*o.Ratio), nil
	}

	if !hasDims {
		switch {
		case o.Percent:
			return nil, fmt.Errorf("%w: --percent requires --height or --width", ErrConflictingOptions)
		case o.IgnoreAspectRatio:
			return nil, fmt.Errorf("%w: --ignore-aspect-ratio requires --height or --width", ErrConflictingOptions)
		}
		return Unspecified{}, nil
	}

	unit := Pixel
	if o.Percent {
		unit = Percent
	}
	d := Dimensions{Unit: unit, PreserveAspect: !o.IgnoreAspectRatio}
	if o.Height != nil {
		if err := CheckValue(*o.Height, unit); err != nil {
			return nil, fmt.Errorf("height: %w", err)
		}
		d.Height = *o.Height
	}
	if o.Width != nil {
		if err := CheckValue(*o.Width, unit); err != nil {
			return nil, fmt.Errorf("width: %w", err)
		}
		d.Width = *o.Width
	}
	return d, nil
}

// Describe renders a request for startup logs.
func Describe(r Request) string {
	switch r := r.(type) {
	case Ratio:
		return fmt.Sprintf("ratio %g", float64(r))
	case Dimensions:
		suffix := "px"
		if r.Unit == Percent {
			suffix = "%"
		}
		show := func(v uint32) string {
			if v == 0 {
				return "?"
			}
			return fmt.Sprintf("%d%s", v, suffix)
		}
		s := fmt.Sprintf("height %s, width %s", show(r.Height), show(r.Width))
		if !r.PreserveAspect {
			s += ", aspect ratio ignored"
		}
		return s
	default:
		return "interactive"
	}
}

// NeedsInput reports whether resolving r will consult an Asker.
func NeedsInput(r Request) bool {
	switch r := r.(type) {
	case Ratio:
		return false
	case Dimensions:
		if r.Height != 0 && r.Width != 0 {
			return false
		}
		return !r.PreserveAspect || (r.Height == 0 && r.Width == 0)
	default:
		return true
	}
}
