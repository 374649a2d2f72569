package sizing

import (
	"fmt"
	"math"

	"go.klb.dev/picst/internal/sample"
)

// UnitChoice is the answer to "how do you want to resize?".
type UnitChoice int

const (
	ChoosePixel UnitChoice = iota
	ChoosePercent
	ChooseRatio
)

// DimensionChoice is the answer to "which dimension will you provide?".
type DimensionChoice int

const (
	ChooseHeight DimensionChoice = iota
	ChooseWidth
	ChooseBoth
)

// Asker is the interactive side of resolution. Implementations own the
// validate-and-retry loop and only return values that pass CheckValue or
// CheckRatio; a cancelled interaction returns ErrInteractionAborted.
type Asker interface {
	AskUnit() (UnitChoice, error)
	AskDimensions() (DimensionChoice, error)
	AskValue(d Dimension, unit Unit) (uint32, error)
	AskRatio() (float64, error)
}

// Resolve computes the target size of src for req, consulting ask only
// when req leaves something open.
func Resolve(req Request, src *sample.Sample, ask Asker) (Size, error) {
	switch r := req.(type) {
	case Ratio:
		return applyRatio(src, float64(r))
	case Dimensions:
		if r.Height == 0 && r.Width == 0 {
			return resolveInteractive(src, ask)
		}
		return resolveDimensions(r, src, ask)
	case Unspecified, nil:
		return resolveInteractive(src, ask)
	default:
		return Size{}, fmt.Errorf("unknown request type %T", req)
	}
}

func resolveDimensions(r Dimensions, src *sample.Sample, ask Asker) (Size, error) {
	var err error
	switch {
	case r.Height != 0 && r.Width != 0:
		// Both given: aspect preservation is moot.
	case r.PreserveAspect:
		return fromOne(src, r.Height, r.Width, r.Unit)
	case r.Height == 0:
		r.Height, err = askValue(ask, Height, r.Unit)
	default:
		r.Width, err = askValue(ask, Width, r.Unit)
	}
	if err != nil {
		return Size{}, err
	}
	return fromBoth(src, r.Height, r.Width, r.Unit)
}

func resolveInteractive(src *sample.Sample, ask Asker) (Size, error) {
	if ask == nil {
		return Size{}, fmt.Errorf("%w: no interactive input available", ErrInteractionAborted)
	}
	choice, err := ask.AskUnit()
	if err != nil {
		return Size{}, fmt.Errorf("unit: %w", err)
	}

	if choice == ChooseRatio {
		ratio, err := ask.AskRatio()
		if err != nil {
			return Size{}, fmt.Errorf("ratio: %w", err)
		}
		return applyRatio(src, ratio)
	}

	unit := Pixel
	if choice == ChoosePercent {
		unit = Percent
	}

	which, err := ask.AskDimensions()
	if err != nil {
		return Size{}, fmt.Errorf("dimension: %w", err)
	}

	switch which {
	case ChooseHeight:
		h, err := askValue(ask, Height, unit)
		if err != nil {
			return Size{}, err
		}
		return fromOne(src, h, 0, unit)
	case ChooseWidth:
		w, err := askValue(ask, Width, unit)
		if err != nil {
			return Size{}, err
		}
		return fromOne(src, 0, w, unit)
	default:
		h, err := askValue(ask, Height, unit)
		if err != nil {
			return Size{}, err
		}
		w, err := askValue(ask, Width, unit)
		if err != nil {
			return Size{}, err
		}
		return fromBoth(src, h, w, unit)
	}
}

// askValue prompts for d and re-checks the answer against unit.
func askValue(ask Asker, d Dimension, unit Unit) (uint32, error) {
	if ask == nil {
		return 0, fmt.Errorf("%w: %s needed but no interactive input available", ErrInteractionAborted, d)
	}
	v, err := ask.AskValue(d, unit)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", d, err)
	}
	if err := CheckValue(v, unit); err != nil {
		return 0, fmt.Errorf("%s: %w", d, err)
	}
	return v, nil
}

// fromBoth resolves independently supplied height and width.
func fromBoth(src *sample.Sample, h, w uint32, unit Unit) (Size, error) {
	return checked(Size{
		Height: applyUnit(src.Height, h, unit),
		Width:  applyUnit(src.Width, w, unit),
	})
}

// fromOne resolves the given axis (the other is zero) and derives the other
// one from the source aspect ratio.
func fromOne(src *sample.Sample, h, w uint32, unit Unit) (Size, error) {
	if h != 0 {
		return checked(Size{
			Height: applyUnit(src.Height, h, unit),
			Width:  deriveOther(src.Height, src.Width, h, unit),
		})
	}
	return checked(Size{
		Height: deriveOther(src.Width, src.Height, w, unit),
		Width:  applyUnit(src.Width, w, unit),
	})
}

// ratioEpsilon absorbs binary representation error in decimal ratios, so
// 100*0.29 floors to 29 and not 28.
const ratioEpsilon = 1e-9

// applyRatio scales both axes by r, rounding down.
func applyRatio(src *sample.Sample, r float64) (Size, error) {
	if err := CheckRatio(r); err != nil {
		return Size{}, err
	}
	return checked(Size{
		Height: scaleDown(src.Height, r),
		Width:  scaleDown(src.Width, r),
	})
}

func scaleDown(v uint32, r float64) uint32 {
	return uint32(math.Floor(float64(v)*r + ratioEpsilon))
}

// applyUnit returns v as pixels, or v percent of srcDim.
func applyUnit(srcDim, v uint32, unit Unit) uint32 {
	if unit == Pixel {
		return v
	}
	return uint32(uint64(srcDim) * uint64(v) / 100)
}

// deriveOther keeps srcOther/srcGiven constant when the given axis becomes
// given. A percentage already is a ratio, so it applies to both axes as is.
func deriveOther(srcGiven, srcOther, given uint32, unit Unit) uint32 {
	if unit == Percent {
		return applyUnit(srcOther, given, Percent)
	}
	scale := float64(srcGiven) / float64(given)
	v := math.Round(float64(srcOther) / scale)
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func checked(s Size) (Size, error) {
	if s.Height == 0 || s.Width == 0 {
		return Size{}, fmt.Errorf("%w: target size %s has an empty side", ErrInvalidDimension, s)
	}
	return s, nil
}
