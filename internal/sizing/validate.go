package sizing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CheckPixels rejects a zero pixel count.
func CheckPixels(v uint32) error {
	if v == 0 {
		return fmt.Errorf("%w: pixels must be a non-zero integer", ErrInvalidDimension)
	}
	return nil
}

// CheckPercent accepts 1..99. Zero would remove the image and 100 would
// leave it unchanged.
func CheckPercent(v uint32) error {
	if v == 0 || v >= 100 {
		return fmt.Errorf("%w: percentage must be between 1 and 99", ErrInvalidDimension)
	}
	return nil
}

// CheckValue applies the rule for unit.
func CheckValue(v uint32, unit Unit) error {
	if unit == Percent {
		return CheckPercent(v)
	}
	return CheckPixels(v)
}

// CheckRatio accepts (0, 1].
func CheckRatio(r float64) error {
	if math.IsNaN(r) || r <= 0 || r > 1 {
		return fmt.Errorf("%w: ratio must be greater than 0 and at most 1, got %g", ErrInvalidRatio, r)
	}
	return nil
}

// ParsePixels parses user text as a pixel count.
func ParsePixels(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q can't be parsed as pixels", ErrInvalidDimension, s)
	}
	if err := CheckPixels(uint32(v)); err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ParsePercent parses user text as a percentage.
func ParsePercent(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q can't be parsed as a percentage", ErrInvalidDimension, s)
	}
	if err := CheckPercent(uint32(v)); err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ParseValue dispatches to ParsePixels or ParsePercent.
func ParseValue(s string, unit Unit) (uint32, error) {
	if unit == Percent {
		return ParsePercent(s)
	}
	return ParsePixels(s)
}

// ParseRatio parses user text as a scale factor.
func ParseRatio(s string) (float64, error) {
	r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q can't be parsed as a ratio", ErrInvalidRatio, s)
	}
	if err := CheckRatio(r); err != nil {
		return 0, err
	}
	return r, nil
}
