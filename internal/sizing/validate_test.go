package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePercent(t *testing.T) {
	for _, in := range []string{"nope", "0", "100", "101", "-5", "2.5", ""} {
		_, err := ParsePercent(in)
		assert.ErrorIs(t, err, ErrInvalidDimension, "input %q", in)
	}

	v, err := ParsePercent("1")
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), v)

	v, err = ParsePercent(" 99 ")
	assert.NoError(t, err)
	assert.Equal(t, uint32(99), v)
}

func TestParsePixels(t *testing.T) {
	for _, in := range []string{"nope", "0", "-1", "4294967296"} {
		_, err := ParsePixels(in)
		assert.ErrorIs(t, err, ErrInvalidDimension, "input %q", in)
	}

	v, err := ParsePixels("1")
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), v)
}

func TestParseRatio(t *testing.T) {
	for _, in := range []string{"nope", "-1.", "0.", "0", "1.5", "NaN"} {
		_, err := ParseRatio(in)
		assert.ErrorIs(t, err, ErrInvalidRatio, "input %q", in)
	}

	v, err := ParseRatio("0.7")
	assert.NoError(t, err)
	assert.Equal(t, 0.7, v)

	v, err = ParseRatio("1")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestParseValue(t *testing.T) {
	_, err := ParseValue("150", Percent)
	assert.Error(t, err)

	v, err := ParseValue("150", Pixel)
	assert.NoError(t, err)
	assert.Equal(t, uint32(150), v)
}
