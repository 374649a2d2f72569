package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u32(v uint32) *uint32 { return &v }
func f64(v float64) *float64 { return &v }

func TestOptions_Empty(t *testing.T) {
	req, err := Options{}.Request()

	require.NoError(t, err)
	assert.Equal(t, Unspecified{}, req)
}

func TestOptions_Ratio(t *testing.T) {
	req, err := Options{Ratio: f64(0.5)}.Request()

	require.NoError(t, err)
	assert.Equal(t, Ratio(0.5), req)
}

func TestOptions_RatioRange(t *testing.T) {
	for _, r := range []float64{0, -1, 1.01, 3} {
		_, err := Options{Ratio: f64(r)}.Request()
		assert.ErrorIs(t, err, ErrInvalidRatio, "ratio %g", r)
	}
}

func TestOptions_RatioConflicts(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"height", Options{Ratio: f64(0.5), Height: u32(10)}},
		{"width", Options{Ratio: f64(0.5), Width: u32(10)}},
		{"percent", Options{Ratio: f64(0.5), Percent: true}},
		{"ignore aspect", Options{Ratio: f64(0.5), IgnoreAspectRatio: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Request()
			assert.ErrorIs(t, err, ErrConflictingOptions)
		})
	}
}

func TestOptions_ModifiersNeedADimension(t *testing.T) {
	_, err := Options{Percent: true}.Request()
	assert.ErrorIs(t, err, ErrConflictingOptions)

	_, err = Options{IgnoreAspectRatio: true}.Request()
	assert.ErrorIs(t, err, ErrConflictingOptions)
}

func TestOptions_Dimensions(t *testing.T) {
	req, err := Options{Height: u32(300)}.Request()

	require.NoError(t, err)
	assert.Equal(t, Dimensions{Height: 300, Unit: Pixel, PreserveAspect: true}, req)
}

func TestOptions_PercentIgnoreAspect(t *testing.T) {
	req, err := Options{Width: u32(40), Percent: true, IgnoreAspectRatio: true}.Request()

	require.NoError(t, err)
	assert.Equal(t, Dimensions{Width: 40, Unit: Percent, PreserveAspect: false}, req)
}

func TestOptions_ValueRanges(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero pixels", Options{Height: u32(0)}},
		{"zero percent", Options{Width: u32(0), Percent: true}},
		{"hundred percent", Options{Height: u32(100), Percent: true}},
		{"over hundred percent", Options{Height: u32(150), Percent: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Request()
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "ratio 0.5", Describe(Ratio(0.5)))
	assert.Equal(t, "interactive", Describe(Unspecified{}))
	assert.Equal(t, "height 300px, width ?", Describe(Dimensions{Height: 300, PreserveAspect: true}))
	assert.Equal(t, "height ?, width 40%, aspect ratio ignored", Describe(Dimensions{Width: 40, Unit: Percent}))
}

func TestNeedsInput(t *testing.T) {
	assert.False(t, NeedsInput(Ratio(0.5)))
	assert.False(t, NeedsInput(Dimensions{Height: 10, Width: 20, Unit: Pixel}))
	assert.False(t, NeedsInput(Dimensions{Height: 10, Unit: Pixel, PreserveAspect: true}))
	assert.True(t, NeedsInput(Dimensions{Height: 10, Unit: Percent}))
	assert.True(t, NeedsInput(Dimensions{PreserveAspect: true}))
	assert.True(t, NeedsInput(Unspecified{}))
	assert.True(t, NeedsInput(nil))
}
