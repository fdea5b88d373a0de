package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWideningPreservesValue(t *testing.T) {
	five := MustPosInt(5)
	assert.Equal(t, 5, five.ToPosZInt().Int())
	assert.Equal(t, int64(5), five.ToPosLong().Int64())
	assert.Equal(t, int64(5), five.ToPosZLong().Int64())
	assert.Equal(t, 5, five.ToNonZeroInt().Int())
	assert.Equal(t, float32(5), five.ToPosFloat().Float32())
	assert.Equal(t, 5.0, five.ToPosZDouble().Float64())
	assert.Equal(t, 5.0, five.ToNonZeroDouble().Float64())
}

// A NumericChar widens by its code point, not by its digit value.
func TestNumericCharWidensByCodePoint(t *testing.T) {
	seven := MustNumericChar('7')
	assert.Equal(t, int('7'), seven.ToPosInt().Int())
	assert.Equal(t, int64('7'), seven.ToPosZLong().Int64())
	assert.Equal(t, float64('7'), seven.ToPosZDouble().Float64())
}

func TestWideningStaysValid(t *testing.T) {
	for c := '0'; c <= '9'; c++ {
		w := MustNumericChar(c).ToPosInt()
		assert.True(t, IsValidPosInt(w.Int()))
	}
	assert.True(t, IsValidPosZDouble(PosZIntMaxValue.ToPosZDouble().Float64()))
	assert.True(t, IsValidNonZeroLong(NonZeroIntMinValue.ToNonZeroLong().Int64()))
	assert.True(t, IsValidPosDouble(PosFloatMaxValue.ToPosDouble().Float64()))
}

func TestFloatWidening(t *testing.T) {
	half := MustPosFloat(0.5)
	assert.Equal(t, half.Float32(), half.ToPosZFloat().Float32())
	assert.Equal(t, float64(float32(0.5)), half.ToPosDouble().Float64())
	assert.Equal(t, half.Float32(), half.ToNonZeroFloat().Float32())

	finite := MustFiniteFloat(-1.25)
	assert.Equal(t, -1.25, finite.ToFiniteDouble().Float64())
}

func TestIntegerWidthPromotion(t *testing.T) {
	big, ok := PosIntFrom(math.MaxInt32)
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt32), big.ToPosLong().Int64())
	assert.Equal(t, int64(math.MinInt), NonZeroIntMinValue.ToNonZeroLong().Int64())
}
