package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWhole(t *testing.T) {
	tests := []struct {
		value float64
		whole bool
	}{
		{3.0, true},
		{0.0, true},
		{1e15, true},
		{3.5, false},
		{0.1, false},
		{math.Inf(1), false},
	}
	for _, test := range tests {
		assert.Equal(t, test.whole, MustPosZDouble(test.value).IsWhole(), "value %v", test.value)
	}
	assert.False(t, MustNonZeroDouble(math.NaN()).IsWhole())
	assert.True(t, MustPosZFloat(2.0).IsWhole())
	assert.False(t, MustPosZFloat(2.5).IsWhole())
}

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, MustPosZDouble(180).ToRadians(), 1e-12)
	assert.InDelta(t, 180, MustPosZDouble(math.Pi).ToDegrees(), 1e-12)
	assert.InDelta(t, math.Pi/2, float64(MustPosFloat(90).ToRadians()), 1e-6)
	assert.Zero(t, MustPosZFloat(0).ToRadians())
}

func TestRounding(t *testing.T) {
	assert.Equal(t, MustPosFloat(3), MustPosFloat(2.5).Ceil())
	assert.Equal(t, MustPosZFloat(2), MustPosFloat(2.5).Floor())
	assert.Equal(t, MustPosZFloat(3), MustPosFloat(2.5).Round())
	assert.Equal(t, MustPosZFloat(2), MustPosZFloat(2.4).Round())

	// Flooring a positive value below one leaves the strictly-positive
	// domain, which is why Floor and Round widen to the zero-inclusive type.
	assert.Equal(t, MustPosZFloat(0), MustPosFloat(0.5).Floor())
	assert.Equal(t, MustPosDouble(1), MustPosDouble(0.5).Ceil())
	assert.Equal(t, MustPosZDouble(0), MustPosDouble(0.4).Round())

	assert.Equal(t, MustFiniteDouble(-2), MustFiniteDouble(-1.5).Floor())
	assert.Equal(t, MustFiniteDouble(-1), MustFiniteDouble(-1.5).Ceil())
	assert.Equal(t, MustFiniteDouble(-2), MustFiniteDouble(-1.5).Round())
}

func TestEqualsTreatsNaNAsEqual(t *testing.T) {
	nan := MustNonZeroDouble(math.NaN())
	assert.True(t, nan.Equals(nan))
	assert.True(t, nan.Equals(MustNonZeroDouble(math.NaN())))
	assert.False(t, nan.Equals(MustNonZeroDouble(1)))
	assert.True(t, MustPosZFloat(1.5).Equals(MustPosZFloat(1.5)))
	assert.False(t, MustPosZFloat(1.5).Equals(MustPosZFloat(1.6)))
}

func TestCompareOrdersNaNFirst(t *testing.T) {
	nan := MustNonZeroDouble(math.NaN())
	one := MustNonZeroDouble(1)
	assert.Equal(t, -1, nan.Compare(one))
	assert.Equal(t, 1, one.Compare(nan))
	assert.Equal(t, 0, nan.Compare(nan))
	assert.Equal(t, -1, MustNonZeroDouble(-1).Compare(one))
}

func TestIsNaN(t *testing.T) {
	assert.True(t, MustNonZeroFloat(float32(math.NaN())).IsNaN())
	assert.False(t, MustNonZeroFloat(1).IsNaN())
	assert.False(t, NonZeroDoublePositiveInfinity.IsNaN())
}

func TestInfinityArithmetic(t *testing.T) {
	assert.True(t, math.IsInf(PosZDoublePositiveInfinity.AddFloat64(1), 1))
	assert.True(t, math.IsNaN(PosZDoublePositiveInfinity.SubFloat64(math.Inf(1))))
}
