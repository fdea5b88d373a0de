package numerics

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmeticPromotion(t *testing.T) {
	assert.Equal(t, 6.0, MustPosZDouble(3.0).AddInt(3))
	assert.Equal(t, float32(4.5), MustPosFloat(1.5).MulInt(3))
	assert.Equal(t, int64(10), MustPosInt(7).AddInt64(3))
	assert.Equal(t, int64(-6), MustNonZeroLong(-2).MulInt(3))
	assert.Equal(t, 5, MustPosInt(7).SubInt16(2))
	assert.Equal(t, 2.5, MustPosLong(5).DivFloat64(2))
	assert.Equal(t, float32(2.5), MustPosInt(5).DivFloat32(2))
}

func TestIntegerDivisionTruncates(t *testing.T) {
	assert.Equal(t, 2, MustPosInt(7).DivInt(3))
	assert.Equal(t, int64(-3), MustNonZeroLong(-7).DivInt(2))
	assert.Equal(t, 1, MustPosInt(7).ModInt(3))
	assert.Equal(t, int64(-1), MustNonZeroLong(-7).ModInt(2))
}

func TestFloatModUsesMathMod(t *testing.T) {
	assert.Equal(t, math.Mod(7, 2.5), MustPosInt(7).ModFloat64(2.5))
	assert.Equal(t, float32(math.Mod(7.5, 2)), MustPosFloat(7.5).ModFloat32(2))
	assert.True(t, math.IsNaN(MustPosDouble(7).ModFloat64(0)))
}

func TestComparisons(t *testing.T) {
	five := MustPosInt(5)
	assert.True(t, five.LtInt(6))
	assert.False(t, five.LtInt(5))
	assert.True(t, five.LteInt(5))
	assert.True(t, five.GtFloat64(4.9))
	assert.False(t, five.GtFloat64(5.1))
	assert.True(t, five.GteInt64(5))
	assert.True(t, MustPosFloat(0.5).LtFloat32(0.6))
	assert.True(t, MustNumericChar('3').LtRune('4'))
}

func TestBitwise(t *testing.T) {
	v := MustNonZeroInt(0b1100)
	assert.Equal(t, 0b0100, v.AndInt(0b0110))
	assert.Equal(t, 0b1110, v.OrInt(0b0110))
	assert.Equal(t, 0b1010, v.XorInt(0b0110))
	assert.Equal(t, int64(0b1000), v.AndInt64(0b1000))
	assert.Equal(t, 0b110000, v.Lsh(2))
	assert.Equal(t, 0b11, v.Rsh(2))
}

func TestRshUnsignedShiftsZeroesIn(t *testing.T) {
	neg := MustNonZeroInt(-1)
	assert.Equal(t, -1, neg.Rsh(1))
	assert.Equal(t, math.MaxInt, neg.RshUnsigned(1))
	assert.Equal(t, MustNonZeroLong(-1).RshUnsigned(1), int64(math.MaxInt64))
	assert.Equal(t, 2, MustPosInt(8).RshUnsigned(2))
}

func TestCompareAndSorting(t *testing.T) {
	values := []PosZDouble{
		MustPosZDouble(2.2),
		MustPosZDouble(0.0),
		MustPosZDouble(1.1),
		MustPosZDouble(3.3),
	}
	slices.SortFunc(values, PosZDouble.Compare)
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		sorted = append(sorted, v.Float64())
	}
	assert.Equal(t, []float64{0.0, 1.1, 2.2, 3.3}, sorted)
	assert.True(t, slices.IsSortedFunc(values, PosZDouble.Compare))
}

func TestMinMax(t *testing.T) {
	small, big := MustPosInt(2), MustPosInt(9)
	assert.Equal(t, small, small.Min(big))
	assert.Equal(t, small, big.Min(small))
	assert.Equal(t, big, small.Max(big))
	assert.Equal(t, MustNumericChar('3'), MustNumericChar('7').Min(MustNumericChar('3')))
}

func TestConversionsTruncate(t *testing.T) {
	assert.Equal(t, int8(300-256), MustPosInt(300).ToInt8())
	assert.Equal(t, 1, MustPosDouble(1.9).ToInt())
	assert.Equal(t, int64(2), MustPosFloat(2.5).ToInt64())
	assert.Equal(t, 'A', MustPosInt(65).ToRune())
	assert.Equal(t, float64(float32(1)/3), MustPosFloat(1.0/3.0).ToFloat64())
}

func TestNumericCharArithmetic(t *testing.T) {
	seven := MustNumericChar('7')
	assert.Equal(t, int('7'-'0'), seven.SubRune('0'))
	assert.Equal(t, int('7')+1, seven.AddInt(1))
	assert.Equal(t, float64('7')/2, seven.DivFloat64(2))
}
