package numerics

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refined-go/refined/commonerrors"
)

// Every construction path must agree with the predicate: a value is either
// accepted by all of them or rejected by all of them.
func TestConstructionPathsAgree(t *testing.T) {
	fallback := MustPosInt(1)
	onInvalid := func(v int) error { return fmt.Errorf("rejected %v", v) }
	values := []int{math.MinInt, -1, 0, 1, 42, math.MaxInt}
	random, err := faker.RandomInt(1, math.MaxInt32, 2)
	require.NoError(t, err)
	values = append(values, random...)
	for _, v := range values {
		t.Run(fmt.Sprintf("%d", v), func(t *testing.T) {
			valid := IsValidPosInt(v)

			p, ok := PosIntFrom(v)
			assert.Equal(t, valid, ok)

			tried, err := TryPosInt(v)
			assert.Equal(t, valid, err == nil)

			orErr, err2 := PosIntOrError(v, onInvalid)
			assert.Equal(t, valid, err2 == nil)

			assert.Equal(t, valid, ValidatePosInt(v, onInvalid) == nil)

			defaulted := PosIntFromOrElse(v, fallback)
			if valid {
				assert.Equal(t, v, p.Int())
				assert.Equal(t, v, tried.Int())
				assert.Equal(t, v, orErr.Int())
				assert.Equal(t, v, defaulted.Int())
				assert.NotPanics(t, func() { MustPosInt(v) })
			} else {
				assert.Equal(t, fallback, defaulted)
				assert.Panics(t, func() { MustPosInt(v) })
			}
		})
	}
}

func TestTryRejectionWrapsErrInvalid(t *testing.T) {
	_, err := TryPosZDouble(-0.00001)
	require.Error(t, err)
	assert.ErrorIs(t, err, commonerrors.ErrInvalid)
	assert.Contains(t, err.Error(), "PosZDouble")
	assert.Contains(t, err.Error(), "v >= 0")
}

func TestMustPanicValueWrapsErrInvalid(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, commonerrors.ErrInvalid)
	}()
	MustNonZeroInt(0)
}

func TestOrErrorUsesCallerError(t *testing.T) {
	marker := commonerrors.Newf(commonerrors.ErrUnsupported, "out of range")
	_, err := PosLongOrError(-3, func(v int64) error { return marker })
	assert.ErrorIs(t, err, commonerrors.ErrUnsupported)
}

func TestZeroBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"PosZDouble accepts zero", IsValidPosZDouble(0.0)},
		{"PosDouble rejects zero", !IsValidPosDouble(0.0)},
		{"PosZInt accepts zero", IsValidPosZInt(0)},
		{"PosInt rejects zero", !IsValidPosInt(0)},
		{"NonZeroDouble rejects zero", !IsValidNonZeroDouble(0.0)},
		{"NonZeroDouble rejects negative zero", !IsValidNonZeroDouble(math.Copysign(0, -1))},
		{"NonZeroInt accepts negative", IsValidNonZeroInt(-7)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, test.valid)
		})
	}
}

func TestPosZDoubleFromBarelyNegative(t *testing.T) {
	_, ok := PosZDoubleFrom(-0.00001)
	assert.False(t, ok)
	p, ok := PosZDoubleFrom(0.0)
	require.True(t, ok)
	assert.Zero(t, p.Float64())
}

func TestFiniteRejectsNaNAndInfinities(t *testing.T) {
	assert.False(t, IsValidFiniteDouble(math.NaN()))
	assert.False(t, IsValidFiniteDouble(math.Inf(1)))
	assert.False(t, IsValidFiniteDouble(math.Inf(-1)))
	assert.True(t, IsValidFiniteDouble(-math.MaxFloat64))
	assert.False(t, IsValidFiniteFloat(float32(math.Inf(1))))
	assert.True(t, IsValidFiniteFloat(-math.MaxFloat32))
}

func TestNonZeroFloatAdmitsNaN(t *testing.T) {
	nan, ok := NonZeroDoubleFrom(math.NaN())
	require.True(t, ok)
	assert.True(t, nan.IsNaN())
	assert.True(t, IsValidNonZeroFloat(float32(math.NaN())))
}

func TestNumericCharBounds(t *testing.T) {
	for c := '0'; c <= '9'; c++ {
		assert.True(t, IsValidNumericChar(c))
	}
	for _, c := range []rune{'/', ':', 'a', ' ', -1, '٣'} {
		assert.False(t, IsValidNumericChar(c), "rune %q", c)
	}
}

func TestExtremes(t *testing.T) {
	assert.Equal(t, MustPosZFloat(math.MaxFloat32), PosZFloatMaxValue)
	assert.Equal(t, 1, PosIntMinValue.Int())
	assert.Equal(t, math.MaxInt, PosIntMaxValue.Int())
	assert.Equal(t, int64(math.MinInt64), NonZeroLongMinValue.Int64())
	assert.Equal(t, float32(math.SmallestNonzeroFloat32), PosFloatMinValue.Float32())
	assert.Equal(t, -math.MaxFloat64, NonZeroDoubleMinValue.Float64())
	assert.Equal(t, '0', NumericCharMinValue.Rune())
	assert.Equal(t, '9', NumericCharMaxValue.Rune())
	assert.True(t, math.IsInf(float64(PosZFloatPositiveInfinity.Float32()), 1))
	assert.True(t, math.IsInf(NonZeroDoubleNegativeInfinity.Float64(), -1))
}
