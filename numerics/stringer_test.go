package numerics

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		value    fmt.Stringer
		expected string
	}{
		{MustPosInt(42), "PosInt(42)"},
		{MustPosZInt(0), "PosZInt(0)"},
		{MustNonZeroLong(-5), "NonZeroLong(-5)"},
		{MustPosZDouble(3.0), "PosZDouble(3)"},
		{MustPosZFloat(1.5), "PosZFloat(1.5)"},
		{MustFiniteDouble(-0.25), "FiniteDouble(-0.25)"},
		{MustNumericChar('7'), "NumericChar('7')"},
		{PosZDoublePositiveInfinity, "PosZDouble(+Inf)"},
		{MustNonZeroDouble(math.NaN()), "NonZeroDouble(NaN)"},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.value.String())
			assert.Equal(t, test.expected, fmt.Sprintf("%v", test.value))
		})
	}
}

func TestStringRoundTripsShortestForm(t *testing.T) {
	assert.Equal(t, "PosFloat(0.1)", MustPosFloat(0.1).String())
	assert.Equal(t, "PosDouble(0.1)", MustPosDouble(0.1).String())
	assert.Equal(t, "PosDouble(1e+100)", MustPosDouble(1e100).String())
}
