package numerics

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestToIsInclusive(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(MustPosInt(1).To(5, nil)))
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(MustPosInt(1).Until(5, nil)))
}

func TestRangeExplicitStep(t *testing.T) {
	step := 2
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(MustPosInt(1).To(6, &step)))
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(MustPosInt(1).Until(6, &step)))

	fstep := 0.5
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, slices.Collect(MustPosZDouble(0).To(2, &fstep)))
}

func TestRangeZeroStepIsEmpty(t *testing.T) {
	step := 0
	assert.Empty(t, slices.Collect(MustPosInt(1).To(100, &step)))
}

func TestRangeDescends(t *testing.T) {
	step := -1
	assert.Equal(t, []int{5, 4, 3, 2, 1}, slices.Collect(MustPosInt(5).To(1, &step)))
	assert.Equal(t, []int{5, 4, 3, 2}, slices.Collect(MustPosInt(5).Until(1, &step)))
}

func TestRangeEmptyWhenStartBeyondEnd(t *testing.T) {
	assert.Empty(t, slices.Collect(MustPosInt(5).To(1, nil)))
	step := -1
	assert.Empty(t, slices.Collect(MustPosInt(1).To(5, &step)))
}

func TestRangeIsRestartable(t *testing.T) {
	seq := MustNumericChar('0').To('3', nil)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, []rune("0123"), first)
	assert.Equal(t, first, second)
}

func TestRangeStopsEarly(t *testing.T) {
	var collected []int64
	for v := range MustPosLong(1).To(1000, nil) {
		collected = append(collected, v)
		if len(collected) == 3 {
			break
		}
	}
	assert.Equal(t, []int64{1, 2, 3}, collected)
}

// A float step too small to change the current value must end the sequence
// rather than repeat it forever.
func TestRangeEndsWhenStepVanishes(t *testing.T) {
	step := float32(1)
	collected := slices.Collect(MustPosFloat(1e8).To(2e8, &step))
	assert.Equal(t, []float32{1e8}, collected)
}
