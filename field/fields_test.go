package field

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	value := time.Now().Second()
	assert.Equal(t, value, Optional(ToOptional(value), 76))
	assert.Equal(t, 76, Optional[int](nil, 76))

	step := float64(0.5)
	assert.Equal(t, step, Optional(ToOptional(step), 1.0))
	assert.Equal(t, 1.0, Optional[float64](nil, 1.0))
}

func TestToOptionalCopies(t *testing.T) {
	value := int64(42)
	ptr := ToOptional(value)
	value = 43
	assert.Equal(t, int64(42), *ptr)
}
