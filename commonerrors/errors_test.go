package commonerrors

import (
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewf(t *testing.T) {
	reason := faker.Sentence()
	err := Newf(ErrInvalid, "value %v is rejected because %v", 42, reason)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), reason)
	assert.Contains(t, err.Error(), "invalid")
}

func TestNew(t *testing.T) {
	err := New(ErrConflict, faker.Word())
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestAnyNone(t *testing.T) {
	err := Newf(ErrUndefined, "missing %v", faker.Word())
	assert.True(t, Any(err, ErrInvalid, ErrUndefined))
	assert.False(t, Any(err, ErrInvalid, ErrConflict))
	assert.True(t, None(err, ErrInvalid, ErrConflict))
	assert.False(t, None(err, ErrUndefined))
	assert.False(t, Any(nil, ErrInvalid))
}
