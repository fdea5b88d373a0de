package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindPrimitive(t *testing.T) {
	tests := []struct {
		kind      Kind
		primitive string
		accessor  string
	}{
		{KindInt, "int", "Int"},
		{KindLong, "int64", "Int64"},
		{KindFloat, "float32", "Float32"},
		{KindDouble, "float64", "Float64"},
		{KindChar, "rune", "Rune"},
		{KindUnknown, "", ""},
	}
	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			assert.Equal(t, test.primitive, test.kind.Primitive())
			assert.Equal(t, test.accessor, test.kind.Accessor())
		})
	}
}

func TestKindClassification(t *testing.T) {
	assert.True(t, KindFloat.IsFloat())
	assert.True(t, KindDouble.IsFloat())
	assert.False(t, KindInt.IsFloat())
	assert.True(t, KindInt.IsInteger())
	assert.True(t, KindLong.IsInteger())
	assert.True(t, KindChar.IsInteger())
	assert.False(t, KindDouble.IsInteger())
	assert.False(t, KindUnknown.IsInteger())
}

func TestKindPromotion(t *testing.T) {
	peerFor := func(suffix string) peer {
		for _, p := range peers {
			if p.Suffix == suffix {
				return p
			}
		}
		t.Fatalf("unknown peer %q", suffix)
		return peer{}
	}
	tests := []struct {
		kind   Kind
		peer   string
		result string
	}{
		{KindInt, "Int8", "int"},
		{KindInt, "Int64", "int64"},
		{KindInt, "Float32", "float32"},
		{KindChar, "Rune", "int"},
		{KindChar, "Float64", "float64"},
		{KindLong, "Int", "int64"},
		{KindLong, "Float32", "float32"},
		{KindFloat, "Int64", "float32"},
		{KindFloat, "Float64", "float64"},
		{KindDouble, "Int8", "float64"},
		{KindDouble, "Float32", "float64"},
	}
	for _, test := range tests {
		t.Run(test.kind.String()+"_"+test.peer, func(t *testing.T) {
			assert.Equal(t, test.result, test.kind.promoted(peerFor(test.peer)))
		})
	}
}
