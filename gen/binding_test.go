package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBinding() Binding {
	return Binding{
		TypeName:      "PosInt",
		Kind:          KindInt,
		PredicateExpr: "v > 0",
		PredicateDoc:  "v > 0",
		Doc:           "a positive int",
		MinExpr:       "1",
		MaxExpr:       "math.MaxInt",
	}
}

func TestBindingValidate(t *testing.T) {
	require.NoError(t, validBinding().Validate())
}

func TestBindingValidateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Binding)
	}{
		{"empty type name", func(b *Binding) { b.TypeName = "" }},
		{"unexported type name", func(b *Binding) { b.TypeName = "posInt" }},
		{"type name with punctuation", func(b *Binding) { b.TypeName = "Pos-Int" }},
		{"unknown kind", func(b *Binding) { b.Kind = Kind(42) }},
		{"missing predicate", func(b *Binding) { b.PredicateExpr = "" }},
		{"missing predicate doc", func(b *Binding) { b.PredicateDoc = "" }},
		{"missing doc", func(b *Binding) { b.Doc = "" }},
		{"missing min", func(b *Binding) { b.MinExpr = "" }},
		{"missing max", func(b *Binding) { b.MaxExpr = "" }},
		{"malformed widen target", func(b *Binding) { b.Widens = []string{"posZInt"} }},
		{"rounding on integer kind", func(b *Binding) { b.CeilType = "PosInt" }},
		{"infinity on integer kind", func(b *Binding) { b.PositiveInfinity = true }},
		{"nan on integer kind", func(b *Binding) { b.AdmitsNaN = true }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := validBinding()
			test.mutate(&b)
			assert.Error(t, b.Validate())
		})
	}
}

func TestBindingValidateAcceptsFloatSurface(t *testing.T) {
	b := validBinding()
	b.TypeName = "PosFloat"
	b.Kind = KindFloat
	b.MinExpr = "math.SmallestNonzeroFloat32"
	b.MaxExpr = "math.MaxFloat32"
	b.CeilType = "PosFloat"
	b.FloorType = "PosZFloat"
	b.RoundType = "PosZFloat"
	b.PositiveInfinity = true
	require.NoError(t, b.Validate())
	assert.True(t, b.hasRounding())
}

func TestBindingHasRoundingRequiresAllThree(t *testing.T) {
	b := validBinding()
	b.Kind = KindFloat
	b.CeilType = "PosFloat"
	assert.False(t, b.hasRounding())
	b.FloorType = "PosZFloat"
	b.RoundType = "PosZFloat"
	assert.True(t, b.hasRounding())
}
