package gen

// Bindings returns the table of refinement types the module ships. The order
// is the order files are generated in; keep it alphabetically stable within
// each family so the output is deterministic.
func Bindings() []Binding {
	return []Binding{
		{
			TypeName:      "PosInt",
			Kind:          KindInt,
			PredicateExpr: "v > 0",
			PredicateDoc:  "v > 0",
			Doc:           "an int strictly greater than zero",
			MinExpr:       "1",
			MaxExpr:       "math.MaxInt",
			Widens: []string{
				"PosZInt", "PosLong", "PosZLong", "NonZeroInt", "NonZeroLong",
				"PosFloat", "PosZFloat", "PosDouble", "PosZDouble", "NonZeroFloat", "NonZeroDouble",
			},
		},
		{
			TypeName:       "PosZInt",
			Kind:           KindInt,
			PredicateExpr:  "v >= 0",
			PredicateDoc:   "v >= 0",
			Doc:            "an int greater than or equal to zero",
			MinExpr:        "0",
			MaxExpr:        "math.MaxInt",
			Widens:         []string{"PosZLong", "PosZFloat", "PosZDouble"},
			ZeroValueValid: true,
		},
		{
			TypeName:      "PosLong",
			Kind:          KindLong,
			PredicateExpr: "v > 0",
			PredicateDoc:  "v > 0",
			Doc:           "an int64 strictly greater than zero",
			MinExpr:       "1",
			MaxExpr:       "math.MaxInt64",
			Widens: []string{
				"PosZLong", "NonZeroLong",
				"PosFloat", "PosZFloat", "PosDouble", "PosZDouble", "NonZeroFloat", "NonZeroDouble",
			},
		},
		{
			TypeName:       "PosZLong",
			Kind:           KindLong,
			PredicateExpr:  "v >= 0",
			PredicateDoc:   "v >= 0",
			Doc:            "an int64 greater than or equal to zero",
			MinExpr:        "0",
			MaxExpr:        "math.MaxInt64",
			Widens:         []string{"PosZFloat", "PosZDouble"},
			ZeroValueValid: true,
		},
		{
			TypeName:         "PosFloat",
			Kind:             KindFloat,
			PredicateExpr:    "v > 0",
			PredicateDoc:     "v > 0",
			Doc:              "a float32 strictly greater than zero, positive infinity included",
			MinExpr:          "math.SmallestNonzeroFloat32",
			MaxExpr:          "math.MaxFloat32",
			Widens:           []string{"PosZFloat", "PosDouble", "PosZDouble", "NonZeroFloat", "NonZeroDouble"},
			CeilType:         "PosFloat",
			FloorType:        "PosZFloat",
			RoundType:        "PosZFloat",
			PositiveInfinity: true,
		},
		{
			TypeName:         "PosZFloat",
			Kind:             KindFloat,
			PredicateExpr:    "v >= 0",
			PredicateDoc:     "v >= 0",
			Doc:              "a float32 greater than or equal to zero, positive infinity included",
			MinExpr:          "0",
			MaxExpr:          "math.MaxFloat32",
			Widens:           []string{"PosZDouble"},
			CeilType:         "PosZFloat",
			FloorType:        "PosZFloat",
			RoundType:        "PosZFloat",
			ZeroValueValid:   true,
			PositiveInfinity: true,
		},
		{
			TypeName:         "PosDouble",
			Kind:             KindDouble,
			PredicateExpr:    "v > 0",
			PredicateDoc:     "v > 0",
			Doc:              "a float64 strictly greater than zero, positive infinity included",
			MinExpr:          "math.SmallestNonzeroFloat64",
			MaxExpr:          "math.MaxFloat64",
			Widens:           []string{"PosZDouble", "NonZeroDouble"},
			CeilType:         "PosDouble",
			FloorType:        "PosZDouble",
			RoundType:        "PosZDouble",
			PositiveInfinity: true,
		},
		{
			TypeName:         "PosZDouble",
			Kind:             KindDouble,
			PredicateExpr:    "v >= 0",
			PredicateDoc:     "v >= 0",
			Doc:              "a float64 greater than or equal to zero, positive infinity included",
			MinExpr:          "0",
			MaxExpr:          "math.MaxFloat64",
			CeilType:         "PosZDouble",
			FloorType:        "PosZDouble",
			RoundType:        "PosZDouble",
			ZeroValueValid:   true,
			PositiveInfinity: true,
		},
		{
			TypeName:      "NonZeroInt",
			Kind:          KindInt,
			PredicateExpr: "v != 0",
			PredicateDoc:  "v != 0",
			Doc:           "an int that is not zero",
			MinExpr:       "math.MinInt",
			MaxExpr:       "math.MaxInt",
			Widens:        []string{"NonZeroLong", "NonZeroFloat", "NonZeroDouble"},
		},
		{
			TypeName:      "NonZeroLong",
			Kind:          KindLong,
			PredicateExpr: "v != 0",
			PredicateDoc:  "v != 0",
			Doc:           "an int64 that is not zero",
			MinExpr:       "math.MinInt64",
			MaxExpr:       "math.MaxInt64",
			Widens:        []string{"NonZeroFloat", "NonZeroDouble"},
		},
		{
			TypeName:         "NonZeroFloat",
			Kind:             KindFloat,
			PredicateExpr:    "v != 0",
			PredicateDoc:     "v != 0",
			Doc:              "a float32 that is not zero; NaN and both infinities are non-zero and therefore valid",
			MinExpr:          "-math.MaxFloat32",
			MaxExpr:          "math.MaxFloat32",
			Widens:           []string{"NonZeroDouble"},
			PositiveInfinity: true,
			NegativeInfinity: true,
			AdmitsNaN:        true,
		},
		{
			TypeName:         "NonZeroDouble",
			Kind:             KindDouble,
			PredicateExpr:    "v != 0",
			PredicateDoc:     "v != 0",
			Doc:              "a float64 that is not zero; NaN and both infinities are non-zero and therefore valid",
			MinExpr:          "-math.MaxFloat64",
			MaxExpr:          "math.MaxFloat64",
			PositiveInfinity: true,
			NegativeInfinity: true,
			AdmitsNaN:        true,
		},
		{
			TypeName:       "FiniteFloat",
			Kind:           KindFloat,
			PredicateExpr:  "!math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)",
			PredicateDoc:   "isFinite(v)",
			Doc:            "a float32 that is neither NaN nor infinite",
			MinExpr:        "-math.MaxFloat32",
			MaxExpr:        "math.MaxFloat32",
			Widens:         []string{"FiniteDouble"},
			CeilType:       "FiniteFloat",
			FloorType:      "FiniteFloat",
			RoundType:      "FiniteFloat",
			ZeroValueValid: true,
		},
		{
			TypeName:       "FiniteDouble",
			Kind:           KindDouble,
			PredicateExpr:  "!math.IsNaN(v) && !math.IsInf(v, 0)",
			PredicateDoc:   "isFinite(v)",
			Doc:            "a float64 that is neither NaN nor infinite",
			MinExpr:        "-math.MaxFloat64",
			MaxExpr:        "math.MaxFloat64",
			CeilType:       "FiniteDouble",
			FloorType:      "FiniteDouble",
			RoundType:      "FiniteDouble",
			ZeroValueValid: true,
		},
		{
			TypeName:      "NumericChar",
			Kind:          KindChar,
			PredicateExpr: "v >= '0' && v <= '9'",
			PredicateDoc:  "'0' <= v <= '9'",
			Doc:           "a rune holding a decimal digit, '0' through '9'",
			MinExpr:       "'0'",
			MaxExpr:       "'9'",
			Widens: []string{
				"PosInt", "PosZInt", "PosLong", "PosZLong",
				"PosFloat", "PosZFloat", "PosDouble", "PosZDouble",
			},
		},
	}
}
