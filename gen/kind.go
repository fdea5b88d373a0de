package gen

// Kind identifies the primitive a refinement type wraps.
type Kind int

const (
	KindUnknown Kind = iota
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindChar
)

var kindNames = map[Kind]string{
	KindInt:    "Int",
	KindLong:   "Long",
	KindFloat:  "Float",
	KindDouble: "Double",
	KindChar:   "Char",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Primitive returns the Go type the kind wraps.
func (k Kind) Primitive() string {
	switch k {
	case KindInt:
		return "int"
	case KindLong:
		return "int64"
	case KindFloat:
		return "float32"
	case KindDouble:
		return "float64"
	case KindChar:
		return "rune"
	default:
		return ""
	}
}

// Accessor returns the name of the generated method exposing the underlying
// primitive, e.g. Int64 for KindLong.
func (k Kind) Accessor() string {
	switch k {
	case KindInt:
		return "Int"
	case KindLong:
		return "Int64"
	case KindFloat:
		return "Float32"
	case KindDouble:
		return "Float64"
	case KindChar:
		return "Rune"
	default:
		return ""
	}
}

// IsFloat reports whether the kind wraps a floating-point primitive.
func (k Kind) IsFloat() bool {
	return k == KindFloat || k == KindDouble
}

// IsInteger reports whether the kind wraps an integer primitive.
func (k Kind) IsInteger() bool {
	return k == KindInt || k == KindLong || k == KindChar
}

// Operand ranks drive the promotion rule of the generated operator surface:
// both operands are converted to the higher-ranked type before the operation,
// and integer operands never promote to anything narrower than int.
const (
	rankInt = iota
	rankInt64
	rankFloat32
	rankFloat64
)

var rankTypes = [...]string{"int", "int64", "float32", "float64"}

func (k Kind) rank() int {
	switch k {
	case KindLong:
		return rankInt64
	case KindFloat:
		return rankFloat32
	case KindDouble:
		return rankFloat64
	default:
		return rankInt
	}
}

// peer describes one primitive the operator surface is generated against.
type peer struct {
	Suffix string
	Type   string
	rank   int
}

// The seven peer primitives of the operator cross-product. The first five are
// the integer peers used by the bitwise surface.
var peers = []peer{
	{Suffix: "Int8", Type: "int8", rank: rankInt},
	{Suffix: "Int16", Type: "int16", rank: rankInt},
	{Suffix: "Rune", Type: "rune", rank: rankInt},
	{Suffix: "Int", Type: "int", rank: rankInt},
	{Suffix: "Int64", Type: "int64", rank: rankInt64},
	{Suffix: "Float32", Type: "float32", rank: rankFloat32},
	{Suffix: "Float64", Type: "float64", rank: rankFloat64},
}

// promoted returns the result type of an operation between kind k and peer p.
func (k Kind) promoted(p peer) string {
	r := k.rank()
	if p.rank > r {
		r = p.rank
	}
	return rankTypes[r]
}
