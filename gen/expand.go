package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/refined-go/refined/commonerrors"
)

// Expand produces the complete, gofmt-formatted definition of one refinement
// type. index must contain every binding of the table so widening targets can
// be resolved; a binding that fails validation or widens to an unknown type
// is rejected with an error naming the binding.
func Expand(b Binding, index map[string]Binding) (File, error) {
	if err := b.Validate(); err != nil {
		return File{}, commonerrors.Newf(commonerrors.ErrInvalid, "binding %q: %v", b.TypeName, err)
	}
	for _, w := range b.Widens {
		if _, ok := index[w]; !ok {
			return File{}, commonerrors.Newf(commonerrors.ErrUndefined, "binding %q widens to unknown type %q", b.TypeName, w)
		}
	}
	e := &expander{b: b, index: index}
	e.file()
	src, err := format.Source(e.buf.Bytes())
	if err != nil {
		return File{}, commonerrors.Newf(commonerrors.ErrInvalid, "binding %q: generated source is malformed: %v", b.TypeName, err)
	}
	return File{RelativePath: strings.ToLower(b.TypeName) + "_gen.go", Data: src}, nil
}

// Index maps a binding table by type name. Duplicate names are a build-time
// failure.
func Index(bindings []Binding) (map[string]Binding, error) {
	index := make(map[string]Binding, len(bindings))
	seen := mapset.NewSet[string]()
	for _, b := range bindings {
		if !seen.Add(b.TypeName) {
			return nil, commonerrors.Newf(commonerrors.ErrConflict, "binding %q is defined twice", b.TypeName)
		}
		index[b.TypeName] = b
	}
	return index, nil
}

// ExpandAll expands the whole binding table in table order.
func ExpandAll(bindings []Binding) ([]File, error) {
	index, err := Index(bindings)
	if err != nil {
		return nil, err
	}
	files := make([]File, 0, len(bindings))
	for _, b := range bindings {
		f, err := Expand(b, index)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

type expander struct {
	b     Binding
	index map[string]Binding
	buf   bytes.Buffer
}

func (e *expander) pf(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

// doc emits a comment block; text may span lines, empty lines render as "//".
func (e *expander) doc(text string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			e.pf("//\n")
		} else {
			e.pf("// %s\n", line)
		}
	}
}

func (e *expander) section(text string) {
	e.pf("//\n")
	e.doc(text)
	e.pf("//\n\n")
}

// method emits a documented single-expression method on the generated type.
func (e *expander) method(doc, name, params, result, body string) {
	e.doc(doc)
	e.pf("func (r %s) %s(%s) %s {\n\treturn %s\n}\n\n", e.b.TypeName, name, params, result, body)
}

func lowerFirst(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}

func (e *expander) file() {
	n := e.b.TypeName
	prim := e.b.Kind.Primitive()
	pd := e.b.PredicateDoc
	dom := lowerFirst(n) + "Domain"

	e.pf("// Code generated by refinedgen; DO NOT EDIT.\n\n")
	e.pf("package numerics\n\n")
	e.pf("import (\n")
	e.pf("\t\"cmp\"\n")
	e.pf("\t\"iter\"\n")
	e.pf("\t\"math\"\n")
	if e.b.Kind != KindChar {
		e.pf("\t\"strconv\"\n")
	}
	e.pf("\n\t\"github.com/refined-go/refined/field\"\n)\n\n")

	// Type declaration.
	typeDoc := fmt.Sprintf("%s is %s, guaranteed by construction to satisfy %s.\n\n", n, e.b.Doc, pd)
	if e.b.ZeroValueValid {
		typeDoc += fmt.Sprintf("The zero value of %s wraps 0 and satisfies the predicate.", n)
	} else {
		typeDoc += fmt.Sprintf("The zero value of %s does not satisfy the predicate and must not be\nused; obtain instances through the construction functions.", n)
	}
	e.doc(typeDoc)
	e.pf("type %s struct {\n\tv %s\n}\n\n", n, prim)

	// Extremal values and named non-finite values.
	finite := ""
	if e.b.Kind.IsFloat() {
		finite = "finite "
	}
	e.doc(fmt.Sprintf("%sMinValue is the smallest %s%s satisfying %s.", n, finite, prim, pd))
	e.pf("var %sMinValue = %s{%s}\n\n", n, n, e.b.MinExpr)
	e.doc(fmt.Sprintf("%sMaxValue is the largest %s%s satisfying %s.", n, finite, prim, pd))
	e.pf("var %sMaxValue = %s{%s}\n\n", n, n, e.b.MaxExpr)
	if e.b.PositiveInfinity {
		e.doc(fmt.Sprintf("%sPositiveInfinity wraps the %s positive infinity, which satisfies %s.", n, prim, pd))
		e.pf("var %sPositiveInfinity = %s{%s(math.Inf(1))}\n\n", n, n, prim)
	}
	if e.b.NegativeInfinity {
		e.doc(fmt.Sprintf("%sNegativeInfinity wraps the %s negative infinity, which satisfies %s.", n, prim, pd))
		e.pf("var %sNegativeInfinity = %s{%s(math.Inf(-1))}\n\n", n, n, prim)
	}

	e.pf("var %s = newDomain[%s](%q, %q, func(v %s) bool { return %s })\n\n", dom, prim, n, pd, prim, e.b.PredicateExpr)

	e.constructors(n, prim, pd, dom)

	e.method(fmt.Sprintf("%s returns the underlying %s.", e.b.Kind.Accessor(), prim), e.b.Kind.Accessor(), "", prim, "r.v")
	e.stringer(n)
	e.ordering(n)
	e.conversions(prim)
	e.arithmetic()
	e.comparisons()
	if e.b.Kind.IsInteger() {
		e.bitwise()
	}
	if e.b.Kind.IsFloat() {
		e.floatHelpers(prim)
	}
	e.ranges(n, prim)
	e.widenings(n, prim)
}

func (e *expander) constructors(n, prim, pd, dom string) {
	e.doc(fmt.Sprintf("Must%s returns a %s wrapping v and panics when v does not satisfy\n%s. It is intended for constant literals and for callers that have\nalready established validity; the panic value wraps commonerrors.ErrInvalid.\nUse %sFrom for values that may be invalid.", n, n, pd, n))
	e.pf("func Must%s(v %s) %s {\n\t%s.mustBeValid(v)\n\treturn %s{v}\n}\n\n", n, prim, n, dom, n)

	e.doc(fmt.Sprintf("%sFrom returns a %s wrapping v; ok reports whether v satisfies\n%s.", n, n, pd))
	e.pf("func %sFrom(v %s) (p %s, ok bool) {\n\tif !%s.valid(v) {\n\t\treturn %s{}, false\n\t}\n\treturn %s{v}, true\n}\n\n", n, prim, n, dom, n, n)

	e.doc(fmt.Sprintf("%sFromOrElse returns a %s wrapping v, or defaultValue when v does\nnot satisfy %s.", n, n, pd))
	e.pf("func %sFromOrElse(v %s, defaultValue %s) %s {\n\tif !%s.valid(v) {\n\t\treturn defaultValue\n\t}\n\treturn %s{v}\n}\n\n", n, prim, n, n, dom, n)

	e.doc(fmt.Sprintf("%sOrError returns a %s wrapping v, or the error built by applying\nonInvalid to v when v does not satisfy %s. onInvalid must not be\nnil.", n, n, pd))
	e.pf("func %sOrError(v %s, onInvalid func(%s) error) (%s, error) {\n\tif !%s.valid(v) {\n\t\treturn %s{}, onInvalid(v)\n\t}\n\treturn %s{v}, nil\n}\n\n", n, prim, prim, n, dom, n, n)

	e.doc(fmt.Sprintf("Validate%s checks v against %s without constructing an instance,\nreturning the error built by applying onInvalid to v when the check fails.\nonInvalid must not be nil.", n, pd))
	e.pf("func Validate%s(v %s, onInvalid func(%s) error) error {\n\tif !%s.valid(v) {\n\t\treturn onInvalid(v)\n\t}\n\treturn nil\n}\n\n", n, prim, prim, dom)

	e.doc(fmt.Sprintf("Try%s returns a %s wrapping v, or an error wrapping\ncommonerrors.ErrInvalid when v does not satisfy %s.", n, n, pd))
	e.pf("func Try%s(v %s) (%s, error) {\n\tif !%s.valid(v) {\n\t\treturn %s{}, %s.errorFor(v)\n\t}\n\treturn %s{v}, nil\n}\n\n", n, prim, n, dom, n, dom, n)

	e.doc(fmt.Sprintf("IsValid%s reports whether v satisfies %s.", n, pd))
	e.pf("func IsValid%s(v %s) bool {\n\treturn %s.valid(v)\n}\n\n", n, prim, dom)
}

func (e *expander) stringer(n string) {
	var body string
	doc := fmt.Sprintf("String implements fmt.Stringer, rendering r as %s(<value>).", n)
	switch e.b.Kind {
	case KindInt:
		body = fmt.Sprintf("%q + strconv.Itoa(r.v) + %q", n+"(", ")")
	case KindLong:
		body = fmt.Sprintf("%q + strconv.FormatInt(r.v, 10) + %q", n+"(", ")")
	case KindFloat:
		doc += " Floats use the\nshortest decimal form that round-trips."
		body = fmt.Sprintf("%q + strconv.FormatFloat(float64(r.v), 'g', -1, 32) + %q", n+"(", ")")
	case KindDouble:
		doc += " Floats use the\nshortest decimal form that round-trips."
		body = fmt.Sprintf("%q + strconv.FormatFloat(r.v, 'g', -1, 64) + %q", n+"(", ")")
	case KindChar:
		doc = fmt.Sprintf("String implements fmt.Stringer, rendering r as %s('<digit>').", n)
		body = fmt.Sprintf("%q + string(r.v) + %q", n+"('", "')")
	}
	e.method(doc, "String", "", "string", body)
}

func (e *expander) ordering(n string) {
	doc := "Compare returns -1, 0 or +1 comparing the underlying values with\ncmp.Compare."
	if e.b.Kind.IsFloat() {
		doc += "\nNaN is ordered before all other values, Go's native total-order rule."
	}
	e.method(doc, "Compare", "o "+n, "int", "cmp.Compare(r.v, o.v)")

	e.doc("Min returns the smaller of r and o; ties favor r.")
	e.pf("func (r %s) Min(o %s) %s {\n\tif o.v < r.v {\n\t\treturn o\n\t}\n\treturn r\n}\n\n", n, n, n)
	e.doc("Max returns the larger of r and o; ties favor r.")
	e.pf("func (r %s) Max(o %s) %s {\n\tif o.v > r.v {\n\t\treturn o\n\t}\n\treturn r\n}\n\n", n, n, n)

	if e.b.Kind.IsFloat() {
		e.method("Equals reports whether r and o wrap equal values, treating two NaN\nvalues as equal. This is the test-equality rule; Compare does not share it.", "Equals", "o "+n, "bool", "equalOrBothNaN(r.v, o.v)")
	}
	if e.b.AdmitsNaN {
		e.method(fmt.Sprintf("IsNaN reports whether the underlying %s is an IEEE 754 NaN.", e.b.Kind.Primitive()), "IsNaN", "", "bool", "math.IsNaN(float64(r.v))")
	}
}

func (e *expander) conversions(prim string) {
	e.section("Primitive conversions. Each uses Go's native conversion semantics,\nincluding truncation and precision loss where the target is narrower.")
	targets := []string{"int8", "int16", "rune", "int", "int64", "float32", "float64"}
	names := []string{"ToInt8", "ToInt16", "ToRune", "ToInt", "ToInt64", "ToFloat32", "ToFloat64"}
	for i, target := range targets {
		e.method(fmt.Sprintf("%s converts the underlying %s to %s.", names[i], prim, target), names[i], "", target, fmt.Sprintf("%s(r.v)", target))
	}
}

type operator struct {
	name string
	op   string
}

func (e *expander) arithmetic() {
	e.section("Arithmetic operators. Each converts both operands to the result type and\napplies the operation there; results are raw primitives, never refinement\nvalues.")
	ops := []operator{{"Add", "+"}, {"Sub", "-"}, {"Mul", "*"}, {"Div", "/"}, {"Mod", "%"}}
	for _, op := range ops {
		for _, p := range peers {
			res := e.b.Kind.promoted(p)
			name := op.name + p.Suffix
			if op.name == "Mod" && strings.HasPrefix(res, "float") {
				e.method(fmt.Sprintf("%s returns math.Mod(r, n) with both operands converted to %s.", name, res),
					name, "n "+p.Type, res, fmt.Sprintf("%s(math.Mod(float64(r.v), float64(n)))", res))
				continue
			}
			e.method(fmt.Sprintf("%s returns r %s n with both operands converted to %s.", name, op.op, res),
				name, "n "+p.Type, res, fmt.Sprintf("%s(r.v) %s %s(n)", res, op.op, res))
		}
	}
}

func (e *expander) comparisons() {
	e.section("Comparison operators. Operands are converted like the arithmetic surface.")
	ops := []operator{{"Lt", "<"}, {"Lte", "<="}, {"Gt", ">"}, {"Gte", ">="}}
	for _, op := range ops {
		for _, p := range peers {
			res := e.b.Kind.promoted(p)
			name := op.name + p.Suffix
			e.method(fmt.Sprintf("%s reports whether r %s n with both operands converted to %s.", name, op.op, res),
				name, "n "+p.Type, "bool", fmt.Sprintf("%s(r.v) %s %s(n)", res, op.op, res))
		}
	}
}

func (e *expander) bitwise() {
	e.section("Bitwise operators, generated for integer-backed types against the integer\npeers only.")
	ops := []operator{{"And", "&"}, {"Or", "|"}, {"Xor", "^"}}
	for _, op := range ops {
		for _, p := range peers[:5] {
			res := e.b.Kind.promoted(p)
			name := op.name + p.Suffix
			e.method(fmt.Sprintf("%s returns r %s n with both operands converted to %s.", name, op.op, res),
				name, "n "+p.Type, res, fmt.Sprintf("%s(r.v) %s %s(n)", res, op.op, res))
		}
	}
	st := rankTypes[e.b.Kind.rank()]
	ut := "uint"
	if st == "int64" {
		ut = "uint64"
	}
	e.method(fmt.Sprintf("Lsh returns r << k with r converted to %s.", st), "Lsh", "k uint", st, fmt.Sprintf("%s(r.v) << k", st))
	e.method(fmt.Sprintf("Rsh returns the arithmetic shift r >> k with r converted to %s.", st), "Rsh", "k uint", st, fmt.Sprintf("%s(r.v) >> k", st))
	e.method(fmt.Sprintf("RshUnsigned returns the logical shift of r by k with r converted to %s,\nshifting zeroes into the sign bit.", st), "RshUnsigned", "k uint", st, fmt.Sprintf("%s(%s(%s(r.v)) >> k)", st, ut, st))
}

func (e *expander) floatHelpers(prim string) {
	e.section("Floating-point helpers.")
	e.doc(fmt.Sprintf("IsWhole reports whether the underlying %s is finite and has no\nfractional part.", prim))
	e.pf("func (r %s) IsWhole() bool {\n\tf := float64(r.v)\n\treturn !math.IsNaN(f) && !math.IsInf(f, 0) && math.Trunc(f) == f\n}\n\n", e.b.TypeName)
	e.method(fmt.Sprintf("ToRadians converts the underlying %s from degrees to radians.", prim), "ToRadians", "", prim, fmt.Sprintf("%s(float64(r.v) * (math.Pi / 180))", prim))
	e.method(fmt.Sprintf("ToDegrees converts the underlying %s from radians to degrees.", prim), "ToDegrees", "", prim, fmt.Sprintf("%s(float64(r.v) * (180 / math.Pi))", prim))
	if !e.b.hasRounding() {
		return
	}
	e.method(fmt.Sprintf("Ceil returns the least whole value greater than or equal to r, as a\n%s.", e.b.CeilType), "Ceil", "", e.b.CeilType, fmt.Sprintf("%s{%s(math.Ceil(float64(r.v)))}", e.b.CeilType, prim))
	e.method(fmt.Sprintf("Floor returns the greatest whole value less than or equal to r, as a\n%s.", e.b.FloorType), "Floor", "", e.b.FloorType, fmt.Sprintf("%s{%s(math.Floor(float64(r.v)))}", e.b.FloorType, prim))
	e.method(fmt.Sprintf("Round returns r rounded to the nearest whole value, halves away from\nzero, as a %s.", e.b.RoundType), "Round", "", e.b.RoundType, fmt.Sprintf("%s{%s(math.Round(float64(r.v)))}", e.b.RoundType, prim))
}

func (e *expander) ranges(n, prim string) {
	e.section("Range production. Sequences are finite, lazy and restartable.")
	e.method(fmt.Sprintf("To returns an ascending or descending sequence of %s from the\nunderlying value up to and including end. A nil step defaults to 1, a zero\nstep yields an empty sequence and a negative step descends.", prim),
		"To", fmt.Sprintf("end %s, step *%s", prim, prim), fmt.Sprintf("iter.Seq[%s]", prim), fmt.Sprintf("rangeSequence(%s(r.v), end, field.Optional(step, 1), true)", prim))
	e.method("Until behaves like To with an exclusive endpoint.",
		"Until", fmt.Sprintf("end %s, step *%s", prim, prim), fmt.Sprintf("iter.Seq[%s]", prim), fmt.Sprintf("rangeSequence(%s(r.v), end, field.Optional(step, 1), false)", prim))
}

func (e *expander) widenings(n, prim string) {
	if len(e.b.Widens) == 0 {
		return
	}
	e.section(fmt.Sprintf("Widening conversions. Each is total: every valid %s remains valid in\nthe target type after Go's native primitive conversion.", n))
	for _, w := range e.b.Widens {
		target := e.index[w]
		e.method(fmt.Sprintf("To%s returns r widened to %s.", w, w), "To"+w, "", w, fmt.Sprintf("%s{%s(r.v)}", w, target.Kind.Primitive()))
	}
}
