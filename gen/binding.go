package gen

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/refined-go/refined/commonerrors"
)

var typeNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// Binding is the parameter set expanded into one refinement type definition.
// Expressions are Go source fragments over a variable v of the underlying
// primitive; they are spliced verbatim into the generated file.
type Binding struct {
	// TypeName is the exported name of the generated type, e.g. "PosInt".
	TypeName string
	// Kind is the underlying primitive.
	Kind Kind
	// PredicateExpr is the validity predicate, e.g. "v > 0".
	PredicateExpr string
	// PredicateDoc is the human-readable constraint used in documentation
	// and rejection messages.
	PredicateDoc string
	// Doc completes the sentence "<TypeName> is ...".
	Doc string
	// MinExpr and MaxExpr are the extreme values satisfying the predicate
	// (the extreme finite values for float kinds).
	MinExpr string
	MaxExpr string
	// Widens lists the refinement types this type widens to. Every target
	// must be provably a superset: each value satisfying this binding's
	// predicate must satisfy the target's after primitive conversion.
	Widens []string
	// CeilType, FloorType and RoundType name the refinement types produced
	// by the rounding surface of float kinds. All three empty omits the
	// surface, for predicates no rounding result can be guaranteed to keep.
	CeilType  string
	FloorType string
	RoundType string
	// ZeroValueValid records whether the Go zero value satisfies the
	// predicate; it only steers the generated zero-value documentation.
	ZeroValueValid bool
	// PositiveInfinity and NegativeInfinity emit named infinity values for
	// float kinds whose predicate admits them.
	PositiveInfinity bool
	NegativeInfinity bool
	// AdmitsNaN emits the IsNaN helper on float kinds whose predicate
	// accepts NaN.
	AdmitsNaN bool
}

// Validate reports whether the binding can be expanded. A malformed binding
// is a build-time failure; the error names every offending field.
func (b Binding) Validate() error {
	isFloat := b.Kind.IsFloat()
	return validation.ValidateStruct(&b,
		validation.Field(&b.TypeName, validation.Required, validation.Match(typeNamePattern)),
		validation.Field(&b.Kind, validation.Required, validation.By(knownKind)),
		validation.Field(&b.PredicateExpr, validation.Required),
		validation.Field(&b.PredicateDoc, validation.Required),
		validation.Field(&b.Doc, validation.Required),
		validation.Field(&b.MinExpr, validation.Required),
		validation.Field(&b.MaxExpr, validation.Required),
		validation.Field(&b.Widens, validation.Each(validation.Match(typeNamePattern))),
		validation.Field(&b.CeilType, validation.When(!isFloat, validation.Empty), validation.Match(typeNamePattern)),
		validation.Field(&b.FloorType, validation.When(!isFloat, validation.Empty), validation.Match(typeNamePattern)),
		validation.Field(&b.RoundType, validation.When(!isFloat, validation.Empty), validation.Match(typeNamePattern)),
		validation.Field(&b.PositiveInfinity, validation.When(!isFloat, validation.Empty)),
		validation.Field(&b.NegativeInfinity, validation.When(!isFloat, validation.Empty)),
		validation.Field(&b.AdmitsNaN, validation.When(!isFloat, validation.Empty)),
	)
}

func knownKind(value interface{}) error {
	k, ok := value.(Kind)
	if !ok || kindNames[k] == "" {
		return commonerrors.Newf(commonerrors.ErrUnsupported, "unknown primitive kind %v", value)
	}
	return nil
}

// hasRounding reports whether the rounding surface is generated.
func (b Binding) hasRounding() bool {
	return b.CeilType != "" && b.FloorType != "" && b.RoundType != ""
}
