package numerics

import (
	"github.com/refined-go/refined/commonerrors"
)

// domain carries the validity predicate shared by every construction path of
// one refinement type. The predicate is the single source of truth: all
// construction paths consult it and nothing re-checks a value after
// construction.
type domain[N INumber] struct {
	name       string
	constraint string
	isValid    func(N) bool
}

func newDomain[N INumber](name, constraint string, isValid func(N) bool) domain[N] {
	return domain[N]{name: name, constraint: constraint, isValid: isValid}
}

func (d domain[N]) valid(v N) bool {
	return d.isValid(v)
}

// errorFor describes the rejection of v. The result wraps commonerrors.ErrInvalid.
func (d domain[N]) errorFor(v N) error {
	return commonerrors.Newf(commonerrors.ErrInvalid, "%v(%v): value does not satisfy %v", d.name, v, d.constraint)
}

// mustBeValid panics when v fails the predicate. Callers of the Must
// constructors assert that this cannot happen.
func (d domain[N]) mustBeValid(v N) {
	if !d.isValid(v) {
		panic(d.errorFor(v))
	}
}

// equalOrBothNaN reports test equality for float-backed types: underlying
// equality, except that two NaN values compare equal.
func equalOrBothNaN[F IFloat](a, b F) bool {
	return a == b || (a != a && b != b)
}
