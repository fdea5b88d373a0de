// Package numerics provides refinement types: immutable wrappers around
// primitive numeric values that are guaranteed by construction to satisfy a
// fixed validity predicate, such as PosInt (an int strictly greater than
// zero) or NumericChar (a rune holding a decimal digit).
//
// Every type exposes the same construction surface. MustX panics on invalid
// input and is meant for constant literals and for callers that have already
// established validity; XFrom returns an ok flag; XFromOrElse substitutes a
// default; XOrError and ValidateX hand the invalid value to a caller-supplied
// error constructor; TryX returns an error wrapping commonerrors.ErrInvalid;
// IsValidX checks the predicate without constructing anything. All paths
// consult the same predicate, so they accept and reject identical values.
//
// Operator methods (AddInt8, LtFloat64, ...) return raw primitives computed
// exactly as Go computes them on the underlying value: integer division by
// zero panics, integer overflow wraps, float operations produce ±Inf and NaN
// per IEEE 754. Refinement values are never produced by arithmetic; only the
// explicit widening conversions (ToPosZInt, ...) return refinement values,
// and those are total.
//
// The per-type definitions in the *_gen.go files are produced by refinedgen
// from the binding table in the gen package.
package numerics

//go:generate go run github.com/refined-go/refined/cmd/refinedgen --output .
