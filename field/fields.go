// Package field provides helpers for optional values passed as pointers,
// such as the optional step of a numeric range.
package field

// ToOptional returns a pointer to v.
func ToOptional[T any](v T) *T {
	return &v
}

// Optional returns the value pointed to by ptr, or else defaultValue when
// ptr is nil.
func Optional[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}
