package numerics

// This file is highly inspired from https://pkg.go.dev/golang.org/x/exp/constraints

// ISignedInteger is an alias for all signed integers: int, int8, int16, int32, and int64 types.
type ISignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IFloat is an alias for the float32 and float64 types.
type IFloat interface {
	~float32 | ~float64
}

// INumber is an alias for all the primitive kinds a refinement type can wrap.
type INumber interface {
	ISignedInteger | IFloat
}
