package strongtype

// Representation constraints used by the numeric capability types. A
// capability instantiated with a representation outside its constraint fails
// to compile at the point of instantiation, naming the unsatisfied
// constraint; that is the intended diagnostic for attaching a capability the
// representation cannot support.

// Signed permits any signed integer representation.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned permits any unsigned integer representation.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer permits any integer representation.
type Integer interface {
	Signed | Unsigned
}

// Float permits any floating-point representation.
type Float interface {
	~float32 | ~float64
}

// Numeric permits any representation supporting the arithmetic operators.
type Numeric interface {
	Integer | Float
}
