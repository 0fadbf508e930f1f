package strongtype

// Access-forwarding capabilities for reference-like and indexable
// representations.

// Pointer is a strong typedef over a pointer representation, forwarding
// dereference. T must be a pointer to E; the usual case is a handle type
// that should not be mixed with other pointers of the same pointee.
//
// Dereferencing a nil representation panics exactly as dereferencing the
// bare pointer would.
type Pointer[Tag any, T ~*E, E any] struct {
	Typedef[Tag, T]
}

// NewPointer wraps a pointer representation.
func NewPointer[Tag any, T ~*E, E any](v T) Pointer[Tag, T, E] {
	return Pointer[Tag, T, E]{New[Tag](v)}
}

// Elem returns the pointed-to value.
func (p Pointer[Tag, T, E]) Elem() E {
	return *(*E)(p.value)
}

// SetElem stores v through the wrapped pointer.
func (p Pointer[Tag, T, E]) SetElem(v E) {
	*(*E)(p.value) = v
}

// IsNil reports whether the wrapped pointer is nil.
func (p Pointer[Tag, T, E]) IsNil() bool {
	return (*E)(p.value) == nil
}

// Indexed is a strong typedef over a slice representation, forwarding
// subscript access. Out-of-range indices panic exactly as indexing the bare
// slice would.
type Indexed[Tag any, T ~[]E, E any] struct {
	Typedef[Tag, T]
}

// NewIndexed wraps a slice representation.
func NewIndexed[Tag any, T ~[]E, E any](v T) Indexed[Tag, T, E] {
	return Indexed[Tag, T, E]{New[Tag](v)}
}

// At returns the i-th element.
func (s Indexed[Tag, T, E]) At(i int) E {
	return ([]E)(s.value)[i]
}

// RefAt returns a pointer to the i-th element.
func (s Indexed[Tag, T, E]) RefAt(i int) *E {
	return &([]E)(s.value)[i]
}

// SetAt replaces the i-th element.
func (s Indexed[Tag, T, E]) SetAt(i int, v E) {
	([]E)(s.value)[i] = v
}

// Len returns the representation's length.
func (s Indexed[Tag, T, E]) Len() int {
	return len(s.value)
}
