package strongtype

// Typedef is the core strong typedef wrapper. It owns exactly one value of
// the representation type T and is nominally distinguished from every other
// Typedef over T by the phantom Tag parameter.
//
// The zero value holds the zero value of T. Typedef itself provides only
// construction, explicit access, and swap; operations come from the
// capability types in this package, each of which embeds Typedef.
//
// Tag is never instantiated; any type works. By convention it is an empty
// unexported struct declared next to the typedef it names.
type Typedef[Tag any, T any] struct {
	value T
}

// New wraps a representation value.
//
// This is the only way to build a non-zero Typedef: there is no implicit
// conversion from T, and none back.
func New[Tag any, T any](v T) Typedef[Tag, T] {
	return Typedef[Tag, T]{value: v}
}

// Get returns a copy of the representation value.
func (d Typedef[Tag, T]) Get() T {
	return d.value
}

// Ref returns a pointer to the owned representation value.
//
// Mutations through the pointer are visible to every subsequent accessor
// call on the same wrapper instance.
func (d *Typedef[Tag, T]) Ref() *T {
	return &d.value
}

// Set replaces the representation value.
func (d *Typedef[Tag, T]) Set(v T) {
	d.value = v
}

// Release moves the representation value out of the wrapper.
//
// The wrapper is left holding the zero value of T, the closest analogue Go
// has to a moved-from state.
func (d *Typedef[Tag, T]) Release() T {
	v := d.value
	var zero T
	d.value = zero
	return v
}

// Swap exchanges the representations of two wrappers.
func (d *Typedef[Tag, T]) Swap(other *Typedef[Tag, T]) {
	d.value, other.value = other.value, d.value
}

// Wrapper is satisfied by any strong typedef over representation T,
// regardless of which capabilities it carries. It is the single source of
// truth for recovering the representation type from a wrapper type in
// generic code: constrain on Wrapper[T] and T is the underlying type.
//
// Satisfaction requires only the method declaration, so it works even when
// T has no usable operations of its own.
type Wrapper[T any] interface {
	Get() T
}

// MutWrapper is the mutable form of Wrapper, satisfied by a pointer to any
// strong typedef over T.
type MutWrapper[T any] interface {
	Wrapper[T]
	Ref() *T
	Set(v T)
	Release() T
}
