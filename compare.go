package strongtype

import "cmp"

// Equatable is a strong typedef with equality comparison.
//
// Equal and NotEqual accept only the same Equatable instantiation, so two
// typedefs over the same representation still cannot be compared to each
// other. The ...Value methods are the mixed forms: they compare against a
// bare representation value.
type Equatable[Tag any, T comparable] struct {
	Typedef[Tag, T]
}

// NewEquatable wraps a representation value.
func NewEquatable[Tag any, T comparable](v T) Equatable[Tag, T] {
	return Equatable[Tag, T]{New[Tag](v)}
}

func (a Equatable[Tag, T]) Equal(b Equatable[Tag, T]) bool {
	return a.value == b.value
}

func (a Equatable[Tag, T]) NotEqual(b Equatable[Tag, T]) bool {
	return a.value != b.value
}

// EqualValue reports whether the wrapped value equals v.
func (a Equatable[Tag, T]) EqualValue(v T) bool {
	return a.value == v
}

// NotEqualValue reports whether the wrapped value differs from v.
func (a Equatable[Tag, T]) NotEqualValue(v T) bool {
	return a.value != v
}

// Ordered is a strong typedef with equality and relational comparison.
//
// The full relational set is one capability, matching the contract of an
// ordered value: providing Less without LessEqual has no recognized
// semantics.
type Ordered[Tag any, T cmp.Ordered] struct {
	Typedef[Tag, T]
}

// NewOrdered wraps a representation value.
func NewOrdered[Tag any, T cmp.Ordered](v T) Ordered[Tag, T] {
	return Ordered[Tag, T]{New[Tag](v)}
}

func (a Ordered[Tag, T]) Equal(b Ordered[Tag, T]) bool    { return a.value == b.value }
func (a Ordered[Tag, T]) NotEqual(b Ordered[Tag, T]) bool { return a.value != b.value }
func (a Ordered[Tag, T]) Less(b Ordered[Tag, T]) bool     { return a.value < b.value }
func (a Ordered[Tag, T]) LessEqual(b Ordered[Tag, T]) bool {
	return a.value <= b.value
}
func (a Ordered[Tag, T]) Greater(b Ordered[Tag, T]) bool { return a.value > b.value }
func (a Ordered[Tag, T]) GreaterEqual(b Ordered[Tag, T]) bool {
	return a.value >= b.value
}

// The ...Value methods are the mixed forms, against a bare representation
// value.

func (a Ordered[Tag, T]) EqualValue(v T) bool        { return a.value == v }
func (a Ordered[Tag, T]) NotEqualValue(v T) bool     { return a.value != v }
func (a Ordered[Tag, T]) LessValue(v T) bool         { return a.value < v }
func (a Ordered[Tag, T]) LessEqualValue(v T) bool    { return a.value <= v }
func (a Ordered[Tag, T]) GreaterValue(v T) bool      { return a.value > v }
func (a Ordered[Tag, T]) GreaterEqualValue(v T) bool { return a.value >= v }

// Compare returns -1, 0, or +1 ordering a against b.
func (a Ordered[Tag, T]) Compare(b Ordered[Tag, T]) int {
	return cmp.Compare(a.value, b.value)
}

// CompareValue is the mixed form of Compare, against a bare representation
// value.
func (a Ordered[Tag, T]) CompareValue(v T) int {
	return cmp.Compare(a.value, v)
}
