package strongtype

// Bit-manipulation capabilities. Shift amounts are deliberately typed by a
// separate Unsigned parameter rather than by the wrapper itself: a shift
// count is not a quantity of the wrapped kind.

// Complement is a strong typedef supporting bitwise complement only.
type Complement[Tag any, T Integer] struct {
	Typedef[Tag, T]
}

// NewComplement wraps a representation value.
func NewComplement[Tag any, T Integer](v T) Complement[Tag, T] {
	return Complement[Tag, T]{New[Tag](v)}
}

// Not returns the bitwise complement.
func (a Complement[Tag, T]) Not() Complement[Tag, T] {
	return NewComplement[Tag](^a.value)
}

// OrBits is a strong typedef supporting bitwise or only.
type OrBits[Tag any, T Integer] struct {
	Typedef[Tag, T]
}

// NewOrBits wraps a representation value.
func NewOrBits[Tag any, T Integer](v T) OrBits[Tag, T] {
	return OrBits[Tag, T]{New[Tag](v)}
}

func (a OrBits[Tag, T]) Or(b OrBits[Tag, T]) OrBits[Tag, T] {
	return NewOrBits[Tag](a.value | b.value)
}
func (a OrBits[Tag, T]) OrValue(v T) OrBits[Tag, T] {
	return NewOrBits[Tag](a.value | v)
}
func (a *OrBits[Tag, T]) OrAssign(b OrBits[Tag, T]) { a.value |= b.value }
func (a *OrBits[Tag, T]) OrValueAssign(v T)         { a.value |= v }

// XorBits is a strong typedef supporting bitwise exclusive-or only.
type XorBits[Tag any, T Integer] struct {
	Typedef[Tag, T]
}

// NewXorBits wraps a representation value.
func NewXorBits[Tag any, T Integer](v T) XorBits[Tag, T] {
	return XorBits[Tag, T]{New[Tag](v)}
}

func (a XorBits[Tag, T]) Xor(b XorBits[Tag, T]) XorBits[Tag, T] {
	return NewXorBits[Tag](a.value ^ b.value)
}
func (a XorBits[Tag, T]) XorValue(v T) XorBits[Tag, T] {
	return NewXorBits[Tag](a.value ^ v)
}
func (a *XorBits[Tag, T]) XorAssign(b XorBits[Tag, T]) { a.value ^= b.value }
func (a *XorBits[Tag, T]) XorValueAssign(v T)          { a.value ^= v }

// AndBits is a strong typedef supporting bitwise and only.
type AndBits[Tag any, T Integer] struct {
	Typedef[Tag, T]
}

// NewAndBits wraps a representation value.
func NewAndBits[Tag any, T Integer](v T) AndBits[Tag, T] {
	return AndBits[Tag, T]{New[Tag](v)}
}

func (a AndBits[Tag, T]) And(b AndBits[Tag, T]) AndBits[Tag, T] {
	return NewAndBits[Tag](a.value & b.value)
}
func (a AndBits[Tag, T]) AndValue(v T) AndBits[Tag, T] {
	return NewAndBits[Tag](a.value & v)
}
func (a *AndBits[Tag, T]) AndAssign(b AndBits[Tag, T]) { a.value &= b.value }
func (a *AndBits[Tag, T]) AndValueAssign(v T)          { a.value &= v }

// Shift is a strong typedef supporting the shift operators, with the shift
// amount typed S.
type Shift[Tag any, T Integer, S Unsigned] struct {
	Typedef[Tag, T]
}

// NewShift wraps a representation value.
func NewShift[Tag any, T Integer, S Unsigned](v T) Shift[Tag, T, S] {
	return Shift[Tag, T, S]{New[Tag](v)}
}

func (a Shift[Tag, T, S]) Shl(n S) Shift[Tag, T, S] {
	return NewShift[Tag, T, S](a.value << n)
}
func (a Shift[Tag, T, S]) Shr(n S) Shift[Tag, T, S] {
	return NewShift[Tag, T, S](a.value >> n)
}
func (a *Shift[Tag, T, S]) ShlAssign(n S) { a.value <<= n }
func (a *Shift[Tag, T, S]) ShrAssign(n S) { a.value >>= n }

// Bitmask is the composite capability for flag-like quantities: complement
// plus or, exclusive-or, and and. Shifts are not part of a bitmask's
// contract; opt into Shift separately when positions matter.
//
// Defined as the explicit union of the primitive method sets, like the
// other composites.
type Bitmask[Tag any, T Integer] struct {
	Typedef[Tag, T]
}

// NewBitmask wraps a representation value.
func NewBitmask[Tag any, T Integer](v T) Bitmask[Tag, T] {
	return Bitmask[Tag, T]{New[Tag](v)}
}

func (a Bitmask[Tag, T]) Not() Bitmask[Tag, T] {
	return NewBitmask[Tag](^a.value)
}

func (a Bitmask[Tag, T]) Or(b Bitmask[Tag, T]) Bitmask[Tag, T] {
	return NewBitmask[Tag](a.value | b.value)
}
func (a Bitmask[Tag, T]) Xor(b Bitmask[Tag, T]) Bitmask[Tag, T] {
	return NewBitmask[Tag](a.value ^ b.value)
}
func (a Bitmask[Tag, T]) And(b Bitmask[Tag, T]) Bitmask[Tag, T] {
	return NewBitmask[Tag](a.value & b.value)
}

func (a Bitmask[Tag, T]) OrValue(v T) Bitmask[Tag, T] {
	return NewBitmask[Tag](a.value | v)
}
func (a Bitmask[Tag, T]) XorValue(v T) Bitmask[Tag, T] {
	return NewBitmask[Tag](a.value ^ v)
}
func (a Bitmask[Tag, T]) AndValue(v T) Bitmask[Tag, T] {
	return NewBitmask[Tag](a.value & v)
}

func (a *Bitmask[Tag, T]) OrAssign(b Bitmask[Tag, T])  { a.value |= b.value }
func (a *Bitmask[Tag, T]) XorAssign(b Bitmask[Tag, T]) { a.value ^= b.value }
func (a *Bitmask[Tag, T]) AndAssign(b Bitmask[Tag, T]) { a.value &= b.value }

func (a *Bitmask[Tag, T]) OrValueAssign(v T)  { a.value |= v }
func (a *Bitmask[Tag, T]) XorValueAssign(v T) { a.value ^= v }
func (a *Bitmask[Tag, T]) AndValueAssign(v T) { a.value &= v }

// Test reports whether every bit set in mask is set in the value. A small
// convenience the operator set alone cannot spell without extraction.
func (a Bitmask[Tag, T]) Test(mask Bitmask[Tag, T]) bool {
	return a.value&mask.value == mask.value
}
