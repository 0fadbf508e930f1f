package strongtype

// Arithmetic capabilities. Every operation forwards to the representation's
// own operator: wrapping overflow, float rounding, truncating integer
// division, and the divide-by-zero panic are all inherited unchanged.
//
// Per binary operator the capability carries four forms:
//
//   - X(b): same-type operands, wrapped result
//   - XValue(v): mixed form, right operand is a bare representation value
//   - XAssign(b), XValueAssign(v): the compound forms, mutating in place
//
// The reversed mixed direction (value on the left) is spelled by wrapping
// the left operand first; for the commutative operators the forward form is
// already equivalent.

// Additive is a strong typedef supporting addition only. Useful on its own
// for offset-like quantities where multiplication would be meaningless.
type Additive[Tag any, T Numeric] struct {
	Typedef[Tag, T]
}

// NewAdditive wraps a representation value.
func NewAdditive[Tag any, T Numeric](v T) Additive[Tag, T] {
	return Additive[Tag, T]{New[Tag](v)}
}

func (a Additive[Tag, T]) Add(b Additive[Tag, T]) Additive[Tag, T] {
	return NewAdditive[Tag](a.value + b.value)
}
func (a Additive[Tag, T]) AddValue(v T) Additive[Tag, T] {
	return NewAdditive[Tag](a.value + v)
}
func (a *Additive[Tag, T]) AddAssign(b Additive[Tag, T]) { a.value += b.value }
func (a *Additive[Tag, T]) AddValueAssign(v T)           { a.value += v }

// Subtractive is a strong typedef supporting subtraction only.
type Subtractive[Tag any, T Numeric] struct {
	Typedef[Tag, T]
}

// NewSubtractive wraps a representation value.
func NewSubtractive[Tag any, T Numeric](v T) Subtractive[Tag, T] {
	return Subtractive[Tag, T]{New[Tag](v)}
}

func (a Subtractive[Tag, T]) Sub(b Subtractive[Tag, T]) Subtractive[Tag, T] {
	return NewSubtractive[Tag](a.value - b.value)
}
func (a Subtractive[Tag, T]) SubValue(v T) Subtractive[Tag, T] {
	return NewSubtractive[Tag](a.value - v)
}
func (a *Subtractive[Tag, T]) SubAssign(b Subtractive[Tag, T]) { a.value -= b.value }
func (a *Subtractive[Tag, T]) SubValueAssign(v T)              { a.value -= v }

// Multiplicative is a strong typedef supporting multiplication only.
type Multiplicative[Tag any, T Numeric] struct {
	Typedef[Tag, T]
}

// NewMultiplicative wraps a representation value.
func NewMultiplicative[Tag any, T Numeric](v T) Multiplicative[Tag, T] {
	return Multiplicative[Tag, T]{New[Tag](v)}
}

func (a Multiplicative[Tag, T]) Mul(b Multiplicative[Tag, T]) Multiplicative[Tag, T] {
	return NewMultiplicative[Tag](a.value * b.value)
}
func (a Multiplicative[Tag, T]) MulValue(v T) Multiplicative[Tag, T] {
	return NewMultiplicative[Tag](a.value * v)
}
func (a *Multiplicative[Tag, T]) MulAssign(b Multiplicative[Tag, T]) { a.value *= b.value }
func (a *Multiplicative[Tag, T]) MulValueAssign(v T)                 { a.value *= v }

// Divisible is a strong typedef supporting division only.
type Divisible[Tag any, T Numeric] struct {
	Typedef[Tag, T]
}

// NewDivisible wraps a representation value.
func NewDivisible[Tag any, T Numeric](v T) Divisible[Tag, T] {
	return Divisible[Tag, T]{New[Tag](v)}
}

func (a Divisible[Tag, T]) Div(b Divisible[Tag, T]) Divisible[Tag, T] {
	return NewDivisible[Tag](a.value / b.value)
}
func (a Divisible[Tag, T]) DivValue(v T) Divisible[Tag, T] {
	return NewDivisible[Tag](a.value / v)
}
func (a *Divisible[Tag, T]) DivAssign(b Divisible[Tag, T]) { a.value /= b.value }
func (a *Divisible[Tag, T]) DivValueAssign(v T)            { a.value /= v }

// Modular is a strong typedef supporting the remainder operator only.
// Integer representations only; there is no canonical modulo contract for
// floats.
type Modular[Tag any, T Integer] struct {
	Typedef[Tag, T]
}

// NewModular wraps a representation value.
func NewModular[Tag any, T Integer](v T) Modular[Tag, T] {
	return Modular[Tag, T]{New[Tag](v)}
}

func (a Modular[Tag, T]) Mod(b Modular[Tag, T]) Modular[Tag, T] {
	return NewModular[Tag](a.value % b.value)
}
func (a Modular[Tag, T]) ModValue(v T) Modular[Tag, T] {
	return NewModular[Tag](a.value % v)
}
func (a *Modular[Tag, T]) ModAssign(b Modular[Tag, T]) { a.value %= b.value }
func (a *Modular[Tag, T]) ModValueAssign(v T)          { a.value %= v }

// Negation is a strong typedef supporting the unary sign operators.
type Negation[Tag any, T Numeric] struct {
	Typedef[Tag, T]
}

// NewNegation wraps a representation value.
func NewNegation[Tag any, T Numeric](v T) Negation[Tag, T] {
	return Negation[Tag, T]{New[Tag](v)}
}

// Pos returns the value unchanged, the unary plus.
func (a Negation[Tag, T]) Pos() Negation[Tag, T] { return a }

// Neg returns the negated value.
func (a Negation[Tag, T]) Neg() Negation[Tag, T] {
	return NewNegation[Tag](-a.value)
}

// Increment is a strong typedef supporting in-place increment.
//
// Go has no operator position, so Inc covers both the pre and post forms;
// callers needing the old value copy the wrapper first.
type Increment[Tag any, T Numeric] struct {
	Typedef[Tag, T]
}

// NewIncrement wraps a representation value.
func NewIncrement[Tag any, T Numeric](v T) Increment[Tag, T] {
	return Increment[Tag, T]{New[Tag](v)}
}

// Inc increments the wrapped value in place.
func (a *Increment[Tag, T]) Inc() { a.value++ }

// Decrement is a strong typedef supporting in-place decrement.
type Decrement[Tag any, T Numeric] struct {
	Typedef[Tag, T]
}

// NewDecrement wraps a representation value.
func NewDecrement[Tag any, T Numeric](v T) Decrement[Tag, T] {
	return Decrement[Tag, T]{New[Tag](v)}
}

// Dec decrements the wrapped value in place.
func (a *Decrement[Tag, T]) Dec() { a.value-- }

// IntegerArithmetic is the composite capability for integral quantities:
// unary sign, the five binary operators with their compound forms, and
// increment/decrement.
//
// It is defined as the explicit union of the primitive method sets rather
// than by embedding the primitives; embedding two capabilities would embed
// the wrapper twice, which is exactly the ambiguity composites exist to
// avoid.
type IntegerArithmetic[Tag any, T Integer] struct {
	Typedef[Tag, T]
}

// NewIntegerArithmetic wraps a representation value.
func NewIntegerArithmetic[Tag any, T Integer](v T) IntegerArithmetic[Tag, T] {
	return IntegerArithmetic[Tag, T]{New[Tag](v)}
}

func (a IntegerArithmetic[Tag, T]) Pos() IntegerArithmetic[Tag, T] { return a }
func (a IntegerArithmetic[Tag, T]) Neg() IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](-a.value)
}

func (a IntegerArithmetic[Tag, T]) Add(b IntegerArithmetic[Tag, T]) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value + b.value)
}
func (a IntegerArithmetic[Tag, T]) Sub(b IntegerArithmetic[Tag, T]) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value - b.value)
}
func (a IntegerArithmetic[Tag, T]) Mul(b IntegerArithmetic[Tag, T]) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value * b.value)
}
func (a IntegerArithmetic[Tag, T]) Div(b IntegerArithmetic[Tag, T]) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value / b.value)
}
func (a IntegerArithmetic[Tag, T]) Mod(b IntegerArithmetic[Tag, T]) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value % b.value)
}

func (a IntegerArithmetic[Tag, T]) AddValue(v T) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value + v)
}
func (a IntegerArithmetic[Tag, T]) SubValue(v T) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value - v)
}
func (a IntegerArithmetic[Tag, T]) MulValue(v T) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value * v)
}
func (a IntegerArithmetic[Tag, T]) DivValue(v T) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value / v)
}
func (a IntegerArithmetic[Tag, T]) ModValue(v T) IntegerArithmetic[Tag, T] {
	return NewIntegerArithmetic[Tag](a.value % v)
}

func (a *IntegerArithmetic[Tag, T]) AddAssign(b IntegerArithmetic[Tag, T]) { a.value += b.value }
func (a *IntegerArithmetic[Tag, T]) SubAssign(b IntegerArithmetic[Tag, T]) { a.value -= b.value }
func (a *IntegerArithmetic[Tag, T]) MulAssign(b IntegerArithmetic[Tag, T]) { a.value *= b.value }
func (a *IntegerArithmetic[Tag, T]) DivAssign(b IntegerArithmetic[Tag, T]) { a.value /= b.value }
func (a *IntegerArithmetic[Tag, T]) ModAssign(b IntegerArithmetic[Tag, T]) { a.value %= b.value }

func (a *IntegerArithmetic[Tag, T]) AddValueAssign(v T) { a.value += v }
func (a *IntegerArithmetic[Tag, T]) SubValueAssign(v T) { a.value -= v }
func (a *IntegerArithmetic[Tag, T]) MulValueAssign(v T) { a.value *= v }
func (a *IntegerArithmetic[Tag, T]) DivValueAssign(v T) { a.value /= v }
func (a *IntegerArithmetic[Tag, T]) ModValueAssign(v T) { a.value %= v }

func (a *IntegerArithmetic[Tag, T]) Inc() { a.value++ }
func (a *IntegerArithmetic[Tag, T]) Dec() { a.value-- }

// FloatArithmetic is the composite capability for floating-point
// quantities: unary sign and the four binary operators with their compound
// forms. No remainder and no increment/decrement, matching the absence of a
// canonical contract for either on non-integral values.
type FloatArithmetic[Tag any, T Float] struct {
	Typedef[Tag, T]
}

// NewFloatArithmetic wraps a representation value.
func NewFloatArithmetic[Tag any, T Float](v T) FloatArithmetic[Tag, T] {
	return FloatArithmetic[Tag, T]{New[Tag](v)}
}

func (a FloatArithmetic[Tag, T]) Pos() FloatArithmetic[Tag, T] { return a }
func (a FloatArithmetic[Tag, T]) Neg() FloatArithmetic[Tag, T] {
	return NewFloatArithmetic[Tag](-a.value)
}

func (a FloatArithmetic[Tag, T]) Add(b FloatArithmetic[Tag, T]) FloatArithmetic[Tag, T] {
	return NewFloatArithmetic[Tag](a.value + b.value)
}
func (a FloatArithmetic[Tag, T]) Sub(b FloatArithmetic[Tag, T]) FloatArithmetic[Tag, T] {
	return NewFloatArithmetic[Tag](a.value - b.value)
}
func (a FloatArithmetic[Tag, T]) Mul(b FloatArithmetic[Tag, T]) FloatArithmetic[Tag, T] {
	return NewFloatArithmetic[Tag](a.value * b.value)
}
func (a FloatArithmetic[Tag, T]) Div(b FloatArithmetic[Tag, T]) FloatArithmetic[Tag, T] {
	return NewFloatArithmetic[Tag](a.value / b.value)
}

func (a FloatArithmetic[Tag, T]) AddValue(v T) FloatArithmetic[Tag, T] {
	return NewFloatArithmetic[Tag](a.value + v)
}
func (a FloatArithmetic[Tag, T]) SubValue(v T) FloatArithmetic[Tag, T] {
	return NewFloatArithmetic[Tag](a.value - v)
}
func (a FloatArithmetic[Tag, T]) MulValue(v T) FloatArithmetic[Tag, T] {
	return NewFloatArithmetic[Tag](a.value * v)
}
func (a FloatArithmetic[Tag, T]) DivValue(v T) FloatArithmetic[Tag, T] {
	return NewFloatArithmetic[Tag](a.value / v)
}

func (a *FloatArithmetic[Tag, T]) AddAssign(b FloatArithmetic[Tag, T]) { a.value += b.value }
func (a *FloatArithmetic[Tag, T]) SubAssign(b FloatArithmetic[Tag, T]) { a.value -= b.value }
func (a *FloatArithmetic[Tag, T]) MulAssign(b FloatArithmetic[Tag, T]) { a.value *= b.value }
func (a *FloatArithmetic[Tag, T]) DivAssign(b FloatArithmetic[Tag, T]) { a.value /= b.value }

func (a *FloatArithmetic[Tag, T]) AddValueAssign(v T) { a.value += v }
func (a *FloatArithmetic[Tag, T]) SubValueAssign(v T) { a.value -= v }
func (a *FloatArithmetic[Tag, T]) MulValueAssign(v T) { a.value *= v }
func (a *FloatArithmetic[Tag, T]) DivValueAssign(v T) { a.value /= v }
