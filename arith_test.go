package strongtype

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type count struct{}

// Count is the usual way a caller names a typedef: a generic alias over a
// private tag.
type Count = IntegerArithmetic[count, int]

func TestIntegerArithmeticSameType(t *testing.T) {
	var a Count = NewIntegerArithmetic[count](10)
	b := NewIntegerArithmetic[count](3)

	assert.Equal(t, 13, a.Add(b).Get())
	assert.Equal(t, 7, a.Sub(b).Get())
	assert.Equal(t, 30, a.Mul(b).Get())
	assert.Equal(t, 3, a.Div(b).Get())
	assert.Equal(t, 1, a.Mod(b).Get())
}

func TestIntegerArithmeticMatchesRepresentation(t *testing.T) {
	// Each operator must agree with applying it to the extracted
	// representations directly.
	pairs := [][2]int{{10, 3}, {-7, 2}, {0, 5}, {100, -9}}

	for _, p := range pairs {
		a := NewIntegerArithmetic[count](p[0])
		b := NewIntegerArithmetic[count](p[1])

		assert.Equal(t, p[0]+p[1], a.Add(b).Get())
		assert.Equal(t, p[0]-p[1], a.Sub(b).Get())
		assert.Equal(t, p[0]*p[1], a.Mul(b).Get())
		assert.Equal(t, p[0]/p[1], a.Div(b).Get())
		assert.Equal(t, p[0]%p[1], a.Mod(b).Get())
	}
}

func TestIntegerArithmeticMixedValue(t *testing.T) {
	w := NewIntegerArithmetic[count](3)

	// W(3) + 4 == W(7), and the value-on-the-left direction is spelled
	// by wrapping the left operand first.
	assert.Equal(t, NewIntegerArithmetic[count](7), w.AddValue(4))
	assert.Equal(t, NewIntegerArithmetic[count](7), NewIntegerArithmetic[count](4).AddValue(3))

	assert.Equal(t, 1, NewIntegerArithmetic[count](4).SubValue(3).Get())
	assert.Equal(t, 12, w.MulValue(4).Get())
}

func TestIntegerArithmeticCompound(t *testing.T) {
	w := NewIntegerArithmetic[count](10)

	w.AddAssign(NewIntegerArithmetic[count](5))
	assert.Equal(t, 15, w.Get())

	w.SubValueAssign(3)
	assert.Equal(t, 12, w.Get())

	w.MulValueAssign(2)
	assert.Equal(t, 24, w.Get())

	w.DivAssign(NewIntegerArithmetic[count](4))
	assert.Equal(t, 6, w.Get())

	w.ModValueAssign(4)
	assert.Equal(t, 2, w.Get())
}

func TestIntegerArithmeticIncDec(t *testing.T) {
	w := NewIntegerArithmetic[count](0)

	w.Inc()
	w.Inc()
	assert.Equal(t, 2, w.Get())

	w.Dec()
	assert.Equal(t, 1, w.Get())
}

func TestIntegerArithmeticUnary(t *testing.T) {
	w := NewIntegerArithmetic[count](5)

	assert.Equal(t, 5, w.Pos().Get())
	assert.Equal(t, -5, w.Neg().Get())
}

func TestIntegerArithmeticInheritsOverflow(t *testing.T) {
	// No numeric policy of its own: int8 wraps exactly as the bare
	// representation does.
	w := NewIntegerArithmetic[count](int8(math.MaxInt8))

	assert.Equal(t, int8(math.MinInt8), w.AddValue(1).Get())
}

func TestIntegerArithmeticInheritsDivideByZero(t *testing.T) {
	w := NewIntegerArithmetic[count](1)

	require.Panics(t, func() { w.DivValue(0) })
	require.Panics(t, func() { w.ModValue(0) })
}

type ratio struct{}

func TestFloatArithmetic(t *testing.T) {
	a := NewFloatArithmetic[ratio](1.5)
	b := NewFloatArithmetic[ratio](0.5)

	assert.InDelta(t, 2.0, a.Add(b).Get(), 1e-12)
	assert.InDelta(t, 1.0, a.Sub(b).Get(), 1e-12)
	assert.InDelta(t, 0.75, a.Mul(b).Get(), 1e-12)
	assert.InDelta(t, 3.0, a.Div(b).Get(), 1e-12)
	assert.InDelta(t, -1.5, a.Neg().Get(), 1e-12)
}

func TestFloatArithmeticInheritsInf(t *testing.T) {
	w := NewFloatArithmetic[ratio](1.0)

	assert.True(t, math.IsInf(w.DivValue(0).Get(), 1))
}

func TestFloatArithmeticCompound(t *testing.T) {
	w := NewFloatArithmetic[ratio](2.0)

	w.MulValueAssign(3.0)
	assert.InDelta(t, 6.0, w.Get(), 1e-12)

	w.SubAssign(NewFloatArithmetic[ratio](1.0))
	assert.InDelta(t, 5.0, w.Get(), 1e-12)
}

type offset struct{}

func TestAdditivePrimitive(t *testing.T) {
	a := NewAdditive[offset](10)

	got := a.Add(NewAdditive[offset](5))
	assert.Equal(t, 15, got.Get())

	a.AddValueAssign(1)
	assert.Equal(t, 11, a.Get())
}

func TestSubtractivePrimitive(t *testing.T) {
	a := NewSubtractive[offset](10)

	assert.Equal(t, 4, a.Sub(NewSubtractive[offset](6)).Get())

	a.SubAssign(NewSubtractive[offset](2))
	assert.Equal(t, 8, a.Get())
}

func TestMultiplicativeAndDivisiblePrimitives(t *testing.T) {
	m := NewMultiplicative[offset](6)
	assert.Equal(t, 42, m.MulValue(7).Get())

	d := NewDivisible[offset](42.0)
	assert.InDelta(t, 6.0, d.DivValue(7.0).Get(), 1e-12)
}

func TestModularPrimitive(t *testing.T) {
	m := NewModular[offset](17)

	assert.Equal(t, 2, m.ModValue(5).Get())

	m.ModAssign(NewModular[offset](5))
	assert.Equal(t, 2, m.Get())
}

func TestNegationPrimitive(t *testing.T) {
	n := NewNegation[offset](-4)

	assert.Equal(t, -4, n.Pos().Get())
	assert.Equal(t, 4, n.Neg().Get())
}

func TestIncrementDecrementPrimitives(t *testing.T) {
	i := NewIncrement[offset](0)
	i.Inc()
	i.Inc()
	assert.Equal(t, 2, i.Get())

	d := NewDecrement[offset](2)
	d.Dec()
	assert.Equal(t, 1, d.Get())
}
