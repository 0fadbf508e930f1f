package strongtype

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type kilometers struct{}
type miles struct{}

func TestTypedefRoundTrip(t *testing.T) {
	d := New[kilometers](42)

	assert.Equal(t, 42, d.Get())
}

func TestTypedefZeroValue(t *testing.T) {
	var d Typedef[kilometers, int]

	assert.Equal(t, 0, d.Get())
}

func TestTypedefSetAndRef(t *testing.T) {
	d := New[kilometers](1)

	d.Set(2)
	assert.Equal(t, 2, d.Get())

	*d.Ref() = 3
	assert.Equal(t, 3, d.Get())
}

func TestTypedefRelease(t *testing.T) {
	d := New[kilometers]("payload")

	got := d.Release()

	assert.Equal(t, "payload", got)
	assert.Equal(t, "", d.Get(), "released wrapper holds the zero value")
}

func TestTypedefSwap(t *testing.T) {
	a := New[kilometers](1)
	b := New[kilometers](2)

	a.Swap(&b)

	assert.Equal(t, 2, a.Get())
	assert.Equal(t, 1, b.Get())

	// No aliasing: mutating one after the swap leaves the other alone.
	a.Set(99)
	assert.Equal(t, 1, b.Get())
}

func TestTypedefNominalDistinctness(t *testing.T) {
	// Same representation, different tags: different types. Mixing them
	// is a compile error; here we observe the distinctness reflectively.
	km := New[kilometers](10)
	mi := New[miles](10)

	assert.NotEqual(t, reflect.TypeOf(km), reflect.TypeOf(mi))
}

func TestWrapperInterfaces(t *testing.T) {
	// Underlying-type inference: every wrapper over int satisfies
	// Wrapper[int] no matter which capability type carries it, and a
	// pointer to it satisfies MutWrapper[int].
	var (
		_ Wrapper[int] = New[kilometers](1)
		_ Wrapper[int] = NewEquatable[kilometers](1)
		_ Wrapper[int] = NewOrdered[kilometers](1)
		_ Wrapper[int] = NewIntegerArithmetic[kilometers](1)
		_ Wrapper[int] = NewBitmask[kilometers](1)

		_ MutWrapper[int] = &Typedef[kilometers, int]{}
		_ MutWrapper[int] = &IntegerArithmetic[kilometers, int]{}
	)

	var w Wrapper[int] = NewIntegerArithmetic[kilometers](7)
	assert.Equal(t, 7, w.Get())
}

// opaque stands in for a representation with no usable operations:
// inference must work from the declared type alone.
type opaque struct{ ch chan int }

func TestWrapperInferenceNeedsNoOperations(t *testing.T) {
	var d Typedef[kilometers, opaque]
	var w Wrapper[opaque] = d

	assert.Nil(t, w.Get().ch)
}
