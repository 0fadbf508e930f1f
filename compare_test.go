package strongtype

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type userID struct{}

func TestEquatable(t *testing.T) {
	a := NewEquatable[userID]("alice")
	b := NewEquatable[userID]("alice")
	c := NewEquatable[userID]("bob")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.NotEqual(c))
	assert.False(t, a.NotEqual(b))
}

func TestEquatableMixedValue(t *testing.T) {
	a := NewEquatable[userID]("alice")

	assert.True(t, a.EqualValue("alice"))
	assert.False(t, a.EqualValue("bob"))
	assert.True(t, a.NotEqualValue("bob"))
	assert.False(t, a.NotEqualValue("alice"))
}

func TestEquatableGating(t *testing.T) {
	// Equality opts in exactly ==/!=: the relational and arithmetic
	// method sets must be absent. Their use would not compile; the
	// method set confirms it reflectively.
	typ := reflect.TypeOf(&Equatable[userID, string]{})

	_, hasEqual := typ.MethodByName("Equal")
	assert.True(t, hasEqual)

	for _, name := range []string{"Less", "Greater", "Compare", "Add", "Sub"} {
		_, found := typ.MethodByName(name)
		assert.False(t, found, "Equatable must not provide %s", name)
	}
}

type priority struct{}

func TestOrdered(t *testing.T) {
	low := NewOrdered[priority](1)
	high := NewOrdered[priority](9)

	assert.True(t, low.Less(high))
	assert.True(t, low.LessEqual(high))
	assert.True(t, high.Greater(low))
	assert.True(t, high.GreaterEqual(low))
	assert.False(t, high.Less(low))

	same := NewOrdered[priority](9)
	assert.True(t, high.LessEqual(same))
	assert.True(t, high.GreaterEqual(same))
	assert.True(t, high.Equal(same))
	assert.True(t, low.NotEqual(high))
}

func TestOrderedCompare(t *testing.T) {
	mid := NewOrdered[priority](5)

	assert.Equal(t, -1, mid.Compare(NewOrdered[priority](7)))
	assert.Equal(t, 0, mid.Compare(NewOrdered[priority](5)))
	assert.Equal(t, 1, mid.Compare(NewOrdered[priority](3)))

	assert.Equal(t, -1, mid.CompareValue(7))
	assert.Equal(t, 0, mid.CompareValue(5))
	assert.Equal(t, 1, mid.CompareValue(3))
}

func TestOrderedMixedValue(t *testing.T) {
	mid := NewOrdered[priority](5)

	assert.True(t, mid.EqualValue(5))
	assert.True(t, mid.NotEqualValue(6))
	assert.True(t, mid.LessValue(7))
	assert.True(t, mid.LessEqualValue(5))
	assert.True(t, mid.GreaterValue(3))
	assert.True(t, mid.GreaterEqualValue(5))
	assert.False(t, mid.LessValue(5))
	assert.False(t, mid.GreaterValue(5))
}

func TestOrderedGating(t *testing.T) {
	typ := reflect.TypeOf(&Ordered[priority, int]{})

	for _, name := range []string{"Add", "Mul", "Inc", "Not"} {
		_, found := typ.MethodByName(name)
		assert.False(t, found, "Ordered must not provide %s", name)
	}
}
