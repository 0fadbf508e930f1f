// Package index provides strong typedefs for positions and offsets:
// Index, an unsigned position into a sequence, and Distance, the signed
// difference between two positions. Keeping them as distinct nominal types
// stops a position from being used where an offset is meant and vice versa,
// the classic off-by-a-kind bug in index arithmetic.
//
// Index behaves like a random-access position without dereference: it is
// comparable, steps by one, and combines with Distance. Mixed arithmetic
// that would take a position below zero is an invariant violation reported
// through the assert collaborator.
package index

import (
	"math"

	"github.com/typesafe-go/strongtype"
	"github.com/typesafe-go/strongtype/assert"
)

type indexTag struct{}
type distanceTag struct{}

// Index is a position into a sequence. The zero value is position 0.
type Index struct {
	strongtype.Typedef[indexTag, uint64]
}

// NewIndex wraps a position value.
func NewIndex(v uint64) Index {
	return Index{strongtype.New[indexTag](v)}
}

func (i Index) Equal(o Index) bool        { return i.Get() == o.Get() }
func (i Index) NotEqual(o Index) bool     { return i.Get() != o.Get() }
func (i Index) Less(o Index) bool         { return i.Get() < o.Get() }
func (i Index) LessEqual(o Index) bool    { return i.Get() <= o.Get() }
func (i Index) Greater(o Index) bool      { return i.Get() > o.Get() }
func (i Index) GreaterEqual(o Index) bool { return i.Get() >= o.Get() }

// Inc advances the position by one.
func (i *Index) Inc() { i.Set(i.Get() + 1) }

// Dec retreats the position by one. Position 0 has no predecessor.
func (i *Index) Dec() {
	assert.That(i.Get() > 0, "decrement of index 0")
	i.Set(i.Get() - 1)
}

// Add returns the position moved by d, which may be negative. The result
// must not precede position 0.
func (i Index) Add(d Distance) Index {
	if d.Get() >= 0 {
		return NewIndex(i.Get() + uint64(d.Get()))
	}
	// Negate in uint64 so the magnitude of the minimum distance survives.
	step := -uint64(d.Get())
	assert.Thatf(step <= i.Get(), "index %d%+d is negative", i.Get(), d.Get())
	return NewIndex(i.Get() - step)
}

// Sub returns the position moved backward by d.
func (i Index) Sub(d Distance) Index {
	return i.Add(d.Neg())
}

// Distance is a signed offset between two positions. The zero value is the
// zero offset.
type Distance struct {
	strongtype.Typedef[distanceTag, int64]
}

// NewDistance wraps an offset value.
func NewDistance(v int64) Distance {
	return Distance{strongtype.New[distanceTag](v)}
}

func (d Distance) Equal(o Distance) bool        { return d.Get() == o.Get() }
func (d Distance) NotEqual(o Distance) bool     { return d.Get() != o.Get() }
func (d Distance) Less(o Distance) bool         { return d.Get() < o.Get() }
func (d Distance) LessEqual(o Distance) bool    { return d.Get() <= o.Get() }
func (d Distance) Greater(o Distance) bool      { return d.Get() > o.Get() }
func (d Distance) GreaterEqual(o Distance) bool { return d.Get() >= o.Get() }

func (d Distance) Pos() Distance { return d }
func (d Distance) Neg() Distance { return NewDistance(-d.Get()) }

func (d Distance) Add(o Distance) Distance { return NewDistance(d.Get() + o.Get()) }
func (d Distance) Sub(o Distance) Distance { return NewDistance(d.Get() - o.Get()) }

// At returns a pointer to the element of s at position i. The position
// must be in range.
func At[S ~[]E, E any](s S, i Index) *E {
	assert.Thatf(i.Get() < uint64(len(s)), "index %d out of range [0, %d)", i.Get(), len(s))
	return &s[i.Get()]
}

// Advance moves i by d in place.
func Advance(i *Index, d Distance) {
	*i = i.Add(d)
}

// DistanceBetween returns the distance from a to b: how many increments move a
// onto b, negative when a is past b. The gap must fit in a Distance.
func DistanceBetween(a, b Index) Distance {
	if b.Get() >= a.Get() {
		gap := b.Get() - a.Get()
		assert.Thatf(gap <= math.MaxInt64, "distance %d overflows", gap)
		return NewDistance(int64(gap))
	}
	gap := a.Get() - b.Get()
	assert.Thatf(gap <= 1<<63, "distance -%d overflows", gap)
	// int64(1<<63) is already the minimum, so the conversion alone is the
	// negation in that one case.
	if gap == 1<<63 {
		return NewDistance(math.MinInt64)
	}
	return NewDistance(-int64(gap))
}

// Next returns the position after i.
func Next(i Index) Index {
	return i.Add(NewDistance(1))
}

// Prev returns the position before i.
func Prev(i Index) Index {
	return i.Add(NewDistance(-1))
}
