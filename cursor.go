package strongtype

import "github.com/typesafe-go/strongtype/assert"

// Cursor contracts: what a representation must provide for the iterator
// capabilities to forward to. In the iterator ladder "forward the operator
// to the representation" means calling these methods, so the wrapper never
// needs to know how the position is actually encoded.
//
// Cursors are values. Next, Prev, and Seek return the moved position rather
// than mutating, which lets the iterator capabilities keep copy semantics.

// Cursor is the minimal contract: dereference and advance by one. T is the
// representation type itself (the usual self-referential constraint), E the
// element type.
type Cursor[T, E any] interface {
	// Next returns the successor position.
	Next() T
	// Elem returns the element at the current position, addressable so
	// that output iteration can write through it.
	Elem() *E
}

// BidiCursor adds retreat-by-one.
type BidiCursor[T, E any] interface {
	Cursor[T, E]
	// Prev returns the predecessor position.
	Prev() T
}

// RandomCursor adds constant-time movement and distance.
type RandomCursor[T, E any] interface {
	BidiCursor[T, E]
	// Seek returns the position n steps forward (backward when n is
	// negative).
	Seek(n int) T
	// Distance returns the number of forward steps from this position to
	// `to`; negative when `to` precedes it.
	Distance(to T) int
}

// EqCursor, EqBidiCursor, and EqRandomCursor additionally require the
// representation to be comparable, which the equality-bearing iterator
// levels need.
type EqCursor[T, E any] interface {
	Cursor[T, E]
	comparable
}

type EqBidiCursor[T, E any] interface {
	BidiCursor[T, E]
	comparable
}

type EqRandomCursor[T, E any] interface {
	RandomCursor[T, E]
	comparable
}

// SliceCursor is a random-access cursor over a slice, the library-provided
// representation for iterator typedefs. It is comparable (two cursors are
// equal when they address the same slice at the same position), so it
// satisfies every cursor contract up to EqRandomCursor.
//
// The position may sit one past the last element, the conventional end
// position; dereferencing there is an invariant violation.
type SliceCursor[E any] struct {
	data *[]E
	pos  int
}

// NewSliceCursor returns a cursor addressing data at position pos.
func NewSliceCursor[E any](data *[]E, pos int) SliceCursor[E] {
	assert.Thatf(pos >= 0 && pos <= len(*data), "cursor position %d outside [0, %d]", pos, len(*data))
	return SliceCursor[E]{data: data, pos: pos}
}

// Pos returns the current position.
func (c SliceCursor[E]) Pos() int { return c.pos }

// Elem returns the addressed element.
func (c SliceCursor[E]) Elem() *E {
	assert.Thatf(c.pos >= 0 && c.pos < len(*c.data), "dereference at %d outside [0, %d)", c.pos, len(*c.data))
	return &(*c.data)[c.pos]
}

// Next returns the cursor advanced by one.
func (c SliceCursor[E]) Next() SliceCursor[E] {
	return SliceCursor[E]{data: c.data, pos: c.pos + 1}
}

// Prev returns the cursor retreated by one.
func (c SliceCursor[E]) Prev() SliceCursor[E] {
	return SliceCursor[E]{data: c.data, pos: c.pos - 1}
}

// Seek returns the cursor moved by n steps.
func (c SliceCursor[E]) Seek(n int) SliceCursor[E] {
	return SliceCursor[E]{data: c.data, pos: c.pos + n}
}

// Distance returns the step count from c to `to`. Both cursors must
// address the same slice.
func (c SliceCursor[E]) Distance(to SliceCursor[E]) int {
	assert.That(c.data == to.data, "distance between cursors into different slices")
	return to.pos - c.pos
}
