package strongtype

// The iterator ladder. Each level is a composite capability whose method
// set is exactly what the corresponding iterator category requires, plus
// Category, which generic algorithms query to select a traversal strategy.
// The element type E is visible in the type parameters and the distance
// type is int at every level.
//
// Iterators have copy semantics: Inc, Dec, and Advance mutate through a
// pointer receiver, Add and Sub return moved copies.

// IteratorCategory identifies which iterator contract a typedef satisfies.
type IteratorCategory int

const (
	// CategoryInput permits single-pass reading traversal.
	CategoryInput IteratorCategory = iota
	// CategoryOutput permits single-pass writing traversal.
	CategoryOutput
	// CategoryForward guarantees multi-pass reading traversal.
	CategoryForward
	// CategoryBidirectional adds backward traversal.
	CategoryBidirectional
	// CategoryRandomAccess adds constant-time movement and distance.
	CategoryRandomAccess
)

// String returns the conventional category name.
func (c IteratorCategory) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryOutput:
		return "output"
	case CategoryForward:
		return "forward"
	case CategoryBidirectional:
		return "bidirectional"
	case CategoryRandomAccess:
		return "random-access"
	}
	return "unknown"
}

// Categorized is satisfied by every iterator typedef; generic algorithms
// use it to inspect the category tag.
type Categorized interface {
	Category() IteratorCategory
}

// InputIterator is a single-pass reading iterator over a cursor
// representation: dereference, increment, and equality.
type InputIterator[Tag any, T EqCursor[T, E], E any] struct {
	Typedef[Tag, T]
}

// NewInputIterator wraps a cursor representation.
func NewInputIterator[Tag any, T EqCursor[T, E], E any](c T) InputIterator[Tag, T, E] {
	return InputIterator[Tag, T, E]{New[Tag](c)}
}

// Deref returns the addressed element.
func (it InputIterator[Tag, T, E]) Deref() *E { return it.value.Elem() }

// Inc advances the iterator by one.
func (it *InputIterator[Tag, T, E]) Inc() { it.value = it.value.Next() }

func (it InputIterator[Tag, T, E]) Equal(o InputIterator[Tag, T, E]) bool {
	return it.value == o.value
}
func (it InputIterator[Tag, T, E]) NotEqual(o InputIterator[Tag, T, E]) bool {
	return it.value != o.value
}

// Category returns CategoryInput.
func (InputIterator[Tag, T, E]) Category() IteratorCategory { return CategoryInput }

// OutputIterator is a single-pass writing iterator: dereference and
// increment only, and no equality, so the representation need not be
// comparable.
type OutputIterator[Tag any, T Cursor[T, E], E any] struct {
	Typedef[Tag, T]
}

// NewOutputIterator wraps a cursor representation.
func NewOutputIterator[Tag any, T Cursor[T, E], E any](c T) OutputIterator[Tag, T, E] {
	return OutputIterator[Tag, T, E]{New[Tag](c)}
}

// Deref returns the write target at the current position.
func (it OutputIterator[Tag, T, E]) Deref() *E { return it.value.Elem() }

// Inc advances the iterator by one.
func (it *OutputIterator[Tag, T, E]) Inc() { it.value = it.value.Next() }

// Category returns CategoryOutput.
func (OutputIterator[Tag, T, E]) Category() IteratorCategory { return CategoryOutput }

// ForwardIterator has the input iterator's operations with the multi-pass
// guarantee: copies may be traversed independently. No new operations, only
// the stronger category tag.
type ForwardIterator[Tag any, T EqCursor[T, E], E any] struct {
	Typedef[Tag, T]
}

// NewForwardIterator wraps a cursor representation.
func NewForwardIterator[Tag any, T EqCursor[T, E], E any](c T) ForwardIterator[Tag, T, E] {
	return ForwardIterator[Tag, T, E]{New[Tag](c)}
}

// Deref returns the addressed element.
func (it ForwardIterator[Tag, T, E]) Deref() *E { return it.value.Elem() }

// Inc advances the iterator by one.
func (it *ForwardIterator[Tag, T, E]) Inc() { it.value = it.value.Next() }

func (it ForwardIterator[Tag, T, E]) Equal(o ForwardIterator[Tag, T, E]) bool {
	return it.value == o.value
}
func (it ForwardIterator[Tag, T, E]) NotEqual(o ForwardIterator[Tag, T, E]) bool {
	return it.value != o.value
}

// Category returns CategoryForward.
func (ForwardIterator[Tag, T, E]) Category() IteratorCategory { return CategoryForward }

// BidirectionalIterator adds retreat-by-one to the forward set.
type BidirectionalIterator[Tag any, T EqBidiCursor[T, E], E any] struct {
	Typedef[Tag, T]
}

// NewBidirectionalIterator wraps a cursor representation.
func NewBidirectionalIterator[Tag any, T EqBidiCursor[T, E], E any](c T) BidirectionalIterator[Tag, T, E] {
	return BidirectionalIterator[Tag, T, E]{New[Tag](c)}
}

// Deref returns the addressed element.
func (it BidirectionalIterator[Tag, T, E]) Deref() *E { return it.value.Elem() }

// Inc advances the iterator by one.
func (it *BidirectionalIterator[Tag, T, E]) Inc() { it.value = it.value.Next() }

// Dec retreats the iterator by one.
func (it *BidirectionalIterator[Tag, T, E]) Dec() { it.value = it.value.Prev() }

func (it BidirectionalIterator[Tag, T, E]) Equal(o BidirectionalIterator[Tag, T, E]) bool {
	return it.value == o.value
}
func (it BidirectionalIterator[Tag, T, E]) NotEqual(o BidirectionalIterator[Tag, T, E]) bool {
	return it.value != o.value
}

// Category returns CategoryBidirectional.
func (BidirectionalIterator[Tag, T, E]) Category() IteratorCategory { return CategoryBidirectional }

// RandomAccessIterator adds subscript, relational comparison, and
// distance-typed movement to the bidirectional set.
type RandomAccessIterator[Tag any, T EqRandomCursor[T, E], E any] struct {
	Typedef[Tag, T]
}

// NewRandomAccessIterator wraps a cursor representation.
func NewRandomAccessIterator[Tag any, T EqRandomCursor[T, E], E any](c T) RandomAccessIterator[Tag, T, E] {
	return RandomAccessIterator[Tag, T, E]{New[Tag](c)}
}

// Deref returns the addressed element.
func (it RandomAccessIterator[Tag, T, E]) Deref() *E { return it.value.Elem() }

// At returns the element n steps away, `*(it + n)`.
func (it RandomAccessIterator[Tag, T, E]) At(n int) *E {
	return it.value.Seek(n).Elem()
}

// Inc advances the iterator by one.
func (it *RandomAccessIterator[Tag, T, E]) Inc() { it.value = it.value.Next() }

// Dec retreats the iterator by one.
func (it *RandomAccessIterator[Tag, T, E]) Dec() { it.value = it.value.Prev() }

// Advance moves the iterator by n steps in place, the compound form of Add
// and Sub.
func (it *RandomAccessIterator[Tag, T, E]) Advance(n int) {
	it.value = it.value.Seek(n)
}

// Add returns the iterator moved forward by n steps.
func (it RandomAccessIterator[Tag, T, E]) Add(n int) RandomAccessIterator[Tag, T, E] {
	return NewRandomAccessIterator[Tag, T, E](it.value.Seek(n))
}

// Sub returns the iterator moved backward by n steps.
func (it RandomAccessIterator[Tag, T, E]) Sub(n int) RandomAccessIterator[Tag, T, E] {
	return NewRandomAccessIterator[Tag, T, E](it.value.Seek(-n))
}

// Diff returns the distance `it - o`: how many increments move o onto it.
func (it RandomAccessIterator[Tag, T, E]) Diff(o RandomAccessIterator[Tag, T, E]) int {
	return o.value.Distance(it.value)
}

func (it RandomAccessIterator[Tag, T, E]) Equal(o RandomAccessIterator[Tag, T, E]) bool {
	return it.value == o.value
}
func (it RandomAccessIterator[Tag, T, E]) NotEqual(o RandomAccessIterator[Tag, T, E]) bool {
	return it.value != o.value
}

// Relational comparison agrees with the sign of the distance: it is less
// than o exactly when a positive number of increments reaches o.
func (it RandomAccessIterator[Tag, T, E]) Less(o RandomAccessIterator[Tag, T, E]) bool {
	return it.value.Distance(o.value) > 0
}
func (it RandomAccessIterator[Tag, T, E]) LessEqual(o RandomAccessIterator[Tag, T, E]) bool {
	return it.value.Distance(o.value) >= 0
}
func (it RandomAccessIterator[Tag, T, E]) Greater(o RandomAccessIterator[Tag, T, E]) bool {
	return it.value.Distance(o.value) < 0
}
func (it RandomAccessIterator[Tag, T, E]) GreaterEqual(o RandomAccessIterator[Tag, T, E]) bool {
	return it.value.Distance(o.value) <= 0
}

// Category returns CategoryRandomAccess.
func (RandomAccessIterator[Tag, T, E]) Category() IteratorCategory { return CategoryRandomAccess }
