// Package strongtype provides strong typedefs: nominally distinct wrappers
// around an existing representation type.
//
// Unlike a plain `type Meters float64`, a strong typedef never converts
// implicitly to or from its representation, and two typedefs over the same
// representation never convert to each other. Distinctness comes from a
// phantom Tag type parameter:
//
//	type meters struct{}
//	type feet struct{}
//
//	type Meters = strongtype.FloatArithmetic[meters, float64]
//	type Feet = strongtype.FloatArithmetic[feet, float64]
//
// Meters and Feet are different types; mixing them is a compile error, and
// the only way in or out of the representation is the explicit accessor set
// (Get, Ref, Set, Release).
//
// The bare Typedef provides no operations. Operations are opted into by
// choosing a capability type: a generic struct that embeds the wrapper and
// contributes exactly one operator family (Equatable, Ordered, Additive,
// Bitmask, the iterator ladder, ...). Composite capabilities such as
// IntegerArithmetic bundle the families that make up a recognized semantic
// contract. Each capability forwards to the representation's own operators
// and introduces no policy of its own: overflow, truncation, and
// divide-by-zero behave exactly as they do on the representation.
//
// Everything here is resolved at compile time. Capabilities have no state
// and no runtime dispatch; the only state is the single representation value
// each wrapper instance owns. Wrappers are plain values: copying one copies
// the representation, there is no internal locking, and two goroutines may
// touch distinct instances under the same rules as distinct representation
// values.
//
// Note that Go's native struct equality still applies: when the
// representation is comparable, == works on any wrapper over it. That never
// weakens nominal distinctness (== only accepts two operands of the same
// type); the Equatable capability exists for mixed-value comparison and for
// use through interfaces.
package strongtype
