//go:build strongtype_noassert

package assert

// Enabled reports whether invariant checks are compiled in.
const Enabled = false
