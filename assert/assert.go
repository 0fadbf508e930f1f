// Package assert is the invariant-check collaborator consumed by the
// strongtype packages. It provides exactly one operation: evaluate a
// condition and, when it does not hold, report the caller's location and a
// message, then terminate.
//
// Checks are compiled in by default. Building with the strongtype_noassert
// tag turns every check into a no-op that still type-checks and returns its
// default result, so guarded code needs no conditional compilation of its
// own. Enabled reports which variant is in effect.
//
// Termination is by panic, Go's report-and-terminate: the message carries
// the failing call site, and an unrecovered panic unwinds to a process
// abort.
package assert

import (
	"fmt"
	"runtime"
)

// That checks cond. When checks are enabled and cond is false it panics
// with the caller's file:line and msg. It returns true in every other case,
// including the disabled build, so it can be used in expression position.
func That(cond bool, msg string) bool {
	if !Enabled || cond {
		return true
	}
	panic(failure(msg))
}

// Thatf is That with a formatted message. The message is only formatted
// when the check fails.
func Thatf(cond bool, format string, args ...any) bool {
	if !Enabled || cond {
		return true
	}
	panic(failure(fmt.Sprintf(format, args...)))
}

// Unreachable marks a code path that must never execute. In the disabled
// build it is a no-op.
func Unreachable(msg string) {
	if Enabled {
		panic(failure("unreachable: " + msg))
	}
}

// failure formats the report for a failed check, attributing it to the
// caller of the exported function two frames up.
func failure(msg string) string {
	if _, file, line, ok := runtime.Caller(2); ok {
		return fmt.Sprintf("%s:%d: assertion failed: %s", file, line, msg)
	}
	return "assertion failed: " + msg
}
