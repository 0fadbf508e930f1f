package assert

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThatHolds(t *testing.T) {
	tassert.True(t, That(true, "never reported"))
}

func TestThatFails(t *testing.T) {
	if !Enabled {
		t.Skip("checks disabled in this build")
	}

	defer func() {
		r := recover()
		require.NotNil(t, r, "a failed check must terminate")
		msg, ok := r.(string)
		require.True(t, ok)
		tassert.Contains(t, msg, "assertion failed: boom")
		tassert.Contains(t, msg, "assert_test.go", "report carries the caller's location")
	}()

	That(false, "boom")
}

func TestThatfFormats(t *testing.T) {
	if !Enabled {
		t.Skip("checks disabled in this build")
	}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		tassert.Contains(t, r.(string), "index 7 out of range 3")
	}()

	Thatf(false, "index %d out of range %d", 7, 3)
}

func TestThatfHoldsWithoutFormatting(t *testing.T) {
	tassert.True(t, Thatf(true, "unused %d", 1))
}

func TestUnreachable(t *testing.T) {
	if !Enabled {
		Unreachable("fine when disabled")
		return
	}

	require.Panics(t, func() { Unreachable("hit") })
}

func TestUsableInExpressionPosition(t *testing.T) {
	// The check returns a value so guarded expressions type-check in
	// both build variants.
	ok := That(1+1 == 2, "arithmetic") && That(true, "still true")
	tassert.True(t, ok)
}
