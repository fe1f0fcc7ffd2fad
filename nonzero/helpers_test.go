package nonzero

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// requireAssertionPanic checks that f panics with an assertion failure caused by the given error.
func requireAssertionPanic(t *testing.T, cause error, f func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic caused by %v", cause)

		err, isError := recovered.(error)
		require.True(t, isError, "panic value should be an error")
		require.True(t, errors.HasAssertionFailure(err), "panic should be an assertion failure")
		require.True(t, errors.Is(err, cause), "panic should be caused by %v", cause)
	}()

	f()
}
