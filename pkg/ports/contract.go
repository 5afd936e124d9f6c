package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// RunBoundaryMatcherContract runs a suite of tests to verify that a BoundaryMatcher
// implementation reports the expected boundaries as active and is deterministic.
func RunBoundaryMatcherContract(t *testing.T, m BoundaryMatcher, active, inactive []string) {
	t.Helper()

	t.Run("Active Boundaries", func(t *testing.T) {
		for _, b := range active {
			assert.True(t, m.Matches(b), "boundary %q should match", b)
		}
	})

	t.Run("Inactive Boundaries", func(t *testing.T) {
		for _, b := range inactive {
			assert.False(t, m.Matches(b), "boundary %q should not match", b)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		for _, b := range append(append([]string{}, active...), inactive...) {
			assert.Equal(t, m.Matches(b), m.Matches(b), "boundary %q changed between calls", b)
		}
	})
}
