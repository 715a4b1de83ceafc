//go:build unit || e2e

package testutil

import (
	"testing"

	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/require"
)

// Clone deep-copies a fixture so a test can mutate it without bleeding
// into sibling cases.
func Clone[T any](t *testing.T, src T) T {
	t.Helper()
	var dst T
	require.NoError(t, copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}))
	return dst
}
