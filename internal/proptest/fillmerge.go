// Package proptest supplies the generic fill/merge equivalence check used
// across the primitives' test suites (every primitive except Limit):
// filling one container with a whole
// dataset must equal merging two containers filled with a left/right split
// of that dataset, at every possible split point. This mirrors the
// systematic split-point fuzzing in original_source/test/testnumpy.py,
// generalized to any core.Container rather than one primitive at a time.
package proptest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Datum pairs one observation with its fill weight.
type Datum struct {
	Value  interface{}
	Weight float64
}

// FillMergeEquivalence checks, for every split point 0..len(data), that
// filling one zero() with the whole dataset equals merging a zero()
// filled with data[:i] and a zero() filled with data[i:].
func FillMergeEquivalence(t *testing.T, zero core.Container, data []Datum, tol numeric.Tolerance) {
	t.Helper()

	whole := zero.Zero()
	for _, d := range data {
		require.NoError(t, whole.Fill(d.Value, d.Weight))
	}

	for i := 0; i <= len(data); i++ {
		left := zero.Zero()
		for _, d := range data[:i] {
			require.NoError(t, left.Fill(d.Value, d.Weight))
		}

		right := zero.Zero()
		for _, d := range data[i:] {
			require.NoError(t, right.Fill(d.Value, d.Weight))
		}

		merged, err := left.Merge(right)
		require.NoError(t, err, "merge at split %d", i)
		require.True(t, whole.Equals(merged, tol), "split %d: fill/merge mismatch", i)
	}
}
