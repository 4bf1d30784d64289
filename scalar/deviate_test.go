package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/internal/proptest"
	"github.com/histogrammar-go/histogrammar/numeric"
	"github.com/histogrammar-go/histogrammar/scalar"
)

func TestDeviate_MeanAndVariance(t *testing.T) {
	d := scalar.NewDeviate(identityQuantity())
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		require.NoError(t, d.Fill(x, 1))
	}
	assert.InDelta(t, 5.0, d.Mean(), 1e-9)
	assert.InDelta(t, 4.0, d.Variance(), 1e-9) // population variance
}

func TestDeviate_FillMergeEquivalence(t *testing.T) {
	data := []proptest.Datum{
		{Value: 2.0, Weight: 1}, {Value: 4.0, Weight: 1}, {Value: 4.0, Weight: 1},
		{Value: 4.0, Weight: 1}, {Value: 5.0, Weight: 1}, {Value: 5.0, Weight: 1},
		{Value: 7.0, Weight: 1}, {Value: 9.0, Weight: 1},
	}
	proptest.FillMergeEquivalence(t, scalar.NewDeviate(identityQuantity()), data, numeric.Default)
}

func TestDeviate_NegativeWeightSkipsUpdate(t *testing.T) {
	d := scalar.NewDeviate(identityQuantity())
	require.NoError(t, d.Fill(5.0, 1))
	meanBefore, varBefore := d.Mean(), d.Variance()
	require.NoError(t, d.Fill(1000.0, -1))
	assert.Equal(t, meanBefore, d.Mean())
	assert.Equal(t, varBefore, d.Variance())
	assert.Equal(t, 0.0, d.Entries())
}

func TestDeviate_RoundTrip(t *testing.T) {
	d := scalar.NewDeviate(identityQuantity())
	for _, x := range []float64{1, 2, 3, 4, 5} {
		require.NoError(t, d.Fill(x, 1))
	}

	raw, err := core.Encode(d)
	require.NoError(t, err)
	decoded, err := core.Decode(raw, core.Default)
	require.NoError(t, err)
	assert.True(t, d.Equals(decoded, numeric.Default))
}
