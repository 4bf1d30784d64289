package binning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/histogrammar-go/histogrammar/binning"
	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/internal/proptest"
	"github.com/histogrammar-go/histogrammar/numeric"
	"github.com/histogrammar-go/histogrammar/scalar"
)

func TestCentrallyBin_NearestCenterRouting(t *testing.T) {
	c, err := binning.NewCentrallyBin([]float64{10, -10, 0}, identityQuantity(), scalar.NewCount())
	require.NoError(t, err)

	for _, x := range []float64{-7, 3, 5, 100, math.NaN()} {
		require.NoError(t, c.Fill(x, 1))
	}

	assert.Equal(t, []float64{-10, 0, 10}, c.Centers)
	assert.Equal(t, float64(5), c.Entries())
	assert.Equal(t, float64(1), c.Nanflow.Entries())
	// -7 -> -10, {3,5} -> 0 (tie at 5 breaks to the lower center), 100 -> 10
	assert.Equal(t, float64(1), c.Values[0].Entries())
	assert.Equal(t, float64(2), c.Values[1].Entries())
	assert.Equal(t, float64(1), c.Values[2].Entries())
}

func TestCentrallyBin_ConstructorValidation(t *testing.T) {
	_, err := binning.NewCentrallyBin(nil, identityQuantity(), scalar.NewCount())
	assert.Error(t, err)

	_, err = binning.NewCentrallyBin([]float64{1, 1}, identityQuantity(), scalar.NewCount())
	assert.Error(t, err)
}

func TestCentrallyBin_MergeShapeMismatch(t *testing.T) {
	a, err := binning.NewCentrallyBin([]float64{0, 1}, identityQuantity(), scalar.NewCount())
	require.NoError(t, err)
	b, err := binning.NewCentrallyBin([]float64{0, 2}, identityQuantity(), scalar.NewCount())
	require.NoError(t, err)

	_, err = a.Merge(b)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestCentrallyBin_FillMergeEquivalence(t *testing.T) {
	zero, err := binning.NewCentrallyBin([]float64{-5, 0, 5, 15}, identityQuantity(), scalar.NewSum(identityQuantity()))
	require.NoError(t, err)

	data := []proptest.Datum{
		{Value: -6.0, Weight: 1},
		{Value: -1.0, Weight: 2},
		{Value: 2.5, Weight: 1},
		{Value: 20.0, Weight: 1.5},
	}
	proptest.FillMergeEquivalence(t, zero, data, numeric.Default)
}

func TestCentrallyBin_EncodeDecodeRoundTrip(t *testing.T) {
	c, err := binning.NewCentrallyBin([]float64{-1, 1}, identityQuantity(), scalar.NewCount())
	require.NoError(t, err)
	for _, x := range []float64{-2, 0, 2} {
		require.NoError(t, c.Fill(x, 1))
	}

	raw, err := core.Encode(c)
	require.NoError(t, err)

	decoded, err := core.Decode(raw, core.Default)
	require.NoError(t, err)

	assert.True(t, c.Equals(decoded, numeric.Default))
}
