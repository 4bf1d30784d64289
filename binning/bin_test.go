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

func identityQuantity() core.Quantity {
	return core.New("x", func(d interface{}) (interface{}, error) {
		return d.(float64), nil
	})
}

func TestBin_WorkedExample(t *testing.T) {
	b, err := binning.NewBin(100, -3, 3, identityQuantity(), scalar.NewCount())
	require.NoError(t, err)

	for _, x := range []float64{-4.0, -3.0, 0.0, 2.9999999, 3.0, 5.0, math.NaN()} {
		require.NoError(t, b.Fill(x, 1))
	}

	assert.Equal(t, float64(7), b.Entries())
	assert.Equal(t, float64(1), b.Underflow.Entries())
	assert.Equal(t, float64(2), b.Overflow.Entries())
	assert.Equal(t, float64(1), b.Nanflow.Entries())
	assert.Equal(t, float64(1), b.Values[0].Entries())
	assert.Equal(t, float64(1), b.Values[50].Entries())
	assert.Equal(t, float64(1), b.Values[99].Entries())
}

func TestBin_ConstructorValidation(t *testing.T) {
	_, err := binning.NewBin(0, 0, 1, identityQuantity(), scalar.NewCount())
	assert.Error(t, err)

	_, err = binning.NewBin(10, 1, 1, identityQuantity(), scalar.NewCount())
	assert.Error(t, err)
}

func TestBin_MergeShapeMismatch(t *testing.T) {
	a, err := binning.NewBin(10, 0, 1, identityQuantity(), scalar.NewCount())
	require.NoError(t, err)
	b, err := binning.NewBin(20, 0, 1, identityQuantity(), scalar.NewCount())
	require.NoError(t, err)

	_, err = a.Merge(b)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestBin_FillMergeEquivalence(t *testing.T) {
	zero, err := binning.NewBin(10, -5, 5, identityQuantity(), scalar.NewSum(identityQuantity()))
	require.NoError(t, err)

	data := []proptest.Datum{
		{Value: -8.0, Weight: 1},
		{Value: -1.0, Weight: 2},
		{Value: 0.0, Weight: 1},
		{Value: 3.5, Weight: 1.5},
		{Value: 9.0, Weight: 1},
	}
	proptest.FillMergeEquivalence(t, zero, data, numeric.Default)
}

func TestBin_EncodeDecodeRoundTrip(t *testing.T) {
	b, err := binning.NewBin(4, 0, 4, identityQuantity(), scalar.NewCount())
	require.NoError(t, err)
	for _, x := range []float64{0.5, 1.5, 2.5, 3.5, -1, 10} {
		require.NoError(t, b.Fill(x, 1))
	}

	raw, err := core.Encode(b)
	require.NoError(t, err)

	decoded, err := core.Decode(raw, core.Default)
	require.NoError(t, err)

	assert.True(t, b.Equals(decoded, numeric.Default))
}
