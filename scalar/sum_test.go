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

func identityQuantity() core.Quantity {
	return core.New("x", func(d interface{}) (interface{}, error) { return d.(float64), nil })
}

func TestSum_Fill(t *testing.T) {
	s := scalar.NewSum(identityQuantity())
	for _, x := range []float64{1, 2, 3, 4} {
		require.NoError(t, s.Fill(x, 1))
	}
	assert.Equal(t, 10.0, s.Value())
	assert.Equal(t, 4.0, s.Entries())
}

func TestSum_ZeroWeightNoOp(t *testing.T) {
	s := scalar.NewSum(identityQuantity())
	require.NoError(t, s.Fill(100.0, 0))
	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, 0.0, s.Entries())
}

func TestSum_NegativeWeightSkipsSumButAdvancesEntries(t *testing.T) {
	s := scalar.NewSum(identityQuantity())
	require.NoError(t, s.Fill(100.0, -2))
	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, -2.0, s.Entries())
}

func TestSum_FillMergeEquivalence(t *testing.T) {
	data := []proptest.Datum{
		{Value: 1.0, Weight: 1}, {Value: -3.0, Weight: 2}, {Value: 5.5, Weight: 1},
		{Value: 0.0, Weight: 1}, {Value: 42.0, Weight: 0.5},
	}
	proptest.FillMergeEquivalence(t, scalar.NewSum(identityQuantity()), data, numeric.Default)
}

func TestSum_ShapeMismatch(t *testing.T) {
	a := scalar.NewSum(core.New("a", func(d interface{}) (interface{}, error) { return 0.0, nil }))
	b := scalar.NewSum(core.New("b", func(d interface{}) (interface{}, error) { return 0.0, nil }))

	_, err := a.Merge(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestSum_RoundTrip(t *testing.T) {
	s := scalar.NewSum(identityQuantity())
	require.NoError(t, s.Fill(3.0, 1))
	require.NoError(t, s.Fill(4.0, 1))

	raw, err := core.Encode(s)
	require.NoError(t, err)
	decoded, err := core.Decode(raw, core.Default)
	require.NoError(t, err)
	assert.True(t, s.Equals(decoded, numeric.Default))
}
