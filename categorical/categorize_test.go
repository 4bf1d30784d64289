package categorical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/histogrammar-go/histogrammar/categorical"
	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/internal/proptest"
	"github.com/histogrammar-go/histogrammar/numeric"
	"github.com/histogrammar-go/histogrammar/scalar"
)

func speciesQuantity() core.Quantity {
	return core.New("species", func(d interface{}) (interface{}, error) {
		return d.(string), nil
	})
}

func TestCategorize_LazyBins(t *testing.T) {
	c := categorical.NewCategorize(speciesQuantity(), scalar.NewCount())

	for _, s := range []string{"cat", "dog", "cat", "bird"} {
		require.NoError(t, c.Fill(s, 1))
	}

	assert.Equal(t, float64(4), c.Entries())
	assert.Equal(t, float64(2), c.Bin("cat").Entries())
	assert.Equal(t, float64(1), c.Bin("dog").Entries())
	assert.Equal(t, float64(1), c.Bin("bird").Entries())
	assert.Equal(t, float64(0), c.Bin("fish").Entries())
}

func TestCategorize_MergeShapeMismatch(t *testing.T) {
	a := categorical.NewCategorize(core.New("a", func(interface{}) (interface{}, error) { return "x", nil }), scalar.NewCount())
	b := categorical.NewCategorize(core.New("b", func(interface{}) (interface{}, error) { return "x", nil }), scalar.NewCount())

	_, err := a.Merge(b)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestCategorize_FillMergeEquivalence(t *testing.T) {
	identity := core.New("x", func(d interface{}) (interface{}, error) { return d.(float64), nil })
	zero := categorical.NewCategorize(
		core.New("key", func(d interface{}) (interface{}, error) { return "k", nil }),
		scalar.NewSum(identity),
	)

	data := []proptest.Datum{
		{Value: 1.0, Weight: 1},
		{Value: 2.0, Weight: 2},
	}
	proptest.FillMergeEquivalence(t, zero, data, numeric.Default)
}

func TestCategorize_EncodeDecodeRoundTrip(t *testing.T) {
	c := categorical.NewCategorize(speciesQuantity(), scalar.NewCount())
	for _, s := range []string{"cat", "dog", "cat"} {
		require.NoError(t, c.Fill(s, 1))
	}

	raw, err := core.Encode(c)
	require.NoError(t, err)

	decoded, err := core.Decode(raw, core.Default)
	require.NoError(t, err)

	assert.True(t, c.Equals(decoded, numeric.Default))
}

func TestCategorize_EncodeDecodeRoundTrip_NoBinsEverFilled(t *testing.T) {
	c := categorical.NewCategorize(speciesQuantity(), scalar.NewCount())

	raw, err := core.Encode(c)
	require.NoError(t, err)

	decoded, err := core.Decode(raw, core.Default)
	require.NoError(t, err)

	assert.True(t, c.Equals(decoded, numeric.Default))
	assert.Equal(t, float64(0), decoded.(*categorical.Categorize).Bin("anything").Entries())
}
