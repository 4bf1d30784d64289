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

func TestCount_Fill(t *testing.T) {
	c := scalar.NewCount()
	require.NoError(t, c.Fill(nil, 1))
	require.NoError(t, c.Fill(nil, 1))
	require.NoError(t, c.Fill(nil, 0))
	assert.Equal(t, 2.0, c.Entries())
}

func TestCount_FillMergeEquivalence(t *testing.T) {
	data := make([]proptest.Datum, 0, 10)
	for i := 0; i < 10; i++ {
		data = append(data, proptest.Datum{Value: nil, Weight: 1})
	}
	proptest.FillMergeEquivalence(t, scalar.NewCount(), data, numeric.Default)
}

func TestCount_MergeIdentity(t *testing.T) {
	c := scalar.NewCount()
	require.NoError(t, c.Fill(nil, 3))

	merged, err := c.Merge(c.Zero())
	require.NoError(t, err)
	assert.True(t, c.Equals(merged, numeric.Default))
}

func TestCount_RoundTrip(t *testing.T) {
	c := scalar.NewCount()
	require.NoError(t, c.Fill(nil, 5))

	raw, err := core.Encode(c)
	require.NoError(t, err)

	decoded, err := core.Decode(raw, core.Default)
	require.NoError(t, err)
	assert.True(t, c.Equals(decoded, numeric.Default))
}

func TestCount_WithTransform(t *testing.T) {
	transform := core.New("double", func(d interface{}) (interface{}, error) { return 2.0, nil })
	c := scalar.NewCountWithTransform(transform)
	require.NoError(t, c.Fill(nil, 1))
	require.NoError(t, c.Fill(nil, 1))
	assert.Equal(t, 4.0, c.Entries())
}
