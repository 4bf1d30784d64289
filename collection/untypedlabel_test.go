package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/histogrammar-go/histogrammar/collection"
	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/internal/proptest"
	"github.com/histogrammar-go/histogrammar/numeric"
	"github.com/histogrammar-go/histogrammar/scalar"
)

func TestUntypedLabel_PermitsHeterogeneousShapes(t *testing.T) {
	u, err := collection.NewUntypedLabel(map[string]core.Container{
		"count": scalar.NewCount(),
		"sum":   scalar.NewSum(identityQuantity()),
	})
	require.NoError(t, err)

	require.NoError(t, u.Fill(5.0, 1))

	assert.Equal(t, float64(1), u.Entries())
	assert.Equal(t, float64(1), u.Values["count"].Entries())
	assert.Equal(t, float64(1), u.Values["sum"].Entries())
}

func TestUntypedLabel_MergeKeySetMismatch(t *testing.T) {
	a, err := collection.NewUntypedLabel(map[string]core.Container{"a": scalar.NewCount()})
	require.NoError(t, err)
	b, err := collection.NewUntypedLabel(map[string]core.Container{"b": scalar.NewCount()})
	require.NoError(t, err)

	_, err = a.Merge(b)
	assert.ErrorIs(t, err, core.ErrShapeMismatch)
}

func TestUntypedLabel_MergeChecksEachKeyIndependently(t *testing.T) {
	a, err := collection.NewUntypedLabel(map[string]core.Container{
		"a": scalar.NewCount(),
		"b": scalar.NewSum(identityQuantity()),
	})
	require.NoError(t, err)
	b, err := collection.NewUntypedLabel(map[string]core.Container{
		"a": scalar.NewCount(),
		"b": scalar.NewAverage(identityQuantity()),
	})
	require.NoError(t, err)

	_, err = a.Merge(b)
	assert.Error(t, err)
}

func TestUntypedLabel_FillMergeEquivalence(t *testing.T) {
	zero, err := collection.NewUntypedLabel(map[string]core.Container{
		"a": scalar.NewSum(identityQuantity()),
		"b": scalar.NewCount(),
	})
	require.NoError(t, err)

	data := []proptest.Datum{
		{Value: 1.0, Weight: 1},
		{Value: -2.0, Weight: 2},
	}
	proptest.FillMergeEquivalence(t, zero, data, numeric.Default)
}

func TestUntypedLabel_EncodeDecodeRoundTrip(t *testing.T) {
	u, err := collection.NewUntypedLabel(map[string]core.Container{
		"count": scalar.NewCount(),
		"sum":   scalar.NewSum(identityQuantity()),
	})
	require.NoError(t, err)
	require.NoError(t, u.Fill(3.0, 1))

	raw, err := core.Encode(u)
	require.NoError(t, err)

	decoded, err := core.Decode(raw, core.Default)
	require.NoError(t, err)

	assert.True(t, u.Equals(decoded, numeric.Default))
}
