package core_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// fakeCounter is a minimal Container used only to exercise the document
// codec and registry dispatch in isolation from any real primitive.
type fakeCounter struct {
	entries numeric.Number
}

type fakeCounterAgg struct {
	Entries numeric.Number `json:"entries"`
}

func (c *fakeCounter) TypeName() string   { return "FakeCounter" }
func (c *fakeCounter) Entries() float64   { return float64(c.entries) }
func (c *fakeCounter) Zero() core.Container { return &fakeCounter{} }
func (c *fakeCounter) Fill(datum interface{}, weight float64) error {
	c.entries += numeric.Number(weight)
	return nil
}
func (c *fakeCounter) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*fakeCounter)
	if !ok {
		return nil, core.NewShapeMismatch("Merge", "FakeCounter", "not a FakeCounter")
	}
	return &fakeCounter{entries: c.entries + o.entries}, nil
}
func (c *fakeCounter) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*fakeCounter)
	return ok && numeric.Equal(float64(c.entries), float64(o.entries), tol)
}
func (c *fakeCounter) ToAggregation() (interface{}, error) {
	return fakeCounterAgg{Entries: c.entries}, nil
}

type fakeCounterFactory struct{}

func (fakeCounterFactory) TypeName() string { return "FakeCounter" }
func (fakeCounterFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg fakeCounterAgg
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("FakeCounter.data", err)
	}
	return &fakeCounter{entries: agg.Entries}, nil
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("FakeCounter", fakeCounterFactory{}))

	c := &fakeCounter{}
	require.NoError(t, c.Fill(nil, 1))
	require.NoError(t, c.Fill(nil, 1))
	require.NoError(t, c.Fill(nil, 1))

	raw, err := core.Encode(c)
	require.NoError(t, err)

	var doc core.RawDoc
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, "FakeCounter", doc.Type)

	decoded, err := core.Decode(raw, reg)
	require.NoError(t, err)
	assert.True(t, c.Equals(decoded, numeric.Default))

	if diff := cmp.Diff(float64(3), decoded.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_UnknownType(t *testing.T) {
	reg := core.NewRegistry()
	raw := []byte(`{"version":"1.0","type":"Nonexistent","data":{}}`)

	_, err := core.Decode(raw, reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownType)
}

func TestDecode_IncompatibleVersion(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("FakeCounter", fakeCounterFactory{}))

	raw := []byte(`{"version":"99.0","type":"FakeCounter","data":{"entries":1}}`)
	_, err := core.Decode(raw, reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrVersionIncompatible)
}

func TestDecode_OlderMinorVersionCompatible(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, reg.Register("FakeCounter", fakeCounterFactory{}))

	raw := []byte(`{"version":"1.0","type":"FakeCounter","data":{"entries":2}}`)
	c, err := core.Decode(raw, reg)
	require.NoError(t, err)
	assert.Equal(t, float64(2), c.Entries())
}

func TestDecode_MalformedDocument(t *testing.T) {
	reg := core.NewRegistry()
	_, err := core.Decode([]byte(`not json`), reg)
	require.Error(t, err)

	var fe *core.FormatError
	assert.ErrorAs(t, err, &fe)
}
