package collection

import (
	"encoding/json"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Index holds a fixed-length, ordered array of same-shape inner
// containers. Every fill is duplicated to every slot.
type Index struct {
	Values  []core.Container
	entries float64
}

// NewIndex returns an Index over values, which must be non-empty and
// structurally homogeneous.
func NewIndex(values []core.Container) (*Index, error) {
	if len(values) == 0 {
		return nil, invalidConstruction("Index", "values must be non-empty")
	}

	shape := values[0].Zero()
	for _, c := range values[1:] {
		if !shape.Equals(c.Zero(), numeric.Default) {
			return nil, invalidConstruction("Index", "all slots must share the same shape")
		}
	}

	return &Index{Values: append([]core.Container(nil), values...)}, nil
}

func (idx *Index) TypeName() string { return "Index" }
func (idx *Index) Entries() float64 { return idx.entries }

func (idx *Index) Fill(datum interface{}, weight float64) error {
	for _, c := range idx.Values {
		if err := c.Fill(datum, weight); err != nil {
			return err
		}
	}
	idx.entries += weight

	return nil
}

func (idx *Index) Zero() core.Container {
	z := make([]core.Container, len(idx.Values))
	for i, c := range idx.Values {
		z[i] = c.Zero()
	}

	return &Index{Values: z}
}

func (idx *Index) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Index)
	if !ok || len(idx.Values) != len(o.Values) {
		return nil, shapeMismatch("Merge", "Index", "length differs")
	}

	merged := make([]core.Container, len(idx.Values))
	for i, c := range idx.Values {
		m, err := c.Merge(o.Values[i])
		if err != nil {
			return nil, err
		}
		merged[i] = m
	}

	return &Index{Values: merged, entries: idx.entries + o.entries}, nil
}

func (idx *Index) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Index)
	if !ok || len(idx.Values) != len(o.Values) || !numeric.Equal(idx.entries, o.entries, tol) {
		return false
	}
	for i, c := range idx.Values {
		if !c.Equals(o.Values[i], tol) {
			return false
		}
	}

	return true
}

type indexAggregation struct {
	Entries numeric.Number    `json:"entries"`
	Type    string            `json:"type"`
	Data    []json.RawMessage `json:"data"`
}

func (idx *Index) ToAggregation() (interface{}, error) {
	agg := indexAggregation{Entries: numeric.Number(idx.entries), Data: make([]json.RawMessage, len(idx.Values))}
	if len(idx.Values) > 0 {
		agg.Type = idx.Values[0].TypeName()
	}
	for i, c := range idx.Values {
		inner, err := c.ToAggregation()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(inner)
		if err != nil {
			return nil, core.NewFormatError("Index.data", err)
		}
		agg.Data[i] = data
	}

	return agg, nil
}

// IndexFactory decodes Index documents.
type IndexFactory struct{}

func (IndexFactory) TypeName() string { return "Index" }

func (IndexFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg indexAggregation
	if err := decodeJSON(data, &agg, "Index.data"); err != nil {
		return nil, err
	}

	values := make([]core.Container, len(agg.Data))
	for i, raw := range agg.Data {
		c, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.Type, Data: raw}, reg)
		if err != nil {
			return nil, err
		}
		values[i] = c
	}

	return &Index{Values: values, entries: agg.Entries.Float64()}, nil
}

func init() {
	_ = core.Default.Register("Index", IndexFactory{})
}
