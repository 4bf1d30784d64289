package collection

import (
	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Branch holds a fixed-length, ordered tuple of inner containers that
// may each have a different shape. Every fill is duplicated to every
// slot; merge requires equal length and checks each slot's shape
// independently.
type Branch struct {
	Values  []core.Container
	entries float64
}

// NewBranch returns a Branch over values, which must be non-empty.
func NewBranch(values []core.Container) (*Branch, error) {
	if len(values) == 0 {
		return nil, invalidConstruction("Branch", "values must be non-empty")
	}

	return &Branch{Values: append([]core.Container(nil), values...)}, nil
}

func (b *Branch) TypeName() string { return "Branch" }
func (b *Branch) Entries() float64 { return b.entries }

func (b *Branch) Fill(datum interface{}, weight float64) error {
	for _, c := range b.Values {
		if err := c.Fill(datum, weight); err != nil {
			return err
		}
	}
	b.entries += weight

	return nil
}

func (b *Branch) Zero() core.Container {
	z := make([]core.Container, len(b.Values))
	for i, c := range b.Values {
		z[i] = c.Zero()
	}

	return &Branch{Values: z}
}

func (b *Branch) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Branch)
	if !ok || len(b.Values) != len(o.Values) {
		return nil, shapeMismatch("Merge", "Branch", "length differs")
	}

	merged := make([]core.Container, len(b.Values))
	for i, c := range b.Values {
		m, err := c.Merge(o.Values[i])
		if err != nil {
			return nil, err
		}
		merged[i] = m
	}

	return &Branch{Values: merged, entries: b.entries + o.entries}, nil
}

func (b *Branch) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Branch)
	if !ok || len(b.Values) != len(o.Values) || !numeric.Equal(b.entries, o.entries, tol) {
		return false
	}
	for i, c := range b.Values {
		if !c.Equals(o.Values[i], tol) {
			return false
		}
	}

	return true
}

type branchAggregation struct {
	Entries numeric.Number `json:"entries"`
	Data    []core.RawDoc  `json:"data"`
}

func (b *Branch) ToAggregation() (interface{}, error) {
	agg := branchAggregation{Entries: numeric.Number(b.entries), Data: make([]core.RawDoc, len(b.Values))}
	for i, c := range b.Values {
		doc, err := core.ToRawDoc(c)
		if err != nil {
			return nil, err
		}
		agg.Data[i] = doc
	}

	return agg, nil
}

// BranchFactory decodes Branch documents.
type BranchFactory struct{}

func (BranchFactory) TypeName() string { return "Branch" }

func (BranchFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg branchAggregation
	if err := decodeJSON(data, &agg, "Branch.data"); err != nil {
		return nil, err
	}

	values := make([]core.Container, len(agg.Data))
	for i, doc := range agg.Data {
		c, err := core.DecodeDoc(doc, reg)
		if err != nil {
			return nil, err
		}
		values[i] = c
	}

	return &Branch{Values: values, entries: agg.Entries.Float64()}, nil
}

func init() {
	_ = core.Default.Register("Branch", BranchFactory{})
}
