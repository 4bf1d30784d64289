package collection

import (
	"sort"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// UntypedLabel holds a fixed set of inner containers keyed by name, like
// Label, but permits each inner to have a different shape. Merge checks
// each key's inner shape independently rather than requiring a single
// shape across the whole map.
type UntypedLabel struct {
	Values  map[string]core.Container
	entries float64
}

// NewUntypedLabel returns an UntypedLabel over entries, which must be
// non-empty. Unlike Label, inners need not share a shape.
func NewUntypedLabel(entries map[string]core.Container) (*UntypedLabel, error) {
	if len(entries) == 0 {
		return nil, invalidConstruction("UntypedLabel", "entries must be non-empty")
	}

	copied := make(map[string]core.Container, len(entries))
	for k, c := range entries {
		copied[k] = c
	}

	return &UntypedLabel{Values: copied}, nil
}

func (u *UntypedLabel) TypeName() string { return "UntypedLabel" }
func (u *UntypedLabel) Entries() float64 { return u.entries }

func (u *UntypedLabel) sortedKeys() []string {
	keys := make([]string, 0, len(u.Values))
	for k := range u.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func (u *UntypedLabel) Fill(datum interface{}, weight float64) error {
	for _, k := range u.sortedKeys() {
		if err := u.Values[k].Fill(datum, weight); err != nil {
			return err
		}
	}
	u.entries += weight

	return nil
}

func (u *UntypedLabel) Zero() core.Container {
	z := make(map[string]core.Container, len(u.Values))
	for k, c := range u.Values {
		z[k] = c.Zero()
	}

	return &UntypedLabel{Values: z}
}

func (u *UntypedLabel) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*UntypedLabel)
	if !ok || len(u.Values) != len(o.Values) {
		return nil, shapeMismatch("Merge", "UntypedLabel", "key sets differ")
	}

	merged := make(map[string]core.Container, len(u.Values))
	for k, c := range u.Values {
		oc, ok := o.Values[k]
		if !ok {
			return nil, shapeMismatch("Merge", "UntypedLabel", "key sets differ")
		}
		m, err := c.Merge(oc)
		if err != nil {
			return nil, err
		}
		merged[k] = m
	}

	return &UntypedLabel{Values: merged, entries: u.entries + o.entries}, nil
}

func (u *UntypedLabel) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*UntypedLabel)
	if !ok || len(u.Values) != len(o.Values) || !numeric.Equal(u.entries, o.entries, tol) {
		return false
	}
	for k, c := range u.Values {
		oc, ok := o.Values[k]
		if !ok || !c.Equals(oc, tol) {
			return false
		}
	}

	return true
}

type untypedLabelAggregation struct {
	Entries numeric.Number         `json:"entries"`
	Data    map[string]core.RawDoc `json:"data"`
}

func (u *UntypedLabel) ToAggregation() (interface{}, error) {
	agg := untypedLabelAggregation{Entries: numeric.Number(u.entries), Data: make(map[string]core.RawDoc, len(u.Values))}
	for _, k := range u.sortedKeys() {
		doc, err := core.ToRawDoc(u.Values[k])
		if err != nil {
			return nil, err
		}
		agg.Data[k] = doc
	}

	return agg, nil
}

// UntypedLabelFactory decodes UntypedLabel documents.
type UntypedLabelFactory struct{}

func (UntypedLabelFactory) TypeName() string { return "UntypedLabel" }

func (UntypedLabelFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg untypedLabelAggregation
	if err := decodeJSON(data, &agg, "UntypedLabel.data"); err != nil {
		return nil, err
	}

	entries := make(map[string]core.Container, len(agg.Data))
	for k, doc := range agg.Data {
		c, err := core.DecodeDoc(doc, reg)
		if err != nil {
			return nil, err
		}
		entries[k] = c
	}

	return &UntypedLabel{Values: entries, entries: agg.Entries.Float64()}, nil
}

func init() {
	_ = core.Default.Register("UntypedLabel", UntypedLabelFactory{})
}
