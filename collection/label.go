package collection

import (
	"encoding/json"
	"sort"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Label holds a fixed set of same-shape inner containers keyed by name.
// Every fill is duplicated to every inner.
type Label struct {
	Values map[string]core.Container
	entries  float64
}

// NewLabel returns a Label over entries, which must be non-empty and
// structurally homogeneous (same shape at zero, independent of naming).
func NewLabel(entries map[string]core.Container) (*Label, error) {
	if len(entries) == 0 {
		return nil, invalidConstruction("Label", "entries must be non-empty")
	}

	var shape core.Container
	for _, c := range entries {
		if shape == nil {
			shape = c.Zero()
			continue
		}
		if !shape.Equals(c.Zero(), numeric.Default) {
			return nil, invalidConstruction("Label", "all inners must share the same shape")
		}
	}

	copied := make(map[string]core.Container, len(entries))
	for k, c := range entries {
		copied[k] = c
	}

	return &Label{Values: copied}, nil
}

func (l *Label) TypeName() string { return "Label" }
func (l *Label) Entries() float64 { return l.entries }

func (l *Label) sortedKeys() []string {
	keys := make([]string, 0, len(l.Values))
	for k := range l.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func (l *Label) Fill(datum interface{}, weight float64) error {
	for _, k := range l.sortedKeys() {
		if err := l.Values[k].Fill(datum, weight); err != nil {
			return err
		}
	}
	l.entries += weight

	return nil
}

func (l *Label) Zero() core.Container {
	z := make(map[string]core.Container, len(l.Values))
	for k, c := range l.Values {
		z[k] = c.Zero()
	}

	return &Label{Values: z}
}

func (l *Label) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Label)
	if !ok || len(l.Values) != len(o.Values) {
		return nil, shapeMismatch("Merge", "Label", "key sets differ")
	}

	merged := make(map[string]core.Container, len(l.Values))
	for k, c := range l.Values {
		oc, ok := o.Values[k]
		if !ok {
			return nil, shapeMismatch("Merge", "Label", "key sets differ")
		}
		m, err := c.Merge(oc)
		if err != nil {
			return nil, err
		}
		merged[k] = m
	}

	return &Label{Values: merged, entries: l.entries + o.entries}, nil
}

func (l *Label) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Label)
	if !ok || len(l.Values) != len(o.Values) || !numeric.Equal(l.entries, o.entries, tol) {
		return false
	}
	for k, c := range l.Values {
		oc, ok := o.Values[k]
		if !ok || !c.Equals(oc, tol) {
			return false
		}
	}

	return true
}

type labelAggregation struct {
	Entries numeric.Number             `json:"entries"`
	Type    string                     `json:"type"`
	Data    map[string]json.RawMessage `json:"data"`
}

func (l *Label) ToAggregation() (interface{}, error) {
	agg := labelAggregation{Entries: numeric.Number(l.entries), Data: make(map[string]json.RawMessage, len(l.Values))}
	for _, k := range l.sortedKeys() {
		c := l.Values[k]
		if agg.Type == "" {
			agg.Type = c.TypeName()
		}
		inner, err := c.ToAggregation()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(inner)
		if err != nil {
			return nil, core.NewFormatError("Label.data["+k+"]", err)
		}
		agg.Data[k] = data
	}

	return agg, nil
}

// LabelFactory decodes Label documents.
type LabelFactory struct{}

func (LabelFactory) TypeName() string { return "Label" }

func (LabelFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg labelAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Label.data", err)
	}

	entries := make(map[string]core.Container, len(agg.Data))
	for k, raw := range agg.Data {
		c, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.Type, Data: raw}, reg)
		if err != nil {
			return nil, err
		}
		entries[k] = c
	}

	return &Label{Values: entries, entries: agg.Entries.Float64()}, nil
}

func init() {
	_ = core.Default.Register("Label", LabelFactory{})
}
