package scalar

import (
	"encoding/json"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Count accumulates total weight, optionally scaled per-fill by a
// transform quantity (spec.md §4.D: "optionally a scaling transform
// applied on fill"). With no transform, Count.Fill(x,w) simply adds w.
type Count struct {
	Transform core.Quantity // optional; Transform.Func==nil means multiplier 1.0
	entries   float64
}

// NewCount returns an empty, untransformed Count.
func NewCount() *Count { return &Count{} }

// NewCountWithTransform returns an empty Count whose per-fill increment
// is weight*transform(datum) instead of weight.
func NewCountWithTransform(transform core.Quantity) *Count {
	return &Count{Transform: transform}
}

func (c *Count) TypeName() string { return "Count" }
func (c *Count) Entries() float64 { return c.entries }

func (c *Count) Fill(datum interface{}, weight float64) error {
	mult := 1.0
	if c.Transform.Func != nil {
		m, err := c.Transform.AsFloat64(datum)
		if err != nil {
			return err
		}
		mult = m
	}
	c.entries += weight * mult

	return nil
}

func (c *Count) Zero() core.Container { return &Count{Transform: c.Transform} }

func (c *Count) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Count)
	if !ok || !c.Transform.Equal(o.Transform) {
		return nil, shapeMismatch("Merge", "Count")
	}

	return &Count{Transform: c.Transform, entries: c.entries + o.entries}, nil
}

func (c *Count) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Count)

	return ok && c.Transform.Equal(o.Transform) && numeric.Equal(c.entries, o.entries, tol)
}

type countAggregation struct {
	Entries numeric.Number `json:"entries"`
	Name    string         `json:"name,omitempty"`
}

func (c *Count) ToAggregation() (interface{}, error) {
	return countAggregation{Entries: numeric.Number(c.entries), Name: c.Transform.Name}, nil
}

// CountFactory decodes Count documents.
type CountFactory struct{}

func (CountFactory) TypeName() string { return "Count" }

func (CountFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg countAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Count.data", err)
	}
	c := &Count{entries: agg.Entries.Float64()}
	if agg.Name != "" {
		c.Transform = core.New(agg.Name, func(interface{}) (interface{}, error) { return 1.0, nil })
	}

	return c, nil
}

func init() {
	_ = core.Default.Register("Count", CountFactory{})
}
