package scalar

import (
	"encoding/json"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Sum accumulates Σ w*x over all fills with weight > 0.
type Sum struct {
	Quantity core.Quantity
	sum      float64
	entries  float64
}

// NewSum returns an empty Sum gated by quantity.
func NewSum(quantity core.Quantity) *Sum { return &Sum{Quantity: quantity} }

func (s *Sum) TypeName() string { return "Sum" }
func (s *Sum) Entries() float64 { return s.entries }
func (s *Sum) Value() float64   { return s.sum }

func (s *Sum) Fill(datum interface{}, weight float64) error {
	x, err := s.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}
	if weight > 0 {
		s.sum += weight * x
	}
	s.entries += weight

	return nil
}

func (s *Sum) Zero() core.Container { return &Sum{Quantity: s.Quantity} }

func (s *Sum) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Sum)
	if !ok || !s.Quantity.Equal(o.Quantity) {
		return nil, shapeMismatch("Merge", "Sum")
	}

	return &Sum{Quantity: s.Quantity, sum: s.sum + o.sum, entries: s.entries + o.entries}, nil
}

func (s *Sum) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Sum)

	return ok && s.Quantity.Equal(o.Quantity) &&
		numeric.Equal(s.entries, o.entries, tol) && numeric.Equal(s.sum, o.sum, tol)
}

type sumAggregation struct {
	Entries numeric.Number `json:"entries"`
	Sum     numeric.Number `json:"sum"`
	Name    string         `json:"name,omitempty"`
}

func (s *Sum) ToAggregation() (interface{}, error) {
	return sumAggregation{Entries: numeric.Number(s.entries), Sum: numeric.Number(s.sum), Name: s.Quantity.Name}, nil
}

// SumFactory decodes Sum documents.
type SumFactory struct{}

func (SumFactory) TypeName() string { return "Sum" }

func (SumFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg sumAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Sum.data", err)
	}

	return &Sum{
		Quantity: core.New(agg.Name, nil),
		sum:      agg.Sum.Float64(),
		entries:  agg.Entries.Float64(),
	}, nil
}

func init() {
	_ = core.Default.Register("Sum", SumFactory{})
}
