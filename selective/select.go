package selective

import (
	"encoding/json"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Select forwards a fraction of each fill's weight to a single inner
// aggregator. The quantity is a numeric gate: w' = w*q(x). entries always
// accrues the original w; Cut only sees w' when w' > 0.
type Select struct {
	Quantity core.Quantity
	Cut      core.Container
	entries  float64
}

// NewSelect returns an empty Select gated by quantity, forwarding to a
// fresh copy of cut.
func NewSelect(quantity core.Quantity, cut core.Container) *Select {
	return &Select{Quantity: quantity, Cut: cut.Zero()}
}

func (s *Select) TypeName() string { return "Select" }
func (s *Select) Entries() float64 { return s.entries }

func (s *Select) Fill(datum interface{}, weight float64) error {
	q, err := s.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}

	if wPrime := weight * q; wPrime > 0 {
		if err := s.Cut.Fill(datum, wPrime); err != nil {
			return err
		}
	}
	s.entries += weight

	return nil
}

func (s *Select) Zero() core.Container {
	return &Select{Quantity: s.Quantity, Cut: s.Cut.Zero()}
}

func (s *Select) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Select)
	if !ok || !s.Quantity.Equal(o.Quantity) {
		return nil, shapeMismatch("Merge", "Select", "quantity differs")
	}

	cut, err := s.Cut.Merge(o.Cut)
	if err != nil {
		return nil, err
	}

	return &Select{Quantity: s.Quantity, Cut: cut, entries: s.entries + o.entries}, nil
}

func (s *Select) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Select)

	return ok && s.Quantity.Equal(o.Quantity) &&
		numeric.Equal(s.entries, o.entries, tol) && s.Cut.Equals(o.Cut, tol)
}

type selectAggregation struct {
	Entries numeric.Number  `json:"entries"`
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
	Name    string          `json:"name,omitempty"`
}

func (s *Select) ToAggregation() (interface{}, error) {
	inner, err := s.Cut.ToAggregation()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(inner)
	if err != nil {
		return nil, core.NewFormatError("Select.data", err)
	}

	return selectAggregation{
		Entries: numeric.Number(s.entries),
		Type:    s.Cut.TypeName(),
		Data:    data,
		Name:    s.Quantity.Name,
	}, nil
}

// SelectFactory decodes Select documents.
type SelectFactory struct{}

func (SelectFactory) TypeName() string { return "Select" }

func (SelectFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg selectAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Select.data", err)
	}

	cut, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.Type, Data: agg.Data}, reg)
	if err != nil {
		return nil, err
	}

	return &Select{Quantity: core.New(agg.Name, nil), Cut: cut, entries: agg.Entries.Float64()}, nil
}

func init() {
	_ = core.Default.Register("Select", SelectFactory{})
}
