package selective

import (
	"encoding/json"
	"math"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Fraction runs the same observation through two inner aggregators of
// identical shape: denominator sees every fill unweighted by the gate,
// numerator sees it weighted by q when q > 0. FractionPassing reports
// numerator.Entries()/denominator.Entries().
type Fraction struct {
	Quantity    core.Quantity
	Numerator   core.Container
	Denominator core.Container
	entries     float64
}

// NewFraction returns an empty Fraction gated by quantity, with both
// inners starting from fresh copies of template.
func NewFraction(quantity core.Quantity, template core.Container) *Fraction {
	return &Fraction{Quantity: quantity, Numerator: template.Zero(), Denominator: template.Zero()}
}

func (f *Fraction) TypeName() string { return "Fraction" }
func (f *Fraction) Entries() float64 { return f.entries }

// FractionPassing returns numerator.Entries()/denominator.Entries(), or
// NaN if the denominator has seen no weight.
func (f *Fraction) FractionPassing() float64 {
	d := f.Denominator.Entries()
	if d == 0 {
		return math.NaN()
	}

	return f.Numerator.Entries() / d
}

func (f *Fraction) Fill(datum interface{}, weight float64) error {
	q, err := f.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}

	if err := f.Denominator.Fill(datum, weight); err != nil {
		return err
	}
	if wPrime := weight * q; wPrime > 0 {
		if err := f.Numerator.Fill(datum, wPrime); err != nil {
			return err
		}
	}
	f.entries += weight

	return nil
}

func (f *Fraction) Zero() core.Container {
	return &Fraction{Quantity: f.Quantity, Numerator: f.Numerator.Zero(), Denominator: f.Denominator.Zero()}
}

func (f *Fraction) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Fraction)
	if !ok || !f.Quantity.Equal(o.Quantity) {
		return nil, shapeMismatch("Merge", "Fraction", "quantity differs")
	}

	num, err := f.Numerator.Merge(o.Numerator)
	if err != nil {
		return nil, err
	}
	den, err := f.Denominator.Merge(o.Denominator)
	if err != nil {
		return nil, err
	}

	return &Fraction{Quantity: f.Quantity, Numerator: num, Denominator: den, entries: f.entries + o.entries}, nil
}

func (f *Fraction) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Fraction)

	return ok && f.Quantity.Equal(o.Quantity) && numeric.Equal(f.entries, o.entries, tol) &&
		f.Numerator.Equals(o.Numerator, tol) && f.Denominator.Equals(o.Denominator, tol)
}

type fractionAggregation struct {
	Entries     numeric.Number  `json:"entries"`
	Sub         string          `json:"sub"`
	Numerator   json.RawMessage `json:"numerator"`
	Denominator json.RawMessage `json:"denominator"`
	Name        string          `json:"name,omitempty"`
}

func (f *Fraction) ToAggregation() (interface{}, error) {
	numAgg, err := f.Numerator.ToAggregation()
	if err != nil {
		return nil, err
	}
	numData, err := json.Marshal(numAgg)
	if err != nil {
		return nil, core.NewFormatError("Fraction.numerator", err)
	}

	denAgg, err := f.Denominator.ToAggregation()
	if err != nil {
		return nil, err
	}
	denData, err := json.Marshal(denAgg)
	if err != nil {
		return nil, core.NewFormatError("Fraction.denominator", err)
	}

	return fractionAggregation{
		Entries:     numeric.Number(f.entries),
		Sub:         f.Denominator.TypeName(),
		Numerator:   numData,
		Denominator: denData,
		Name:        f.Quantity.Name,
	}, nil
}

// FractionFactory decodes Fraction documents.
type FractionFactory struct{}

func (FractionFactory) TypeName() string { return "Fraction" }

func (FractionFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg fractionAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Fraction.data", err)
	}

	num, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.Sub, Data: agg.Numerator}, reg)
	if err != nil {
		return nil, err
	}
	den, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.Sub, Data: agg.Denominator}, reg)
	if err != nil {
		return nil, err
	}

	return &Fraction{
		Quantity:    core.New(agg.Name, nil),
		Numerator:   num,
		Denominator: den,
		entries:     agg.Entries.Float64(),
	}, nil
}

func init() {
	_ = core.Default.Register("Fraction", FractionFactory{})
}
