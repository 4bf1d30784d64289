package scalar

import (
	"encoding/json"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Deviate is a Welford-style streaming weighted mean and variance.
// m2 accumulates Σ w*(x-mean)(x-mean'); Variance() = m2/entries.
// Merge uses Chan's parallel-variance formula.
type Deviate struct {
	Quantity core.Quantity
	mean     float64
	m2       float64
	entries  float64
}

// NewDeviate returns an empty Deviate gated by quantity.
func NewDeviate(quantity core.Quantity) *Deviate { return &Deviate{Quantity: quantity} }

func (d *Deviate) TypeName() string { return "Deviate" }
func (d *Deviate) Entries() float64 { return d.entries }
func (d *Deviate) Mean() float64    { return d.mean }

// Variance returns m2/entries, or 0 for an empty container.
func (d *Deviate) Variance() float64 {
	if d.entries == 0 {
		return 0
	}

	return d.m2 / d.entries
}

func (d *Deviate) Fill(datum interface{}, weight float64) error {
	x, err := d.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}

	if weight > 0 {
		newEntries := d.entries + weight
		if newEntries != 0 {
			delta := x - d.mean
			d.mean += (weight / newEntries) * delta
			d.m2 += weight * delta * (x - d.mean)
		}
		d.entries = newEntries
	} else {
		d.entries += weight
	}

	return nil
}

func (d *Deviate) Zero() core.Container { return &Deviate{Quantity: d.Quantity} }

func (d *Deviate) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Deviate)
	if !ok || !d.Quantity.Equal(o.Quantity) {
		return nil, shapeMismatch("Merge", "Deviate")
	}

	entries := d.entries + o.entries
	if entries == 0 {
		return &Deviate{Quantity: d.Quantity}, nil
	}

	delta := o.mean - d.mean
	mean := (d.entries*d.mean + o.entries*o.mean) / entries
	m2 := d.m2 + o.m2 + delta*delta*(d.entries*o.entries)/entries

	return &Deviate{Quantity: d.Quantity, mean: mean, m2: m2, entries: entries}, nil
}

func (d *Deviate) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Deviate)

	return ok && d.Quantity.Equal(o.Quantity) &&
		numeric.Equal(d.entries, o.entries, tol) &&
		numeric.Equal(d.mean, o.mean, tol) &&
		numeric.Equal(d.m2, o.m2, tol)
}

type deviateAggregation struct {
	Entries  numeric.Number `json:"entries"`
	Mean     numeric.Number `json:"mean"`
	Variance numeric.Number `json:"variance"`
	Name     string         `json:"name,omitempty"`
}

func (d *Deviate) ToAggregation() (interface{}, error) {
	return deviateAggregation{
		Entries:  numeric.Number(d.entries),
		Mean:     numeric.Number(d.mean),
		Variance: numeric.Number(d.Variance()),
		Name:     d.Quantity.Name,
	}, nil
}

// DeviateFactory decodes Deviate documents.
type DeviateFactory struct{}

func (DeviateFactory) TypeName() string { return "Deviate" }

func (DeviateFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg deviateAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Deviate.data", err)
	}

	return &Deviate{
		Quantity: core.New(agg.Name, nil),
		mean:     agg.Mean.Float64(),
		m2:       agg.Variance.Float64() * agg.Entries.Float64(),
		entries:  agg.Entries.Float64(),
	}, nil
}

func init() {
	_ = core.Default.Register("Deviate", DeviateFactory{})
}
