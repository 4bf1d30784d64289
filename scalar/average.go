package scalar

import (
	"encoding/json"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Average is a Welford-style streaming weighted mean (Tony Finch's
// incremental formula): mean += (w/entries') * (x - mean).
type Average struct {
	Quantity core.Quantity
	mean     float64
	entries  float64
}

// NewAverage returns an empty Average gated by quantity.
func NewAverage(quantity core.Quantity) *Average { return &Average{Quantity: quantity} }

func (a *Average) TypeName() string { return "Average" }
func (a *Average) Entries() float64 { return a.entries }
func (a *Average) Mean() float64    { return a.mean }

func (a *Average) Fill(datum interface{}, weight float64) error {
	x, err := a.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}

	if weight > 0 {
		newEntries := a.entries + weight
		if newEntries != 0 {
			a.mean += (weight / newEntries) * (x - a.mean)
		}
		a.entries = newEntries
	} else {
		a.entries += weight
	}

	return nil
}

func (a *Average) Zero() core.Container { return &Average{Quantity: a.Quantity} }

func (a *Average) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Average)
	if !ok || !a.Quantity.Equal(o.Quantity) {
		return nil, shapeMismatch("Merge", "Average")
	}

	entries := a.entries + o.entries
	var mean float64
	if entries != 0 {
		mean = (a.entries*a.mean + o.entries*o.mean) / entries
	}

	return &Average{Quantity: a.Quantity, mean: mean, entries: entries}, nil
}

func (a *Average) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Average)

	return ok && a.Quantity.Equal(o.Quantity) &&
		numeric.Equal(a.entries, o.entries, tol) && numeric.Equal(a.mean, o.mean, tol)
}

type averageAggregation struct {
	Entries numeric.Number `json:"entries"`
	Mean    numeric.Number `json:"mean"`
	Name    string         `json:"name,omitempty"`
}

func (a *Average) ToAggregation() (interface{}, error) {
	return averageAggregation{Entries: numeric.Number(a.entries), Mean: numeric.Number(a.mean), Name: a.Quantity.Name}, nil
}

// AverageFactory decodes Average documents.
type AverageFactory struct{}

func (AverageFactory) TypeName() string { return "Average" }

func (AverageFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg averageAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Average.data", err)
	}

	return &Average{Quantity: core.New(agg.Name, nil), mean: agg.Mean.Float64(), entries: agg.Entries.Float64()}, nil
}

func init() {
	_ = core.Default.Register("Average", AverageFactory{})
}
