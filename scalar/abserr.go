package scalar

import (
	"encoding/json"
	"math"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// AbsoluteErr is a Welford-style streaming weighted mean of |x| (the
// "mean absolute error" when the quantity is a residual).
type AbsoluteErr struct {
	Quantity core.Quantity
	mae      float64
	entries  float64
}

// NewAbsoluteErr returns an empty AbsoluteErr gated by quantity.
func NewAbsoluteErr(quantity core.Quantity) *AbsoluteErr { return &AbsoluteErr{Quantity: quantity} }

func (a *AbsoluteErr) TypeName() string { return "AbsoluteErr" }
func (a *AbsoluteErr) Entries() float64 { return a.entries }
func (a *AbsoluteErr) MAE() float64     { return a.mae }

func (a *AbsoluteErr) Fill(datum interface{}, weight float64) error {
	x, err := a.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}
	ax := math.Abs(x)

	if weight > 0 {
		newEntries := a.entries + weight
		if newEntries != 0 {
			a.mae += (weight / newEntries) * (ax - a.mae)
		}
		a.entries = newEntries
	} else {
		a.entries += weight
	}

	return nil
}

func (a *AbsoluteErr) Zero() core.Container { return &AbsoluteErr{Quantity: a.Quantity} }

func (a *AbsoluteErr) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*AbsoluteErr)
	if !ok || !a.Quantity.Equal(o.Quantity) {
		return nil, shapeMismatch("Merge", "AbsoluteErr")
	}

	entries := a.entries + o.entries
	var mae float64
	if entries != 0 {
		mae = (a.entries*a.mae + o.entries*o.mae) / entries
	}

	return &AbsoluteErr{Quantity: a.Quantity, mae: mae, entries: entries}, nil
}

func (a *AbsoluteErr) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*AbsoluteErr)

	return ok && a.Quantity.Equal(o.Quantity) &&
		numeric.Equal(a.entries, o.entries, tol) && numeric.Equal(a.mae, o.mae, tol)
}

type absoluteErrAggregation struct {
	Entries numeric.Number `json:"entries"`
	MAE     numeric.Number `json:"mae"`
	Name    string         `json:"name,omitempty"`
}

func (a *AbsoluteErr) ToAggregation() (interface{}, error) {
	return absoluteErrAggregation{Entries: numeric.Number(a.entries), MAE: numeric.Number(a.mae), Name: a.Quantity.Name}, nil
}

// AbsoluteErrFactory decodes AbsoluteErr documents.
type AbsoluteErrFactory struct{}

func (AbsoluteErrFactory) TypeName() string { return "AbsoluteErr" }

func (AbsoluteErrFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg absoluteErrAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("AbsoluteErr.data", err)
	}

	return &AbsoluteErr{Quantity: core.New(agg.Name, nil), mae: agg.MAE.Float64(), entries: agg.Entries.Float64()}, nil
}

func init() {
	_ = core.Default.Register("AbsoluteErr", AbsoluteErrFactory{})
}
