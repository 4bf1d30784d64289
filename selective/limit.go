package selective

import (
	"encoding/json"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Limit wraps an inner aggregator with an entries budget. Once a fill
// would push entries past Threshold, the container saturates: its inner
// content is discarded (reset to zero) and every later fill, including
// through merge, only advances entries. Saturation never reverses.
type Limit struct {
	Threshold float64
	Inner     core.Container
	Saturated bool
	entries   float64
}

// NewLimit returns an empty, non-saturated Limit wrapping a fresh copy
// of template.
func NewLimit(threshold float64, template core.Container) *Limit {
	return &Limit{Threshold: threshold, Inner: template.Zero()}
}

func (l *Limit) TypeName() string { return "Limit" }
func (l *Limit) Entries() float64 { return l.entries }

func (l *Limit) Fill(datum interface{}, weight float64) error {
	if l.Saturated {
		l.entries += weight

		return nil
	}

	if l.entries+weight <= l.Threshold {
		if err := l.Inner.Fill(datum, weight); err != nil {
			return err
		}
		l.entries += weight

		return nil
	}

	l.Saturated = true
	l.Inner = l.Inner.Zero()
	l.entries += weight

	return nil
}

func (l *Limit) Zero() core.Container {
	return &Limit{Threshold: l.Threshold, Inner: l.Inner.Zero()}
}

func (l *Limit) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Limit)
	if !ok || l.Threshold != o.Threshold {
		return nil, shapeMismatch("Merge", "Limit", "threshold differs")
	}

	mergedEntries := l.entries + o.entries
	if l.Saturated || o.Saturated || mergedEntries > l.Threshold {
		return &Limit{Threshold: l.Threshold, Inner: l.Inner.Zero(), Saturated: true, entries: mergedEntries}, nil
	}

	inner, err := l.Inner.Merge(o.Inner)
	if err != nil {
		return nil, err
	}

	return &Limit{Threshold: l.Threshold, Inner: inner, entries: mergedEntries}, nil
}

func (l *Limit) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Limit)
	if !ok || l.Threshold != o.Threshold || l.Saturated != o.Saturated || !numeric.Equal(l.entries, o.entries, tol) {
		return false
	}

	return l.Inner.Equals(o.Inner, tol)
}

type limitAggregation struct {
	Threshold numeric.Number `json:"threshold"`
	Entries   numeric.Number `json:"entries"`
	Saturated bool           `json:"saturated"`
	Inner     core.RawDoc    `json:"inner"`
}

func (l *Limit) ToAggregation() (interface{}, error) {
	inner, err := core.ToRawDoc(l.Inner)
	if err != nil {
		return nil, err
	}

	return limitAggregation{
		Threshold: numeric.Number(l.Threshold),
		Entries:   numeric.Number(l.entries),
		Saturated: l.Saturated,
		Inner:     inner,
	}, nil
}

// LimitFactory decodes Limit documents.
type LimitFactory struct{}

func (LimitFactory) TypeName() string { return "Limit" }

func (LimitFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg limitAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Limit.data", err)
	}

	inner, err := core.DecodeDoc(agg.Inner, reg)
	if err != nil {
		return nil, err
	}

	return &Limit{
		Threshold: agg.Threshold.Float64(),
		Inner:     inner,
		Saturated: agg.Saturated,
		entries:   agg.Entries.Float64(),
	}, nil
}

func init() {
	_ = core.Default.Register("Limit", LimitFactory{})
}
