package scalar

import (
	"encoding/json"
	"math"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Minimize tracks the running minimum of the quantity, initialized to
// +Inf (the identity element under Merge's math.Min).
type Minimize struct {
	Quantity core.Quantity
	min      float64
	entries  float64
}

// NewMinimize returns an empty Minimize gated by quantity.
func NewMinimize(quantity core.Quantity) *Minimize {
	return &Minimize{Quantity: quantity, min: math.Inf(1)}
}

func (m *Minimize) TypeName() string { return "Minimize" }
func (m *Minimize) Entries() float64 { return m.entries }
func (m *Minimize) Min() float64     { return m.min }

func (m *Minimize) Fill(datum interface{}, weight float64) error {
	x, err := m.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}
	if weight > 0 && x < m.min {
		m.min = x
	}
	m.entries += weight

	return nil
}

func (m *Minimize) Zero() core.Container {
	return &Minimize{Quantity: m.Quantity, min: math.Inf(1)}
}

func (m *Minimize) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Minimize)
	if !ok || !m.Quantity.Equal(o.Quantity) {
		return nil, shapeMismatch("Merge", "Minimize")
	}

	return &Minimize{Quantity: m.Quantity, min: math.Min(m.min, o.min), entries: m.entries + o.entries}, nil
}

func (m *Minimize) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Minimize)

	return ok && m.Quantity.Equal(o.Quantity) &&
		numeric.Equal(m.entries, o.entries, tol) && numeric.Equal(m.min, o.min, tol)
}

type minimizeAggregation struct {
	Entries numeric.Number `json:"entries"`
	Min     numeric.Number `json:"min"`
	Name    string         `json:"name,omitempty"`
}

func (m *Minimize) ToAggregation() (interface{}, error) {
	return minimizeAggregation{Entries: numeric.Number(m.entries), Min: numeric.Number(m.min), Name: m.Quantity.Name}, nil
}

// MinimizeFactory decodes Minimize documents.
type MinimizeFactory struct{}

func (MinimizeFactory) TypeName() string { return "Minimize" }

func (MinimizeFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg minimizeAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Minimize.data", err)
	}

	return &Minimize{Quantity: core.New(agg.Name, nil), min: agg.Min.Float64(), entries: agg.Entries.Float64()}, nil
}

func init() {
	_ = core.Default.Register("Minimize", MinimizeFactory{})
}

// Maximize tracks the running maximum of the quantity, initialized to
// -Inf (the identity element under Merge's math.Max).
type Maximize struct {
	Quantity core.Quantity
	max      float64
	entries  float64
}

// NewMaximize returns an empty Maximize gated by quantity.
func NewMaximize(quantity core.Quantity) *Maximize {
	return &Maximize{Quantity: quantity, max: math.Inf(-1)}
}

func (m *Maximize) TypeName() string { return "Maximize" }
func (m *Maximize) Entries() float64 { return m.entries }
func (m *Maximize) Max() float64     { return m.max }

func (m *Maximize) Fill(datum interface{}, weight float64) error {
	x, err := m.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}
	if weight > 0 && x > m.max {
		m.max = x
	}
	m.entries += weight

	return nil
}

func (m *Maximize) Zero() core.Container {
	return &Maximize{Quantity: m.Quantity, max: math.Inf(-1)}
}

func (m *Maximize) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Maximize)
	if !ok || !m.Quantity.Equal(o.Quantity) {
		return nil, shapeMismatch("Merge", "Maximize")
	}

	return &Maximize{Quantity: m.Quantity, max: math.Max(m.max, o.max), entries: m.entries + o.entries}, nil
}

func (m *Maximize) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Maximize)

	return ok && m.Quantity.Equal(o.Quantity) &&
		numeric.Equal(m.entries, o.entries, tol) && numeric.Equal(m.max, o.max, tol)
}

type maximizeAggregation struct {
	Entries numeric.Number `json:"entries"`
	Max     numeric.Number `json:"max"`
	Name    string         `json:"name,omitempty"`
}

func (m *Maximize) ToAggregation() (interface{}, error) {
	return maximizeAggregation{Entries: numeric.Number(m.entries), Max: numeric.Number(m.max), Name: m.Quantity.Name}, nil
}

// MaximizeFactory decodes Maximize documents.
type MaximizeFactory struct{}

func (MaximizeFactory) TypeName() string { return "Maximize" }

func (MaximizeFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg maximizeAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Maximize.data", err)
	}

	return &Maximize{Quantity: core.New(agg.Name, nil), max: agg.Max.Float64(), entries: agg.Entries.Float64()}, nil
}

func init() {
	_ = core.Default.Register("Maximize", MaximizeFactory{})
}
