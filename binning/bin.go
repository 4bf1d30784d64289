package binning

import (
	"encoding/json"
	"math"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Bin is a dense, fixed-width histogram over [Low,High) split into Num
// equal sub-intervals, plus three flows for values outside that range or
// not-a-number.
type Bin struct {
	Low, High float64
	Num       int
	Quantity  core.Quantity
	Values    []core.Container
	Underflow core.Container
	Overflow  core.Container
	Nanflow   core.Container
	entries   float64
}

// NewBin constructs an empty Bin. template is Zero()'d once per value
// bin plus once each for underflow/overflow/nanflow.
func NewBin(num int, low, high float64, quantity core.Quantity, template core.Container) (*Bin, error) {
	if num <= 0 {
		return nil, invalidConstruction("Bin", "num must be positive")
	}
	if !(low < high) {
		return nil, invalidConstruction("Bin", "low must be less than high")
	}

	b := &Bin{Low: low, High: high, Num: num, Quantity: quantity}
	b.Values = make([]core.Container, num)
	for i := range b.Values {
		b.Values[i] = template.Zero()
	}
	b.Underflow = template.Zero()
	b.Overflow = template.Zero()
	b.Nanflow = template.Zero()

	return b, nil
}

func (b *Bin) TypeName() string { return "Bin" }
func (b *Bin) Entries() float64 { return b.entries }

func (b *Bin) index(x float64) int {
	i := int(math.Floor(float64(b.Num) * (x - b.Low) / (b.High - b.Low)))
	if i < 0 {
		i = 0
	}
	if i >= b.Num {
		i = b.Num - 1
	}

	return i
}

func (b *Bin) Fill(datum interface{}, weight float64) error {
	x, err := b.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}

	switch {
	case math.IsNaN(x):
		err = b.Nanflow.Fill(datum, weight)
	case x < b.Low:
		err = b.Underflow.Fill(datum, weight)
	case x >= b.High:
		err = b.Overflow.Fill(datum, weight)
	default:
		err = b.Values[b.index(x)].Fill(datum, weight)
	}
	if err != nil {
		return err
	}
	b.entries += weight

	return nil
}

func (b *Bin) Zero() core.Container {
	z := &Bin{Low: b.Low, High: b.High, Num: b.Num, Quantity: b.Quantity}
	z.Values = make([]core.Container, b.Num)
	for i := range z.Values {
		z.Values[i] = b.Values[i].Zero()
	}
	z.Underflow = b.Underflow.Zero()
	z.Overflow = b.Overflow.Zero()
	z.Nanflow = b.Nanflow.Zero()

	return z
}

func (b *Bin) sameGeometry(o *Bin) bool {
	return b.Num == o.Num && b.Low == o.Low && b.High == o.High && b.Quantity.Equal(o.Quantity)
}

func (b *Bin) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Bin)
	if !ok || !b.sameGeometry(o) {
		return nil, shapeMismatch("Merge", "Bin", "geometry (low/high/num) or quantity differs")
	}

	z := &Bin{Low: b.Low, High: b.High, Num: b.Num, Quantity: b.Quantity, entries: b.entries + o.entries}
	z.Values = make([]core.Container, b.Num)
	for i := range z.Values {
		m, err := b.Values[i].Merge(o.Values[i])
		if err != nil {
			return nil, err
		}
		z.Values[i] = m
	}

	var err error
	if z.Underflow, err = b.Underflow.Merge(o.Underflow); err != nil {
		return nil, err
	}
	if z.Overflow, err = b.Overflow.Merge(o.Overflow); err != nil {
		return nil, err
	}
	if z.Nanflow, err = b.Nanflow.Merge(o.Nanflow); err != nil {
		return nil, err
	}

	return z, nil
}

func (b *Bin) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Bin)
	if !ok || !b.sameGeometry(o) || !numeric.Equal(b.entries, o.entries, tol) {
		return false
	}
	if !b.Underflow.Equals(o.Underflow, tol) || !b.Overflow.Equals(o.Overflow, tol) || !b.Nanflow.Equals(o.Nanflow, tol) {
		return false
	}
	for i := range b.Values {
		if !b.Values[i].Equals(o.Values[i], tol) {
			return false
		}
	}

	return true
}

type binAggregation struct {
	Low        numeric.Number    `json:"low"`
	High       numeric.Number    `json:"high"`
	Entries    numeric.Number    `json:"entries"`
	Name       string            `json:"name,omitempty"`
	ValuesType string            `json:"valuesType"`
	Values     []json.RawMessage `json:"values"`
	Underflow  core.RawDoc       `json:"underflow"`
	Overflow   core.RawDoc       `json:"overflow"`
	Nanflow    core.RawDoc       `json:"nanflow"`
}

func (b *Bin) ToAggregation() (interface{}, error) {
	agg := binAggregation{
		Low:     numeric.Number(b.Low),
		High:    numeric.Number(b.High),
		Entries: numeric.Number(b.entries),
		Name:    b.Quantity.Name,
		Values:  make([]json.RawMessage, len(b.Values)),
	}
	if len(b.Values) > 0 {
		agg.ValuesType = b.Values[0].TypeName()
	}
	for i, v := range b.Values {
		inner, err := v.ToAggregation()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(inner)
		if err != nil {
			return nil, core.NewFormatError("Bin.values", err)
		}
		agg.Values[i] = data
	}

	var err error
	if agg.Underflow, err = core.ToRawDoc(b.Underflow); err != nil {
		return nil, err
	}
	if agg.Overflow, err = core.ToRawDoc(b.Overflow); err != nil {
		return nil, err
	}
	if agg.Nanflow, err = core.ToRawDoc(b.Nanflow); err != nil {
		return nil, err
	}

	return agg, nil
}

// BinFactory decodes Bin documents.
type BinFactory struct{}

func (BinFactory) TypeName() string { return "Bin" }

func (BinFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg binAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Bin.data", err)
	}

	b := &Bin{
		Low:     agg.Low.Float64(),
		High:    agg.High.Float64(),
		Num:     len(agg.Values),
		Quantity: core.New(agg.Name, nil),
		entries: agg.Entries.Float64(),
	}

	b.Values = make([]core.Container, len(agg.Values))
	for i, raw := range agg.Values {
		c, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.ValuesType, Data: raw}, reg)
		if err != nil {
			return nil, err
		}
		b.Values[i] = c
	}

	var err error
	if b.Underflow, err = core.DecodeDoc(agg.Underflow, reg); err != nil {
		return nil, err
	}
	if b.Overflow, err = core.DecodeDoc(agg.Overflow, reg); err != nil {
		return nil, err
	}
	if b.Nanflow, err = core.DecodeDoc(agg.Nanflow, reg); err != nil {
		return nil, err
	}

	return b, nil
}

func init() {
	_ = core.Default.Register("Bin", BinFactory{})
}
