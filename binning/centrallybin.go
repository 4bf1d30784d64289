package binning

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// CentrallyBin routes each value to the sub-aggregator whose center is
// nearest, rather than to a fixed-width slot. Bin edges are implicitly
// the midpoints between adjacent centers, so bins can have irregular
// width. Centers are kept sorted ascending; ties route to the lower
// (smaller-valued) center.
type CentrallyBin struct {
	Centers  []float64
	Quantity core.Quantity
	Values   []core.Container
	Nanflow  core.Container
	entries  float64
}

// NewCentrallyBin constructs an empty CentrallyBin. centers need not be
// pre-sorted; they are sorted (together with their fresh Zero() values)
// at construction time.
func NewCentrallyBin(centers []float64, quantity core.Quantity, template core.Container) (*CentrallyBin, error) {
	if len(centers) == 0 {
		return nil, invalidConstruction("CentrallyBin", "centers must be non-empty")
	}

	sorted := append([]float64(nil), centers...)
	sort.Float64s(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, invalidConstruction("CentrallyBin", "centers must be distinct")
		}
	}

	c := &CentrallyBin{Centers: sorted, Quantity: quantity}
	c.Values = make([]core.Container, len(sorted))
	for i := range c.Values {
		c.Values[i] = template.Zero()
	}
	c.Nanflow = template.Zero()

	return c, nil
}

func (c *CentrallyBin) TypeName() string { return "CentrallyBin" }
func (c *CentrallyBin) Entries() float64 { return c.entries }

func (c *CentrallyBin) nearestIndex(x float64) int {
	n := len(c.Centers)
	i := sort.SearchFloat64s(c.Centers, x)
	switch {
	case i == 0:
		return 0
	case i == n:
		return n - 1
	default:
		left, right := c.Centers[i-1], c.Centers[i]
		if x-left <= right-x {
			return i - 1
		}

		return i
	}
}

func (c *CentrallyBin) Fill(datum interface{}, weight float64) error {
	x, err := c.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}

	if math.IsNaN(x) {
		if err := c.Nanflow.Fill(datum, weight); err != nil {
			return err
		}
		c.entries += weight

		return nil
	}

	i := c.nearestIndex(x)
	if err := c.Values[i].Fill(datum, weight); err != nil {
		return err
	}
	c.entries += weight

	return nil
}

func (c *CentrallyBin) Zero() core.Container {
	z := &CentrallyBin{Centers: append([]float64(nil), c.Centers...), Quantity: c.Quantity}
	z.Values = make([]core.Container, len(c.Values))
	for i := range z.Values {
		z.Values[i] = c.Values[i].Zero()
	}
	z.Nanflow = c.Nanflow.Zero()

	return z
}

func (c *CentrallyBin) sameGeometry(o *CentrallyBin) bool {
	if len(c.Centers) != len(o.Centers) || !c.Quantity.Equal(o.Quantity) {
		return false
	}
	for i := range c.Centers {
		if c.Centers[i] != o.Centers[i] {
			return false
		}
	}

	return true
}

func (c *CentrallyBin) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*CentrallyBin)
	if !ok || !c.sameGeometry(o) {
		return nil, shapeMismatch("Merge", "CentrallyBin", "centers or quantity differ")
	}

	z := &CentrallyBin{
		Centers:  append([]float64(nil), c.Centers...),
		Quantity: c.Quantity,
		entries:  c.entries + o.entries,
	}
	z.Values = make([]core.Container, len(c.Values))
	for i := range z.Values {
		m, err := c.Values[i].Merge(o.Values[i])
		if err != nil {
			return nil, err
		}
		z.Values[i] = m
	}

	nf, err := c.Nanflow.Merge(o.Nanflow)
	if err != nil {
		return nil, err
	}
	z.Nanflow = nf

	return z, nil
}

func (c *CentrallyBin) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*CentrallyBin)
	if !ok || !c.sameGeometry(o) || !numeric.Equal(c.entries, o.entries, tol) {
		return false
	}
	if !c.Nanflow.Equals(o.Nanflow, tol) {
		return false
	}
	for i := range c.Values {
		if !c.Values[i].Equals(o.Values[i], tol) {
			return false
		}
	}

	return true
}

type centrallyBinAggregation struct {
	Centers  []numeric.Number  `json:"centers"`
	Entries  numeric.Number    `json:"entries"`
	Name     string            `json:"name,omitempty"`
	ValuesType string          `json:"valuesType"`
	Values   []json.RawMessage `json:"values"`
	Nanflow  core.RawDoc       `json:"nanflow"`
}

func (c *CentrallyBin) ToAggregation() (interface{}, error) {
	agg := centrallyBinAggregation{
		Centers: make([]numeric.Number, len(c.Centers)),
		Entries: numeric.Number(c.entries),
		Name:    c.Quantity.Name,
		Values:  make([]json.RawMessage, len(c.Values)),
	}
	for i, ctr := range c.Centers {
		agg.Centers[i] = numeric.Number(ctr)
	}
	if len(c.Values) > 0 {
		agg.ValuesType = c.Values[0].TypeName()
	}
	for i, v := range c.Values {
		inner, err := v.ToAggregation()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(inner)
		if err != nil {
			return nil, core.NewFormatError("CentrallyBin.values", err)
		}
		agg.Values[i] = data
	}

	nf, err := core.ToRawDoc(c.Nanflow)
	if err != nil {
		return nil, err
	}
	agg.Nanflow = nf

	return agg, nil
}

// CentrallyBinFactory decodes CentrallyBin documents.
type CentrallyBinFactory struct{}

func (CentrallyBinFactory) TypeName() string { return "CentrallyBin" }

func (CentrallyBinFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg centrallyBinAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("CentrallyBin.data", err)
	}

	c := &CentrallyBin{
		Centers:  make([]float64, len(agg.Centers)),
		Quantity: core.New(agg.Name, nil),
		entries:  agg.Entries.Float64(),
	}
	for i, n := range agg.Centers {
		c.Centers[i] = n.Float64()
	}

	c.Values = make([]core.Container, len(agg.Values))
	for i, raw := range agg.Values {
		v, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.ValuesType, Data: raw}, reg)
		if err != nil {
			return nil, err
		}
		c.Values[i] = v
	}

	nanflow, err := core.DecodeDoc(agg.Nanflow, reg)
	if err != nil {
		return nil, err
	}
	c.Nanflow = nanflow

	return c, nil
}

func init() {
	_ = core.Default.Register("CentrallyBin", CentrallyBinFactory{})
}
