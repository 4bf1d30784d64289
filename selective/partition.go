package selective

import (
	"encoding/json"
	"sort"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Partition routes each fill into exactly one sub-aggregator, the one
// whose half-open interval [cuts[i-1], cuts[i]) contains the quantity
// value; the first and last intervals are unbounded below/above.
type Partition struct {
	Cuts     []float64
	Quantity core.Quantity
	Values   []core.Container
	entries  float64
}

// NewPartition returns an empty Partition. cuts must be strictly
// increasing.
func NewPartition(cuts []float64, quantity core.Quantity, template core.Container) (*Partition, error) {
	if err := checkStrictlyIncreasing("Partition", cuts); err != nil {
		return nil, err
	}

	p := &Partition{Cuts: append([]float64(nil), cuts...), Quantity: quantity}
	p.Values = make([]core.Container, len(cuts)+1)
	for i := range p.Values {
		p.Values[i] = template.Zero()
	}

	return p, nil
}

func (p *Partition) TypeName() string { return "Partition" }
func (p *Partition) Entries() float64 { return p.entries }

// index returns the count of cuts at or below q, i.e. the bucket whose
// interval [cuts[i-1], cuts[i]) contains q.
func (p *Partition) index(q float64) int {
	return sort.Search(len(p.Cuts), func(i int) bool { return p.Cuts[i] > q })
}

func (p *Partition) Fill(datum interface{}, weight float64) error {
	q, err := p.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}

	if err := p.Values[p.index(q)].Fill(datum, weight); err != nil {
		return err
	}
	p.entries += weight

	return nil
}

func (p *Partition) Zero() core.Container {
	z := &Partition{Cuts: append([]float64(nil), p.Cuts...), Quantity: p.Quantity}
	z.Values = make([]core.Container, len(p.Values))
	for i := range z.Values {
		z.Values[i] = p.Values[i].Zero()
	}

	return z
}

func (p *Partition) sameGeometry(o *Partition) bool {
	if len(p.Cuts) != len(o.Cuts) || !p.Quantity.Equal(o.Quantity) {
		return false
	}
	for i := range p.Cuts {
		if p.Cuts[i] != o.Cuts[i] {
			return false
		}
	}

	return true
}

func (p *Partition) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Partition)
	if !ok || !p.sameGeometry(o) {
		return nil, shapeMismatch("Merge", "Partition", "cuts or quantity differ")
	}

	z := &Partition{Cuts: append([]float64(nil), p.Cuts...), Quantity: p.Quantity, entries: p.entries + o.entries}
	z.Values = make([]core.Container, len(p.Values))
	for i := range z.Values {
		m, err := p.Values[i].Merge(o.Values[i])
		if err != nil {
			return nil, err
		}
		z.Values[i] = m
	}

	return z, nil
}

func (p *Partition) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Partition)
	if !ok || !p.sameGeometry(o) || !numeric.Equal(p.entries, o.entries, tol) {
		return false
	}
	for i := range p.Values {
		if !p.Values[i].Equals(o.Values[i], tol) {
			return false
		}
	}

	return true
}

type partitionAggregation struct {
	Cuts       []numeric.Number  `json:"cuts"`
	Entries    numeric.Number    `json:"entries"`
	Name       string            `json:"name,omitempty"`
	ValuesType string            `json:"valuesType"`
	Values     []json.RawMessage `json:"values"`
}

func (p *Partition) ToAggregation() (interface{}, error) {
	agg := partitionAggregation{
		Cuts:    make([]numeric.Number, len(p.Cuts)),
		Entries: numeric.Number(p.entries),
		Name:    p.Quantity.Name,
		Values:  make([]json.RawMessage, len(p.Values)),
	}
	for i, c := range p.Cuts {
		agg.Cuts[i] = numeric.Number(c)
	}
	if len(p.Values) > 0 {
		agg.ValuesType = p.Values[0].TypeName()
	}
	for i, v := range p.Values {
		inner, err := v.ToAggregation()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(inner)
		if err != nil {
			return nil, core.NewFormatError("Partition.values", err)
		}
		agg.Values[i] = data
	}

	return agg, nil
}

// PartitionFactory decodes Partition documents.
type PartitionFactory struct{}

func (PartitionFactory) TypeName() string { return "Partition" }

func (PartitionFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg partitionAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Partition.data", err)
	}

	p := &Partition{
		Cuts:     make([]float64, len(agg.Cuts)),
		Quantity: core.New(agg.Name, nil),
		entries:  agg.Entries.Float64(),
	}
	for i, c := range agg.Cuts {
		p.Cuts[i] = c.Float64()
	}

	p.Values = make([]core.Container, len(agg.Values))
	for i, raw := range agg.Values {
		v, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.ValuesType, Data: raw}, reg)
		if err != nil {
			return nil, err
		}
		p.Values[i] = v
	}

	return p, nil
}

func init() {
	_ = core.Default.Register("Partition", PartitionFactory{})
}
