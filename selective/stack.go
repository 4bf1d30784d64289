package selective

import (
	"encoding/json"
	"math"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Stack routes each fill into every sub-aggregator whose cut is at or
// below the quantity value: an implicit bottom cut of -Inf means the
// first sub-aggregator always fires. With n explicit cuts there are n+1
// sub-aggregators.
type Stack struct {
	Cuts     []float64
	Quantity core.Quantity
	Values   []core.Container
	entries  float64
}

// NewStack returns an empty Stack. cuts must be strictly increasing.
func NewStack(cuts []float64, quantity core.Quantity, template core.Container) (*Stack, error) {
	if err := checkStrictlyIncreasing("Stack", cuts); err != nil {
		return nil, err
	}

	s := &Stack{Cuts: append([]float64(nil), cuts...), Quantity: quantity}
	s.Values = make([]core.Container, len(cuts)+1)
	for i := range s.Values {
		s.Values[i] = template.Zero()
	}

	return s, nil
}

func checkStrictlyIncreasing(typeName string, cuts []float64) error {
	for i := 1; i < len(cuts); i++ {
		if !(cuts[i-1] < cuts[i]) {
			return invalidConstruction(typeName, "cuts must be strictly increasing")
		}
	}

	return nil
}

func (s *Stack) TypeName() string { return "Stack" }
func (s *Stack) Entries() float64 { return s.entries }

func (s *Stack) edge(i int) float64 {
	if i == 0 {
		return math.Inf(-1)
	}

	return s.Cuts[i-1]
}

func (s *Stack) Fill(datum interface{}, weight float64) error {
	q, err := s.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}

	for i, v := range s.Values {
		if s.edge(i) <= q {
			if err := v.Fill(datum, weight); err != nil {
				return err
			}
		}
	}
	s.entries += weight

	return nil
}

func (s *Stack) Zero() core.Container {
	z := &Stack{Cuts: append([]float64(nil), s.Cuts...), Quantity: s.Quantity}
	z.Values = make([]core.Container, len(s.Values))
	for i := range z.Values {
		z.Values[i] = s.Values[i].Zero()
	}

	return z
}

func (s *Stack) sameGeometry(o *Stack) bool {
	if len(s.Cuts) != len(o.Cuts) || !s.Quantity.Equal(o.Quantity) {
		return false
	}
	for i := range s.Cuts {
		if s.Cuts[i] != o.Cuts[i] {
			return false
		}
	}

	return true
}

func (s *Stack) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Stack)
	if !ok || !s.sameGeometry(o) {
		return nil, shapeMismatch("Merge", "Stack", "cuts or quantity differ")
	}

	z := &Stack{Cuts: append([]float64(nil), s.Cuts...), Quantity: s.Quantity, entries: s.entries + o.entries}
	z.Values = make([]core.Container, len(s.Values))
	for i := range z.Values {
		m, err := s.Values[i].Merge(o.Values[i])
		if err != nil {
			return nil, err
		}
		z.Values[i] = m
	}

	return z, nil
}

func (s *Stack) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Stack)
	if !ok || !s.sameGeometry(o) || !numeric.Equal(s.entries, o.entries, tol) {
		return false
	}
	for i := range s.Values {
		if !s.Values[i].Equals(o.Values[i], tol) {
			return false
		}
	}

	return true
}

type stackAggregation struct {
	Cuts       []numeric.Number  `json:"cuts"`
	Entries    numeric.Number    `json:"entries"`
	Name       string            `json:"name,omitempty"`
	ValuesType string            `json:"valuesType"`
	Values     []json.RawMessage `json:"values"`
}

func (s *Stack) ToAggregation() (interface{}, error) {
	agg := stackAggregation{
		Cuts:    make([]numeric.Number, len(s.Cuts)),
		Entries: numeric.Number(s.entries),
		Name:    s.Quantity.Name,
		Values:  make([]json.RawMessage, len(s.Values)),
	}
	for i, c := range s.Cuts {
		agg.Cuts[i] = numeric.Number(c)
	}
	if len(s.Values) > 0 {
		agg.ValuesType = s.Values[0].TypeName()
	}
	for i, v := range s.Values {
		inner, err := v.ToAggregation()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(inner)
		if err != nil {
			return nil, core.NewFormatError("Stack.values", err)
		}
		agg.Values[i] = data
	}

	return agg, nil
}

// StackFactory decodes Stack documents.
type StackFactory struct{}

func (StackFactory) TypeName() string { return "Stack" }

func (StackFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg stackAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Stack.data", err)
	}

	s := &Stack{
		Cuts:     make([]float64, len(agg.Cuts)),
		Quantity: core.New(agg.Name, nil),
		entries:  agg.Entries.Float64(),
	}
	for i, c := range agg.Cuts {
		s.Cuts[i] = c.Float64()
	}

	s.Values = make([]core.Container, len(agg.Values))
	for i, raw := range agg.Values {
		v, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.ValuesType, Data: raw}, reg)
		if err != nil {
			return nil, err
		}
		s.Values[i] = v
	}

	return s, nil
}

func init() {
	_ = core.Default.Register("Stack", StackFactory{})
}
