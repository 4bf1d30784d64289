package categorical

import (
	"encoding/json"
	"sort"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// Categorize is a histogram over arbitrary string keys: a key seen for
// the first time materializes a fresh sub-aggregator via template.Zero().
type Categorize struct {
	Quantity core.Quantity
	Values   map[string]core.Container
	template core.Container
	entries  float64
}

// NewCategorize returns an empty Categorize keyed by quantity.AsString.
func NewCategorize(quantity core.Quantity, template core.Container) *Categorize {
	return &Categorize{Quantity: quantity, Values: make(map[string]core.Container), template: template}
}

func (c *Categorize) TypeName() string { return "Categorize" }
func (c *Categorize) Entries() float64 { return c.entries }

// Bin exposes the sub-aggregator at key, materializing a fresh zero if
// the key has never been filled.
func (c *Categorize) Bin(key string) core.Container {
	if v, ok := c.Values[key]; ok {
		return v
	}

	return c.template.Zero()
}

func (c *Categorize) Fill(datum interface{}, weight float64) error {
	key, err := c.Quantity.AsString(datum)
	if err != nil {
		return err
	}

	v, ok := c.Values[key]
	if !ok {
		v = c.template.Zero()
	}
	if err := v.Fill(datum, weight); err != nil {
		return err
	}
	c.Values[key] = v
	c.entries += weight

	return nil
}

func (c *Categorize) Zero() core.Container {
	return &Categorize{Quantity: c.Quantity, Values: make(map[string]core.Container), template: c.template}
}

func (c *Categorize) sameShape(o *Categorize) bool {
	return c.Quantity.Equal(o.Quantity) && c.template.Zero().Equals(o.template.Zero(), numeric.Default)
}

func (c *Categorize) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*Categorize)
	if !ok || !c.sameShape(o) {
		return nil, shapeMismatch("Merge", "Categorize", "quantity or sub-aggregator shape differs")
	}

	merged := make(map[string]core.Container, len(c.Values))
	for k, v := range c.Values {
		merged[k] = v
	}
	for k, v := range o.Values {
		if existing, ok := merged[k]; ok {
			m, err := existing.Merge(v)
			if err != nil {
				return nil, err
			}
			merged[k] = m
		} else {
			merged[k] = v
		}
	}

	return &Categorize{Quantity: c.Quantity, Values: merged, template: c.template, entries: c.entries + o.entries}, nil
}

func (c *Categorize) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*Categorize)
	if !ok || !c.sameShape(o) || !numeric.Equal(c.entries, o.entries, tol) {
		return false
	}

	seen := make(map[string]bool)
	for k := range c.Values {
		seen[k] = true
	}
	for k := range o.Values {
		seen[k] = true
	}
	for k := range seen {
		if !c.Bin(k).Equals(o.Bin(k), tol) {
			return false
		}
	}

	return true
}

type categorizeAggregation struct {
	Entries  numeric.Number             `json:"entries"`
	Name     string                     `json:"name,omitempty"`
	BinsType string                     `json:"binsType"`
	Template core.RawDoc                `json:"template"`
	Bins     map[string]json.RawMessage `json:"bins"`
}

func (c *Categorize) ToAggregation() (interface{}, error) {
	template, err := core.ToRawDoc(c.template)
	if err != nil {
		return nil, err
	}

	agg := categorizeAggregation{
		Entries:  numeric.Number(c.entries),
		Name:     c.Quantity.Name,
		BinsType: c.template.TypeName(),
		Template: template,
		Bins:     make(map[string]json.RawMessage, len(c.Values)),
	}

	keys := make([]string, 0, len(c.Values))
	for k := range c.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		inner, err := c.Values[k].ToAggregation()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(inner)
		if err != nil {
			return nil, core.NewFormatError("Categorize.bins", err)
		}
		agg.Bins[k] = data
	}

	return agg, nil
}

// CategorizeFactory decodes Categorize documents.
type CategorizeFactory struct{}

func (CategorizeFactory) TypeName() string { return "Categorize" }

func (CategorizeFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg categorizeAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("Categorize.data", err)
	}

	template, err := core.DecodeDoc(agg.Template, reg)
	if err != nil {
		return nil, err
	}

	values := make(map[string]core.Container, len(agg.Bins))
	for key, raw := range agg.Bins {
		c, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.BinsType, Data: raw}, reg)
		if err != nil {
			return nil, err
		}
		values[key] = c
	}

	return &Categorize{
		Quantity: core.New(agg.Name, nil),
		Values:   values,
		template: template.Zero(),
		entries:  agg.Entries.Float64(),
	}, nil
}

func init() {
	_ = core.Default.Register("Categorize", CategorizeFactory{})
}
