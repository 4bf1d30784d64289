package binning

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/numeric"
)

// SparselyBin is a fixed-width histogram that only materializes bins a
// value has actually landed in, keyed by integer bin index. There is no
// underflow or overflow: the index range is unbounded in both directions.
type SparselyBin struct {
	BinWidth float64
	Origin   float64
	Quantity core.Quantity
	Contents map[int]core.Container
	Nanflow  core.Container
	template core.Container
	entries  float64
}

// NewSparselyBin constructs an empty SparselyBin. template is Zero()'d
// each time a value lands in a bin index seen for the first time.
func NewSparselyBin(binWidth float64, quantity core.Quantity, template core.Container, origin float64) (*SparselyBin, error) {
	if binWidth <= 0 {
		return nil, invalidConstruction("SparselyBin", "binWidth must be positive")
	}

	return &SparselyBin{
		BinWidth: binWidth,
		Origin:   origin,
		Quantity: quantity,
		Contents: make(map[int]core.Container),
		Nanflow:  template.Zero(),
		template: template,
	}, nil
}

func (s *SparselyBin) TypeName() string { return "SparselyBin" }
func (s *SparselyBin) Entries() float64 { return s.entries }

func (s *SparselyBin) index(x float64) int {
	return int(math.Floor((x - s.Origin) / s.BinWidth))
}

// Bin exposes the sub-aggregator at index i, materializing it as a fresh
// zero if it has never been filled.
func (s *SparselyBin) Bin(i int) core.Container {
	if c, ok := s.Contents[i]; ok {
		return c
	}

	return s.template.Zero()
}

func (s *SparselyBin) Fill(datum interface{}, weight float64) error {
	x, err := s.Quantity.AsFloat64(datum)
	if err != nil {
		return err
	}

	if math.IsNaN(x) {
		if err := s.Nanflow.Fill(datum, weight); err != nil {
			return err
		}
		s.entries += weight

		return nil
	}

	i := s.index(x)
	c, ok := s.Contents[i]
	if !ok {
		c = s.template.Zero()
	}
	if err := c.Fill(datum, weight); err != nil {
		return err
	}
	s.Contents[i] = c
	s.entries += weight

	return nil
}

func (s *SparselyBin) Zero() core.Container {
	return &SparselyBin{
		BinWidth: s.BinWidth,
		Origin:   s.Origin,
		Quantity: s.Quantity,
		Contents: make(map[int]core.Container),
		Nanflow:  s.Nanflow.Zero(),
		template: s.template,
	}
}

func (s *SparselyBin) sameGeometry(o *SparselyBin) bool {
	return s.BinWidth == o.BinWidth && s.Origin == o.Origin && s.Quantity.Equal(o.Quantity)
}

func (s *SparselyBin) Merge(other core.Container) (core.Container, error) {
	o, ok := other.(*SparselyBin)
	if !ok || !s.sameGeometry(o) {
		return nil, shapeMismatch("Merge", "SparselyBin", "binWidth/origin or quantity differs")
	}

	z := &SparselyBin{
		BinWidth: s.BinWidth,
		Origin:   s.Origin,
		Quantity: s.Quantity,
		Contents: make(map[int]core.Container, len(s.Contents)),
		template: s.template,
		entries:  s.entries + o.entries,
	}

	for i, c := range s.Contents {
		z.Contents[i] = c
	}
	for i, c := range o.Contents {
		if existing, ok := z.Contents[i]; ok {
			m, err := existing.Merge(c)
			if err != nil {
				return nil, err
			}
			z.Contents[i] = m
		} else {
			z.Contents[i] = c
		}
	}

	nf, err := s.Nanflow.Merge(o.Nanflow)
	if err != nil {
		return nil, err
	}
	z.Nanflow = nf

	return z, nil
}

func (s *SparselyBin) Equals(other core.Container, tol numeric.Tolerance) bool {
	o, ok := other.(*SparselyBin)
	if !ok || !s.sameGeometry(o) || !numeric.Equal(s.entries, o.entries, tol) {
		return false
	}
	if !s.Nanflow.Equals(o.Nanflow, tol) {
		return false
	}

	seen := make(map[int]bool)
	for i := range s.Contents {
		seen[i] = true
	}
	for i := range o.Contents {
		seen[i] = true
	}
	for i := range seen {
		if !s.Bin(i).Equals(o.Bin(i), tol) {
			return false
		}
	}

	return true
}

type sparselyBinAggregation struct {
	BinWidth  numeric.Number             `json:"binWidth"`
	Origin    numeric.Number             `json:"origin"`
	Entries   numeric.Number             `json:"entries"`
	Name      string                     `json:"name,omitempty"`
	BinsType  string                     `json:"binsType"`
	Bins      map[string]json.RawMessage `json:"bins"`
	Nanflow   core.RawDoc                `json:"nanflow"`
}

func (s *SparselyBin) ToAggregation() (interface{}, error) {
	agg := sparselyBinAggregation{
		BinWidth: numeric.Number(s.BinWidth),
		Origin:   numeric.Number(s.Origin),
		Entries:  numeric.Number(s.entries),
		Name:     s.Quantity.Name,
		BinsType: s.template.TypeName(),
		Bins:     make(map[string]json.RawMessage, len(s.Contents)),
	}

	indices := make([]int, 0, len(s.Contents))
	for i := range s.Contents {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	for _, i := range indices {
		inner, err := s.Contents[i].ToAggregation()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(inner)
		if err != nil {
			return nil, core.NewFormatError("SparselyBin.bins", err)
		}
		agg.Bins[strconv.Itoa(i)] = data
	}

	nf, err := core.ToRawDoc(s.Nanflow)
	if err != nil {
		return nil, err
	}
	agg.Nanflow = nf

	return agg, nil
}

// SparselyBinFactory decodes SparselyBin documents. binsType must name a
// registered type; the template used for never-filled bins is the Zero()
// of the decoded nanflow. The factory reproduces only filled bins exactly
// as stored, and any bin materialized later via Bin() is that template's
// Zero().
type SparselyBinFactory struct{}

func (SparselyBinFactory) TypeName() string { return "SparselyBin" }

func (SparselyBinFactory) FromAggregation(data []byte, reg *core.Registry) (core.Container, error) {
	var agg sparselyBinAggregation
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, core.NewFormatError("SparselyBin.data", err)
	}

	if _, ok := reg.Lookup(agg.BinsType); !ok {
		return nil, core.NewFormatError(agg.BinsType, core.ErrUnknownType)
	}

	nanflow, err := core.DecodeDoc(agg.Nanflow, reg)
	if err != nil {
		return nil, err
	}

	s := &SparselyBin{
		BinWidth: agg.BinWidth.Float64(),
		Origin:   agg.Origin.Float64(),
		Quantity: core.New(agg.Name, nil),
		Contents: make(map[int]core.Container, len(agg.Bins)),
		Nanflow:  nanflow,
		template: nanflow.Zero(),
		entries:  agg.Entries.Float64(),
	}

	for key, raw := range agg.Bins {
		i, convErr := strconv.Atoi(key)
		if convErr != nil {
			return nil, core.NewFormatError("SparselyBin.bins", convErr)
		}
		c, err := core.DecodeDoc(core.RawDoc{Version: core.FormatVersion, Type: agg.BinsType, Data: raw}, reg)
		if err != nil {
			return nil, err
		}
		s.Contents[i] = c
	}

	return s, nil
}

func init() {
	_ = core.Default.Register("SparselyBin", SparselyBinFactory{})
}
