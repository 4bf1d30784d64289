package collection_test

import (
	"fmt"

	"github.com/histogrammar-go/histogrammar/collection"
	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/scalar"
)

// ExampleLabel tracks several named counters over the same stream at
// once — every fill lands in every named inner.
func ExampleLabel() {
	weight := core.New("weight", func(d interface{}) (interface{}, error) {
		return d.(float64), nil
	})

	l, err := collection.NewLabel(map[string]core.Container{
		"count": scalar.NewCount(),
		"sum":   scalar.NewSum(weight),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, x := range []float64{1.5, 2.5, 3.0} {
		_ = l.Fill(x, 1)
	}

	count := l.Values["count"].(*scalar.Count)
	sum := l.Values["sum"].(*scalar.Sum)
	fmt.Printf("entries=%.0f count=%.0f sum=%.1f\n", l.Entries(), count.Entries(), sum.Value())
	// Output: entries=3 count=3 sum=7.0
}
