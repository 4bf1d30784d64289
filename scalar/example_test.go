package scalar_test

import (
	"fmt"

	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/scalar"
)

// ExampleAverage shows a running weighted mean over a small dataset,
// then merging in a second worker's partial result.
func ExampleAverage() {
	temperature := core.New("temperature", func(d interface{}) (interface{}, error) {
		return d.(float64), nil
	})

	workerA := scalar.NewAverage(temperature)
	for _, x := range []float64{68.0, 70.5, 71.0} {
		_ = workerA.Fill(x, 1)
	}

	workerB := scalar.NewAverage(temperature)
	_ = workerB.Fill(90.0, 1)

	merged, err := workerA.Merge(workerB)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	avg := merged.(*scalar.Average)
	fmt.Printf("entries=%.0f mean=%.3f\n", avg.Entries(), avg.Mean())
	// Output: entries=4 mean=74.875
}
