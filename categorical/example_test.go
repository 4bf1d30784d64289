package categorical_test

import (
	"fmt"

	"github.com/histogrammar-go/histogrammar/categorical"
	"github.com/histogrammar-go/histogrammar/core"
	"github.com/histogrammar-go/histogrammar/scalar"
)

// ExampleCategorize buckets a stream of browser names into lazily
// materialized per-name counters.
func ExampleCategorize() {
	browser := core.New("browser", func(d interface{}) (interface{}, error) {
		return d.(string), nil
	})

	c := categorical.NewCategorize(browser, scalar.NewCount())
	for _, name := range []string{"chrome", "firefox", "chrome", "chrome", "safari"} {
		_ = c.Fill(name, 1)
	}

	fmt.Printf("entries=%.0f chrome=%.0f firefox=%.0f safari=%.0f\n",
		c.Entries(), c.Bin("chrome").Entries(), c.Bin("firefox").Entries(), c.Bin("safari").Entries())
	// Output: entries=5 chrome=3 firefox=1 safari=1
}
