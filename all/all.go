// Package all registers every primitive factory into core.Default. Blank
// import it once from a program's main package when the set of types a
// deserializer must recognize isn't known ahead of time:
//
//	import _ "github.com/histogrammar-go/histogrammar/all"
package all

import (
	_ "github.com/histogrammar-go/histogrammar/binning"
	_ "github.com/histogrammar-go/histogrammar/categorical"
	_ "github.com/histogrammar-go/histogrammar/collection"
	_ "github.com/histogrammar-go/histogrammar/scalar"
	_ "github.com/histogrammar-go/histogrammar/selective"
)
