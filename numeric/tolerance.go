package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tolerance bounds how two floating point values are compared for
// approximate equality: |a-b| <= max(Abs, Rel*max(|a|,|b|)).
//
// Tolerance is always passed explicitly; the library never consults
// hidden global mutable state, only the package-level Default below,
// which callers may override per comparison.
type Tolerance struct {
	Abs float64
	Rel float64
}

// Default is the tolerance used whenever a caller does not supply one.
// It is not mutated by the library; callers who want process-wide
// behavior different from Default construct their own Tolerance and
// thread it through explicitly.
var Default = Tolerance{Abs: 1e-12, Rel: 1e-9}

// Equal reports whether a and b agree within tol, with NaN treated as
// equal to NaN (two containers holding NaN sufficient statistics, e.g.
// an empty Average, must still compare equal to each other).
func Equal(a, b float64, tol Tolerance) bool {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return true
	case math.IsNaN(a) || math.IsNaN(b):
		return false
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	default:
		return floats.EqualWithinAbsOrRel(a, b, tol.Abs, tol.Rel)
	}
}
