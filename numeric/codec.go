package numeric

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Number is a float64 that marshals to the document format's canonical
// token scheme: "inf", "-inf", "nan" for non-finite values, a plain JSON
// number otherwise. Negative zero round-trips as -0, matching
// encoding/json's own strconv-based float formatting.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return json.Marshal("nan")
	case math.IsInf(f, 1):
		return json.Marshal("inf")
	case math.IsInf(f, -1):
		return json.Marshal("-inf")
	default:
		return json.Marshal(f)
	}
}

// UnmarshalJSON implements json.Unmarshaler, accepting either one of the
// non-finite string tokens or a JSON numeric literal.
func (n *Number) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("numeric: empty number token")
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("numeric: malformed number token %q: %w", b, err)
		}
		switch s {
		case "inf":
			*n = Number(math.Inf(1))
			return nil
		case "-inf":
			*n = Number(math.Inf(-1))
			return nil
		case "nan":
			*n = Number(math.NaN())
			return nil
		default:
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("numeric: unrecognized number token %q", s)
			}
			*n = Number(f)
			return nil
		}
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("numeric: malformed numeric literal %q: %w", b, err)
	}
	*n = Number(f)
	return nil
}

// Float64 unwraps n.
func (n Number) Float64() float64 { return float64(n) }
