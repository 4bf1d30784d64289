package core

import (
	"fmt"
	"reflect"
)

// QuantityFunc maps one observation to the number, boolean, or string a
// primitive keys or gates on.
type QuantityFunc func(datum interface{}) (interface{}, error)

// Quantity is a named, serializable wrapper around a QuantityFunc. The
// name (when non-empty) is the only thing that survives a document
// round-trip, and the only thing Equal consults when both sides are
// named; two anonymous quantities fall back to comparing the underlying
// function's identity (spec.md leaves this ambiguous — see DESIGN.md).
type Quantity struct {
	Name string
	Func QuantityFunc
}

// New builds a named Quantity.
func New(name string, f QuantityFunc) Quantity {
	return Quantity{Name: name, Func: f}
}

// Anonymous builds an unnamed Quantity. Its Name serializes as "" and it
// compares equal only to another unnamed Quantity wrapping the same
// function.
func Anonymous(f QuantityFunc) Quantity {
	return Quantity{Func: f}
}

// Eval invokes the wrapped function.
func (q Quantity) Eval(datum interface{}) (interface{}, error) {
	if q.Func == nil {
		return nil, fmt.Errorf("histogrammar: quantity %q has no function", q.displayName())
	}

	return q.Func(datum)
}

// AsFloat64 evaluates q and coerces the result to a float64: numeric
// kinds convert directly, bool casts to 1.0 (true) or 0.0 (false) (spec.md
// §4.C: "must tolerate quantities that return booleans"), anything else
// is a *QuantityError.
func (q Quantity) AsFloat64(datum interface{}) (float64, error) {
	v, err := q.Eval(datum)
	if err != nil {
		return 0, &QuantityError{Quantity: q.displayName(), Err: err}
	}

	f, err := coerceFloat64(v)
	if err != nil {
		return 0, &QuantityError{Quantity: q.displayName(), Err: err}
	}

	return f, nil
}

// AsBool evaluates q and coerces the result to a bool: bool passes
// through, any numeric kind is true iff nonzero.
func (q Quantity) AsBool(datum interface{}) (bool, error) {
	v, err := q.Eval(datum)
	if err != nil {
		return false, &QuantityError{Quantity: q.displayName(), Err: err}
	}

	switch x := v.(type) {
	case bool:
		return x, nil
	default:
		f, ferr := coerceFloat64(v)
		if ferr != nil {
			return false, &QuantityError{Quantity: q.displayName(), Err: ferr}
		}

		return f != 0, nil
	}
}

// AsString evaluates q and coerces the result to a string (used by
// Categorize).
func (q Quantity) AsString(datum interface{}) (string, error) {
	v, err := q.Eval(datum)
	if err != nil {
		return "", &QuantityError{Quantity: q.displayName(), Err: err}
	}

	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return fmt.Sprintf("%v", x), nil
	}
}

// Equal reports whether q and other are the same quantity. If either is
// named, equality is by name. Two anonymous quantities are equal only if
// they wrap the same function value.
func (q Quantity) Equal(other Quantity) bool {
	if q.Name != "" || other.Name != "" {
		return q.Name == other.Name
	}
	if q.Func == nil || other.Func == nil {
		return q.Func == nil && other.Func == nil
	}

	return reflect.ValueOf(q.Func).Pointer() == reflect.ValueOf(other.Func).Pointer()
}

func (q Quantity) displayName() string {
	if q.Name == "" {
		return "<anonymous>"
	}

	return q.Name
}

func coerceFloat64(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case bool:
		if x {
			return 1.0, nil
		}

		return 0.0, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to float64", v)
	}
}
