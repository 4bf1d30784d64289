// Package numeric provides the tolerance-aware floating-point comparisons
// and the non-finite-safe number codec shared by every container in this
// module.
//
// Two concerns live here and nowhere else:
//
//   - Tolerance: an explicit (never hidden-global) absolute/relative
//     comparison value, passed to Container.Equals by every primitive.
//     The comparison itself delegates to gonum's floats package rather
//     than re-deriving the formula.
//   - Number: a float64 wrapper whose JSON encoding uses the "inf",
//     "-inf", "nan" string tokens the document format requires instead
//     of encoding/json's native (and differently-shaped) handling of
//     non-finite floats.
package numeric
