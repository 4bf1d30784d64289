// Package scalar implements the streaming scalar aggregation primitives:
// Count, Sum, Average, Deviate, AbsoluteErr, Minimize, Maximize.
//
// Every primitive here follows the same fill discipline:
//
//  1. Evaluate the quantity (if any) against the datum. An error here
//     propagates immediately and leaves the container untouched.
//  2. If weight > 0, update the primitive's sufficient statistic using a
//     numerically stable streaming formula (Welford for mean/variance,
//     Chan's parallel-variance formula for merge).
//  3. Add weight (signed, possibly <= 0) to entries.
//
// This ordering satisfies the error-safety rule in spec section 7
// (entries only advances once the quantity has succeeded) and the
// weight<=0 rule in spec section 3 (sufficient statistics are skipped,
// entries still moves by the signed weight) uniformly, without each
// primitive re-deriving it.
//
// Merge requires the two operands' Quantity to agree (see
// core.Quantity.Equal); a mismatch is reported as a *core.ContainerError
// wrapping core.ErrShapeMismatch, the same as a geometry mismatch on a
// binning primitive.
package scalar
