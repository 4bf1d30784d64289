// Package collection implements the container-of-containers primitives:
// Label and Index hold homogeneous inners (all the same shape) keyed by
// string or position respectively; UntypedLabel and Branch relax that to
// heterogeneous inners, paying a per-entry type tag in exchange.
//
// All four duplicate every fill to every inner they hold — there is no
// routing, only fan-out — and advance entries by the fill weight only
// once every inner fill has succeeded.
package collection
