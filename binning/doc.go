// Package binning implements the three histogram primitives: Bin (dense,
// fixed-width, with underflow/overflow/nanflow), SparselyBin (fixed-width
// but with a growable, lazily-materialized set of bins), and
// CentrallyBin (irregular bins routed by nearest-center).
//
// Every primitive here takes a template inner container and creates each
// bin via template.Zero() — at construction for Bin and CentrallyBin,
// lazily (keeping the template) for SparselyBin — so the per-bin
// aggregator can itself be any Container, including another histogram
// (nested binning) or a collection primitive.
//
// Merging requires exact bin-geometry agreement (Bin: low/high/num;
// SparselyBin: binWidth/origin; CentrallyBin: the center list) — a
// mismatch is a *core.ContainerError wrapping core.ErrShapeMismatch,
// never a silent re-bin.
package binning
