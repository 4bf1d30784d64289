// Package histogrammar is a library of composable, mergeable
// aggregation primitives for summarizing weighted observation streams.
//
// What is histogrammar?
//
//	A small algebra of "containers" — Count, Sum, Average, Deviate,
//	histograms (Bin, SparselyBin, CentrallyBin), gates and routers
//	(Select, Fraction, Stack, Partition, Limit), and collections
//	(Label, UntypedLabel, Index, Branch, Categorize) — that all share
//	one contract: Zero, Fill, Merge, Equals, and a reversible document
//	form.
//
// Why containers:
//
//   - Composable    — any container can nest inside any other; a Bin of
//     Averages, a Label of Categorizes, and so on, are all valid.
//   - Associative   — fill a container per data partition, then Merge
//     the partial results; the answer doesn't depend on how the work
//     was split.
//   - Self-describing — every serialized document carries its own
//     {version, type, data} shell, nested at every aggregator-valued
//     position, so a reader can reconstruct the whole tree from the
//     registry alone.
//
// Everything is organized under five subpackages:
//
//	core/       — the Container/Factory contract, the registry, the
//	              Quantity wrapper, and the document codec
//	numeric/    — tolerance-aware float equality and the non-finite-safe
//	              JSON number codec
//	scalar/     — Count, Sum, Average, Deviate, AbsoluteErr, Minimize,
//	              Maximize
//	binning/    — Bin, SparselyBin, CentrallyBin
//	selective/  — Select, Fraction, Stack, Partition, Limit
//	collection/ — Label, UntypedLabel, Index, Branch
//	categorical/ — Categorize
//
// all/ blank-imports every primitive package for callers that need the
// full registry without naming each concrete type.
package histogrammar
