// Package core defines the Container contract shared by every aggregation
// primitive in this module, the process-wide type registry used to
// deserialize nested documents, the Quantity callable wrapper, and the
// canonical {version,type,data} document codec.
//
// Why a shared contract?
//
//   - Single interface, composable primitives — Count, Bin, Select, Label
//     and every other primitive implement the same four operations
//     (Fill, Zero, Merge, ToAggregation) so generic collection primitives
//     (Label, Index, Branch) can hold and forward to inner containers
//     without knowing their concrete shape.
//   - Deterministic algebra — Merge is associative and commutative up to
//     floating-point rounding; Zero() is the identity element.
//   - Self-describing documents — every nested aggregator-valued position
//     repeats the {type,data} shell, so Decode can dispatch purely from
//     the document without any out-of-band schema.
//
// Registry:
//
//	Register(name string, f Factory) error   // write-once per type-name
//	Lookup(name string) (Factory, bool)
//
// Each primitive package registers its factory in an init(); see the
// histogrammar/all package for a single import that registers every
// primitive shipped with this module.
//
// Document shell:
//
//	{ "version": "1.0", "type": "Bin", "data": { ... } }
//
// Version compatibility: a reader accepts a document when the reader's
// major version is >= the document's major version, or (majors equal
// and) the reader's minor version is >= the document's minor version.
//
// Errors:
//
//	ErrShapeMismatch          – merge of differently-shaped containers
//	ErrUnknownType            – document names an unregistered type
//	ErrMalformedDocument      – missing key, wrong kind, bad number token
//	ErrVersionIncompatible    – document version unreadable by this build
//	ErrDuplicateRegistration  – same type-name registered twice
//	ErrInvalidConstruction    – construction-time constraint violated
package core
