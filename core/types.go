// types.go declares the Container contract every primitive in this module
// implements, plus the shared version constant for the document format.
package core

import "github.com/histogrammar-go/histogrammar/numeric"

// FormatVersion is the document format version this build writes and the
// baseline it can read (see VersionError for the compatibility rule).
const FormatVersion = "1.0"

// Container is the contract shared by every aggregation primitive: Count,
// Sum, Average, Bin, Select, Label, and so on.
//
// A container is created empty by its factory (Entries()==0, sufficient
// statistics at identity), mutated only through Fill and Merge, and at
// any point can be turned into an Aggregation for serialization.
type Container interface {
	// TypeName returns the primitive's registry key, e.g. "Count", "Bin".
	TypeName() string

	// Entries returns the total weight observed so far, including
	// observations whose quantity value was discarded by a gate.
	Entries() float64

	// Fill updates sufficient statistics in place with one observation.
	// A weight of 0 is a no-op on sufficient statistics (entries still
	// advances by 0). The quantity is evaluated, and any inner fill
	// attempted, strictly before entries is advanced, so a failed Fill
	// leaves entries unchanged. A container that fans out to several
	// inners (Branch, UntypedLabel, Stack, Fraction, ...) does not undo
	// the inner fills that succeeded before the failing one.
	Fill(datum interface{}, weight float64) error

	// Zero returns a fresh container of the same shape at identity
	// state (entries=0, sufficient statistics at their identity value).
	Zero() Container

	// Merge returns a new container combining the sufficient statistics
	// of the receiver and other. It is pure: neither operand is
	// mutated. Merge fails with a *ContainerError wrapping
	// ErrShapeMismatch if other is not the same shape.
	Merge(other Container) (Container, error)

	// Equals reports structural, tolerance-aware equality with other.
	Equals(other Container, tol numeric.Tolerance) bool

	// ToAggregation returns the primitive-specific serializable body
	// (without the {version,type} shell, which Encode attaches).
	ToAggregation() (interface{}, error)
}

// Factory constructs empty containers of one shape and decodes documents
// of that shape back into containers.
type Factory interface {
	// TypeName is the registry key this factory serves, e.g. "Bin".
	TypeName() string

	// FromAggregation decodes data (the document's "data" sub-tree)
	// into a Container of this factory's shape, using reg to resolve
	// any nested inner containers.
	FromAggregation(data []byte, reg *Registry) (Container, error)
}
