// Package categorical implements Categorize, a lazily-materialized
// histogram keyed by an arbitrary string-valued quantity rather than a
// numeric range. Like SparselyBin, a key seen for the first time
// materializes a fresh sub-aggregator from a template kept on the
// container.
package categorical
