// Package selective implements the gating and routing primitives: Select
// (weighted gate into one inner), Fraction (numerator/denominator pair
// sharing a gate), Stack (cumulative cut routing), Partition (exclusive
// interval routing), and Limit (sticky saturation on an entries budget).
//
// Select, Stack, and Partition all key off a numeric quantity — the
// "cut" — evaluated once per fill; Stack and Partition additionally
// require their cuts to be supplied strictly increasing at construction,
// rejected with a ConfigError otherwise.
package selective
