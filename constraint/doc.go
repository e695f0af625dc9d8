// Package constraint defines the constraint-variable specification shared by
// all three clustering stages: an ordered list of numeric column names with a
// parallel list of minimum capacity thresholds.
//
// What:
//
//   - Spec: parallel Names/Capacities lists, validated at construction.
//   - Parse: the host configuration surface — two semicolon-delimited strings,
//     one of column names and one of string-encoded numeric capacities.
//   - Satisfied / Deficient: threshold tests over accumulated totals.
//
// Why:
//
//   - Malformed configuration (mismatched list lengths, non-numeric capacity
//     tokens, unknown column names) must be rejected before any row
//     processing begins; no stage may silently drop a constraint variable.
//
// Edge cases:
//
//   - An empty names string parses to the empty Spec. The empty Spec is
//     vacuously satisfied, which makes the partition stage degenerate to
//     singleton clusters — allowed, never an error.
//
// Errors (sentinel):
//
//   - ErrLengthMismatch: name and capacity lists differ in length.
//   - ErrBadCapacity: a capacity token does not parse as a float.
//   - ErrNegativeCapacity: a capacity is below zero.
//   - ErrUnknownColumn: a named column is absent from the dataset schema.
//   - ErrDimension: a totals vector has the wrong number of entries.
package constraint
