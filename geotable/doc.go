// Package geotable defines the row-aligned tabular dataset exchanged between
// georegion nodes: one geometry column plus any number of typed attribute
// columns, with the coordinate reference system carried along unchanged.
//
// What:
//
//   - Table: columnar storage with a fixed row count set at construction.
//   - Schema: ordered column name/kind list, for configuration-time checks.
//   - Kinds: Geometry, Float, Int, String.
//
// Why:
//
//   - Every clustering stage consumes and produces the same table shape; the
//     host platform owns serialization, this package owns the in-memory
//     contract and its validation.
//
// Invariants:
//
//   - All columns of a Table have exactly NumRows values.
//   - Column names are unique within a Table.
//   - Tables are value stores: algorithms never mutate an input column, they
//     append or replace columns on a copy (see Copy).
//
// Errors:
//
//   - ErrColumnExists: duplicate column name on Add*.
//   - ErrColumnNotFound: accessor or replace on an unknown name.
//   - ErrLengthMismatch: column data length differs from the table row count.
//   - ErrKindMismatch: typed accessor used on a column of another kind.
package geotable
