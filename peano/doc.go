// Package peano assigns spatial orders to planar units by their position
// along a Peano space-filling curve.
//
// What:
//
//   - Position: the recursive quadrant formula mapping a point of the unit
//     square to its curve position in [0, 1).
//   - Orders: scales unit centroids into the unit square (aspect preserved,
//     centered on the shorter axis) and returns per-unit curve positions.
//
// Why:
//
//   - Walking units in curve order keeps consecutive units spatially close,
//     which is what makes the sequential constrained partitioner produce
//     compact clusters; the curve position is the order key consumed by
//     package partition.
//
// Complexity: O(n·(k + V)) over n units at recursion depth k with V
// boundary vertices.
//
// Errors (sentinel):
//
//   - ErrBadDepth: negative recursion depth.
package peano
