// Package contiguity builds undirected neighbor graphs over spatial units
// from their geometries: two units are adjacent when their polygon
// boundaries touch.
//
// What:
//
//   - Build: derives a Graph from a slice of geometries using an R-tree
//     bounding-box prefilter followed by an exact boundary test.
//   - Rook adjacency: units share a boundary edge (two consecutive vertices).
//   - Queen adjacency: units share at least one boundary vertex.
//   - Quotient: collapses unit adjacency to cluster-label adjacency, the
//     neighbor relation of a dissolved layer.
//   - Components: connected components of the graph.
//
// Why:
//
//   - Every clustering stage needs a fresh contiguity graph over its current
//     row set; the relation is a pure derivation from geometry and is never
//     persisted between stages.
//
// Edge cases:
//
//   - Degenerate rows (nil geometry, points, empty polygons) are legal and
//     simply have no neighbors; Build never fails on them.
//   - Adjacency is symmetric and irreflexive; there are no tie-breaks.
//
// Complexity:
//
//   - Build: O(n log n + Σ candidate-pair vertex comparisons) with the
//     R-tree prefilter; degenerates to O(n²·V) only when every bounding box
//     overlaps every other.
//   - Quotient, Components: O(V + E).
//
// Errors:
//
//   - ErrBadTolerance: negative vertex-matching tolerance.
//   - ErrIndexRange: unit index out of range on a Graph accessor.
package contiguity
