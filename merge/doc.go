// Package merge implements the cluster merger — the Refiner stage of the
// MSSC pipeline. It absorbs clusters whose constraint totals fall short of
// their capacity thresholds into an adjacent cluster, and flags the
// irreparable ones isolated.
//
// What:
//
//   - Per-cluster sums of every constraint variable are computed once, as an
//     immutable snapshot.
//   - Deficient clusters (below threshold on at least one variable) are
//     processed in descending cluster-id order.
//   - Candidates are the adjacent clusters of a freshly derived quotient
//     graph, scanned in descending id. A candidate qualifies when the
//     combined totals satisfy every threshold; the first qualifier wins
//     unless a later qualifier's combined totals are strictly smaller on
//     every variable.
//   - A deficient cluster with no qualifier keeps its label and has its
//     members flagged isolate=1.
//
// Planned merges are collected as an immutable source→target plan and
// applied in a single relabeling pass: target chains are chased (a target
// may itself have been merged away; mutual-merge cycles resolve to the
// smallest id in the cycle), isolate flags of merged members are cleared,
// and surviving ids are renumbered to a dense 1..K range preserving their
// ascending order. Renumbering never interleaves with candidate selection,
// which removes the id-misalignment hazard of incremental compaction.
//
// Guarantees:
//
//   - Every output cluster either satisfies all thresholds or is flagged
//     isolated (combined totals are pre-merge snapshots; cascading merges
//     into the same target only grow a satisfied target further).
//   - Output ids are dense integers starting at 1.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrDimensionMismatch: as in package partition.
//   - ErrBadLabel: a label below 1 in the input labeling.
package merge
