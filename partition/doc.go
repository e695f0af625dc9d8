// Package partition implements the sequential constrained partitioner — the
// Initialization stage of the MSSC (modified scale-space clustering)
// pipeline.
//
// What:
//
//   - Walks spatial units in ascending order-key order (ties broken by
//     original row position), growing one cluster at a time.
//   - A unit is admitted to the open cluster iff it is the very first unit,
//     or the open cluster is empty, or it neighbors an admitted member.
//   - Every admission restarts the scan from the lowest-ranked remaining
//     unit, accumulating constraint totals; once every constraint threshold
//     is met and unassigned units remain, the cluster closes and a new one
//     opens.
//   - A full pass that admits nothing force-closes the open cluster
//     (Forced=true) so disconnected components always make progress.
//
// The procedure is an explicit fold over the ordered sequence producing an
// immutable list of closed clusters — each cluster a value (member list +
// final totals + forced flag), never a mutated-in-place accumulator.
//
// Guarantees:
//
//   - Completeness: every unit ends up in exactly one cluster; labels are
//     dense integers starting at 1.
//   - Connectivity: every non-forced cluster induces a connected subgraph of
//     the neighbor graph.
//   - Termination: each outer pass either admits a unit or force-closes a
//     non-empty cluster, so the loop is bounded even on adversarial input.
//
// Edge cases:
//
//   - The empty constraint spec is vacuously satisfied, so clusters close on
//     every admission: the output degenerates to singletons. Not an error.
//   - Zero units yield the empty result.
//
// Errors (sentinel):
//
//   - ErrNilGraph: nil contiguity graph.
//   - ErrDimensionMismatch: values / order / graph sizes disagree.
//
// Isolate flags are emitted all-zero here; marking force-closed degenerate
// clusters as isolated is the Refiner's job, matching the pipeline contract.
package partition
