// Package isolate implements the Isolation Tackler — the final MSSC stage,
// which forces a cluster membership for clusters still flagged isolated
// after refinement.
//
// What:
//
//   - Dissolve: aggregates units by cluster id into one row per cluster —
//     constraint variables summed, the isolate flag reduced with min (a
//     cluster counts as satisfied in the dissolve view if any member is
//     non-isolated), and an area-weighted member centroid standing in for
//     the centroid of the dissolved union.
//   - Resolve: for every cluster isolated in the dissolve view, picks the
//     adjacent non-isolated cluster with the smallest value of the first
//     constraint variable; with no adjacent candidate it falls back to the
//     nearest non-isolated cluster by centroid distance, ignoring adjacency.
//   - The chosen target absorbs the isolated cluster: members are relabeled
//     and their isolate flag cleared.
//
// Behavior notes (deliberate, documented limitations of the method):
//
//   - Candidate ranking uses only the first constraint variable even when
//     several are configured.
//   - The dissolve view is computed once and not refreshed: a single pass
//     over the originally-isolated clusters, no fixed-point iteration.
//   - With no non-isolated cluster anywhere, the unresolved clusters keep
//     their labels and flags — a no-op, never a failure.
//   - Labels are not recompacted by this stage.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrDimensionMismatch, ErrBadLabel: as in package merge.
package isolate
