package partition

import (
	"fmt"
	"sort"

	"github.com/urbangiser/georegion/constraint"
	"github.com/urbangiser/georegion/contiguity"
)

// Partition runs the sequential constrained partitioner.
//
// g is the contiguity graph over the units, values[i][v] the constraint
// variable values of unit i (one entry per spec variable), and order[i] the
// unit's order key (for example a Peano curve position). Units are offered
// in ascending order-key order, ties broken by original row position.
//
// Complexity: O(n² · d) worst case over n units of degree d, since each
// admission restarts the scan of the remaining units. Memory: O(n).
func Partition(g *contiguity.Graph, values [][]float64, spec constraint.Spec, order []float64) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Len()
	if len(values) != n || len(order) != n {
		return nil, fmt.Errorf("%w: graph has %d units, %d value rows, %d order keys",
			ErrDimensionMismatch, n, len(values), len(order))
	}
	for i, row := range values {
		if len(row) != spec.Len() {
			return nil, fmt.Errorf("%w: unit %d has %d values, spec has %d variables",
				ErrDimensionMismatch, i, len(row), spec.Len())
		}
	}

	res := &Result{
		Labels:  make([]int, n),
		Isolate: make([]int, n),
	}
	if n == 0 {
		return res, nil
	}

	// Rank units by order key ascending, ties by original row order.
	ranked := make([]int, n)
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return order[ranked[a]] < order[ranked[b]]
	})

	fold := newFold(g, values, spec)
	remaining := ranked

	for len(remaining) > 0 {
		admittedAt := -1
		for pos, u := range remaining {
			if !fold.admissible(u) {
				continue
			}
			if _, err := fold.admit(u, len(remaining) > 1); err != nil {
				return nil, err
			}
			admittedAt = pos
			break // restart the scan from the lowest remaining rank
		}

		if admittedAt >= 0 {
			remaining = append(remaining[:admittedAt:admittedAt], remaining[admittedAt+1:]...)
			continue
		}

		// Barren pass: nothing left is adjacent to the open cluster.
		// Force-close it so the next pass starts an empty cluster, which
		// admits unconditionally — guaranteed progress on disconnected
		// components.
		fold.forceClose()
	}
	fold.closeTail()

	res.Clusters = fold.clusters
	for _, c := range res.Clusters {
		for _, u := range c.Members {
			res.Labels[u] = c.ID
		}
	}

	return res, nil
}

// fold is the accumulator of the partitioning fold: the open cluster plus
// the immutable list of clusters closed so far.
type fold struct {
	g      *contiguity.Graph
	values [][]float64
	spec   constraint.Spec

	clusters []Cluster
	nextID   int

	open    []int
	totals  []float64
	members map[int]struct{}
}

func newFold(g *contiguity.Graph, values [][]float64, spec constraint.Spec) *fold {
	return &fold{
		g:       g,
		values:  values,
		spec:    spec,
		nextID:  1,
		totals:  make([]float64, spec.Len()),
		members: make(map[int]struct{}),
	}
}

// admissible reports whether unit u may join the open cluster: an empty
// cluster accepts anything, otherwise u must neighbor an admitted member.
func (f *fold) admissible(u int) bool {
	if len(f.open) == 0 {
		return true
	}
	nb, err := f.g.Neighbors(u)
	if err != nil {
		return false
	}
	for _, v := range nb {
		if _, ok := f.members[v]; ok {
			return true
		}
	}

	return false
}

// admit adds u to the open cluster and closes the cluster when every
// threshold is met and more units remain. Returns whether a close happened.
func (f *fold) admit(u int, unitsRemain bool) (bool, error) {
	f.open = append(f.open, u)
	f.members[u] = struct{}{}
	for v := range f.totals {
		f.totals[v] += f.values[u][v]
	}

	done, err := f.spec.Satisfied(f.totals)
	if err != nil {
		return false, err
	}
	if done && unitsRemain {
		f.close(false)
		return true, nil
	}

	return false, nil
}

// forceClose closes a non-empty open cluster that no remaining unit can
// join. A barren pass with an empty open cluster cannot occur, since empty
// clusters admit unconditionally.
func (f *fold) forceClose() {
	if len(f.open) > 0 {
		f.close(true)
	}
}

// closeTail closes whatever remains open at the end of the walk.
func (f *fold) closeTail() {
	if len(f.open) > 0 {
		f.close(false)
	}
}

func (f *fold) close(forced bool) {
	totals := make([]float64, len(f.totals))
	copy(totals, f.totals)
	f.clusters = append(f.clusters, Cluster{
		ID:      f.nextID,
		Members: f.open,
		Totals:  totals,
		Forced:  forced,
	})
	f.nextID++
	f.open = nil
	f.members = make(map[int]struct{})
	for v := range f.totals {
		f.totals[v] = 0
	}
}
