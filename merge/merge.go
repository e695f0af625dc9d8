package merge

import (
	"fmt"
	"sort"

	"github.com/urbangiser/georegion/constraint"
	"github.com/urbangiser/georegion/contiguity"
)

// Refine runs the cluster merger over a partitioned dataset.
//
// g is a contiguity graph freshly built from the current geometries,
// labels the 1-based cluster ids from the Initialization stage, iso the
// incoming isolate flags, and values[i][v] the constraint variable values
// of unit i.
//
// Complexity: O(V + E + D·C·k) for D deficient clusters, C candidates each
// and k constraint variables. Memory: O(V + clusters).
func Refine(g *contiguity.Graph, labels []int, iso []int, values [][]float64, spec constraint.Spec) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Len()
	if len(labels) != n || len(iso) != n || len(values) != n {
		return nil, fmt.Errorf("%w: graph has %d units, %d labels, %d isolate flags, %d value rows",
			ErrDimensionMismatch, n, len(labels), len(iso), len(values))
	}
	for i, row := range values {
		if len(row) != spec.Len() {
			return nil, fmt.Errorf("%w: unit %d has %d values, spec has %d variables",
				ErrDimensionMismatch, i, len(row), spec.Len())
		}
	}

	sums, err := clusterSums(labels, values, spec.Len())
	if err != nil {
		return nil, err
	}

	plan, isolated, merges, err := buildPlan(g, labels, sums, spec)
	if err != nil {
		return nil, err
	}

	return applyPlan(labels, iso, sums, plan, isolated, merges)
}

// clusterSums computes the immutable per-cluster totals snapshot.
func clusterSums(labels []int, values [][]float64, nvars int) (map[int][]float64, error) {
	sums := make(map[int][]float64)
	for i, l := range labels {
		if l < 1 {
			return nil, fmt.Errorf("%w: unit %d has label %d", ErrBadLabel, i, l)
		}
		row := sums[l]
		if row == nil {
			row = make([]float64, nvars)
			sums[l] = row
		}
		for v := 0; v < nvars; v++ {
			row[v] += values[i][v]
		}
	}

	return sums, nil
}

// buildPlan selects a merge target for every deficient cluster, or marks it
// isolated. All decisions are made against the pre-merge sums snapshot.
func buildPlan(g *contiguity.Graph, labels []int, sums map[int][]float64, spec constraint.Spec) (
	plan map[int]int, isolated map[int]struct{}, merges []Merge, err error) {

	quotient, err := g.Quotient(labels)
	if err != nil {
		return nil, nil, nil, err
	}

	var deficient []int
	for id, totals := range sums {
		bad, derr := spec.Deficient(totals)
		if derr != nil {
			return nil, nil, nil, derr
		}
		if bad {
			deficient = append(deficient, id)
		}
	}
	// Descending id order: later (typically smaller, tail-end) clusters are
	// repaired first.
	sort.Sort(sort.Reverse(sort.IntSlice(deficient)))

	plan = make(map[int]int)
	isolated = make(map[int]struct{})

	for _, d := range deficient {
		target, found, serr := selectTarget(d, quotient[d], sums, spec)
		if serr != nil {
			return nil, nil, nil, serr
		}
		if !found {
			isolated[d] = struct{}{}
			continue
		}
		plan[d] = target
		merges = append(merges, Merge{From: d, To: target})
	}

	return plan, isolated, merges, nil
}

// selectTarget scans candidate neighbor clusters in descending id order.
// The first candidate whose combined totals satisfy every threshold wins,
// unless a later qualifying candidate has strictly smaller combined totals
// on every variable.
func selectTarget(d int, candidates []int, sums map[int][]float64, spec constraint.Spec) (int, bool, error) {
	base := sums[d]
	best := -1
	var bestCombined []float64

	for i := len(candidates) - 1; i >= 0; i-- {
		c := candidates[i]
		if c == d {
			continue
		}
		cs, ok := sums[c]
		if !ok {
			continue
		}
		combined := make([]float64, len(base))
		for v := range combined {
			combined[v] = base[v] + cs[v]
		}
		okAll, err := spec.Satisfied(combined)
		if err != nil {
			return 0, false, err
		}
		if !okAll {
			continue
		}
		if best < 0 || strictlySmaller(combined, bestCombined) {
			best = c
			bestCombined = combined
		}
	}

	return best, best >= 0, nil
}

// strictlySmaller reports a < b on every coordinate. Vacuously true for the
// empty constraint spec, but the empty spec never yields deficient clusters
// so the case is unreachable in practice.
func strictlySmaller(a, b []float64) bool {
	for v := range a {
		if a[v] >= b[v] {
			return false
		}
	}
	return true
}

// applyPlan resolves target chains, relabels every unit once, clears the
// isolate flag of merged members, raises it for irreparable clusters, and
// renumbers surviving ids densely from 1.
func applyPlan(labels, iso []int, sums map[int][]float64, plan map[int]int,
	isolated map[int]struct{}, merges []Merge) (*Result, error) {

	resolved := make(map[int]int, len(plan))
	var resolve func(id int, trail map[int]struct{}) int
	resolve = func(id int, trail map[int]struct{}) int {
		if r, ok := resolved[id]; ok {
			return r
		}
		next, merged := plan[id]
		if !merged {
			resolved[id] = id
			return id
		}
		if _, looped := trail[id]; looped {
			// Mutual merge cycle: collapse onto the smallest id involved.
			m := id
			for t := range trail {
				if t < m {
					m = t
				}
			}
			resolved[id] = m
			return m
		}
		trail[id] = struct{}{}
		r := resolve(next, trail)
		resolved[id] = r

		return r
	}
	for id := range sums {
		resolve(id, make(map[int]struct{}))
	}

	// Dense renumbering of surviving ids, ascending.
	surviving := make(map[int]struct{})
	for _, r := range resolved {
		surviving[r] = struct{}{}
	}
	ordered := make([]int, 0, len(surviving))
	for id := range surviving {
		ordered = append(ordered, id)
	}
	sort.Ints(ordered)
	renumber := make(map[int]int, len(ordered))
	for i, id := range ordered {
		renumber[id] = i + 1
	}

	res := &Result{
		Labels:      make([]int, len(labels)),
		Isolate:     make([]int, len(iso)),
		NumClusters: len(ordered),
	}
	for i, l := range labels {
		final := resolved[l]
		res.Labels[i] = renumber[final]
		_, wasMerged := plan[l]
		switch {
		case hasID(isolated, final):
			// The whole final cluster is irreparable, absorbed members
			// included.
			res.Isolate[i] = 1
		case wasMerged:
			res.Isolate[i] = 0
		default:
			res.Isolate[i] = iso[i]
		}
	}

	// Report merges with resolved, pre-renumbering targets.
	for i := range merges {
		merges[i].To = resolved[merges[i].From]
	}
	res.Merges = merges

	return res, nil
}

func hasID(set map[int]struct{}, id int) bool {
	_, ok := set[id]
	return ok
}
