package contiguity

import "sort"

// Len returns the number of units in the graph.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.neighbors) }

// Neighbors returns the sorted neighbor indices of unit i; nil when the
// unit has no neighbors. The returned slice must not be mutated.
// Complexity: O(1).
func (g *Graph) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(g.neighbors) {
		return nil, ErrIndexRange
	}
	return g.neighbors[i], nil
}

// Adjacent reports whether units i and j share a boundary.
// Complexity: O(log d) over the degree of i.
func (g *Graph) Adjacent(i, j int) (bool, error) {
	if i < 0 || i >= len(g.neighbors) || j < 0 || j >= len(g.neighbors) {
		return false, ErrIndexRange
	}
	nb := g.neighbors[i]
	k := sort.SearchInts(nb, j)

	return k < len(nb) && nb[k] == j, nil
}

// Degree returns the neighbor count of unit i.
func (g *Graph) Degree(i int) (int, error) {
	if i < 0 || i >= len(g.neighbors) {
		return 0, ErrIndexRange
	}
	return len(g.neighbors[i]), nil
}

// Quotient collapses the unit-level adjacency to label-level adjacency:
// two labels are adjacent iff any pair of their members is adjacent. For a
// tessellation this equals the rook adjacency of the dissolved layer, which
// is how the Refiner and the Isolation Tackler find candidate clusters.
// Self-adjacency is excluded. labels must have one entry per unit.
//
// Complexity: O(V + E), Memory: O(labels + cross-label edges).
func (g *Graph) Quotient(labels []int) (map[int][]int, error) {
	if len(labels) != len(g.neighbors) {
		return nil, ErrIndexRange
	}
	sets := make(map[int]map[int]struct{})
	for i, nb := range g.neighbors {
		li := labels[i]
		for _, j := range nb {
			lj := labels[j]
			if li == lj {
				continue
			}
			if sets[li] == nil {
				sets[li] = make(map[int]struct{})
			}
			sets[li][lj] = struct{}{}
		}
	}
	out := make(map[int][]int, len(sets))
	for l, set := range sets {
		nb := make([]int, 0, len(set))
		for m := range set {
			nb = append(nb, m)
		}
		sort.Ints(nb)
		out[l] = nb
	}

	return out, nil
}

// Components returns the connected components of the graph as slices of
// unit indices in discovery (BFS) order. Units with no neighbors form
// singleton components.
//
// Time: O(V + E), Memory: O(V).
func (g *Graph) Components() [][]int {
	n := len(g.neighbors)
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect the component containing s.
		queue := []int{s}
		seen[s] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.neighbors[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// ConnectedSubset reports whether the induced subgraph on the given unit
// indices is connected. An empty or single-element subset is connected.
// Used to check the internal-connectivity guarantee of partition output.
//
// Time: O(|subset| · d), Memory: O(|subset|).
func (g *Graph) ConnectedSubset(subset []int) (bool, error) {
	if len(subset) <= 1 {
		return true, nil
	}
	in := make(map[int]struct{}, len(subset))
	for _, u := range subset {
		if u < 0 || u >= len(g.neighbors) {
			return false, ErrIndexRange
		}
		in[u] = struct{}{}
	}
	queue := []int{subset[0]}
	seen := map[int]struct{}{subset[0]: {}}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.neighbors[u] {
			if _, member := in[v]; !member {
				continue
			}
			if _, vis := seen[v]; !vis {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}

	return len(seen) == len(subset), nil
}

// NewGraph builds a Graph directly from neighbor lists; intended for tests
// and for callers that already hold an adjacency relation. Lists are
// normalized: sorted, deduplicated, self-references dropped, and symmetry
// enforced by mirroring every listed pair.
func NewGraph(neighbors [][]int) *Graph {
	n := len(neighbors)
	sets := make([]map[int]struct{}, n)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	for i, nb := range neighbors {
		for _, j := range nb {
			if j < 0 || j >= n || j == i {
				continue
			}
			sets[i][j] = struct{}{}
			sets[j][i] = struct{}{}
		}
	}
	g := &Graph{neighbors: make([][]int, n)}
	for i, set := range sets {
		if len(set) == 0 {
			continue
		}
		nb := make([]int, 0, len(set))
		for j := range set {
			nb = append(nb, j)
		}
		sort.Ints(nb)
		g.neighbors[i] = nb
	}

	return g
}
