package contiguity

import (
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"

	"github.com/urbangiser/georegion/geomutil"
)

// indexedUnit carries a unit through the spatial index: the embedded
// geometry satisfies the index's element interface, Bounds serves the
// precomputed box, and idx maps hits back to the unit's row.
type indexedUnit struct {
	geom.Geom
	idx    int
	bounds *geom.Bounds
}

func (u *indexedUnit) Bounds() *geom.Bounds { return u.bounds }

// vertexKey is a quantized boundary vertex used for exact matching.
type vertexKey struct{ x, y float64 }

// edgeKey is an undirected boundary edge: its endpoints in canonical order.
type edgeKey struct{ a, b vertexKey }

// boundary holds the precomputed vertex and edge sets of one unit.
type boundary struct {
	vertices map[vertexKey]struct{}
	edges    map[edgeKey]struct{}
}

// Build derives the contiguity graph for the given geometries.
//
// Candidate pairs are found by querying an R-tree of bounding boxes grown by
// the tolerance; each candidate pair is then tested exactly for a shared
// vertex (Queen) or shared edge (Rook). Nil and degenerate geometries take
// part in the index but can never match, so they end up with empty neighbor
// sets — a valid, degenerate outcome rather than an error.
func Build(geoms []geom.Geom, opts Options) (*Graph, error) {
	if opts.Tolerance < 0 {
		return nil, ErrBadTolerance
	}
	n := len(geoms)
	g := &Graph{neighbors: make([][]int, n)}
	if n == 0 {
		return g, nil
	}

	bounds := make([]*geom.Bounds, n)
	tree := rtree.NewTree(25, 50)
	for i, gm := range geoms {
		if gm == nil {
			continue
		}
		bounds[i] = gm.Bounds()
		tree.Insert(&indexedUnit{Geom: gm, idx: i, bounds: bounds[i]})
	}

	// Boundary sets are built lazily: units whose boxes never overlap are
	// never decomposed into vertices and edges.
	boundaries := make([]*boundary, n)
	bnd := func(i int) *boundary {
		if boundaries[i] == nil {
			boundaries[i] = newBoundary(geoms[i], opts.Tolerance)
		}
		return boundaries[i]
	}

	adj := make([]map[int]struct{}, n)
	for i := range geoms {
		if bounds[i] == nil {
			continue
		}
		search := geomutil.ExpandBounds(bounds[i], opts.Tolerance)
		for _, hit := range tree.SearchIntersect(search) {
			j := hit.(*indexedUnit).idx
			if j <= i {
				continue // each unordered pair once; no self-loops
			}
			if !touches(bnd(i), bnd(j), opts.Adjacency) {
				continue
			}
			if adj[i] == nil {
				adj[i] = make(map[int]struct{})
			}
			if adj[j] == nil {
				adj[j] = make(map[int]struct{})
			}
			adj[i][j] = struct{}{}
			adj[j][i] = struct{}{}
		}
	}

	for i, set := range adj {
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

	return g, nil
}

// newBoundary decomposes a geometry into quantized vertex and edge sets.
func newBoundary(g geom.Geom, tol float64) *boundary {
	b := &boundary{
		vertices: make(map[vertexKey]struct{}),
		edges:    make(map[edgeKey]struct{}),
	}
	rings := boundaryRings(g)
	for _, ring := range rings {
		n := len(ring)
		if n > 1 && ring[0] == ring[n-1] {
			ring = ring[:n-1] // drop closing duplicate, edges wrap below
			n--
		}
		keys := make([]vertexKey, n)
		for i, p := range ring {
			keys[i] = quantize(p, tol)
			b.vertices[keys[i]] = struct{}{}
		}
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			b.edges[canonicalEdge(keys[i], keys[(i+1)%n])] = struct{}{}
		}
	}

	return b
}

// boundaryRings extracts the rings of polygonal geometries. Points and
// unsupported geometry types yield no rings and thus no adjacency.
func boundaryRings(g geom.Geom) [][]geom.Point {
	switch t := g.(type) {
	case geom.Polygon:
		return ringsOf(t)
	case geom.MultiPolygon:
		var out [][]geom.Point
		for _, p := range t {
			out = append(out, ringsOf(p)...)
		}
		return out
	default:
		return nil
	}
}

func ringsOf(p geom.Polygon) [][]geom.Point {
	out := make([][]geom.Point, 0, len(p))
	for _, ring := range p {
		out = append(out, ring)
	}
	return out
}

func quantize(p geom.Point, tol float64) vertexKey {
	if tol == 0 {
		return vertexKey{x: p.X, y: p.Y}
	}
	return vertexKey{
		x: snap(p.X, tol),
		y: snap(p.Y, tol),
	}
}

func snap(v, tol float64) float64 {
	q := v / tol
	if q >= 0 {
		return float64(int64(q+0.5)) * tol
	}
	return float64(int64(q-0.5)) * tol
}

func canonicalEdge(a, b vertexKey) edgeKey {
	if b.x < a.x || (b.x == a.x && b.y < a.y) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// touches applies the exact boundary-sharing predicate to two units,
// iterating over the smaller set.
func touches(a, b *boundary, mode Adjacency) bool {
	if mode == Rook {
		small, large := a.edges, b.edges
		if len(large) < len(small) {
			small, large = large, small
		}
		for e := range small {
			if _, ok := large[e]; ok {
				return true
			}
		}
		return false
	}
	small, large := a.vertices, b.vertices
	if len(large) < len(small) {
		small, large = large, small
	}
	for v := range small {
		if _, ok := large[v]; ok {
			return true
		}
	}

	return false
}
