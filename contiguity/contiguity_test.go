package contiguity

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y float64) geom.Polygon {
	return geom.Polygon{{
		{X: x, Y: y},
		{X: x + 1, Y: y},
		{X: x + 1, Y: y + 1},
		{X: x, Y: y + 1},
	}}
}

// grid builds cols×rows unit squares, row-major: index = row*cols + col.
func grid(cols, rows int) []geom.Geom {
	out := make([]geom.Geom, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, square(float64(c), float64(r)))
		}
	}
	return out
}

func TestBuildRookGrid(t *testing.T) {
	g, err := Build(grid(3, 2), DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 6, g.Len())

	// Corner unit: right and upper neighbors only.
	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, nb)

	// Center of the bottom row touches left, right and above.
	nb, err = g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, nb)

	// No diagonal adjacency under rook.
	adj, err := g.Adjacent(0, 4)
	require.NoError(t, err)
	assert.False(t, adj)

	adj, err = g.Adjacent(4, 1)
	require.NoError(t, err)
	assert.True(t, adj)
}

func TestBuildQueenGrid(t *testing.T) {
	g, err := Build(grid(3, 2), Options{Adjacency: Queen})
	require.NoError(t, err)

	// Diagonal neighbors count under queen.
	adj, err := g.Adjacent(0, 4)
	require.NoError(t, err)
	assert.True(t, adj)

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, nb)
}

// Degrees across a 4x4 tessellation: every candidate pair has to flow
// through the spatial index before the exact boundary test.
func TestBuildGridDegrees(t *testing.T) {
	geoms := grid(4, 4)

	g, err := Build(geoms, DefaultOptions())
	require.NoError(t, err)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := 4
			if c == 0 || c == 3 {
				want--
			}
			if r == 0 || r == 3 {
				want--
			}
			d, err := g.Degree(r*4 + c)
			require.NoError(t, err)
			assert.Equal(t, want, d, "rook degree of (%d,%d)", c, r)
		}
	}

	g, err = Build(geoms, Options{Adjacency: Queen})
	require.NoError(t, err)
	d, err := g.Degree(1*4 + 1) // interior unit
	require.NoError(t, err)
	assert.Equal(t, 8, d, "queen interior degree")
}

func TestBuildDisjointAndNil(t *testing.T) {
	geoms := []geom.Geom{
		square(0, 0),
		nil,              // unreadable row
		square(100, 100), // far away island
	}
	g, err := Build(geoms, DefaultOptions())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		nb, err := g.Neighbors(i)
		require.NoError(t, err)
		assert.Empty(t, nb, "unit %d", i)
	}
}

func TestBuildTolerance(t *testing.T) {
	// A sliver gap below the tolerance still counts as shared boundary.
	geoms := []geom.Geom{square(0, 0), square(1.0000005, 0)}

	g, err := Build(geoms, Options{Adjacency: Rook, Tolerance: 1e-3})
	require.NoError(t, err)
	adj, err := g.Adjacent(0, 1)
	require.NoError(t, err)
	assert.True(t, adj)

	// Without the tolerance the sliver keeps them apart.
	g, err = Build(geoms, DefaultOptions())
	require.NoError(t, err)
	adj, err = g.Adjacent(0, 1)
	require.NoError(t, err)
	assert.False(t, adj)
}

func TestBuildBadTolerance(t *testing.T) {
	_, err := Build(nil, Options{Tolerance: -1})
	assert.ErrorIs(t, err, ErrBadTolerance)
}

func TestNeighborsIndexRange(t *testing.T) {
	g := NewGraph([][]int{{1}, {0}})
	_, err := g.Neighbors(5)
	assert.ErrorIs(t, err, ErrIndexRange)
	_, err = g.Adjacent(-1, 0)
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestQuotient(t *testing.T) {
	// Path graph 0-1-2-3 with labels 1,1,2,3.
	g := NewGraph([][]int{{1}, {0, 2}, {1, 3}, {2}})
	q, err := g.Quotient([]int{1, 1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, q[1])
	assert.Equal(t, []int{1, 3}, q[2])
	assert.Equal(t, []int{2}, q[3])
}

func TestComponents(t *testing.T) {
	// Two components: {0,1,2} and {3,4}.
	g := NewGraph([][]int{{1}, {0, 2}, {1}, {4}, {3}})
	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []int{0, 1, 2}, comps[0])
	assert.Equal(t, []int{3, 4}, comps[1])
}

func TestConnectedSubset(t *testing.T) {
	g := NewGraph([][]int{{1}, {0, 2}, {1}, {}})

	ok, err := g.ConnectedSubset([]int{0, 1, 2})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.ConnectedSubset([]int{0, 2})
	require.NoError(t, err)
	assert.False(t, ok, "0 and 2 only touch through 1")

	ok, err = g.ConnectedSubset([]int{3})
	require.NoError(t, err)
	assert.True(t, ok, "singleton subsets are connected")
}

func TestMultiPolygonAdjacency(t *testing.T) {
	// A two-part unit shares an edge through its second part.
	mp := geom.MultiPolygon{square(10, 10), square(1, 0)}
	g, err := Build([]geom.Geom{square(0, 0), mp}, DefaultOptions())
	require.NoError(t, err)

	adj, err := g.Adjacent(0, 1)
	require.NoError(t, err)
	assert.True(t, adj)
}
