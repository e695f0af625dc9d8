package nodes

import (
	"path/filepath"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbangiser/georegion/geoio"
	"github.com/urbangiser/georegion/geotable"
)

func square(x, y float64) geom.Polygon {
	return geom.Polygon{{
		{X: x, Y: y},
		{X: x + 1, Y: y},
		{X: x + 1, Y: y + 1},
		{X: x, Y: y + 1},
	}}
}

// gridTable builds a 2x3 tessellation with ten people per unit.
func gridTable(t *testing.T) *geotable.Table {
	t.Helper()
	geoms := make([]geom.Geom, 0, 6)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			geoms = append(geoms, square(float64(c), float64(r)))
		}
	}
	tbl := geotable.New(6)
	require.NoError(t, tbl.AddGeoms(geoio.GeometryColumn, geoms))
	require.NoError(t, tbl.AddFloats("pop", []float64{10, 10, 10, 10, 10, 10}))
	return tbl
}

// run configures the node against the table's schema and executes it.
func run(t *testing.T, n Node, in *geotable.Table) *geotable.Table {
	t.Helper()
	var s *geotable.Schema
	if in != nil {
		s = in.Schema()
	}
	_, err := n.Configure(s)
	require.NoError(t, err, "%s: Configure", n.Spec().Name)
	out, err := n.Execute(NewContext(nil), in)
	require.NoError(t, err, "%s: Execute", n.Spec().Name)
	return out
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{
		"GeoFileReader", "GeoFileWriter", "IsolationTackler",
		"MSSCInitialization", "MSSCRefiner", "MeanCenter",
		"PeanoCurve", "StandardEllipse",
	}, r.Names())

	_, err := r.New("NoSuchNode", nil)
	assert.ErrorIs(t, err, ErrUnknownNode)

	err = r.Register("PeanoCurve", NewPeanoCurve)
	assert.ErrorIs(t, err, ErrDuplicateNode)
}

func TestConfigurationErrors(t *testing.T) {
	// Missing required parameter.
	_, err := NewGeoFileReader(nil)
	assert.ErrorIs(t, err, ErrConfiguration)

	// Mismatched constraint lists fail at construction.
	_, err = NewMSSCInitialization(map[string]string{
		"constraint_columns":    "pop;jobs",
		"constraint_capacities": "25",
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	// Unknown adjacency mode.
	_, err = NewMSSCInitialization(map[string]string{
		"constraint_columns":    "pop",
		"constraint_capacities": "25",
		"adjacency":             "bishop",
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	// Unknown constraint column fails at Configure, before any row work.
	n, err := NewMSSCInitialization(map[string]string{
		"constraint_columns":    "income",
		"constraint_capacities": "25",
	})
	require.NoError(t, err)
	tbl := gridTable(t)
	_, err = n.Configure(tbl.Schema())
	assert.ErrorIs(t, err, ErrConfiguration)

	// Wrong column kind is a configuration error too.
	pc, err := NewPeanoCurve(map[string]string{"geometry": "pop"})
	require.NoError(t, err)
	_, err = pc.Configure(tbl.Schema())
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestPeanoCurveNode(t *testing.T) {
	tbl := gridTable(t)
	n, err := NewPeanoCurve(nil)
	require.NoError(t, err)

	schema, err := n.Configure(tbl.Schema())
	require.NoError(t, err)
	k, ok := schema.Kind(ColOrder)
	require.True(t, ok)
	assert.Equal(t, geotable.KindFloat, k)

	out, err := n.Execute(NewContext(nil), tbl)
	require.NoError(t, err)
	orders, err := out.Floats(ColOrder)
	require.NoError(t, err)
	require.Len(t, orders, 6)
	for i, o := range orders {
		assert.GreaterOrEqual(t, o, 0.0, "order %d", i)
		assert.Less(t, o, 1.0, "order %d", i)
	}
	assert.False(t, tbl.Has(ColOrder), "input table must stay untouched")
}

// The full clustering chain over a connected tessellation: every final
// cluster meets the capacity and no unit stays isolated.
func TestClusteringPipeline(t *testing.T) {
	params := map[string]string{
		"constraint_columns":    "pop",
		"constraint_capacities": "25",
	}

	tbl := gridTable(t)

	pc, err := NewPeanoCurve(nil)
	require.NoError(t, err)
	tbl = run(t, pc, tbl)

	init, err := NewMSSCInitialization(params)
	require.NoError(t, err)
	tbl = run(t, init, tbl)

	ref, err := NewMSSCRefiner(params)
	require.NoError(t, err)
	tbl = run(t, ref, tbl)

	tackler, err := NewIsolationTackler(params)
	require.NoError(t, err)
	tbl = run(t, tackler, tbl)

	labels, err := tbl.Ints(ColCluster)
	require.NoError(t, err)
	iso, err := tbl.Ints(ColIsolate)
	require.NoError(t, err)
	pop, err := tbl.Floats("pop")
	require.NoError(t, err)

	sums := make(map[int64]float64)
	for i, l := range labels {
		require.GreaterOrEqual(t, l, int64(1), "unit %d unassigned", i)
		assert.Equal(t, int64(0), iso[i], "unit %d still isolated", i)
		sums[l] += pop[i]
	}
	require.NotEmpty(t, sums)
	var total float64
	for l, s := range sums {
		assert.GreaterOrEqual(t, s, 25.0, "cluster %d below capacity", l)
		total += s
	}
	assert.InDelta(t, 60, total, 1e-9, "no people lost in the pipeline")
}

func TestFileNodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.geojson")

	w, err := NewGeoFileWriter(map[string]string{"path": path})
	require.NoError(t, err)
	in := gridTable(t)
	out := run(t, w, in)
	assert.Same(t, in, out, "a sink passes its input through")

	r, err := NewGeoFileReader(map[string]string{"path": path})
	require.NoError(t, err)
	got := run(t, r, nil)
	assert.Equal(t, 6, got.NumRows())

	pop, err := got.Floats("pop")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 10, 10, 10, 10}, pop)
}

func TestWriterMissingColumn(t *testing.T) {
	w, err := NewGeoFileWriter(map[string]string{
		"path":     "out.geojson",
		"geometry": "missing",
	})
	require.NoError(t, err)

	tbl := gridTable(t)
	_, err = w.Configure(tbl.Schema())
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestMeanCenterNode(t *testing.T) {
	n, err := NewMeanCenter(nil)
	require.NoError(t, err)
	out := run(t, n, gridTable(t))

	require.Equal(t, 1, out.NumRows())
	geoms, err := out.Geoms(geoio.GeometryColumn)
	require.NoError(t, err)
	pt, ok := geoms[0].(geom.Point)
	require.True(t, ok)
	assert.InDelta(t, 1.5, pt.X, 1e-9)
	assert.InDelta(t, 1.0, pt.Y, 1e-9)
}

func TestStandardEllipseNode(t *testing.T) {
	n, err := NewStandardEllipse(map[string]string{"segments": "16"})
	require.NoError(t, err)
	out := run(t, n, gridTable(t))

	require.Equal(t, 1, out.NumRows())
	geoms, err := out.Geoms(geoio.GeometryColumn)
	require.NoError(t, err)
	poly, ok := geoms[0].(geom.Polygon)
	require.True(t, ok)
	assert.Len(t, poly[0], 17)

	for _, col := range []string{"Sigma X", "Sigma Y", "Rotation"} {
		vs, err := out.Floats(col)
		require.NoError(t, err)
		require.Len(t, vs, 1)
	}
}
