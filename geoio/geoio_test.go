package geoio

import (
	"path/filepath"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbangiser/georegion/geomutil"
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

func sampleTable(t *testing.T) *geotable.Table {
	t.Helper()
	tbl := geotable.New(2)
	require.NoError(t, tbl.AddGeoms(GeometryColumn, []geom.Geom{square(0, 0), square(1, 0)}))
	require.NoError(t, tbl.AddFloats("pop", []float64{10.5, 20}))
	require.NoError(t, tbl.AddStrings("name", []string{"alpha", "beta"}))
	return tbl
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := ReadFile("units.gpkg")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	err = WriteFile("units.gpkg", geotable.New(0), GeometryColumn)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteMissingGeometry(t *testing.T) {
	tbl := geotable.New(1)
	require.NoError(t, tbl.AddFloats("pop", []float64{1}))

	err := WriteFile(filepath.Join(t.TempDir(), "out.geojson"), tbl, GeometryColumn)
	assert.ErrorIs(t, err, ErrNoGeometry)
}

func TestGeoJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.geojson")
	require.NoError(t, WriteFile(path, sampleTable(t), GeometryColumn))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, got.NumRows())

	geoms, err := got.Geoms(GeometryColumn)
	require.NoError(t, err)
	require.Len(t, geoms, 2)
	assert.InDelta(t, 1, geomutil.Area(geoms[0]), 1e-9)
	c, _, ok := geomutil.Centroid(geoms[1])
	require.True(t, ok)
	assert.InDelta(t, 1.5, c.X, 1e-9)

	pop, err := got.Floats("pop")
	require.NoError(t, err)
	assert.Equal(t, []float64{10.5, 20}, pop)

	names, err := got.Strings("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
}

// JSON has one number type, so int columns come back as floats.
func TestGeoJSONIntColumnBecomesFloat(t *testing.T) {
	tbl := geotable.New(1)
	require.NoError(t, tbl.AddGeoms(GeometryColumn, []geom.Geom{geom.Point{X: 1, Y: 2}}))
	require.NoError(t, tbl.AddInts("Cluster ID", []int64{7}))

	path := filepath.Join(t.TempDir(), "pt.json")
	require.NoError(t, WriteFile(path, tbl, GeometryColumn))

	got, err := ReadFile(path)
	require.NoError(t, err)
	ids, err := got.Floats("Cluster ID")
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, ids)

	geoms, err := got.Geoms(GeometryColumn)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, geoms[0])
}

func TestShapefileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.shp")
	require.NoError(t, WriteFile(path, sampleTable(t), GeometryColumn))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, got.NumRows())

	geoms, err := got.Geoms(GeometryColumn)
	require.NoError(t, err)
	assert.InDelta(t, 1, geomutil.Area(geoms[0]), 1e-9)

	pop, err := got.Floats("pop")
	require.NoError(t, err)
	require.Len(t, pop, 2)
	assert.InDelta(t, 10.5, pop[0], 1e-6)
	assert.InDelta(t, 20, pop[1], 1e-6)

	names, err := got.Strings("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
}
