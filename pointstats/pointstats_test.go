package pointstats

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbangiser/georegion/geomutil"
)

func corners() []geom.Point {
	return []geom.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2},
	}
}

func TestMeanCenter(t *testing.T) {
	mc, err := MeanCenter(corners(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, mc.X, 1e-12)
	assert.InDelta(t, 1, mc.Y, 1e-12)
}

func TestMeanCenterWeighted(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}}
	mc, err := MeanCenter(pts, []float64{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 3, mc.X, 1e-12)
	assert.InDelta(t, 0, mc.Y, 1e-12)
}

func TestMeanCenterErrors(t *testing.T) {
	_, err := MeanCenter(nil, nil)
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = MeanCenter(corners(), []float64{1})
	assert.ErrorIs(t, err, ErrWeightLength)
}

func TestStdDistance(t *testing.T) {
	// Every corner sits sqrt(2) from the center.
	d, err := StdDistance(corners())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, d, 1e-12)
}

func TestEllipseSymmetric(t *testing.T) {
	sx, sy, theta, err := Ellipse(corners())
	require.NoError(t, err)

	// Perfect symmetry: no rotation, equal axes of sqrt(2*4/2) = 2.
	assert.InDelta(t, 0, theta, 1e-12)
	assert.InDelta(t, 2, sx, 1e-12)
	assert.InDelta(t, 2, sy, 1e-12)
}

func TestEllipseElongated(t *testing.T) {
	// Points spread along the x axis only: the major axis must align with
	// it and the minor axis collapse.
	pts := []geom.Point{
		{X: -3, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 0},
	}
	sx, sy, theta, err := Ellipse(pts)
	require.NoError(t, err)
	assert.InDelta(t, 0, theta, 1e-12)
	assert.Greater(t, sx, 0.0)
	assert.InDelta(t, 0, sy, 1e-12)
}

func TestEllipseTooFewPoints(t *testing.T) {
	_, _, _, err := Ellipse([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, _, _, err = Ellipse(nil)
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestEllipsePolygon(t *testing.T) {
	center := geom.Point{X: 10, Y: 20}
	poly := EllipsePolygon(center, 4, 2, 0, 32)

	require.Len(t, poly, 1)
	ring := poly[0]
	require.Len(t, ring, 33, "32 segments plus the closing vertex")
	assert.Equal(t, ring[0], ring[len(ring)-1], "ring must be closed")

	// The polygon approximates an area of pi * 4 * 2 from inside.
	area := geomutil.Area(poly)
	assert.InDelta(t, math.Pi*8, area, 0.3)
	assert.Less(t, area, math.Pi*8)

	c, _, ok := geomutil.Centroid(poly)
	require.True(t, ok)
	assert.InDelta(t, center.X, c.X, 1e-9)
	assert.InDelta(t, center.Y, c.Y, 1e-9)
}

func TestEllipsePolygonDefaultSegments(t *testing.T) {
	poly := EllipsePolygon(geom.Point{}, 1, 1, 0, 0)
	require.Len(t, poly, 1)
	assert.Len(t, poly[0], DefaultEllipseSegments+1)
}
