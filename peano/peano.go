package peano

import (
	"errors"
	"math"

	"github.com/ctessum/geom"

	"github.com/urbangiser/georegion/geomutil"
)

// ErrBadDepth indicates a negative recursion depth.
var ErrBadDepth = errors.New("peano: depth must be >= 0")

// DefaultDepth is the recursion depth used by the Peano Curve node:
// 2^32 grid cells per axis, far below float64 noise for typical extents.
const DefaultDepth = 32

// Position returns the Peano curve position of (x, y) in the unit square.
// The result lies in [0, 1); depth bounds the recursion.
//
// The formula picks the quadrant of the point, recurses on the point
// reflected into the quadrant's local frame, reverses the sub-position in
// the two quadrants the curve traverses backwards, and packs quadrant and
// sub-position into a single fraction.
func Position(x, y float64, depth int) (float64, error) {
	if depth < 0 {
		return 0, ErrBadDepth
	}
	return position(x, y, depth), nil
}

func position(x, y float64, k int) float64 {
	if k == 0 || (x == 1 && y == 1) {
		return 0.5
	}
	var quad int
	switch {
	case x <= 0.5 && y <= 0.5:
		quad = 0
	case x <= 0.5:
		quad = 1
	case y <= 0.5:
		quad = 3
	default:
		quad = 2
	}
	sub := position(2*math.Abs(x-0.5), 2*math.Abs(y-0.5), k-1)
	if quad == 1 || quad == 3 {
		sub = 1 - sub
	}
	v := (float64(quad) + sub - 0.5) / 4.0

	return v - math.Floor(v)
}

// Orders computes the curve position of every unit's centroid.
//
// Centroids are scaled into the unit square preserving aspect ratio, with
// the shorter axis centered. Units without a derivable centroid (nil or
// degenerate geometry) receive order 0.5, as does every unit of a
// zero-extent dataset (all centroids coincident).
func Orders(geoms []geom.Geom, depth int) ([]float64, error) {
	if depth < 0 {
		return nil, ErrBadDepth
	}
	n := len(geoms)
	out := make([]float64, n)

	cents := make([]geom.Point, n)
	valid := make([]bool, n)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, g := range geoms {
		c, _, ok := geomutil.Centroid(g)
		cents[i], valid[i] = c, ok
		if !ok {
			continue
		}
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}

	dx, dy := maxX-minX, maxY-minY
	var scale, offsetX, offsetY float64
	switch {
	case dx <= 0 && dy <= 0:
		scale = 0 // single location; everything maps to the center
	case dx >= dy:
		scale = dx
		offsetY = (1 - dy/dx) / 2
	default:
		scale = dy
		offsetX = (1 - dx/dy) / 2
	}

	for i := range geoms {
		if !valid[i] || scale == 0 {
			out[i] = 0.5
			continue
		}
		ux := (cents[i].X-minX)/scale + offsetX
		uy := (cents[i].Y-minY)/scale + offsetY
		out[i] = position(ux, uy, depth)
	}

	return out, nil
}
