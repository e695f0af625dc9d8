package pointstats

import (
	"errors"
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for point-pattern statistics.
var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("pointstats: point set is empty")

	// ErrWeightLength indicates a weight slice whose length differs from the
	// point count.
	ErrWeightLength = errors.New("pointstats: weights length does not match point count")

	// ErrTooFewPoints indicates fewer points than the statistic supports.
	ErrTooFewPoints = errors.New("pointstats: too few points")
)

// DefaultEllipseSegments is the vertex count of polygons produced by
// EllipsePolygon when callers pass segments <= 0.
const DefaultEllipseSegments = 64

// MeanCenter returns the mean of the point coordinates; with non-nil
// weights, the weighted mean. Complexity: O(n).
func MeanCenter(pts []geom.Point, weights []float64) (geom.Point, error) {
	if len(pts) == 0 {
		return geom.Point{}, ErrNoPoints
	}
	if weights != nil && len(weights) != len(pts) {
		return geom.Point{}, ErrWeightLength
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}

	return geom.Point{
		X: stat.Mean(xs, weights),
		Y: stat.Mean(ys, weights),
	}, nil
}

// StdDistance returns the standard distance of the pattern: the root mean
// squared distance of the points from their (unweighted) mean center.
func StdDistance(pts []geom.Point) (float64, error) {
	mc, err := MeanCenter(pts, nil)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, p := range pts {
		dx, dy := p.X-mc.X, p.Y-mc.Y
		sum += dx*dx + dy*dy
	}

	return math.Sqrt(sum / float64(len(pts))), nil
}

// Ellipse returns the standard deviational ellipse of the pattern: the
// semi-axis lengths sx, sy and the rotation theta (radians, clockwise from
// north as in the conventional formulation).
//
// Uses the textbook estimator: theta from the deviation cross-products,
// axis lengths from the rotated deviations with an n-2 divisor.
func Ellipse(pts []geom.Point) (sx, sy, theta float64, err error) {
	if len(pts) == 0 {
		return 0, 0, 0, ErrNoPoints
	}
	if len(pts) < 3 {
		return 0, 0, 0, ErrTooFewPoints
	}
	mc, err := MeanCenter(pts, nil)
	if err != nil {
		return 0, 0, 0, err
	}

	var sxx, syy, sxy float64
	for _, p := range pts {
		dx, dy := p.X-mc.X, p.Y-mc.Y
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}

	if sxy == 0 {
		// Axis-aligned pattern; arctan formula would divide by zero.
		theta = 0
		if syy > sxx {
			theta = math.Pi / 2
		}
	} else {
		diff := sxx - syy
		theta = math.Atan((diff + math.Sqrt(diff*diff+4*sxy*sxy)) / (2 * sxy))
	}

	cosT, sinT := math.Cos(theta), math.Sin(theta)
	var a, b float64
	for _, p := range pts {
		dx, dy := p.X-mc.X, p.Y-mc.Y
		u := dx*cosT - dy*sinT
		v := dx*sinT + dy*cosT
		a += u * u
		b += v * v
	}
	den := float64(len(pts) - 2)
	sx = math.Sqrt(2 * a / den)
	sy = math.Sqrt(2 * b / den)

	return sx, sy, theta, nil
}

// EllipsePolygon builds a closed polygon approximating the ellipse with the
// given center, semi-axes and rotation. segments <= 0 selects
// DefaultEllipseSegments.
func EllipsePolygon(center geom.Point, sx, sy, theta float64, segments int) geom.Polygon {
	if segments <= 0 {
		segments = DefaultEllipseSegments
	}
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	ring := make([]geom.Point, 0, segments+1)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		u := sx * math.Cos(t)
		v := sy * math.Sin(t)
		ring = append(ring, geom.Point{
			X: center.X + u*cosT + v*sinT,
			Y: center.Y - u*sinT + v*cosT,
		})
	}
	ring = append(ring, ring[0])

	return geom.Polygon{ring}
}
