package geomutil

import (
	"math"

	"github.com/ctessum/geom"
)

// Centroid returns the area-weighted centroid of g together with its total
// unsigned area. For point geometries the area is zero and the point itself
// is returned. ok is false for nil or empty geometries.
//
// For a set of non-overlapping polygons, the area-weighted mean of their
// centroids equals the centroid of their union, which is what the dissolve
// view of the isolation stage relies on.
//
// Complexity: O(V) over the vertex count of g.
func Centroid(g geom.Geom) (c geom.Point, area float64, ok bool) {
	switch t := g.(type) {
	case geom.Point:
		return t, 0, true
	case geom.Polygon:
		return polygonCentroid(t)
	case geom.MultiPolygon:
		var sumA, sumX, sumY float64
		for _, p := range t {
			pc, a, pok := polygonCentroid(p)
			if !pok {
				continue
			}
			sumA += a
			sumX += pc.X * a
			sumY += pc.Y * a
		}
		if sumA == 0 {
			return geom.Point{}, 0, false
		}
		return geom.Point{X: sumX / sumA, Y: sumY / sumA}, sumA, true
	default:
		return geom.Point{}, 0, false
	}
}

// polygonCentroid computes the centroid of a polygon from its outer ring(s)
// using the standard shoelace-weighted formula. Holes (negatively wound
// rings) subtract naturally through the signed area.
func polygonCentroid(p geom.Polygon) (geom.Point, float64, bool) {
	var sumA, sumX, sumY float64
	for _, ring := range p {
		if len(ring) < 3 {
			continue
		}
		var a, cx, cy float64
		for i := 0; i < len(ring); i++ {
			j := (i + 1) % len(ring)
			cross := ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
			a += cross
			cx += (ring[i].X + ring[j].X) * cross
			cy += (ring[i].Y + ring[j].Y) * cross
		}
		a /= 2
		if a != 0 {
			sumX += cx / 6
			sumY += cy / 6
			sumA += a
		}
	}
	if sumA == 0 {
		return geom.Point{}, 0, false
	}
	return geom.Point{X: sumX / sumA, Y: sumY / sumA}, math.Abs(sumA), true
}

// Area returns the total unsigned area of g; zero for points and degenerate
// geometries.
func Area(g geom.Geom) float64 {
	_, a, _ := Centroid(g)
	return a
}

// Vertices returns the boundary vertices of g as a flat slice.
// Points yield themselves; nil geometries yield nil.
// Ring-closing duplicates (first == last vertex) are dropped.
func Vertices(g geom.Geom) []geom.Point {
	switch t := g.(type) {
	case geom.Point:
		return []geom.Point{t}
	case geom.Polygon:
		return polygonVertices(t)
	case geom.MultiPolygon:
		var out []geom.Point
		for _, p := range t {
			out = append(out, polygonVertices(p)...)
		}
		return out
	default:
		return nil
	}
}

func polygonVertices(p geom.Polygon) []geom.Point {
	var out []geom.Point
	for _, ring := range p {
		n := len(ring)
		if n > 1 && ring[0] == ring[n-1] {
			n-- // drop the closing duplicate
		}
		out = append(out, ring[:n]...)
	}
	return out
}

// ExpandBounds returns a copy of b grown by tol on every side.
// A nil b yields nil.
func ExpandBounds(b *geom.Bounds, tol float64) *geom.Bounds {
	if b == nil {
		return nil
	}
	return &geom.Bounds{
		Min: geom.Point{X: b.Min.X - tol, Y: b.Min.Y - tol},
		Max: geom.Point{X: b.Max.X + tol, Y: b.Max.Y + tol},
	}
}

// Dist returns the euclidean distance between two points.
func Dist(a, b geom.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
