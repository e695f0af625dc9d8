package geomutil

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func square(x, y, side float64) geom.Polygon {
	return geom.Polygon{{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
	}}
}

func TestCentroidPolygon(t *testing.T) {
	c, area, ok := Centroid(square(2, 3, 2))
	if !ok {
		t.Fatal("expected a centroid")
	}
	if math.Abs(c.X-3) > 1e-9 || math.Abs(c.Y-4) > 1e-9 {
		t.Errorf("centroid = %v, want (3, 4)", c)
	}
	if math.Abs(area-4) > 1e-9 {
		t.Errorf("area = %v, want 4", area)
	}
}

func TestCentroidClosedRing(t *testing.T) {
	// Rings with an explicit closing vertex must give the same answer.
	p := square(0, 0, 1)
	p[0] = append(p[0], p[0][0])
	c, area, ok := Centroid(p)
	if !ok || math.Abs(c.X-0.5) > 1e-9 || math.Abs(c.Y-0.5) > 1e-9 {
		t.Errorf("centroid = %v (ok=%v), want (0.5, 0.5)", c, ok)
	}
	if math.Abs(area-1) > 1e-9 {
		t.Errorf("area = %v, want 1", area)
	}
}

func TestCentroidPoint(t *testing.T) {
	c, area, ok := Centroid(geom.Point{X: 7, Y: -2})
	if !ok {
		t.Fatal("expected a centroid")
	}
	if c.X != 7 || c.Y != -2 || area != 0 {
		t.Errorf("got %v area %v", c, area)
	}
}

func TestCentroidMultiPolygon(t *testing.T) {
	mp := geom.MultiPolygon{square(0, 0, 1), square(2, 0, 1)}
	c, area, ok := Centroid(mp)
	if !ok {
		t.Fatal("expected a centroid")
	}
	if math.Abs(c.X-1.5) > 1e-9 || math.Abs(c.Y-0.5) > 1e-9 {
		t.Errorf("centroid = %v, want (1.5, 0.5)", c)
	}
	if math.Abs(area-2) > 1e-9 {
		t.Errorf("area = %v, want 2", area)
	}
}

func TestCentroidDegenerate(t *testing.T) {
	if _, _, ok := Centroid(nil); ok {
		t.Error("nil geometry must not yield a centroid")
	}
	// Zero-area polygon: all vertices collinear.
	degen := geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}}
	if _, _, ok := Centroid(degen); ok {
		t.Error("zero-area polygon must not yield a centroid")
	}
}

func TestVertices(t *testing.T) {
	p := square(0, 0, 1)
	p[0] = append(p[0], p[0][0]) // closing duplicate must be dropped
	if got := len(Vertices(p)); got != 4 {
		t.Errorf("vertex count = %d, want 4", got)
	}
}

func TestDist(t *testing.T) {
	d := Dist(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4})
	if math.Abs(d-5) > 1e-12 {
		t.Errorf("dist = %v, want 5", d)
	}
}

func TestExpandBounds(t *testing.T) {
	b := square(0, 0, 1).Bounds()
	e := ExpandBounds(b, 0.5)
	if e.Min.X != -0.5 || e.Min.Y != -0.5 || e.Max.X != 1.5 || e.Max.Y != 1.5 {
		t.Errorf("expanded bounds = %+v", e)
	}
	if b.Min.X != 0 {
		t.Error("ExpandBounds must not mutate its input")
	}
}
