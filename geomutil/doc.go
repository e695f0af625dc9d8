// Package geomutil provides small planar-geometry helpers shared by the
// georegion packages: centroids, signed areas, vertex extraction and
// bounding-box math over github.com/ctessum/geom values.
//
// What:
//
//   - Centroid: area-weighted centroid of points, polygons and multi-polygons.
//   - Area: total (unsigned) polygon area via the shoelace formula.
//   - Vertices: flat list of boundary vertices of a geometry.
//   - ExpandBounds: bounding box grown by a tolerance in every direction.
//
// Why:
//
//   - contiguity, isolate, peano and pointstats all need the same handful of
//     planar primitives; keeping them here avoids three private copies.
//
// All helpers are pure functions. A nil or empty geometry yields the zero
// value and ok=false rather than an error — callers treat such rows as
// degenerate units, never as failures.
package geomutil
