// Package pointstats measures the compactness and trend of a planar point
// pattern: mean center, standard distance and the standard deviational
// ellipse.
//
// What:
//
//   - MeanCenter: the (optionally weighted) mean of the point coordinates.
//   - StdDistance: the radius of the standard-distance circle around the
//     mean center, sqrt(Σ d² / n).
//   - Ellipse: semi-axes and rotation of the standard deviational ellipse,
//     the classic directional-trend summary of a point set.
//   - EllipsePolygon: a polygon approximation of an ellipse for map output.
//
// The inputs are unit centroids in practice; use geomutil.Centroid to
// derive them from polygon rows.
//
// Errors (sentinel):
//
//   - ErrNoPoints: empty input.
//   - ErrWeightLength: weights present but not one per point.
//   - ErrTooFewPoints: the ellipse needs at least three points.
package pointstats
