// Package geoio reads and writes geotable datasets as single-layer
// geospatial files.
//
// What:
//
//   - ReadFile / WriteFile: dispatch on the file extension.
//   - Shapefile (.shp): decoded with ctessum/geom/encoding/shp (geometries
//     as geom values, CRS from the .prj sidecar via proj), attribute
//     columns typed float when every value parses as a number; written with
//     jonas-p/go-shp, which handles attribute tables of runtime-determined
//     shape.
//   - GeoJSON (.geojson, .json): encoded and decoded with paulmach/orb;
//     feature properties become float or string columns, the union of keys
//     across features with missing values zero-filled.
//
// The geometry column is always named "geometry" on read; WriteFile takes
// the geometry column name explicitly.
//
// GeoPackage is not supported: reading it requires an OGR or sqlite
// binding, and the workflow host already ships dedicated nodes for it.
//
// Errors (sentinel):
//
//   - ErrUnsupportedFormat: extension not recognized.
//   - ErrNoGeometry: writing a table whose geometry column is missing.
//
// I/O failures are wrapped with file context via fmt.Errorf("%w", …).
package geoio
