package geoio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urbangiser/georegion/geotable"
)

// Sentinel errors for file I/O.
var (
	// ErrUnsupportedFormat indicates a file extension with no codec.
	ErrUnsupportedFormat = errors.New("geoio: unsupported file format")

	// ErrNoGeometry indicates a write with a missing geometry column.
	ErrNoGeometry = errors.New("geoio: geometry column not found")
)

// GeometryColumn is the geometry column name assigned on read.
const GeometryColumn = "geometry"

// ReadFile loads a single-layer geospatial file into a Table, dispatching
// on the file extension (.shp, .geojson, .json).
func ReadFile(path string) (*geotable.Table, error) {
	switch ext(path) {
	case ".shp":
		return readShapefile(path)
	case ".geojson", ".json":
		return readGeoJSON(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext(path))
	}
}

// WriteFile stores a Table as a single-layer geospatial file, dispatching
// on the file extension (.shp, .geojson, .json). geomCol names the table's
// geometry column.
func WriteFile(path string, t *geotable.Table, geomCol string) error {
	switch ext(path) {
	case ".shp":
		return writeShapefile(path, t, geomCol)
	case ".geojson", ".json":
		return writeGeoJSON(path, t, geomCol)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext(path))
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
