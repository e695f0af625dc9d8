package geoio

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ctessum/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/urbangiser/georegion/geotable"
)

// readGeoJSON decodes a FeatureCollection at path into a Table. Property
// columns are the union of keys across features; a key whose every present
// value is a JSON number becomes a float column, anything else a string
// column. Missing values are zero-filled.
func readGeoJSON(path string) (*geotable.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geoio: read %s: %w", path, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geoio: parse %s: %w", path, err)
	}

	n := len(fc.Features)
	geoms := make([]geom.Geom, n)
	numeric := make(map[string]bool)
	for i, f := range fc.Features {
		geoms[i] = orbToGeom(f.Geometry)
		for k, v := range f.Properties {
			_, isNum := v.(float64)
			if seen, ok := numeric[k]; !ok {
				numeric[k] = isNum
			} else if seen && !isNum {
				numeric[k] = false
			}
		}
	}

	keys := make([]string, 0, len(numeric))
	for k := range numeric {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := geotable.New(n)
	if err := t.AddGeoms(GeometryColumn, geoms); err != nil {
		return nil, err
	}
	for _, k := range keys {
		if numeric[k] {
			col := make([]float64, n)
			for i, f := range fc.Features {
				if v, ok := f.Properties[k].(float64); ok {
					col[i] = v
				}
			}
			if err := t.AddFloats(k, col); err != nil {
				return nil, err
			}
			continue
		}
		col := make([]string, n)
		for i, f := range fc.Features {
			if v, ok := f.Properties[k]; ok && v != nil {
				col[i] = fmt.Sprint(v)
			}
		}
		if err := t.AddStrings(k, col); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// writeGeoJSON stores the table at path as an indented FeatureCollection.
func writeGeoJSON(path string, t *geotable.Table, geomCol string) error {
	geoms, err := t.Geoms(geomCol)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNoGeometry, geomCol)
	}

	fc := geojson.NewFeatureCollection()
	for row, g := range geoms {
		f := geojson.NewFeature(geomToOrb(g))
		for _, c := range t.Schema().Columns() {
			switch c.Kind {
			case geotable.KindFloat:
				vs, err := t.Floats(c.Name)
				if err != nil {
					return err
				}
				f.Properties[c.Name] = vs[row]
			case geotable.KindInt:
				vs, err := t.Ints(c.Name)
				if err != nil {
					return err
				}
				f.Properties[c.Name] = vs[row]
			case geotable.KindString:
				vs, err := t.Strings(c.Name)
				if err != nil {
					return err
				}
				f.Properties[c.Name] = vs[row]
			}
		}
		fc.Append(f)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("geoio: marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("geoio: write %s: %w", path, err)
	}

	return nil
}

// orbToGeom maps the GeoJSON geometry types used by polygonal and point
// layers onto geom values; unsupported types map to nil, which the
// downstream stages treat as "no geometry".
func orbToGeom(g orb.Geometry) geom.Geom {
	switch v := g.(type) {
	case orb.Point:
		return geom.Point{X: v[0], Y: v[1]}
	case orb.Polygon:
		return orbPolygon(v)
	case orb.MultiPolygon:
		mp := make(geom.MultiPolygon, len(v))
		for i, p := range v {
			mp[i] = orbPolygon(p)
		}
		return mp
	default:
		return nil
	}
}

func orbPolygon(p orb.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, ring := range p {
		path := make([]geom.Point, len(ring))
		for j, pt := range ring {
			path[j] = geom.Point{X: pt[0], Y: pt[1]}
		}
		out[i] = path
	}

	return out
}

func geomToOrb(g geom.Geom) orb.Geometry {
	switch v := g.(type) {
	case geom.Point:
		return orb.Point{v.X, v.Y}
	case geom.Polygon:
		return geomPolygon(v)
	case geom.MultiPolygon:
		mp := make(orb.MultiPolygon, len(v))
		for i, p := range v {
			mp[i] = geomPolygon(p)
		}
		return mp
	default:
		return nil
	}
}

func geomPolygon(p geom.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, path := range p {
		ring := make(orb.Ring, len(path))
		for j, pt := range path {
			ring[j] = orb.Point{pt.X, pt.Y}
		}
		// GeoJSON rings are closed; geom paths may drop the closing vertex.
		if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}
		out[i] = ring
	}

	return out
}
