package geoio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"

	"github.com/urbangiser/georegion/geotable"
)

// readShapefile decodes path into a Table: geometries from the .shp body,
// attributes from the .dbf sidecar and the CRS from .prj when present.
//
// DBF numeric fields ('N', 'F') become float columns; everything else is
// kept as strings.
func readShapefile(path string) (*geotable.Table, error) {
	// The DBF header is the only source of field names and types; the
	// decoder below wants the names up front.
	hdr, err := goshp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoio: open %s: %w", path, err)
	}
	dbfFields := hdr.Fields()
	if err := hdr.Close(); err != nil {
		return nil, fmt.Errorf("geoio: close %s: %w", path, err)
	}

	names := make([]string, len(dbfFields))
	numeric := make([]bool, len(dbfFields))
	for i, f := range dbfFields {
		names[i] = f.String()
		numeric[i] = f.Fieldtype == 'N' || f.Fieldtype == 'F'
	}

	dec, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("geoio: decode %s: %w", path, err)
	}
	defer dec.Close()

	var geoms []geom.Geom
	raw := make([][]string, len(names))
	for {
		g, vals, more := dec.DecodeRowFields(names...)
		if !more {
			break
		}
		geoms = append(geoms, g)
		for i, name := range names {
			raw[i] = append(raw[i], vals[name])
		}
	}
	if err := dec.Error(); err != nil {
		return nil, fmt.Errorf("geoio: decode %s: %w", path, err)
	}

	t := geotable.New(len(geoms))
	if err := t.AddGeoms(GeometryColumn, geoms); err != nil {
		return nil, err
	}
	for i, name := range names {
		if err := addRawColumn(t, name, raw[i], numeric[i]); err != nil {
			return nil, err
		}
	}
	if sr, err := dec.SR(); err == nil {
		t.SetSR(sr)
	}

	return t, nil
}

func addRawColumn(t *geotable.Table, name string, vals []string, numeric bool) error {
	// DBF values come back padded with nulls and spaces.
	for i, s := range vals {
		vals[i] = strings.Trim(s, "\x00* ")
	}
	if !numeric {
		return t.AddStrings(name, vals)
	}
	floats := make([]float64, len(vals))
	for i, s := range vals {
		if s == "" {
			continue // null value
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// Declared numeric but unparsable; fall back to strings.
			return t.AddStrings(name, vals)
		}
		floats[i] = f
	}

	return t.AddFloats(name, floats)
}

// writeShapefile stores the table at path. The shape type is taken from the
// first non-nil geometry; int columns become DBF numbers, float columns DBF
// floats and string columns 80-char text fields.
func writeShapefile(path string, t *geotable.Table, geomCol string) error {
	geoms, err := t.Geoms(geomCol)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNoGeometry, geomCol)
	}

	var fields []goshp.Field
	var getters []func(row int) interface{}
	for _, c := range t.Schema().Columns() {
		switch c.Kind {
		case geotable.KindFloat:
			fs, err := t.Floats(c.Name)
			if err != nil {
				return err
			}
			fields = append(fields, goshp.FloatField(c.Name, 24, 10))
			getters = append(getters, func(row int) interface{} { return fs[row] })
		case geotable.KindInt:
			is, err := t.Ints(c.Name)
			if err != nil {
				return err
			}
			fields = append(fields, goshp.NumberField(c.Name, 18))
			getters = append(getters, func(row int) interface{} { return int(is[row]) })
		case geotable.KindString:
			ss, err := t.Strings(c.Name)
			if err != nil {
				return err
			}
			fields = append(fields, goshp.StringField(c.Name, 80))
			getters = append(getters, func(row int) interface{} { return ss[row] })
		}
	}

	enc, err := shp.NewEncoderFromFields(path, shapeType(geoms), fields...)
	if err != nil {
		return fmt.Errorf("geoio: encode %s: %w", path, err)
	}
	defer enc.Close()

	for row, g := range geoms {
		vals := make([]interface{}, len(getters))
		for i, get := range getters {
			vals[i] = get(row)
		}
		if err := enc.EncodeFields(g, vals...); err != nil {
			return fmt.Errorf("geoio: encode %s row %d: %w", path, row, err)
		}
	}

	return nil
}

func shapeType(geoms []geom.Geom) goshp.ShapeType {
	for _, g := range geoms {
		switch g.(type) {
		case geom.Point:
			return goshp.POINT
		case geom.Polygon, geom.MultiPolygon:
			return goshp.POLYGON
		}
	}

	return goshp.NULL
}
