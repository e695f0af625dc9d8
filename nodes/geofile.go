package nodes

import (
	"go.uber.org/zap"

	"github.com/urbangiser/georegion/geoio"
	"github.com/urbangiser/georegion/geotable"
)

// geoFileReader loads a geospatial file into a table.
type geoFileReader struct {
	params struct {
		Path string `validate:"required"`
	}
}

// NewGeoFileReader builds the reader node. Parameters:
//
//	path — file to read (.shp, .geojson, .json); required.
func NewGeoFileReader(params map[string]string) (Node, error) {
	n := &geoFileReader{}
	n.params.Path = strParam(params, "path", "")
	if err := checkParams(&n.params); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *geoFileReader) Spec() Spec {
	return Spec{
		Name: "GeoFileReader",
		Kind: KindSource,
		Outputs: []PortSpec{{
			Name: "table",
			Doc:  "geometry column plus the file's attribute columns",
		}},
	}
}

// Configure reports only the geometry column; attribute columns are known
// after reading the file.
func (n *geoFileReader) Configure(in *geotable.Schema) (*geotable.Schema, error) {
	return geotable.NewSchema(geotable.ColumnSpec{
		Name: geoio.GeometryColumn,
		Kind: geotable.KindGeometry,
	}), nil
}

func (n *geoFileReader) Execute(ctx *Context, in *geotable.Table) (*geotable.Table, error) {
	log := ctx.logger().With(zap.String("node", "GeoFileReader"))
	log.Info("reading", zap.String("path", n.params.Path))
	t, err := geoio.ReadFile(n.params.Path)
	if err != nil {
		return nil, err
	}
	log.Info("read", zap.Int("rows", t.NumRows()), zap.Int("columns", t.NumCols()))

	return t, nil
}

// geoFileWriter stores a table as a geospatial file and passes the input
// through.
type geoFileWriter struct {
	params struct {
		Path     string `validate:"required"`
		Geometry string `validate:"required"`
	}
}

// NewGeoFileWriter builds the writer node. Parameters:
//
//	path     — file to write (.shp, .geojson, .json); required.
//	geometry — geometry column name; default "geometry".
func NewGeoFileWriter(params map[string]string) (Node, error) {
	n := &geoFileWriter{}
	n.params.Path = strParam(params, "path", "")
	n.params.Geometry = strParam(params, "geometry", geoio.GeometryColumn)
	if err := checkParams(&n.params); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *geoFileWriter) Spec() Spec {
	return Spec{
		Name:    "GeoFileWriter",
		Kind:    KindSink,
		Inputs:  []PortSpec{{Name: "table", Doc: "table with a geometry column"}},
		Outputs: []PortSpec{{Name: "table", Doc: "the input, unchanged"}},
	}
}

func (n *geoFileWriter) Configure(in *geotable.Schema) (*geotable.Schema, error) {
	if err := requireColumn(in, n.params.Geometry, geotable.KindGeometry); err != nil {
		return nil, err
	}
	return in, nil
}

func (n *geoFileWriter) Execute(ctx *Context, in *geotable.Table) (*geotable.Table, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	log := ctx.logger().With(zap.String("node", "GeoFileWriter"))
	log.Info("writing", zap.String("path", n.params.Path), zap.Int("rows", in.NumRows()))
	if err := geoio.WriteFile(n.params.Path, in, n.params.Geometry); err != nil {
		return nil, err
	}
	log.Info("written")

	return in, nil
}
