package nodes

import (
	"fmt"

	"github.com/ctessum/geom"
	"go.uber.org/zap"

	"github.com/urbangiser/georegion/geoio"
	"github.com/urbangiser/georegion/geomutil"
	"github.com/urbangiser/georegion/geotable"
	"github.com/urbangiser/georegion/pointstats"
)

// meanCenter reduces the input to a single mean-center point row.
type meanCenter struct {
	params struct {
		Geometry string `validate:"required"`
		Weight   string
	}
}

// NewMeanCenter builds the mean-center node. Parameters:
//
//	geometry — geometry column name; default "geometry".
//	weight   — optional float column weighting each unit.
func NewMeanCenter(params map[string]string) (Node, error) {
	n := &meanCenter{}
	n.params.Geometry = strParam(params, "geometry", geoio.GeometryColumn)
	n.params.Weight = strParam(params, "weight", "")
	if err := checkParams(&n.params); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *meanCenter) Spec() Spec {
	return Spec{
		Name:    "MeanCenter",
		Kind:    KindManipulator,
		Inputs:  []PortSpec{{Name: "table", Doc: "units with a geometry column"}},
		Outputs: []PortSpec{{Name: "center", Doc: "single point row: the mean center"}},
	}
}

func (n *meanCenter) Configure(in *geotable.Schema) (*geotable.Schema, error) {
	if err := requireColumn(in, n.params.Geometry, geotable.KindGeometry); err != nil {
		return nil, err
	}
	if n.params.Weight != "" {
		if err := requireColumn(in, n.params.Weight, geotable.KindFloat); err != nil {
			return nil, err
		}
	}
	return geotable.NewSchema(geotable.ColumnSpec{
		Name: n.params.Geometry,
		Kind: geotable.KindGeometry,
	}), nil
}

func (n *meanCenter) Execute(ctx *Context, in *geotable.Table) (*geotable.Table, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	pts, err := centroids(in, n.params.Geometry)
	if err != nil {
		return nil, err
	}
	var weights []float64
	if n.params.Weight != "" {
		if weights, err = in.Floats(n.params.Weight); err != nil {
			return nil, err
		}
	}
	mc, err := pointstats.MeanCenter(pts, weights)
	if err != nil {
		return nil, err
	}
	ctx.logger().Info("mean center computed",
		zap.String("node", "MeanCenter"), zap.Int("rows", in.NumRows()),
		zap.Float64("x", mc.X), zap.Float64("y", mc.Y))

	out := geotable.New(1)
	if err := out.AddGeoms(n.params.Geometry, []geom.Geom{mc}); err != nil {
		return nil, err
	}
	out.SetSR(in.SR())

	return out, nil
}

// standardEllipse reduces the input to a single standard-deviational-ellipse
// polygon row with the axis and rotation figures as attributes.
type standardEllipse struct {
	params struct {
		Geometry string `validate:"required"`
		Segments int    `validate:"gte=0"`
	}
}

// NewStandardEllipse builds the standard-ellipse node. Parameters:
//
//	geometry — geometry column name; default "geometry".
//	segments — vertex count of the ellipse polygon; default 64.
func NewStandardEllipse(params map[string]string) (Node, error) {
	n := &standardEllipse{}
	n.params.Geometry = strParam(params, "geometry", geoio.GeometryColumn)
	seg, err := intParam(params, "segments", pointstats.DefaultEllipseSegments)
	if err != nil {
		return nil, err
	}
	n.params.Segments = seg
	if err := checkParams(&n.params); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *standardEllipse) Spec() Spec {
	return Spec{
		Name:    "StandardEllipse",
		Kind:    KindManipulator,
		Inputs:  []PortSpec{{Name: "table", Doc: "units with a geometry column"}},
		Outputs: []PortSpec{{Name: "ellipse", Doc: "single polygon row: the standard deviational ellipse"}},
	}
}

func (n *standardEllipse) Configure(in *geotable.Schema) (*geotable.Schema, error) {
	if err := requireColumn(in, n.params.Geometry, geotable.KindGeometry); err != nil {
		return nil, err
	}
	return geotable.NewSchema(
		geotable.ColumnSpec{Name: n.params.Geometry, Kind: geotable.KindGeometry},
		geotable.ColumnSpec{Name: "Sigma X", Kind: geotable.KindFloat},
		geotable.ColumnSpec{Name: "Sigma Y", Kind: geotable.KindFloat},
		geotable.ColumnSpec{Name: "Rotation", Kind: geotable.KindFloat},
	), nil
}

func (n *standardEllipse) Execute(ctx *Context, in *geotable.Table) (*geotable.Table, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	pts, err := centroids(in, n.params.Geometry)
	if err != nil {
		return nil, err
	}
	sx, sy, theta, err := pointstats.Ellipse(pts)
	if err != nil {
		return nil, err
	}
	mc, err := pointstats.MeanCenter(pts, nil)
	if err != nil {
		return nil, err
	}
	ctx.logger().Info("ellipse computed",
		zap.String("node", "StandardEllipse"), zap.Int("rows", in.NumRows()),
		zap.Float64("sigmaX", sx), zap.Float64("sigmaY", sy), zap.Float64("rotation", theta))

	poly := pointstats.EllipsePolygon(mc, sx, sy, theta, n.params.Segments)
	out := geotable.New(1)
	if err := out.AddGeoms(n.params.Geometry, []geom.Geom{poly}); err != nil {
		return nil, err
	}
	if err := out.AddFloats("Sigma X", []float64{sx}); err != nil {
		return nil, err
	}
	if err := out.AddFloats("Sigma Y", []float64{sy}); err != nil {
		return nil, err
	}
	if err := out.AddFloats("Rotation", []float64{theta}); err != nil {
		return nil, err
	}
	out.SetSR(in.SR())

	return out, nil
}

// centroids derives one representative point per row of a geometry column.
// A row without a derivable centroid is an error here: the point-pattern
// statistics have no meaningful zero-fill.
func centroids(t *geotable.Table, geomCol string) ([]geom.Point, error) {
	geoms, err := t.Geoms(geomCol)
	if err != nil {
		return nil, err
	}
	pts := make([]geom.Point, len(geoms))
	for i, g := range geoms {
		c, _, ok := geomutil.Centroid(g)
		if !ok {
			return nil, fmt.Errorf("%w: row %d has no derivable centroid", ErrBadGeometry, i)
		}
		pts[i] = c
	}

	return pts, nil
}
