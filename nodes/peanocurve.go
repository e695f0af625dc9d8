package nodes

import (
	"go.uber.org/zap"

	"github.com/urbangiser/georegion/geoio"
	"github.com/urbangiser/georegion/geotable"
	"github.com/urbangiser/georegion/peano"
)

// peanoCurve appends a space-filling-curve order column; its output is the
// usual order key for the constrained partitioner.
type peanoCurve struct {
	params struct {
		Geometry string `validate:"required"`
		Depth    int    `validate:"gte=0"`
	}
	outCol string
}

// NewPeanoCurve builds the Peano order node. Parameters:
//
//	geometry — geometry column name; default "geometry".
//	depth    — curve recursion depth; default 32.
func NewPeanoCurve(params map[string]string) (Node, error) {
	n := &peanoCurve{}
	n.params.Geometry = strParam(params, "geometry", geoio.GeometryColumn)
	depth, err := intParam(params, "depth", peano.DefaultDepth)
	if err != nil {
		return nil, err
	}
	n.params.Depth = depth
	if err := checkParams(&n.params); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *peanoCurve) Spec() Spec {
	return Spec{
		Name:    "PeanoCurve",
		Kind:    KindManipulator,
		Inputs:  []PortSpec{{Name: "table", Doc: "units with a geometry column"}},
		Outputs: []PortSpec{{Name: "table", Doc: "input plus the " + ColOrder + " column"}},
	}
}

func (n *peanoCurve) Configure(in *geotable.Schema) (*geotable.Schema, error) {
	if err := requireColumn(in, n.params.Geometry, geotable.KindGeometry); err != nil {
		return nil, err
	}
	n.outCol = in.UniqueName(ColOrder)

	return in.Append(geotable.ColumnSpec{Name: n.outCol, Kind: geotable.KindFloat}), nil
}

func (n *peanoCurve) Execute(ctx *Context, in *geotable.Table) (*geotable.Table, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	geoms, err := in.Geoms(n.params.Geometry)
	if err != nil {
		return nil, err
	}
	orders, err := peano.Orders(geoms, n.params.Depth)
	if err != nil {
		return nil, err
	}
	ctx.logger().Info("peano orders computed",
		zap.String("node", "PeanoCurve"), zap.Int("rows", in.NumRows()),
		zap.Int("depth", n.params.Depth))

	out := in.Copy()
	if n.outCol == "" {
		n.outCol = in.Schema().UniqueName(ColOrder)
	}
	if err := out.AddFloats(n.outCol, orders); err != nil {
		return nil, err
	}

	return out, nil
}
