package nodes

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/urbangiser/georegion/constraint"
	"github.com/urbangiser/georegion/contiguity"
	"github.com/urbangiser/georegion/geoio"
	"github.com/urbangiser/georegion/geotable"
	"github.com/urbangiser/georegion/isolate"
	"github.com/urbangiser/georegion/merge"
	"github.com/urbangiser/georegion/partition"
)

// msscBase carries the configuration shared by the three clustering stages:
// geometry, the constraint lists and the adjacency mode.
type msscBase struct {
	params struct {
		Geometry   string `validate:"required"`
		Names      string
		Capacities string
	}
	spec constraint.Spec
	opts contiguity.Options
}

func (b *msscBase) init(params map[string]string) error {
	b.params.Geometry = strParam(params, "geometry", geoio.GeometryColumn)
	b.params.Names = strParam(params, "constraint_columns", "")
	b.params.Capacities = strParam(params, "constraint_capacities", "")
	if err := checkParams(&b.params); err != nil {
		return err
	}

	spec, err := constraint.Parse(b.params.Names, b.params.Capacities)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	b.spec = spec

	adj, err := adjacencyParam(params, "adjacency")
	if err != nil {
		return err
	}
	tol, err := floatParam(params, "tolerance", 0)
	if err != nil {
		return err
	}
	b.opts = contiguity.Options{Adjacency: adj, Tolerance: tol}

	return nil
}

// checkSchema validates the geometry column and every constraint variable
// against the input schema.
func (b *msscBase) checkSchema(in *geotable.Schema) error {
	if err := requireColumn(in, b.params.Geometry, geotable.KindGeometry); err != nil {
		return err
	}
	for _, name := range b.spec.Names {
		if err := requireColumn(in, name, geotable.KindFloat); err != nil {
			return err
		}
	}
	return nil
}

// graphAndValues builds the contiguity graph and the per-unit constraint
// value matrix from the table.
func (b *msscBase) graphAndValues(t *geotable.Table) (*contiguity.Graph, [][]float64, error) {
	geoms, err := t.Geoms(b.params.Geometry)
	if err != nil {
		return nil, nil, err
	}
	g, err := contiguity.Build(geoms, b.opts)
	if err != nil {
		return nil, nil, err
	}

	cols := make([][]float64, b.spec.Len())
	for i, name := range b.spec.Names {
		if cols[i], err = t.Floats(name); err != nil {
			return nil, nil, err
		}
	}
	values := make([][]float64, t.NumRows())
	for row := range values {
		v := make([]float64, len(cols))
		for i, col := range cols {
			v[i] = col[row]
		}
		values[row] = v
	}

	return g, values, nil
}

func toInt(labels []int64) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		out[i] = int(l)
	}
	return out
}

func toInt64(labels []int) []int64 {
	out := make([]int64, len(labels))
	for i, l := range labels {
		out[i] = int64(l)
	}
	return out
}

// msscInitialization runs the sequential constrained partitioner and writes
// the Cluster ID / Isolate columns.
type msscInitialization struct {
	msscBase
	orderCol   string
	clusterCol string
	isolateCol string
}

// NewMSSCInitialization builds the first clustering stage. Parameters:
//
//	geometry              — geometry column name; default "geometry".
//	order                 — float order-key column; default "Peano Order".
//	constraint_columns    — semicolon list of float columns.
//	constraint_capacities — semicolon list of minimum sums, one per column.
//	adjacency             — rook (default) or queen.
//	tolerance             — coordinate snap tolerance for adjacency.
func NewMSSCInitialization(params map[string]string) (Node, error) {
	n := &msscInitialization{orderCol: strParam(params, "order", ColOrder)}
	if err := n.init(params); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *msscInitialization) Spec() Spec {
	return Spec{
		Name:    "MSSCInitialization",
		Kind:    KindManipulator,
		Inputs:  []PortSpec{{Name: "table", Doc: "units with geometry, constraint and order columns"}},
		Outputs: []PortSpec{{Name: "table", Doc: "input plus " + ColCluster + " and " + ColIsolate}},
	}
}

func (n *msscInitialization) Configure(in *geotable.Schema) (*geotable.Schema, error) {
	if err := n.checkSchema(in); err != nil {
		return nil, err
	}
	if err := requireColumn(in, n.orderCol, geotable.KindFloat); err != nil {
		return nil, err
	}
	n.clusterCol = in.UniqueName(ColCluster)
	n.isolateCol = in.UniqueName(ColIsolate)

	return in.Append(
		geotable.ColumnSpec{Name: n.clusterCol, Kind: geotable.KindInt},
		geotable.ColumnSpec{Name: n.isolateCol, Kind: geotable.KindInt},
	), nil
}

func (n *msscInitialization) Execute(ctx *Context, in *geotable.Table) (*geotable.Table, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	log := ctx.logger().With(zap.String("node", "MSSCInitialization"))
	log.Info("partitioning", zap.Int("rows", in.NumRows()),
		zap.Strings("constraints", n.spec.Names))

	g, values, err := n.graphAndValues(in)
	if err != nil {
		return nil, err
	}
	order, err := in.Floats(n.orderCol)
	if err != nil {
		return nil, err
	}
	res, err := partition.Partition(g, values, n.spec, order)
	if err != nil {
		return nil, err
	}
	log.Info("partitioned", zap.Int("clusters", len(res.Clusters)))

	out := in.Copy()
	if n.clusterCol == "" {
		n.clusterCol = in.Schema().UniqueName(ColCluster)
		n.isolateCol = in.Schema().UniqueName(ColIsolate)
	}
	if err := out.AddInts(n.clusterCol, toInt64(res.Labels)); err != nil {
		return nil, err
	}
	if err := out.AddInts(n.isolateCol, toInt64(res.Isolate)); err != nil {
		return nil, err
	}

	return out, nil
}

// msscRefiner merges deficient clusters into qualifying neighbors and
// renumbers labels densely.
type msscRefiner struct {
	msscBase
	clusterCol string
	isolateCol string
}

// NewMSSCRefiner builds the second clustering stage. Parameters as
// NewMSSCInitialization, plus:
//
//	cluster — int label column; default "Cluster ID".
//	isolate — int flag column; default "Isolate".
func NewMSSCRefiner(params map[string]string) (Node, error) {
	n := &msscRefiner{
		clusterCol: strParam(params, "cluster", ColCluster),
		isolateCol: strParam(params, "isolate", ColIsolate),
	}
	if err := n.init(params); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *msscRefiner) Spec() Spec {
	return Spec{
		Name:    "MSSCRefiner",
		Kind:    KindManipulator,
		Inputs:  []PortSpec{{Name: "table", Doc: "partitioned units with label and flag columns"}},
		Outputs: []PortSpec{{Name: "table", Doc: "input with labels merged and renumbered"}},
	}
}

func (n *msscRefiner) Configure(in *geotable.Schema) (*geotable.Schema, error) {
	if err := n.checkSchema(in); err != nil {
		return nil, err
	}
	if err := requireColumn(in, n.clusterCol, geotable.KindInt); err != nil {
		return nil, err
	}
	if err := requireColumn(in, n.isolateCol, geotable.KindInt); err != nil {
		return nil, err
	}
	return in, nil
}

func (n *msscRefiner) Execute(ctx *Context, in *geotable.Table) (*geotable.Table, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	log := ctx.logger().With(zap.String("node", "MSSCRefiner"))

	g, values, err := n.graphAndValues(in)
	if err != nil {
		return nil, err
	}
	labels, err := in.Ints(n.clusterCol)
	if err != nil {
		return nil, err
	}
	iso, err := in.Ints(n.isolateCol)
	if err != nil {
		return nil, err
	}
	res, err := merge.Refine(g, toInt(labels), toInt(iso), values, n.spec)
	if err != nil {
		return nil, err
	}
	log.Info("refined", zap.Int("rows", in.NumRows()),
		zap.Int("merges", len(res.Merges)), zap.Int("clusters", res.NumClusters))

	out := in.Copy()
	if err := out.ReplaceInts(n.clusterCol, toInt64(res.Labels)); err != nil {
		return nil, err
	}
	if err := out.ReplaceInts(n.isolateCol, toInt64(res.Isolate)); err != nil {
		return nil, err
	}

	return out, nil
}

// isolationTackler reassigns isolated clusters to viable neighbors.
type isolationTackler struct {
	msscBase
	clusterCol string
	isolateCol string
}

// NewIsolationTackler builds the final clustering stage. Parameters as
// NewMSSCRefiner.
func NewIsolationTackler(params map[string]string) (Node, error) {
	n := &isolationTackler{
		clusterCol: strParam(params, "cluster", ColCluster),
		isolateCol: strParam(params, "isolate", ColIsolate),
	}
	if err := n.init(params); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *isolationTackler) Spec() Spec {
	return Spec{
		Name:    "IsolationTackler",
		Kind:    KindManipulator,
		Inputs:  []PortSpec{{Name: "table", Doc: "refined units with label and flag columns"}},
		Outputs: []PortSpec{{Name: "table", Doc: "input with isolated clusters absorbed"}},
	}
}

func (n *isolationTackler) Configure(in *geotable.Schema) (*geotable.Schema, error) {
	if err := n.checkSchema(in); err != nil {
		return nil, err
	}
	if err := requireColumn(in, n.clusterCol, geotable.KindInt); err != nil {
		return nil, err
	}
	if err := requireColumn(in, n.isolateCol, geotable.KindInt); err != nil {
		return nil, err
	}
	return in, nil
}

func (n *isolationTackler) Execute(ctx *Context, in *geotable.Table) (*geotable.Table, error) {
	if in == nil {
		return nil, ErrNilInput
	}
	log := ctx.logger().With(zap.String("node", "IsolationTackler"))

	g, values, err := n.graphAndValues(in)
	if err != nil {
		return nil, err
	}
	geoms, err := in.Geoms(n.params.Geometry)
	if err != nil {
		return nil, err
	}
	labels, err := in.Ints(n.clusterCol)
	if err != nil {
		return nil, err
	}
	iso, err := in.Ints(n.isolateCol)
	if err != nil {
		return nil, err
	}
	res, err := isolate.Resolve(g, toInt(labels), toInt(iso), values, geoms)
	if err != nil {
		return nil, err
	}
	log.Info("isolation resolved", zap.Int("rows", in.NumRows()),
		zap.Int("resolved", len(res.Resolved)), zap.Int("unresolved", len(res.Unresolved)))

	out := in.Copy()
	if err := out.ReplaceInts(n.clusterCol, toInt64(res.Labels)); err != nil {
		return nil, err
	}
	if err := out.ReplaceInts(n.isolateCol, toInt64(res.Isolate)); err != nil {
		return nil, err
	}

	return out, nil
}
