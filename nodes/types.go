package nodes

import (
	"errors"

	"go.uber.org/zap"

	"github.com/urbangiser/georegion/geotable"
)

// Sentinel errors for the adapter layer.
var (
	// ErrConfiguration indicates an invalid node configuration: a bad or
	// missing parameter, an unknown column, or a column of the wrong kind.
	// Always detected before any row work.
	ErrConfiguration = errors.New("nodes: invalid configuration")

	// ErrDuplicateNode indicates a second registration under the same name.
	ErrDuplicateNode = errors.New("nodes: node already registered")

	// ErrUnknownNode indicates a factory lookup for an unregistered name.
	ErrUnknownNode = errors.New("nodes: node not registered")

	// ErrNilInput indicates Execute was called without an input table on a
	// node that requires one.
	ErrNilInput = errors.New("nodes: input table is nil")

	// ErrBadGeometry indicates a row whose geometry cannot support the
	// requested computation (nil or degenerate).
	ErrBadGeometry = errors.New("nodes: unusable geometry")
)

// Output column names shared across the clustering chain. They match the
// labels users see in the workflow host.
const (
	ColCluster = "Cluster ID"
	ColIsolate = "Isolate"
	ColOrder   = "Peano Order"
)

// Kind classifies a node by its place in a workflow.
type Kind uint8

const (
	// KindSource produces a table from outside the workflow (file readers).
	KindSource Kind = iota
	// KindManipulator transforms an input table into an output table.
	KindManipulator
	// KindSink consumes a table (file writers); its output passes the input
	// through unchanged.
	KindSink
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindManipulator:
		return "manipulator"
	case KindSink:
		return "sink"
	default:
		return "unknown"
	}
}

// PortSpec documents one input or output port.
type PortSpec struct {
	Name string
	Doc  string
}

// Spec is the static description of a node.
type Spec struct {
	Name    string
	Kind    Kind
	Inputs  []PortSpec
	Outputs []PortSpec
}

// Node is the contract every adapter implements.
//
// Configure receives the upstream schema (nil for sources) and returns the
// downstream schema, failing with ErrConfiguration before any row work when
// parameters and schema disagree. Execute performs the row work; it must
// not mutate the input table.
type Node interface {
	Spec() Spec
	Configure(in *geotable.Schema) (*geotable.Schema, error)
	Execute(ctx *Context, in *geotable.Table) (*geotable.Table, error)
}

// Context carries per-execution dependencies into Execute.
type Context struct {
	Logger *zap.Logger
}

// NewContext builds a Context; a nil logger is replaced with zap.NewNop().
func NewContext(logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{Logger: logger}
}

func (c *Context) logger() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
