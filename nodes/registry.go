package nodes

import (
	"fmt"
	"sort"
)

// Factory builds a Node from the host's flat parameter map. Parameter
// parsing errors are reported here, schema-dependent checks in Configure.
type Factory func(params map[string]string) (Node, error)

// Registry maps node names to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name; a duplicate name is rejected with
// ErrDuplicateNode.
func (r *Registry) Register(name string, f Factory) error {
	if _, dup := r.factories[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	r.factories[name] = f

	return nil
}

// New instantiates a registered node with the given parameters.
func (r *Registry) New(name string, params map[string]string) (Node, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return f(params)
}

// Names returns the registered node names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// DefaultRegistry returns a Registry with the full node set registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, f := range map[string]Factory{
		"GeoFileReader":      NewGeoFileReader,
		"GeoFileWriter":      NewGeoFileWriter,
		"MeanCenter":         NewMeanCenter,
		"StandardEllipse":    NewStandardEllipse,
		"PeanoCurve":         NewPeanoCurve,
		"MSSCInitialization": NewMSSCInitialization,
		"MSSCRefiner":        NewMSSCRefiner,
		"IsolationTackler":   NewIsolationTackler,
	} {
		// Names are unique literals; Register cannot fail here.
		_ = r.Register(name, f)
	}

	return r
}
