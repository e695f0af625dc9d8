package nodes

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/urbangiser/georegion/contiguity"
	"github.com/urbangiser/georegion/geotable"
)

// validate checks the struct tags on node parameter structs.
var validate = validator.New()

func checkParams(p interface{}) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return nil
}

// strParam returns params[key], or def when the key is absent or empty.
func strParam(params map[string]string, key, def string) string {
	if v, ok := params[key]; ok && v != "" {
		return v
	}
	return def
}

// intParam parses params[key] as an int, returning def when absent.
func intParam(params map[string]string, key string, def int) (int, error) {
	v, ok := params[key]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: parameter %q: %v", ErrConfiguration, key, err)
	}
	return n, nil
}

// floatParam parses params[key] as a float64, returning def when absent.
func floatParam(params map[string]string, key string, def float64) (float64, error) {
	v, ok := params[key]
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parameter %q: %v", ErrConfiguration, key, err)
	}
	return f, nil
}

// adjacencyParam maps the host's "rook"/"queen" choice onto the contiguity
// mode; the empty string defaults to rook, anything else is rejected.
func adjacencyParam(params map[string]string, key string) (contiguity.Adjacency, error) {
	switch strParam(params, key, "rook") {
	case "rook":
		return contiguity.Rook, nil
	case "queen":
		return contiguity.Queen, nil
	default:
		return 0, fmt.Errorf("%w: parameter %q must be rook or queen, got %q",
			ErrConfiguration, key, params[key])
	}
}

// requireColumn checks that the schema has a column of the given kind.
func requireColumn(s *geotable.Schema, name string, kind geotable.Kind) error {
	if s == nil {
		return fmt.Errorf("%w: no input schema", ErrConfiguration)
	}
	k, ok := s.Kind(name)
	if !ok {
		return fmt.Errorf("%w: column %q not found", ErrConfiguration, name)
	}
	if k != kind {
		return fmt.Errorf("%w: column %q is %s, want %s", ErrConfiguration, name, k, kind)
	}
	return nil
}
