// Package geotable declares the Table, Schema and Kind types plus sentinel
// errors for the georegion table contract.
package geotable

import (
	"errors"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// Sentinel errors for table operations.
var (
	// ErrColumnExists indicates an Add* call with an already-used column name.
	ErrColumnExists = errors.New("geotable: column already exists")

	// ErrColumnNotFound indicates an operation referenced an unknown column.
	ErrColumnNotFound = errors.New("geotable: column not found")

	// ErrLengthMismatch indicates column data whose length differs from the
	// table row count.
	ErrLengthMismatch = errors.New("geotable: column length does not match row count")

	// ErrKindMismatch indicates a typed accessor applied to a column of a
	// different kind.
	ErrKindMismatch = errors.New("geotable: column kind mismatch")
)

// Kind identifies the storage type of a column.
type Kind int

const (
	// KindGeometry holds geom.Geom values.
	KindGeometry Kind = iota
	// KindFloat holds float64 values.
	KindFloat
	// KindInt holds int64 values.
	KindInt
	// KindString holds string values.
	KindString
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// column is the internal columnar storage unit. Exactly one of the data
// slices is non-nil, matching Kind.
type column struct {
	name    string
	kind    Kind
	geoms   []geom.Geom
	floats  []float64
	ints    []int64
	strings []string
}

// ColumnSpec describes one column in a Schema.
type ColumnSpec struct {
	Name string
	Kind Kind
}

// Schema is the ordered column layout of a Table, used for
// configuration-time validation before any row is processed.
type Schema struct {
	cols []ColumnSpec
}

// Table is the in-memory dataset: a fixed number of rows across uniquely
// named, typed columns, plus an optional spatial reference.
type Table struct {
	nrows  int
	cols   []*column
	byName map[string]int
	sr     *proj.SR
}
