package geotable

import (
	"fmt"
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// New creates an empty Table with a fixed row count.
// Complexity: O(1).
func New(nrows int) *Table {
	return &Table{
		nrows:  nrows,
		byName: make(map[string]int),
	}
}

// NumRows returns the fixed row count of the table.
func (t *Table) NumRows() int { return t.nrows }

// NumCols returns the current column count.
func (t *Table) NumCols() int { return len(t.cols) }

// SR returns the spatial reference carried by the table (may be nil).
func (t *Table) SR() *proj.SR { return t.sr }

// SetSR attaches a spatial reference to the table.
func (t *Table) SetSR(sr *proj.SR) { t.sr = sr }

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.name
	}
	return out
}

// Schema returns the ordered column layout of the table.
func (t *Table) Schema() *Schema {
	s := &Schema{cols: make([]ColumnSpec, len(t.cols))}
	for i, c := range t.cols {
		s.cols[i] = ColumnSpec{Name: c.name, Kind: c.kind}
	}
	return s
}

func (t *Table) add(c *column, n int) error {
	if _, dup := t.byName[c.name]; dup {
		return fmt.Errorf("%w: %q", ErrColumnExists, c.name)
	}
	if n != t.nrows {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows",
			ErrLengthMismatch, c.name, n, t.nrows)
	}
	t.byName[c.name] = len(t.cols)
	t.cols = append(t.cols, c)

	return nil
}

// AddGeoms appends a geometry column. The slice is stored as-is; callers
// must not mutate it afterwards.
func (t *Table) AddGeoms(name string, data []geom.Geom) error {
	return t.add(&column{name: name, kind: KindGeometry, geoms: data}, len(data))
}

// AddFloats appends a float column.
func (t *Table) AddFloats(name string, data []float64) error {
	return t.add(&column{name: name, kind: KindFloat, floats: data}, len(data))
}

// AddInts appends an int column.
func (t *Table) AddInts(name string, data []int64) error {
	return t.add(&column{name: name, kind: KindInt, ints: data}, len(data))
}

// AddStrings appends a string column.
func (t *Table) AddStrings(name string, data []string) error {
	return t.add(&column{name: name, kind: KindString, strings: data}, len(data))
}

func (t *Table) lookup(name string, kind Kind) (*column, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	c := t.cols[i]
	if c.kind != kind {
		return nil, fmt.Errorf("%w: column %q is %s, want %s",
			ErrKindMismatch, name, c.kind, kind)
	}

	return c, nil
}

// Geoms returns the data of a geometry column.
func (t *Table) Geoms(name string) ([]geom.Geom, error) {
	c, err := t.lookup(name, KindGeometry)
	if err != nil {
		return nil, err
	}
	return c.geoms, nil
}

// Floats returns the data of a float column.
func (t *Table) Floats(name string) ([]float64, error) {
	c, err := t.lookup(name, KindFloat)
	if err != nil {
		return nil, err
	}
	return c.floats, nil
}

// Ints returns the data of an int column.
func (t *Table) Ints(name string) ([]int64, error) {
	c, err := t.lookup(name, KindInt)
	if err != nil {
		return nil, err
	}
	return c.ints, nil
}

// Strings returns the data of a string column.
func (t *Table) Strings(name string) ([]string, error) {
	c, err := t.lookup(name, KindString)
	if err != nil {
		return nil, err
	}
	return c.strings, nil
}

// ReplaceInts swaps the data of an existing int column for a new slice.
// Used by the refinement stages, which rewrite label columns wholesale
// instead of mutating them in place.
func (t *Table) ReplaceInts(name string, data []int64) error {
	if _, err := t.lookup(name, KindInt); err != nil {
		return err
	}
	if len(data) != t.nrows {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows",
			ErrLengthMismatch, name, len(data), t.nrows)
	}
	t.cols[t.byName[name]] = &column{name: name, kind: KindInt, ints: data}

	return nil
}

// Copy returns a new Table sharing column data with t. Column headers and
// the name index are copied, so adding or replacing columns on the copy
// never affects the original; column data slices remain shared and are
// treated as immutable by convention.
// Complexity: O(C) over the column count.
func (t *Table) Copy() *Table {
	out := &Table{
		nrows:  t.nrows,
		cols:   make([]*column, len(t.cols)),
		byName: make(map[string]int, len(t.byName)),
		sr:     t.sr,
	}
	copy(out.cols, t.cols)
	for k, v := range t.byName {
		out.byName[k] = v
	}

	return out
}

// Len returns the column count of the schema.
func (s *Schema) Len() int { return len(s.cols) }

// Columns returns the ordered column specs.
func (s *Schema) Columns() []ColumnSpec { return s.cols }

// Kind returns the kind of a named column and whether it exists.
func (s *Schema) Kind(name string) (Kind, bool) {
	for _, c := range s.cols {
		if c.Name == name {
			return c.Kind, true
		}
	}
	return 0, false
}

// Has reports whether a named column exists in the schema.
func (s *Schema) Has(name string) bool {
	_, ok := s.Kind(name)
	return ok
}

// Append returns a new Schema with extra columns appended.
func (s *Schema) Append(cols ...ColumnSpec) *Schema {
	out := &Schema{cols: make([]ColumnSpec, 0, len(s.cols)+len(cols))}
	out.cols = append(out.cols, s.cols...)
	out.cols = append(out.cols, cols...)

	return out
}

// NewSchema builds a Schema from column specs; handy in tests and node
// Configure implementations.
func NewSchema(cols ...ColumnSpec) *Schema {
	return &Schema{cols: cols}
}

// UniqueName returns name if it is unused in s, otherwise name with the
// smallest numeric suffix that makes it unique (name (#1), name (#2), …).
func (s *Schema) UniqueName(name string) string {
	if !s.Has(name) {
		return name
	}
	for i := 1; ; i++ {
		cand := fmt.Sprintf("%s (#%d)", name, i)
		if !s.Has(cand) {
			return cand
		}
	}
}

// SortedLabels returns the distinct values of a label column in ascending
// order; handy when summarizing cluster assignments.
func SortedLabels(labels []int64) []int64 {
	seen := make(map[int64]struct{}, len(labels))
	var out []int64
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
