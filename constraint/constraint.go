package constraint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for constraint configuration.
var (
	// ErrLengthMismatch indicates the variable-name list and the capacity
	// list have different lengths.
	ErrLengthMismatch = errors.New("constraint: name and capacity lists differ in length")

	// ErrBadCapacity indicates a capacity token that does not parse as a
	// floating point number.
	ErrBadCapacity = errors.New("constraint: capacity is not numeric")

	// ErrNegativeCapacity indicates a capacity below zero; thresholds are
	// positive-or-zero by contract.
	ErrNegativeCapacity = errors.New("constraint: capacity must be >= 0")

	// ErrUnknownColumn indicates a constraint variable that is not present
	// in the dataset schema.
	ErrUnknownColumn = errors.New("constraint: column not found in schema")

	// ErrDimension indicates a totals vector whose length does not match the
	// number of constraint variables.
	ErrDimension = errors.New("constraint: totals length does not match variable count")
)

// ListSeparator is the delimiter of the host configuration surface.
const ListSeparator = ";"

// Spec is an ordered list of (variable name, minimum capacity) pairs.
// It is a read-only input shared by Initialization, Refiner and the
// Isolation Tackler. Len(Names) == Len(Capacities) always holds for a Spec
// obtained from New or Parse.
type Spec struct {
	Names      []string
	Capacities []float64
}

// New builds a Spec from parallel slices, enforcing the length and sign
// invariants. Empty inputs yield the empty Spec.
func New(names []string, capacities []float64) (Spec, error) {
	if len(names) != len(capacities) {
		return Spec{}, fmt.Errorf("%w: %d names vs %d capacities",
			ErrLengthMismatch, len(names), len(capacities))
	}
	for i, c := range capacities {
		if c < 0 {
			return Spec{}, fmt.Errorf("%w: %q = %v", ErrNegativeCapacity, names[i], c)
		}
	}

	return Spec{Names: names, Capacities: capacities}, nil
}

// Parse builds a Spec from the host's semicolon-delimited configuration
// strings. Whitespace around tokens is trimmed. An empty names string (after
// trimming) yields the empty Spec regardless of the capacities string.
func Parse(names, capacities string) (Spec, error) {
	if strings.TrimSpace(names) == "" {
		return Spec{}, nil
	}
	nameList := splitList(names)
	capTokens := splitList(capacities)
	if len(nameList) != len(capTokens) {
		return Spec{}, fmt.Errorf("%w: %d names vs %d capacities",
			ErrLengthMismatch, len(nameList), len(capTokens))
	}
	caps := make([]float64, len(capTokens))
	for i, tok := range capTokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q", ErrBadCapacity, tok)
		}
		caps[i] = v
	}

	return New(nameList, caps)
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}

	return out
}

// Len returns the number of constraint variables.
func (s Spec) Len() int { return len(s.Names) }

// Validate checks every variable name against the available column set,
// returning ErrUnknownColumn for the first miss. has is typically
// (*geotable.Schema).Has.
func (s Spec) Validate(has func(name string) bool) error {
	for _, n := range s.Names {
		if !has(n) {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, n)
		}
	}
	return nil
}

// Satisfied reports whether every accumulated total meets or exceeds its
// capacity threshold. The empty Spec is vacuously satisfied.
func (s Spec) Satisfied(totals []float64) (bool, error) {
	if len(totals) != s.Len() {
		return false, fmt.Errorf("%w: %d totals vs %d variables",
			ErrDimension, len(totals), s.Len())
	}
	for i, c := range s.Capacities {
		if totals[i] < c {
			return false, nil
		}
	}

	return true, nil
}

// Deficient reports whether at least one total falls below its threshold —
// the selection predicate of the Refiner stage. The empty Spec is never
// deficient.
func (s Spec) Deficient(totals []float64) (bool, error) {
	ok, err := s.Satisfied(totals)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
