// Package contiguity declares the Graph type, adjacency modes, options and
// sentinel errors for neighbor-graph construction.
package contiguity

import "errors"

// Sentinel errors for contiguity operations.
var (
	// ErrBadTolerance indicates a negative vertex-matching tolerance.
	ErrBadTolerance = errors.New("contiguity: tolerance must be >= 0")

	// ErrIndexRange indicates a unit index outside [0, Len).
	ErrIndexRange = errors.New("contiguity: unit index out of range")
)

// Adjacency selects the boundary-sharing predicate.
type Adjacency int

const (
	// Rook treats units as neighbors when they share a boundary edge
	// (two consecutive boundary vertices).
	Rook Adjacency = iota
	// Queen treats units as neighbors when they share at least one
	// boundary vertex.
	Queen
)

// String returns the conventional name of the adjacency mode.
func (a Adjacency) String() string {
	if a == Queen {
		return "Queen"
	}
	return "Rook"
}

// Options contains tunable parameters for graph construction.
type Options struct {
	// Adjacency chooses the Rook or Queen predicate.
	Adjacency Adjacency
	// Tolerance quantizes vertex coordinates before comparison; 0 means
	// exact float64 equality, which is correct for tessellations produced
	// from a common source.
	Tolerance float64
}

// DefaultOptions returns the settings used by the clustering pipeline:
// Rook adjacency with exact vertex matching.
func DefaultOptions() Options {
	return Options{Adjacency: Rook, Tolerance: 0}
}

// Graph is an immutable, undirected, irreflexive adjacency relation over
// unit indices [0, Len). Neighbor lists are sorted ascending.
type Graph struct {
	neighbors [][]int
}
