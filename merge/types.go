// Package merge declares result types and sentinel errors for the Refiner
// stage.
package merge

import "errors"

// Sentinel errors for the Refiner.
var (
	// ErrNilGraph indicates a nil contiguity graph was supplied.
	ErrNilGraph = errors.New("merge: graph is nil")

	// ErrDimensionMismatch indicates labels, isolate flags, values and graph
	// size disagree on the number of units.
	ErrDimensionMismatch = errors.New("merge: input dimensions disagree")

	// ErrBadLabel indicates a cluster label below 1.
	ErrBadLabel = errors.New("merge: cluster labels must be >= 1")
)

// Merge records one applied merge in pre-renumbering id space, after target
// chains have been resolved.
type Merge struct {
	// From is the absorbed (deficient) cluster id.
	From int
	// To is the absorbing cluster id.
	To int
}

// Result is the Refiner output.
type Result struct {
	// Labels assigns each unit its refined, densely renumbered cluster id.
	Labels []int
	// Isolate is the per-unit isolate flag after refinement.
	Isolate []int
	// Merges lists the applied merges in processing order.
	Merges []Merge
	// NumClusters is the surviving cluster count.
	NumClusters int
}
