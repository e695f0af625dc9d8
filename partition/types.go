// Package partition declares result types and sentinel errors for the
// Initialization stage.
package partition

import "errors"

// Sentinel errors for the partitioner.
var (
	// ErrNilGraph indicates a nil contiguity graph was supplied.
	ErrNilGraph = errors.New("partition: graph is nil")

	// ErrDimensionMismatch indicates values, order keys and graph size
	// disagree on the number of units, or a values row does not match the
	// constraint variable count.
	ErrDimensionMismatch = errors.New("partition: input dimensions disagree")
)

// Cluster is one closed cluster: an immutable value emitted by the fold.
type Cluster struct {
	// ID is the 1-based cluster label.
	ID int
	// Members holds original unit indices in admission order.
	Members []int
	// Totals holds the final accumulated value per constraint variable.
	Totals []float64
	// Forced marks a cluster closed by the barren-pass rule rather than by
	// meeting its thresholds; such clusters may be unsatisfied singletons.
	Forced bool
}

// Result is the partitioner output.
type Result struct {
	// Labels assigns each unit its 1-based cluster id.
	Labels []int
	// Isolate is the per-unit isolate flag; always zero at this stage.
	Isolate []int
	// Clusters lists the closed clusters in id order.
	Clusters []Cluster
}
