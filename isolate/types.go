// Package isolate declares the dissolve-view and result types plus sentinel
// errors for the Isolation Tackler.
package isolate

import (
	"errors"

	"github.com/ctessum/geom"
)

// Sentinel errors for the Isolation Tackler.
var (
	// ErrNilGraph indicates a nil contiguity graph was supplied.
	ErrNilGraph = errors.New("isolate: graph is nil")

	// ErrDimensionMismatch indicates labels, flags, values and geometry
	// counts disagree.
	ErrDimensionMismatch = errors.New("isolate: input dimensions disagree")

	// ErrBadLabel indicates a cluster label below 1.
	ErrBadLabel = errors.New("isolate: cluster labels must be >= 1")
)

// ClusterRow is one row of the dissolve view: a cluster aggregated over its
// members.
type ClusterRow struct {
	// ID is the cluster id shared by the members.
	ID int
	// Members holds the original unit indices, ascending.
	Members []int
	// Totals holds the per-variable constraint sums.
	Totals []float64
	// Isolate is the min-reduced member flag: 0 as soon as any member is
	// non-isolated.
	Isolate int
	// Centroid is the area-weighted member centroid; equals the centroid of
	// the dissolved union for non-overlapping members. Valid only when
	// HasCentroid is true (degenerate geometry yields no centroid).
	Centroid geom.Point
	// HasCentroid reports whether Centroid could be derived.
	HasCentroid bool
}

// Reassignment records one absorbed cluster.
type Reassignment struct {
	// From is the isolated cluster id that was absorbed.
	From int
	// To is the non-isolated cluster id that received it.
	To int
	// ByCentroid is true when the target was found by the nearest-centroid
	// fallback rather than graph adjacency.
	ByCentroid bool
}

// Result is the Isolation Tackler output.
type Result struct {
	// Labels assigns each unit its final cluster id (not recompacted).
	Labels []int
	// Isolate is the per-unit flag; zero everywhere whenever at least one
	// non-isolated cluster existed.
	Isolate []int
	// Resolved lists the applied absorptions in processing order.
	Resolved []Reassignment
	// Unresolved lists isolated cluster ids that had no possible target.
	Unresolved []int
}
