package isolate

import (
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/geom"

	"github.com/urbangiser/georegion/contiguity"
	"github.com/urbangiser/georegion/geomutil"
)

// Dissolve aggregates units into one ClusterRow per cluster id: constraint
// variables are summed, the isolate flag is min-reduced, and the centroid is
// the area-weighted mean of member centroids. Rows are returned in ascending
// id order.
//
// Summing is exact in the sense required by the pipeline: the total of a
// variable over a dissolved cluster equals the total over its constituent
// rows, at every stage.
//
// Complexity: O(n·k + n·V) over n units, k variables and V vertices.
func Dissolve(labels []int, iso []int, values [][]float64, geoms []geom.Geom) ([]ClusterRow, error) {
	n := len(labels)
	if len(iso) != n || len(values) != n || len(geoms) != n {
		return nil, fmt.Errorf("%w: %d labels, %d isolate flags, %d value rows, %d geometries",
			ErrDimensionMismatch, n, len(iso), len(values), len(geoms))
	}

	nvars := 0
	if n > 0 {
		nvars = len(values[0])
	}
	for i, row := range values {
		if len(row) != nvars {
			return nil, fmt.Errorf("%w: unit %d has %d values, unit 0 has %d",
				ErrDimensionMismatch, i, len(row), nvars)
		}
	}

	byID := make(map[int]*ClusterRow)
	weights := make(map[int]float64)
	sumX := make(map[int]float64)
	sumY := make(map[int]float64)

	for i, l := range labels {
		if l < 1 {
			return nil, fmt.Errorf("%w: unit %d has label %d", ErrBadLabel, i, l)
		}
		row := byID[l]
		if row == nil {
			row = &ClusterRow{ID: l, Isolate: iso[i]}
			if nvars > 0 {
				row.Totals = make([]float64, nvars)
			}
			byID[l] = row
		}
		row.Members = append(row.Members, i)
		for v := range values[i] {
			row.Totals[v] += values[i][v]
		}
		if iso[i] < row.Isolate {
			row.Isolate = iso[i]
		}
		if c, area, ok := geomutil.Centroid(geoms[i]); ok {
			// Points carry zero area; give them unit weight so point
			// datasets still produce a centroid.
			w := area
			if w == 0 {
				w = 1
			}
			weights[l] += w
			sumX[l] += c.X * w
			sumY[l] += c.Y * w
		}
	}

	out := make([]ClusterRow, 0, len(byID))
	for id, row := range byID {
		if w := weights[id]; w > 0 {
			row.Centroid = geom.Point{X: sumX[id] / w, Y: sumY[id] / w}
			row.HasCentroid = true
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Resolve runs the Isolation Tackler.
//
// g is a contiguity graph freshly built over the current geometries; labels
// and iso come from the Refiner; values[i][v] holds the constraint variable
// values of unit i (the first variable ranks adjacent candidates). The
// dissolve view is computed once; every cluster isolated in that view is
// absorbed into a non-isolated target, or reported unresolved when no
// target exists anywhere.
func Resolve(g *contiguity.Graph, labels []int, iso []int, values [][]float64, geoms []geom.Geom) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Len() != len(labels) {
		return nil, fmt.Errorf("%w: graph has %d units, %d labels",
			ErrDimensionMismatch, g.Len(), len(labels))
	}

	view, err := Dissolve(labels, iso, values, geoms)
	if err != nil {
		return nil, err
	}
	quotient, err := g.Quotient(labels)
	if err != nil {
		return nil, err
	}

	rowByID := make(map[int]*ClusterRow, len(view))
	for i := range view {
		rowByID[view[i].ID] = &view[i]
	}

	res := &Result{
		Labels:  append([]int(nil), labels...),
		Isolate: append([]int(nil), iso...),
	}

	for i := range view {
		row := &view[i]
		if row.Isolate == 0 {
			continue
		}
		target, byCentroid, found := pickTarget(row, quotient[row.ID], rowByID, view)
		if !found {
			res.Unresolved = append(res.Unresolved, row.ID)
			continue
		}
		for _, u := range row.Members {
			res.Labels[u] = target
			res.Isolate[u] = 0
		}
		res.Resolved = append(res.Resolved, Reassignment{
			From:       row.ID,
			To:         target,
			ByCentroid: byCentroid,
		})
	}

	return res, nil
}

// pickTarget chooses the absorbing cluster for one isolated cluster:
// the adjacent non-isolated cluster minimizing the first constraint
// variable, else the nearest non-isolated centroid, else nothing.
func pickTarget(row *ClusterRow, neighbors []int, rowByID map[int]*ClusterRow, view []ClusterRow) (int, bool, bool) {
	best := -1
	bestVal := math.Inf(1)
	for _, nid := range neighbors {
		cand, ok := rowByID[nid]
		if !ok || cand.Isolate != 0 {
			continue
		}
		v := 0.0
		if len(cand.Totals) > 0 {
			v = cand.Totals[0]
		}
		if best < 0 || v < bestVal {
			best = cand.ID
			bestVal = v
		}
	}
	if best >= 0 {
		return best, false, true
	}

	// Fallback: nearest non-isolated centroid, adjacency ignored.
	if !row.HasCentroid {
		return 0, false, false
	}
	bestDist := math.Inf(1)
	for i := range view {
		cand := &view[i]
		if cand.Isolate != 0 || cand.ID == row.ID || !cand.HasCentroid {
			continue
		}
		d := geomutil.Dist(row.Centroid, cand.Centroid)
		if d < bestDist {
			bestDist = d
			best = cand.ID
		}
	}
	if best >= 0 {
		return best, true, true
	}

	return 0, false, false
}
