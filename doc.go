// Package georegion provides geospatial clustering building blocks and the
// thin "node" adapters that expose them inside a visual workflow host.
//
// 🚀 What is georegion?
//
//	A batch-oriented toolkit for capacity-constrained, spatially contiguous
//	regionalization over polygon datasets:
//		• geotable    — the row-aligned geometry + attribute table contract
//		• contiguity  — rook/queen neighbor graphs derived from geometry
//		• constraint  — constraint-variable lists with minimum capacities
//		• partition   — sequential constrained partitioning (MSSC Initialization)
//		• merge       — deficient-cluster merging (MSSC Refiner)
//		• isolate     — forced absorption of isolated clusters (Isolation Tackler)
//		• peano       — Peano space-filling-curve spatial ordering
//		• pointstats  — mean center, standard distance, deviational ellipse
//		• geoio       — shapefile / GeoJSON reading and writing
//		• nodes       — host-facing adapters with typed ports and parameters
//
// ✨ Why georegion?
//
//   - Deterministic – every stage is a pure pass over an in-memory dataset
//   - Composable – stages communicate only through cluster/isolate columns
//   - Honest errors – configuration defects surface before any row is touched
//
// The three MSSC stages run strictly in sequence:
//
//	Initialization ──▶ Refiner ──▶ Isolation Tackler
//
// each consuming the previous stage's cluster labels and producing refined
// ones, over a neighbor graph rebuilt from the then-current geometries.
//
// See the per-package documentation for algorithms, options and errors.
package georegion
