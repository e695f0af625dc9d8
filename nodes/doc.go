// Package nodes is the host-facing adapter layer: each node wraps one
// algorithm package behind a uniform Configure/Execute contract so a
// workflow host can wire them into a pipeline.
//
// What:
//
//   - Node: Spec() describes the node, Configure validates parameters
//     against the input schema before any row work, Execute transforms a
//     geotable.Table.
//   - Registry: name → factory map; DefaultRegistry() registers the full
//     node set (GeoFileReader, GeoFileWriter, MeanCenter, StandardEllipse,
//     PeanoCurve, MSSCInitialization, MSSCRefiner, IsolationTackler).
//   - Context: carries the zap logger; executions log start/finish with row
//     counts. A nil logger is replaced with zap.NewNop().
//
// Parameters arrive as flat string maps (the host's configuration surface)
// and are parsed into typed structs validated with
// github.com/go-playground/validator/v10. Every parameter problem is
// reported as ErrConfiguration before Execute touches a row.
//
// The clustering adapters chain naturally:
//
//	PeanoCurve → MSSCInitialization → MSSCRefiner → IsolationTackler
//
// writing the columns "Peano Order", "Cluster ID" and "Isolate".
//
// Errors (sentinel):
//
//   - ErrConfiguration: bad or missing parameter, unknown column, wrong
//     column kind.
//   - ErrDuplicateNode / ErrUnknownNode: registry misuse.
//   - ErrNilInput: Execute called without an input table on a non-source
//     node.
package nodes
