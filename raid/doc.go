// Package raid provides the analytical core of the RAID storage simulator.
//
// # Reading Guide
//
// Start with these three files to understand the modeling core:
//   - scheme.go: the closed Scheme enumeration and ArrayConfig validation
//   - capacity.go / performance.go: pure closed-form capacity and performance models
//   - placement.go: the deterministic greedy placement planner
//
// # Architecture
//
// The raid package holds the pure models and the sequential planning pass;
// everything with side effects lives in sub-packages:
//   - raid/inventory/: folder scanning that produces ordered item sequences
//   - raid/report/: run log, CSV export, summary statistics, sqlite store
//   - raid/execute/: parallel materialization of a finished placement plan
//
// All model functions are referentially transparent and safe to call
// concurrently. PlaceItems is sequential by design: parity rotation and
// greedy balancing both depend on processing items in input order against
// a private load vector. The returned Placement is immutable; parallelism
// belongs to the execute layer, which only reads the finished plan.
//
// Invalid (scheme, disk count) combinations fail with ConfigError before any
// computation; malformed workload numbers fail with WorkloadError. The models
// never fall back to a default scheme silently.
package raid
