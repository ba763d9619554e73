// Package scheduler implements the dependency-graph workflow scheduler:
// a stage registry, a dependency graph with cycle detection, a
// priority-ordered ready queue, and a condition-variable-driven worker
// pool that executes stages in dependency order.
//
// Stages are boxed closures stored in an arena and referenced by stable
// index (never by pointer aliasing the owning map); the per-stage
// remaining-predecessor counter is an ordinary field guarded by the
// scheduler's single mutex, since every mutation already happens under
// that lock.
package scheduler
