// Package pipeline owns the fixed stage-dependency template and drives
// the three execution modes (scheduler-parallel, strictly sequential,
// data-partitioned parallel) plus the comparison harness that runs all
// three on identical input and reports relative performance.
package pipeline
