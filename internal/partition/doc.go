// Package partition implements the data-parallel partitioned executor:
// it splits a document batch into contiguous chunks, runs the full
// stage chain independently on each chunk in its own goroutine
// (bypassing the scheduler entirely), and merges the results back into
// original order.
package partition
