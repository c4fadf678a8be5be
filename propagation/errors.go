// Package propagation implements weighted, centrality-aware iterative
// label propagation over a graph.Graph (spec.md §4.4), ported from
// original_source/src/label.rs's label_propagation.
package propagation

import "errors"

var (
	// ErrNodeNotFound is returned when a ByIds target names an unknown
	// identifier.
	ErrNodeNotFound = errors.New("propagation: node id not found")

	// ErrInvalidMaxIterations describes maxIterations <= 0. No function
	// in this package returns it: NewConfig panics on that input.
	ErrInvalidMaxIterations = errors.New("propagation: max iterations must be > 0")
)
