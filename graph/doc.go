// Package graph defines the mkNN population graph model shared by mknn,
// centrality and propagation: Node, Edge and Graph.
//
// A Graph is undirected, simple (no self-loops, no parallel edges), and
// node-indexed: node identity is the row index of the source distance
// matrix, stable for the lifetime of the graph. Nodes are mutated only
// through SetLabel/AssignLabels (label assignment and propagation) and
// SetLabelConfidence; edges are immutable once built by the mkNN builder.
//
// All mutation is guarded by a single sync.RWMutex, mirroring the
// locking discipline of github.com/katalvlaran/lvlath's core.Graph.
package graph
