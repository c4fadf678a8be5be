package graph

import (
	"errors"
	"sync"
)

// Sentinel errors returned across package boundaries. Callers should use
// errors.Is, never string matching.
var (
	// ErrNodeNotFound indicates a reference to a node index or id that does
	// not exist in the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrDuplicateEdge indicates an attempt to insert a second edge between
	// the same unordered pair of nodes.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrSelfLoop indicates an attempt to add an edge from a node to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrLabelLengthMismatch indicates a bulk label assignment whose length
	// does not match the node count.
	ErrLabelLengthMismatch = errors.New("graph: label slice length mismatch")
)

// Node carries the identity and label state of one sample.
//
// Index is the stable row index in the source distance matrix. ID is an
// optional external identifier (e.g. a genome accession). Label is the
// class assignment; HasLabel false means unlabeled. LabelConfidence is
// zero unless set through SetLabelConfidence (or restored by
// serialize.ReadGraph); propagation.Run does not set it.
type Node struct {
	Index           int
	ID              string // empty means "no external id"
	HasID           bool
	Label           string // valid only when HasLabel is true
	HasLabel        bool
	LabelConfidence float64
}

// Edge carries the similarity channels for one mutual-nearest-neighbor
// pair. Index is the insertion order, unique and used as the default
// tie-break for weight-ordering. Source/Target are node indices with
// Source < Target by construction (the pair is unordered but stored
// canonically).
//
// AF, ANI and AAI are percent-scale (0-100) similarity channels and are
// optional: HasAF/HasANI/HasAAI report whether a producer populated
// them. Weight is always the original D[u,v] distance, on whatever
// scale the source matrix used — it is never rescaled silently.
type Edge struct {
	Index  int
	Source int
	Target int
	Weight float64

	AF    float64
	HasAF bool
	ANI   float64
	HasANI bool
	AAI   float64
	HasAAI bool
}

// Graph is an undirected, simple, node-indexed graph over mkNN-derived
// edges. The zero value is not usable; construct with New.
type Graph struct {
	mu sync.RWMutex

	nodes []Node // len == N, indexed by Node.Index
	idIdx map[string]int // external id -> node index, only for nodes with HasID

	edges    []Edge                // insertion order, Edge.Index == position
	adjacent []map[int]int         // adjacent[u][v] = index into edges
}

// New constructs a Graph with n nodes (indices 0..n-1) and no edges.
// Optional ids assigns external identifiers in row order; len(ids) must
// be 0 or n.
func New(n int, ids []string) *Graph {
	g := &Graph{
		nodes:    make([]Node, n),
		idIdx:    make(map[string]int),
		adjacent: make([]map[int]int, n),
	}
	for i := 0; i < n; i++ {
		g.nodes[i] = Node{Index: i}
		g.adjacent[i] = make(map[int]int)
	}
	for i, id := range ids {
		if id == "" {
			continue
		}
		g.nodes[i].ID = id
		g.nodes[i].HasID = true
		g.idIdx[id] = i
	}
	return g
}

// N returns the number of nodes.
func (g *Graph) N() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}
