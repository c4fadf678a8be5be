package graph

import "sort"

// AddEdge inserts an undirected edge between u and v with the given
// weight, in insertion order. u and v are canonicalized so Source <
// Target; af/ani/aai are left unset (use SetEdgeAF/SetEdgeANI/SetEdgeAAI
// below) since
// most producers populate weight and af together but ani/aai later.
//
// Returns ErrSelfLoop if u == v, ErrNodeNotFound if either index is out
// of range, and ErrDuplicateEdge if the unordered pair already has an
// edge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v {
		return 0, ErrSelfLoop
	}
	if u < 0 || u >= len(g.nodes) || v < 0 || v >= len(g.nodes) {
		return 0, ErrNodeNotFound
	}
	if u > v {
		u, v = v, u
	}
	if _, ok := g.adjacent[u][v]; ok {
		return 0, ErrDuplicateEdge
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{Index: idx, Source: u, Target: v, Weight: weight})
	g.adjacent[u][v] = idx
	g.adjacent[v][u] = idx

	return idx, nil
}

// SetEdgeAF sets the alignment-fraction channel on an existing edge.
func (g *Graph) SetEdgeAF(edgeIndex int, af float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if edgeIndex < 0 || edgeIndex >= len(g.edges) {
		return ErrNodeNotFound
	}
	g.edges[edgeIndex].AF = af
	g.edges[edgeIndex].HasAF = true
	return nil
}

// SetEdgeANI sets the ANI channel on an existing edge.
func (g *Graph) SetEdgeANI(edgeIndex int, ani float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if edgeIndex < 0 || edgeIndex >= len(g.edges) {
		return ErrNodeNotFound
	}
	g.edges[edgeIndex].ANI = ani
	g.edges[edgeIndex].HasANI = true
	return nil
}

// SetEdgeAAI sets the AAI channel on an existing edge.
func (g *Graph) SetEdgeAAI(edgeIndex int, aai float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if edgeIndex < 0 || edgeIndex >= len(g.edges) {
		return ErrNodeNotFound
	}
	g.edges[edgeIndex].AAI = aai
	g.edges[edgeIndex].HasAAI = true
	return nil
}

// Edges returns a copy of every edge, in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// EdgeBetween returns the edge connecting u and v, if any.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if u > v {
		u, v = v, u
	}
	nbrs, ok := g.adjacent[u]
	if !ok {
		return Edge{}, false
	}
	idx, ok := nbrs[v]
	if !ok {
		return Edge{}, false
	}
	return g.edges[idx], true
}

// Neighbors returns the node indices adjacent to i, in ascending order.
// Complexity: O(deg(i) log deg(i)).
func (g *Graph) Neighbors(i int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacent[i]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Degree returns |N(i)|.
func (g *Graph) Degree(i int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacent[i])
}
