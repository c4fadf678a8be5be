package centrality

import (
	"container/heap"
	"math"

	"github.com/esteinig/netviewr/graph"
	"github.com/esteinig/netviewr/internal/workerpool"
)

// ComputeCloseness runs single-source Dijkstra from every node (parallel
// over sources when opts.Workers > 1) and sets
//
//	C_cls(v) = (R(v) - 1) / Σ dist(v, u)
//
// where R(v) is the number of nodes reachable from v (including v); if
// the total distance is 0 (isolated node), C_cls(v) = 0. Ported from
// original_source/src/centrality.rs's closeness_centrality.
func ComputeCloseness(g *graph.Graph, opts Options) (Scores, error) {
	n := g.N()
	scores := make(Scores, n)

	compute := func(src int) float64 {
		dist := dijkstra(g, src)
		var total float64
		reachable := 0
		for _, d := range dist {
			if math.IsInf(d, 1) {
				continue
			}
			reachable++
			total += d
		}
		if total <= 0 {
			return 0
		}
		return (float64(reachable) - 1) / total
	}

	if opts.Workers > 1 {
		values := make([]float64, n)
		err := workerpool.Run(opts.Workers, n, func(i int) error {
			values[i] = compute(i)
			return nil
		})
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			scores[i] = v
		}
		return scores, nil
	}

	for i := 0; i < n; i++ {
		scores[i] = compute(i)
	}
	return scores, nil
}

// dijkstra returns shortest-path distances from src to every node (index
// by node index), math.Inf(1) for unreachable nodes. Adapted from the
// teacher's container/heap Dijkstra (graph/algorithms/dijkstra.go,
// dijkstra/dijkstra.go), generalized from int64 edge weights to the
// float64 weights used by mkNN edges.
func dijkstra(g *graph.Graph, src int) []float64 {
	n := g.N()
	dist := make([]float64, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, v := range g.Neighbors(u) {
			if visited[v] {
				continue
			}
			e, ok := g.EdgeBetween(u, v)
			if !ok {
				continue
			}
			nd := dist[u] + e.Weight
			if nd < dist[v] {
				dist[v] = nd
				heap.Push(&pq, &nodeItem{id: v, dist: nd})
			}
		}
	}
	return dist
}

type nodeItem struct {
	id   int
	dist float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
