// Package centrality computes degree, closeness and betweenness node
// centrality over an mknn.Build graph, with optional min-max
// standardization (spec.md §4.3).
package centrality

import "github.com/esteinig/netviewr/graph"

// Metric is a tagged variant over the three supported centrality
// algorithms. Deliberately closed (no open interface/registry): per
// spec.md §9, "avoid an open trait/interface hierarchy; the set is
// closed."
type Metric int

const (
	Degree Metric = iota
	Closeness
	Betweenness
)

// String renders the metric name, mirroring the original
// NodeCentrality::Display impl in original_source/src/centrality.rs.
func (m Metric) String() string {
	switch m {
	case Degree:
		return "degree centrality"
	case Closeness:
		return "closeness centrality"
	case Betweenness:
		return "betweenness centrality"
	default:
		return "unknown centrality"
	}
}

// Scores maps node index -> centrality score, size |V|.
type Scores map[int]float64

// Options bounds the worker pool used by Closeness and Betweenness,
// which parallelize over source nodes per spec.md §5. Workers <= 1 runs
// sequentially. Degree ignores Options (it is already O(|V|+|E|)).
type Options struct {
	Workers int
}

// Compute dispatches to the algorithm named by metric and optionally
// standardizes the result via Standardize.
func Compute(g *graph.Graph, metric Metric, standardize bool, opts Options) (Scores, error) {
	var scores Scores
	var err error
	switch metric {
	case Degree:
		scores = ComputeDegree(g)
	case Closeness:
		scores, err = ComputeCloseness(g, opts)
	case Betweenness:
		scores, err = ComputeBetweenness(g, opts)
	default:
		scores = make(Scores)
	}
	if err != nil {
		return nil, err
	}
	if standardize {
		Standardize(scores)
	}
	return scores, nil
}

// ComputeDegree returns |N(v)| for every node. Complexity: O(|V|+|E|).
func ComputeDegree(g *graph.Graph) Scores {
	n := g.N()
	scores := make(Scores, n)
	for i := 0; i < n; i++ {
		scores[i] = float64(g.Degree(i))
	}
	return scores
}

// Standardize rescales scores in place to [0,1] via min-max, leaving
// them unchanged if max <= min (including the empty-map case).
// Idempotent: a second call on an already-standardized map is a no-op
// since its min is 0 and max is 1 (or all values are equal).
func Standardize(scores Scores) {
	if len(scores) == 0 {
		return
	}
	min, max := minMax(scores)
	if max <= min {
		return
	}
	for k, v := range scores {
		scores[k] = (v - min) / (max - min)
	}
}

func minMax(scores Scores) (float64, float64) {
	first := true
	var min, max float64
	for _, v := range scores {
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
