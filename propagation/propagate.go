package propagation

import (
	"fmt"
	"sort"

	"github.com/esteinig/netviewr/centrality"
	"github.com/esteinig/netviewr/graph"
	"github.com/esteinig/netviewr/internal/workerpool"
)

// Result reports what a Run call did, for callers who want to log or
// assert on convergence without re-deriving it from the graph.
type Result struct {
	// Iterations is the number of passes actually run (<= cfg max).
	Iterations int
	// Converged is true iff propagation stopped because no target
	// changed label in the final pass, rather than hitting the
	// iteration bound.
	Converged bool
}

// Run executes weighted, centrality-aware label propagation over g in
// place, per spec.md §4.4:
//
//  1. Compute (standardized) centrality for cfg's metric, once, from
//     g's pre-run topology.
//  2. Resolve the target set T once (All / Unlabeled / ByIds).
//  3. For up to cfg.maxIterations passes: every v in T collects a vote
//     from each labeled neighbor u, tallied by u's label; v proposes
//     the max-tally label (ties broken lexicographically); proposals
//     are applied atomically after the whole pass. If no target
//     changed label, stop (converged).
//
// Edges and centrality are read from the pre-iteration snapshot and
// never mutated mid-run; only node labels change, between iterations,
// via a single-writer sequential apply phase (spec.md §5).
func Run(g *graph.Graph, cfg Config) (Result, error) {
	scores, err := centrality.Compute(g, cfg.centralityMetric, true, centrality.Options{Workers: cfg.workers})
	if err != nil {
		return Result{}, fmt.Errorf("propagation: computing centrality: %w", err)
	}

	targets, err := resolveTargets(g, cfg.target)
	if err != nil {
		return Result{}, err
	}

	type proposal struct {
		node    int
		label   string
		changed bool
	}

	for iter := 1; iter <= cfg.maxIterations; iter++ {
		// Snapshot neighbor labels/edges before proposing: the proposal
		// phase must not observe labels written earlier in this same
		// pass (spec.md's "computed from pre-iteration state of G").
		proposals := make([]proposal, len(targets))

		proposeFor := func(idx int) error {
			v := targets[idx]
			cur, err := g.Node(v)
			if err != nil {
				return err
			}
			label, voted := proposeLabel(g, scores, v, cfg)
			if !voted {
				proposals[idx] = proposal{node: v, label: cur.Label, changed: false}
				return nil
			}
			changed := !cur.HasLabel || cur.Label != label
			proposals[idx] = proposal{node: v, label: label, changed: changed}
			return nil
		}

		if cfg.workers > 1 {
			if err := workerpool.Run(cfg.workers, len(targets), proposeFor); err != nil {
				return Result{}, fmt.Errorf("propagation: iteration %d: %w", iter, err)
			}
		} else {
			for idx := range targets {
				if err := proposeFor(idx); err != nil {
					return Result{}, fmt.Errorf("propagation: iteration %d: %w", iter, err)
				}
			}
		}

		anyChanged := false
		for _, p := range proposals {
			if !p.changed {
				continue
			}
			anyChanged = true
			if err := g.SetLabel(p.node, p.label, true); err != nil {
				return Result{}, fmt.Errorf("propagation: applying node %d: %w", p.node, err)
			}
		}

		if !anyChanged {
			return Result{Iterations: iter, Converged: true}, nil
		}
	}

	return Result{Iterations: cfg.maxIterations, Converged: false}, nil
}

// proposeLabel computes v's vote tally over its labeled neighbors and
// returns the winning label. voted is false if v has no labeled
// neighbor (no vote cast, no change proposed).
func proposeLabel(g *graph.Graph, scores centrality.Scores, v int, cfg Config) (label string, voted bool) {
	tally := make(map[string]float64)
	vCentrality := scores[v]

	for _, u := range g.Neighbors(v) {
		neighbor, err := g.Node(u)
		if err != nil || !neighbor.HasLabel {
			continue
		}
		edge, ok := g.EdgeBetween(u, v)
		if !ok {
			continue
		}

		var sim float64
		if cfg.distancePercent {
			sim = 1 - edge.Weight/100
		} else {
			sim = 1 - edge.Weight
		}

		var ani, aai, af float64
		if edge.HasANI {
			ani = edge.ANI / 100
		}
		if edge.HasAAI {
			aai = edge.AAI / 100
		}
		if edge.HasAF {
			af = edge.AF / 100
		}

		vote := sim*cfg.voteWeights.Weight +
			ani*cfg.voteWeights.ANI +
			aai*cfg.voteWeights.AAI +
			af*cfg.voteWeights.AF +
			vCentrality*cfg.voteWeights.Centrality

		if cfg.neighborCentralityVote {
			vote += scores[u]
		}

		tally[neighbor.Label] += vote
	}

	if len(tally) == 0 {
		return "", false
	}

	labels := make([]string, 0, len(tally))
	for l := range tally {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	best := labels[0]
	bestVote := tally[best]
	for _, l := range labels[1:] {
		if tally[l] > bestVote {
			best, bestVote = l, tally[l]
		}
	}
	return best, true
}

func resolveTargets(g *graph.Graph, sel TargetSelection) ([]int, error) {
	n := g.N()
	switch sel.Kind {
	case All:
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out, nil
	case Unlabeled:
		out := make([]int, 0, n)
		for i := 0; i < n; i++ {
			node, err := g.Node(i)
			if err != nil {
				return nil, err
			}
			if !node.HasLabel {
				out = append(out, i)
			}
		}
		return out, nil
	case ByIds:
		out := make([]int, 0, len(sel.Ids))
		for _, id := range sel.Ids {
			idx, err := g.IndexForID(id)
			if err != nil {
				return nil, fmt.Errorf("propagation: target id %q: %w", id, ErrNodeNotFound)
			}
			out = append(out, idx)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("propagation: unknown target kind %d", sel.Kind)
	}
}
