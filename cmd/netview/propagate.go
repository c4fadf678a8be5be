package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/esteinig/netviewr/labelio"
	"github.com/esteinig/netviewr/propagation"
	"github.com/esteinig/netviewr/serialize"
)

var propagateArgs struct {
	graphPath              string
	labelsPath             string
	output                 string
	outputLabels           string
	centralityFlag         string
	maxIterations          int
	centralityWeight       float64
	weightWeight           float64
	afWeight               float64
	aniWeight              float64
	aaiWeight              float64
	neighborCentralityVote bool
	distancePercent        bool
	targetFlag             string
	targetIds              string
	workers                int
	tsv                    bool
}

var propagateCmd = &cobra.Command{
	Use:   "propagate",
	Short: "Propagate sample labels across a previously built graph",
	RunE:  runPropagate,
}

func init() {
	f := propagateCmd.Flags()
	f.StringVar(&propagateArgs.graphPath, "graph", "", "path to a graph JSON file written by 'netview graph' (required)")
	f.StringVar(&propagateArgs.labelsPath, "labels", "", "path to an id,label CSV/TSV file to seed node labels (optional)")
	f.StringVar(&propagateArgs.output, "output", "graph.labeled.json", "output graph JSON path")
	f.StringVar(&propagateArgs.outputLabels, "output-labels", "", "optional id,label CSV/TSV export of the final graph")
	f.StringVar(&propagateArgs.centralityFlag, "centrality", "degree", "node centrality metric feeding the vote: degree, closeness, or betweenness")
	f.IntVar(&propagateArgs.maxIterations, "max-iterations", 20, "hard cap on propagation passes")
	f.Float64Var(&propagateArgs.centralityWeight, "vote-centrality", 1.0, "vote coefficient for centrality")
	f.Float64Var(&propagateArgs.weightWeight, "vote-weight", 2.0, "vote coefficient for edge similarity")
	f.Float64Var(&propagateArgs.afWeight, "vote-af", 1.0, "vote coefficient for alignment fraction")
	f.Float64Var(&propagateArgs.aniWeight, "vote-ani", 0.0, "vote coefficient for ANI")
	f.Float64Var(&propagateArgs.aaiWeight, "vote-aai", 0.0, "vote coefficient for AAI")
	f.BoolVar(&propagateArgs.neighborCentralityVote, "neighbor-centrality-vote", false, "add the neighbor's own centrality to each vote")
	f.BoolVar(&propagateArgs.distancePercent, "distance-percent", false, "edge weights are on a 0-100 scale")
	f.StringVar(&propagateArgs.targetFlag, "target", "unlabeled", "target selection: all, unlabeled, or ids")
	f.StringVar(&propagateArgs.targetIds, "target-ids", "", "comma-separated identifiers, used when --target=ids")
	f.IntVar(&propagateArgs.workers, "workers", 1, "worker pool size for centrality and the proposal phase")
	f.BoolVar(&propagateArgs.tsv, "tsv", false, "label files are tab-delimited instead of comma-delimited")
	_ = propagateCmd.MarkFlagRequired("graph")
}

func runPropagate(cmd *cobra.Command, args []string) error {
	graphFile, err := os.Open(propagateArgs.graphPath)
	if err != nil {
		return fmt.Errorf("netview propagate: %w", err)
	}
	defer graphFile.Close()

	slog.Info("reading graph", "path", propagateArgs.graphPath)
	g, err := serialize.ReadGraph(graphFile)
	if err != nil {
		return fmt.Errorf("netview propagate: %w", err)
	}

	if propagateArgs.labelsPath != "" {
		labelFile, err := os.Open(propagateArgs.labelsPath)
		if err != nil {
			return fmt.Errorf("netview propagate: %w", err)
		}
		defer labelFile.Close()
		slog.Info("reading seed labels", "path", propagateArgs.labelsPath)
		labels, err := labelio.ReadLabels(labelFile, propagateArgs.tsv)
		if err != nil {
			return fmt.Errorf("netview propagate: %w", err)
		}
		if err := labelio.AssignFromLabels(g, labels); err != nil {
			return fmt.Errorf("netview propagate: %w", err)
		}
	}

	metric, err := parseCentralityMetric(propagateArgs.centralityFlag)
	if err != nil {
		return fmt.Errorf("netview propagate: %w", err)
	}

	opts := []propagation.Option{
		propagation.WithCentralityMetric(metric),
		propagation.WithVoteWeights(propagation.VoteWeights{
			Centrality: propagateArgs.centralityWeight,
			Weight:     propagateArgs.weightWeight,
			AF:         propagateArgs.afWeight,
			ANI:        propagateArgs.aniWeight,
			AAI:        propagateArgs.aaiWeight,
		}),
		propagation.WithNeighborCentralityVote(propagateArgs.neighborCentralityVote),
		propagation.WithDistancePercent(propagateArgs.distancePercent),
		propagation.WithWorkers(propagateArgs.workers),
	}

	switch propagateArgs.targetFlag {
	case "all":
		opts = append(opts, propagation.WithTargetAll())
	case "unlabeled":
		opts = append(opts, propagation.WithTargetUnlabeled())
	case "ids":
		if propagateArgs.targetIds == "" {
			return fmt.Errorf("netview propagate: --target=ids requires --target-ids")
		}
		opts = append(opts, propagation.WithTargetIds(strings.Split(propagateArgs.targetIds, ",")))
	default:
		return fmt.Errorf("netview propagate: unknown --target %q", propagateArgs.targetFlag)
	}

	cfg := propagation.NewConfig(propagateArgs.maxIterations, opts...)

	slog.Info("starting label propagation", "max_iterations", propagateArgs.maxIterations, "metric", metric)
	res, err := propagation.Run(g, cfg)
	if err != nil {
		return fmt.Errorf("netview propagate: %w", err)
	}
	slog.Info("label propagation finished", "iterations", res.Iterations, "converged", res.Converged)

	out, err := os.Create(propagateArgs.output)
	if err != nil {
		return fmt.Errorf("netview propagate: %w", err)
	}
	defer out.Close()
	slog.Info("writing graph", "path", propagateArgs.output)
	if err := serialize.WriteGraph(out, g); err != nil {
		return fmt.Errorf("netview propagate: %w", err)
	}

	if propagateArgs.outputLabels != "" {
		labelOut, err := os.Create(propagateArgs.outputLabels)
		if err != nil {
			return fmt.Errorf("netview propagate: %w", err)
		}
		defer labelOut.Close()
		slog.Info("writing labels", "path", propagateArgs.outputLabels)
		if err := labelio.WriteGraphLabels(labelOut, g, propagateArgs.tsv); err != nil {
			return fmt.Errorf("netview propagate: %w", err)
		}
	}

	return nil
}
