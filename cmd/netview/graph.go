package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/esteinig/netviewr/centrality"
	"github.com/esteinig/netviewr/distmatrix"
	"github.com/esteinig/netviewr/graph"
	"github.com/esteinig/netviewr/mknn"
	"github.com/esteinig/netviewr/serialize"
)

var graphArgs struct {
	distMatrix     string
	afMatrix       string
	identifiers    string
	output         string
	k              int
	tsv            bool
	lowerTri       bool
	threshold      float64
	hasThreshold   bool
	workers        int
	centralityFlag string
	centralityOut  string
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build a mutual k-nearest-neighbor graph from a distance matrix",
	RunE:  runGraph,
}

func init() {
	f := graphCmd.Flags()
	f.StringVar(&graphArgs.distMatrix, "distances", "", "path to the distance matrix (required)")
	f.StringVar(&graphArgs.afMatrix, "alignment-fraction", "", "path to the optional alignment fraction matrix")
	f.StringVar(&graphArgs.identifiers, "identifiers", "", "path to a newline-delimited identifier file")
	f.StringVar(&graphArgs.output, "output", "graph.json", "output graph JSON path")
	f.IntVar(&graphArgs.k, "k", 20, "neighborhood size")
	f.BoolVar(&graphArgs.tsv, "tsv", false, "matrices are tab-delimited instead of comma-delimited")
	f.BoolVar(&graphArgs.lowerTri, "lower-triangular", false, "matrices are lower-triangular")
	f.Float64Var(&graphArgs.threshold, "threshold", 0, "prune retained edges with distance >= threshold")
	f.BoolVar(&graphArgs.hasThreshold, "apply-threshold", false, "enable the distance threshold prune")
	f.IntVar(&graphArgs.workers, "workers", 1, "worker pool size for the distance abstraction and mkNN build")
	f.StringVar(&graphArgs.centralityFlag, "centrality", "degree", "node centrality metric: degree, closeness, or betweenness")
	f.StringVar(&graphArgs.centralityOut, "centrality-output", "", "optional path to write standardized centrality scores as id,score CSV")
	_ = graphCmd.MarkFlagRequired("distances")
}

func runGraph(cmd *cobra.Command, args []string) error {
	delimiter := ','
	if graphArgs.tsv {
		delimiter = '\t'
	}

	distFile, err := os.Open(graphArgs.distMatrix)
	if err != nil {
		return fmt.Errorf("netview graph: %w", err)
	}
	defer distFile.Close()

	slog.Info("reading distance matrix", "path", graphArgs.distMatrix)
	d, err := distmatrix.ParseMatrix(distFile, delimiter)
	if err != nil {
		return fmt.Errorf("netview graph: %w", err)
	}

	var af distmatrix.Matrix
	if graphArgs.afMatrix != "" {
		afFile, err := os.Open(graphArgs.afMatrix)
		if err != nil {
			return fmt.Errorf("netview graph: %w", err)
		}
		defer afFile.Close()
		slog.Info("reading alignment fraction matrix", "path", graphArgs.afMatrix)
		af, err = distmatrix.ParseMatrix(afFile, delimiter)
		if err != nil {
			return fmt.Errorf("netview graph: %w", err)
		}
	}

	var ids []string
	if graphArgs.identifiers != "" {
		idFile, err := os.Open(graphArgs.identifiers)
		if err != nil {
			return fmt.Errorf("netview graph: %w", err)
		}
		defer idFile.Close()
		slog.Info("reading identifiers", "path", graphArgs.identifiers)
		ids, err = distmatrix.ParseIdentifiers(idFile)
		if err != nil {
			return fmt.Errorf("netview graph: %w", err)
		}
	}

	slog.Info("computing distance-of-distances abstraction", "workers", graphArgs.workers)
	dprime, err := distmatrix.Abstract(d, distmatrix.AbstractOptions{
		IsLowerTriangular: graphArgs.lowerTri,
		Workers:           graphArgs.workers,
	})
	if err != nil {
		return fmt.Errorf("netview graph: %w", err)
	}

	slog.Info("building mutual k-nearest-neighbor graph", "k", graphArgs.k)
	g, err := mknn.Build(dprime, d, ids, mknn.Options{
		K:            graphArgs.k,
		AF:           af,
		HasThreshold: graphArgs.hasThreshold,
		Threshold:    graphArgs.threshold,
		Workers:      graphArgs.workers,
	})
	if err != nil {
		return fmt.Errorf("netview graph: %w", err)
	}
	slog.Info("graph built", "nodes", g.N(), "edges", g.EdgeCount())

	metric, err := parseCentralityMetric(graphArgs.centralityFlag)
	if err != nil {
		return fmt.Errorf("netview graph: %w", err)
	}
	slog.Info("computing node centrality", "metric", metric)
	scores, err := centrality.Compute(g, metric, true, centrality.Options{Workers: graphArgs.workers})
	if err != nil {
		return fmt.Errorf("netview graph: %w", err)
	}
	if graphArgs.centralityOut != "" {
		if err := writeCentralityCSV(graphArgs.centralityOut, g, scores); err != nil {
			return fmt.Errorf("netview graph: %w", err)
		}
	}

	out, err := os.Create(graphArgs.output)
	if err != nil {
		return fmt.Errorf("netview graph: %w", err)
	}
	defer out.Close()

	slog.Info("writing graph", "path", graphArgs.output)
	if err := serialize.WriteGraph(out, g); err != nil {
		return fmt.Errorf("netview graph: %w", err)
	}
	return nil
}

// writeCentralityCSV writes one "id,score" row per node, falling back
// to the node's index when it carries no external identifier.
func writeCentralityCSV(path string, g *graph.Graph, scores centrality.Scores) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "score"}); err != nil {
		return err
	}
	for _, n := range g.Nodes() {
		id := n.ID
		if !n.HasID {
			id = strconv.Itoa(n.Index)
		}
		if err := w.Write([]string{id, strconv.FormatFloat(scores[n.Index], 'g', -1, 64)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func parseCentralityMetric(name string) (centrality.Metric, error) {
	switch name {
	case "degree":
		return centrality.Degree, nil
	case "closeness":
		return centrality.Closeness, nil
	case "betweenness":
		return centrality.Betweenness, nil
	default:
		return 0, fmt.Errorf("unknown centrality metric %q", name)
	}
}
