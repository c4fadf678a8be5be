package propagation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esteinig/netviewr/centrality"
	"github.com/esteinig/netviewr/graph"
	"github.com/esteinig/netviewr/propagation"
)

func TestRunThreeNodeTrivial(t *testing.T) {
	// spec.md §8 scenario 1: D={{0,1,2},{1,0,3},{2,3,0}}, k=1 -> edge {0,1}.
	g := graph.New(3, nil)
	_, err := g.AddEdge(0, 1, 1.0)
	require.NoError(t, err)

	require.NoError(t, g.SetLabel(0, "A", true))
	require.NoError(t, g.SetLabel(2, "B", true))

	cfg := propagation.NewConfig(10,
		propagation.WithTargetUnlabeled(),
		propagation.WithVoteWeights(propagation.VoteWeights{Weight: 1}),
	)
	res, err := propagation.Run(g, cfg)
	require.NoError(t, err)
	require.True(t, res.Converged)

	n1, err := g.Node(1)
	require.NoError(t, err)
	require.True(t, n1.HasLabel)
	require.Equal(t, "A", n1.Label)
}

func TestRunFourNodeRingConvergence(t *testing.T) {
	// spec.md §8 scenario 6: 4-node ring, labels [A, _, B, _], uniform
	// weight-only votes, target=Unlabeled. Node 1's neighbors are 0(A)
	// and 2(B) with equal edge weight -> tie -> lexicographic "A" wins.
	// Node 3's neighbors are 2(B) and 0(A) -> same tie -> "A".
	g := graph.New(4, nil)
	_, err := g.AddEdge(0, 1, 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 0, 1.0)
	require.NoError(t, err)

	require.NoError(t, g.SetLabel(0, "A", true))
	require.NoError(t, g.SetLabel(2, "B", true))

	cfg := propagation.NewConfig(10,
		propagation.WithTargetUnlabeled(),
		propagation.WithVoteWeights(propagation.VoteWeights{Weight: 1, Centrality: 0}),
	)
	res, err := propagation.Run(g, cfg)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 2, res.Iterations)

	n1, err := g.Node(1)
	require.NoError(t, err)
	require.True(t, n1.HasLabel)
	require.Equal(t, "A", n1.Label)

	n3, err := g.Node(3)
	require.NoError(t, err)
	require.True(t, n3.HasLabel)
	require.Equal(t, "A", n3.Label)
}

func TestRunNoLabeledNeighborsConvergesImmediately(t *testing.T) {
	g := graph.New(2, nil)
	_, err := g.AddEdge(0, 1, 1.0)
	require.NoError(t, err)

	cfg := propagation.NewConfig(5, propagation.WithTargetAll())
	res, err := propagation.Run(g, cfg)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 1, res.Iterations)

	n0, _ := g.Node(0)
	n1, _ := g.Node(1)
	require.False(t, n0.HasLabel)
	require.False(t, n1.HasLabel)
}

func TestRunIsolatedTargetUnchanged(t *testing.T) {
	g := graph.New(2, nil) // no edges: node 1 is isolated
	require.NoError(t, g.SetLabel(0, "A", true))

	cfg := propagation.NewConfig(5, propagation.WithTargetUnlabeled())
	res, err := propagation.Run(g, cfg)
	require.NoError(t, err)
	require.True(t, res.Converged)

	n1, err := g.Node(1)
	require.NoError(t, err)
	require.False(t, n1.HasLabel)
}

func TestRunByIdsTargetsNamedNodesOnly(t *testing.T) {
	g := graph.New(3, []string{"x", "y", "z"})
	_, err := g.AddEdge(0, 1, 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1.0)
	require.NoError(t, err)
	require.NoError(t, g.SetLabel(0, "A", true))

	cfg := propagation.NewConfig(5,
		propagation.WithTargetIds([]string{"y"}),
		propagation.WithVoteWeights(propagation.VoteWeights{Weight: 1}),
	)
	res, err := propagation.Run(g, cfg)
	require.NoError(t, err)
	require.True(t, res.Converged)

	n1, err := g.Node(1)
	require.NoError(t, err)
	require.True(t, n1.HasLabel)
	require.Equal(t, "A", n1.Label)

	n2, err := g.Node(2)
	require.NoError(t, err)
	require.False(t, n2.HasLabel)
}

func TestRunByIdsUnknownIdentifier(t *testing.T) {
	g := graph.New(2, []string{"x", "y"})
	cfg := propagation.NewConfig(5, propagation.WithTargetIds([]string{"missing"}))
	_, err := propagation.Run(g, cfg)
	require.ErrorIs(t, err, propagation.ErrNodeNotFound)
}

func TestRunHitsMaxIterationsWithoutConverging(t *testing.T) {
	// Path 0-1-2 with only node 0 labeled and a cap of one pass: node 1
	// takes "A" in pass 1, so that pass has a change and the run stops at
	// the bound without a converging (change-free) pass.
	g := graph.New(3, nil)
	_, err := g.AddEdge(0, 1, 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1.0)
	require.NoError(t, err)
	require.NoError(t, g.SetLabel(0, "A", true))

	cfg := propagation.NewConfig(1, propagation.WithTargetUnlabeled())
	res, err := propagation.Run(g, cfg)
	require.NoError(t, err)
	require.LessOrEqual(t, res.Iterations, 1)
	require.False(t, res.Converged)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	build := func() *graph.Graph {
		g := graph.New(4, nil)
		_, _ = g.AddEdge(0, 1, 1.0)
		_, _ = g.AddEdge(1, 2, 1.0)
		_, _ = g.AddEdge(2, 3, 1.0)
		_, _ = g.AddEdge(3, 0, 1.0)
		_ = g.SetLabel(0, "A", true)
		_ = g.SetLabel(2, "B", true)
		return g
	}

	seq := build()
	par := build()

	cfg := propagation.NewConfig(10, propagation.WithTargetUnlabeled())
	parCfg := propagation.NewConfig(10, propagation.WithTargetUnlabeled(), propagation.WithWorkers(4))

	_, err := propagation.Run(seq, cfg)
	require.NoError(t, err)
	_, err = propagation.Run(par, parCfg)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		ns, _ := seq.Node(i)
		np, _ := par.Node(i)
		require.Equal(t, ns.Label, np.Label)
		require.Equal(t, ns.HasLabel, np.HasLabel)
	}
}

func TestDefaultVoteWeights(t *testing.T) {
	w := propagation.DefaultVoteWeights()
	require.Equal(t, 1.0, w.Centrality)
	require.Equal(t, 2.0, w.Weight)
	require.Equal(t, 1.0, w.AF)
	require.Equal(t, 0.0, w.ANI)
	require.Equal(t, 0.0, w.AAI)
}

func TestNewConfigPanicsOnInvalidMaxIterations(t *testing.T) {
	require.Panics(t, func() { propagation.NewConfig(0) })
}

func TestWithTargetIdsPanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() { propagation.WithTargetIds(nil) })
}

func TestWithCentralityMetricIsRespected(t *testing.T) {
	g := graph.New(3, nil)
	_, err := g.AddEdge(0, 1, 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1.0)
	require.NoError(t, err)
	require.NoError(t, g.SetLabel(0, "A", true))

	cfg := propagation.NewConfig(5,
		propagation.WithTargetUnlabeled(),
		propagation.WithCentralityMetric(centrality.Betweenness),
	)
	_, err = propagation.Run(g, cfg)
	require.NoError(t, err)
}
