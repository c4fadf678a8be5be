package mknn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esteinig/netviewr/distmatrix"
	"github.com/esteinig/netviewr/mknn"
)

func TestBuildThreeNodeTrivial(t *testing.T) {
	d := distmatrix.Matrix{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}
	g, err := mknn.Build(d, d, nil, mknn.Options{K: 1})
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
	e, ok := g.EdgeBetween(0, 1)
	require.True(t, ok)
	require.InDelta(t, 1.0, e.Weight, 1e-9)
}

func TestBuildFourNodeSquare(t *testing.T) {
	d := distmatrix.Matrix{
		{0, 1, 2, 3},
		{1, 0, 3, 2},
		{2, 3, 0, 1},
		{3, 2, 1, 0},
	}
	g, err := mknn.Build(d, d, nil, mknn.Options{K: 2})
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
	for _, pair := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_, ok := g.EdgeBetween(pair[0], pair[1])
		require.Truef(t, ok, "expected edge %v", pair)
	}
	for i := 0; i < 4; i++ {
		require.Equal(t, 2, g.Degree(i))
	}
}

func TestBuildIdenticalRowsCompleteGraph(t *testing.T) {
	d := distmatrix.Matrix{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	g, err := mknn.Build(d, d, nil, mknn.Options{K: 2})
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
}

func TestBuildNoMutualNeighbors(t *testing.T) {
	// Nearest of 0 -> 2, of 1 -> 0, of 2 -> 1: a 3-cycle in which no two
	// nodes choose each other, so no pair is mutual.
	d := distmatrix.Matrix{
		{0, 2, 1},
		{1, 0, 3},
		{3, 1, 0},
	}
	g, err := mknn.Build(d, d, nil, mknn.Options{K: 1})
	require.NoError(t, err)
	require.Equal(t, 0, g.EdgeCount())
}

func TestBuildLowerTriangularInput(t *testing.T) {
	d := distmatrix.Matrix{{0}, {1, 0}}
	g, err := mknn.Build(d, d, nil, mknn.Options{K: 1})
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
	_, ok := g.EdgeBetween(0, 1)
	require.True(t, ok)
}

func TestBuildInvalidK(t *testing.T) {
	d := distmatrix.Matrix{{0, 1}, {1, 0}}
	_, err := mknn.Build(d, d, nil, mknn.Options{K: 0})
	require.ErrorIs(t, err, mknn.ErrInvalidK)

	_, err = mknn.Build(d, d, nil, mknn.Options{K: 2})
	require.ErrorIs(t, err, mknn.ErrInvalidK)
}

func TestBuildEmptyMatrix(t *testing.T) {
	_, err := mknn.Build(distmatrix.Matrix{}, distmatrix.Matrix{}, nil, mknn.Options{K: 1})
	require.ErrorIs(t, err, mknn.ErrInvalidMatrix)
}

func TestBuildThresholdPrunesEdges(t *testing.T) {
	d := distmatrix.Matrix{
		{0, 1, 2, 3},
		{1, 0, 3, 2},
		{2, 3, 0, 1},
		{3, 2, 1, 0},
	}
	g, err := mknn.Build(d, d, nil, mknn.Options{K: 2, HasThreshold: true, Threshold: 2.0})
	require.NoError(t, err)
	// edges {0,1}(w=1) and {2,3}(w=1) survive; {0,2}(w=2) and {1,3}(w=2) pruned.
	require.Equal(t, 2, g.EdgeCount())
}

func TestBuildParallelMatchesSequential(t *testing.T) {
	d := distmatrix.Matrix{
		{0, 1, 2, 3, 4},
		{1, 0, 3, 2, 5},
		{2, 3, 0, 1, 6},
		{3, 2, 1, 0, 7},
		{4, 5, 6, 7, 0},
	}
	seq, err := mknn.Build(d, d, nil, mknn.Options{K: 2})
	require.NoError(t, err)
	par, err := mknn.Build(d, d, nil, mknn.Options{K: 2, Workers: 4})
	require.NoError(t, err)
	require.Equal(t, seq.EdgeCount(), par.EdgeCount())
	for _, e := range seq.Edges() {
		_, ok := par.EdgeBetween(e.Source, e.Target)
		require.True(t, ok)
	}
}

func TestBuildAFDecoration(t *testing.T) {
	d := distmatrix.Matrix{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}
	af := distmatrix.Matrix{{0, 90, 10}, {90, 0, 5}, {10, 5, 0}}
	g, err := mknn.Build(d, d, nil, mknn.Options{K: 1, AF: af})
	require.NoError(t, err)
	e, ok := g.EdgeBetween(0, 1)
	require.True(t, ok)
	require.True(t, e.HasAF)
	require.InDelta(t, 90.0, e.AF, 1e-9)
}

func TestBuildSimplicityBound(t *testing.T) {
	d := distmatrix.Matrix{
		{0, 1, 2, 3},
		{1, 0, 3, 2},
		{2, 3, 0, 1},
		{3, 2, 1, 0},
	}
	g, err := mknn.Build(d, d, nil, mknn.Options{K: 2})
	require.NoError(t, err)
	require.LessOrEqual(t, g.EdgeCount(), 4*2/2)
	for _, e := range g.Edges() {
		require.NotEqual(t, e.Source, e.Target)
	}
}
