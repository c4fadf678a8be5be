package serialize_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esteinig/netviewr/graph"
	"github.com/esteinig/netviewr/serialize"
)

func TestWriteGraphThenReadGraphRoundTrip(t *testing.T) {
	g := graph.New(3, []string{"a", "b", ""})
	require.NoError(t, g.SetLabel(0, "X", true))
	require.NoError(t, g.SetLabelConfidence(0, 0.9))

	idx, err := g.AddEdge(0, 1, 1.5)
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeAF(idx, 95.0))
	require.NoError(t, g.SetEdgeANI(idx, 98.0))

	_, err = g.AddEdge(1, 2, 2.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteGraph(&buf, g))

	got, err := serialize.ReadGraph(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, got.N())
	require.Equal(t, 2, got.EdgeCount())

	n0, err := got.Node(0)
	require.NoError(t, err)
	require.True(t, n0.HasID)
	require.Equal(t, "a", n0.ID)
	require.True(t, n0.HasLabel)
	require.Equal(t, "X", n0.Label)
	require.InDelta(t, 0.9, n0.LabelConfidence, 1e-9)

	n2, err := got.Node(2)
	require.NoError(t, err)
	require.False(t, n2.HasID)

	e, ok := got.EdgeBetween(0, 1)
	require.True(t, ok)
	require.True(t, e.HasAF)
	require.InDelta(t, 95.0, e.AF, 1e-9)
	require.True(t, e.HasANI)
	require.False(t, e.HasAAI)
}

func TestToJSONGraphPreservesEdgeOrder(t *testing.T) {
	g := graph.New(3, nil)
	_, err := g.AddEdge(1, 2, 1.0)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 2.0)
	require.NoError(t, err)

	doc := serialize.ToJSONGraph(g)
	require.Len(t, doc.Edges, 2)
	require.Equal(t, 0, doc.Edges[0].Index)
	require.Equal(t, 1, doc.Edges[0].Source)
	require.Equal(t, 2, doc.Edges[0].Target)
	require.Equal(t, 1, doc.Edges[1].Index)
}
