package labelio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esteinig/netviewr/graph"
	"github.com/esteinig/netviewr/labelio"
)

func TestReadLabelsCSV(t *testing.T) {
	in := "id,label\na,A\nb,\nc,B\n"
	labels, err := labelio.ReadLabels(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, labels, 3)
	require.Equal(t, "a", labels[0].ID)
	require.True(t, labels[0].HasLabel)
	require.False(t, labels[1].HasLabel)
	require.Equal(t, "B", labels[2].Label)
}

func TestReadLabelsTSV(t *testing.T) {
	in := "id\tlabel\nx\tX\n"
	labels, err := labelio.ReadLabels(strings.NewReader(in), true)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	require.Equal(t, "X", labels[0].Label)
}

func TestReadLabelsMissingHeader(t *testing.T) {
	_, err := labelio.ReadLabels(strings.NewReader(""), false)
	require.ErrorIs(t, err, labelio.ErrHeader)
}

func TestReadLabelsBadHeader(t *testing.T) {
	_, err := labelio.ReadLabels(strings.NewReader("foo,bar\n"), false)
	require.ErrorIs(t, err, labelio.ErrHeader)
}

func TestWriteLabelsRoundTrip(t *testing.T) {
	labels := []labelio.Label{
		{ID: "a", Label: "A", HasLabel: true},
		{ID: "b", HasLabel: false},
	}
	var buf strings.Builder
	require.NoError(t, labelio.WriteLabels(&buf, labels, false))

	got, err := labelio.ReadLabels(strings.NewReader(buf.String()), false)
	require.NoError(t, err)
	require.Equal(t, labels, got)
}

func TestWriteGraphLabelsFallsBackToIndex(t *testing.T) {
	g := graph.New(2, nil)
	require.NoError(t, g.SetLabel(0, "A", true))

	var buf strings.Builder
	require.NoError(t, labelio.WriteGraphLabels(&buf, g, false))
	require.Equal(t, "id,label\n0,A\n1,\n", buf.String())
}

func TestAssignFromLabelsUnknownID(t *testing.T) {
	g := graph.New(1, []string{"x"})
	err := labelio.AssignFromLabels(g, []labelio.Label{{ID: "missing", Label: "A", HasLabel: true}})
	require.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestAssignFromLabelsSetsLabels(t *testing.T) {
	g := graph.New(2, []string{"x", "y"})
	err := labelio.AssignFromLabels(g, []labelio.Label{{ID: "y", Label: "A", HasLabel: true}})
	require.NoError(t, err)
	n, err := g.Node(1)
	require.NoError(t, err)
	require.True(t, n.HasLabel)
	require.Equal(t, "A", n.Label)
}
