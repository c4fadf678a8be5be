package config_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esteinig/netviewr/centrality"
	"github.com/esteinig/netviewr/config"
)

func TestDefaultMatchesOriginalDefaults(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, 20, cfg.Graph.K)
	require.Equal(t, 20, cfg.Label.MaxIterations)
	require.True(t, cfg.Label.DistancePercent)
	require.False(t, cfg.Label.NeighborCentralityVote)
	require.Equal(t, centrality.Degree, cfg.Label.Metric())
}

func TestWithKOverridesGraphK(t *testing.T) {
	cfg := config.WithK(5)
	require.Equal(t, 5, cfg.Graph.K)
	require.Equal(t, 20, cfg.Label.MaxIterations)
}

func TestJSONRoundTrip(t *testing.T) {
	cfg := config.WithK(7)
	cfg.Label.CentralityMetric = centrality.Betweenness.String()

	var buf bytes.Buffer
	require.NoError(t, config.WriteJSON(&buf, cfg))

	got, err := config.ReadJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
	require.Equal(t, centrality.Betweenness, got.Label.Metric())
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := config.WithK(3)

	var buf bytes.Buffer
	require.NoError(t, config.WriteYAML(&buf, cfg))

	got, err := config.ReadYAML(&buf)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestMetricFallsBackToDegreeOnUnknownName(t *testing.T) {
	cfg := config.Default()
	cfg.Label.CentralityMetric = "not-a-real-metric"
	require.Equal(t, centrality.Degree, cfg.Label.Metric())
}
