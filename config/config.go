// Package config loads and saves netviewr's run configuration, ported
// from original_source/src/config.rs's NetviewConfig/GraphConfig/
// LabelConfig. SkaniConfig is dropped (the skani subprocess integration
// is out of this module's scope) and TOML support is dropped in favor
// of JSON and YAML, the two serialization formats the example pack
// actually carries dependencies for.
package config

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/esteinig/netviewr/centrality"
	"github.com/esteinig/netviewr/propagation"
)

// GraphConfig holds the mkNN builder's neighborhood size.
type GraphConfig struct {
	K int `json:"k" yaml:"k"`
}

// DefaultGraphConfig mirrors GraphConfig::default (k=20).
func DefaultGraphConfig() GraphConfig {
	return GraphConfig{K: 20}
}

// LabelConfig holds propagation.Config's metric, iteration cap, vote
// weights and scale flags, in a form that round-trips through JSON/YAML;
// target selection and worker count are not part of it.
// CentralityMetric is stored as its String() name rather than the raw
// int, so config files stay
// stable across a reordering of the centrality.Metric iota.
type LabelConfig struct {
	CentralityMetric       string                  `json:"centrality_metric" yaml:"centrality_metric"`
	MaxIterations          int                     `json:"max_iterations" yaml:"max_iterations"`
	VoteWeights            propagation.VoteWeights `json:"vote_weights" yaml:"vote_weights"`
	NeighborCentralityVote bool                    `json:"neighbor_centrality_vote" yaml:"neighbor_centrality_vote"`
	DistancePercent        bool                    `json:"distance_percent" yaml:"distance_percent"`
}

// DefaultLabelConfig mirrors LabelConfig::default.
func DefaultLabelConfig() LabelConfig {
	return LabelConfig{
		CentralityMetric:       centrality.Degree.String(),
		MaxIterations:          20,
		VoteWeights:            propagation.DefaultVoteWeights(),
		NeighborCentralityVote: false,
		DistancePercent:        true,
	}
}

// NetviewConfig is the top-level, file-persisted configuration.
type NetviewConfig struct {
	Graph GraphConfig `json:"graph" yaml:"graph"`
	Label LabelConfig `json:"label" yaml:"label"`
}

// Default mirrors NetviewConfig::default.
func Default() NetviewConfig {
	return NetviewConfig{Graph: DefaultGraphConfig(), Label: DefaultLabelConfig()}
}

// WithK mirrors NetviewConfig::with_default(k): defaults with the
// graph neighborhood size overridden.
func WithK(k int) NetviewConfig {
	cfg := Default()
	cfg.Graph.K = k
	return cfg
}

// Metric resolves CentralityMetric back to a centrality.Metric.
// Unknown names fall back to centrality.Degree.
func (l LabelConfig) Metric() centrality.Metric {
	switch l.CentralityMetric {
	case centrality.Closeness.String():
		return centrality.Closeness
	case centrality.Betweenness.String():
		return centrality.Betweenness
	default:
		return centrality.Degree
	}
}

// ReadJSON parses a NetviewConfig from JSON.
func ReadJSON(r io.Reader) (NetviewConfig, error) {
	var cfg NetviewConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return NetviewConfig{}, fmt.Errorf("config: ReadJSON: %w", err)
	}
	return cfg, nil
}

// WriteJSON writes cfg as indented JSON.
func WriteJSON(w io.Writer, cfg NetviewConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: WriteJSON: %w", err)
	}
	return nil
}

// ReadYAML parses a NetviewConfig from YAML.
func ReadYAML(r io.Reader) (NetviewConfig, error) {
	var cfg NetviewConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return NetviewConfig{}, fmt.Errorf("config: ReadYAML: %w", err)
	}
	return cfg, nil
}

// WriteYAML writes cfg as YAML.
func WriteYAML(w io.Writer, cfg NetviewConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: WriteYAML: %w", err)
	}
	return enc.Close()
}
