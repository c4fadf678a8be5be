// Package serialize exports a graph.Graph as JSON, preserving full
// node/edge metadata and edge insertion order. Ported from
// original_source/src/mknn.rs's write_json_graph (the GraphData /
// EdgeData JSON shape), generalized from petgraph's bare node weight
// to netviewr's richer Node/Edge types.
package serialize

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/esteinig/netviewr/graph"
)

// JSONNode is the wire representation of a graph.Node.
type JSONNode struct {
	Index           int      `json:"index"`
	ID              *string  `json:"id"`
	Label           *string  `json:"label"`
	LabelConfidence *float64 `json:"label_confidence,omitempty"`
}

// JSONEdge is the wire representation of a graph.Edge.
type JSONEdge struct {
	Index  int      `json:"index"`
	Source int      `json:"source"`
	Target int      `json:"target"`
	Weight float64  `json:"weight"`
	AF     *float64 `json:"af"`
	ANI    *float64 `json:"ani"`
	AAI    *float64 `json:"aai"`
}

// JSONGraph is the top-level document written by WriteGraph and read
// by ReadGraph.
type JSONGraph struct {
	Nodes []JSONNode `json:"nodes"`
	Edges []JSONEdge `json:"edges"`
}

func optStr(s string, has bool) *string {
	if !has {
		return nil
	}
	return &s
}

func optF64(v float64, has bool) *float64 {
	if !has {
		return nil
	}
	return &v
}

// ToJSONGraph snapshots g into the wire representation.
func ToJSONGraph(g *graph.Graph) JSONGraph {
	nodes := g.Nodes()
	out := JSONGraph{Nodes: make([]JSONNode, len(nodes))}
	for i, n := range nodes {
		jn := JSONNode{
			Index: n.Index,
			ID:    optStr(n.ID, n.HasID),
			Label: optStr(n.Label, n.HasLabel),
		}
		if n.HasLabel {
			conf := n.LabelConfidence
			jn.LabelConfidence = &conf
		}
		out.Nodes[i] = jn
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, JSONEdge{
			Index:  e.Index,
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
			AF:     optF64(e.AF, e.HasAF),
			ANI:    optF64(e.ANI, e.HasANI),
			AAI:    optF64(e.AAI, e.HasAAI),
		})
	}
	return out
}

// WriteGraph serializes g to w as indented JSON.
func WriteGraph(w io.Writer, g *graph.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToJSONGraph(g)); err != nil {
		return fmt.Errorf("serialize: WriteGraph: %w", err)
	}
	return nil
}

// ReadGraph rebuilds a graph.Graph from a document written by
// WriteGraph. Edges are re-added in their original index order so the
// rebuilt graph's weight ordering matches the source.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	var doc JSONGraph
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("serialize: ReadGraph: %w", err)
	}

	ids := make([]string, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n.ID != nil {
			ids[i] = *n.ID
		}
	}
	g := graph.New(len(doc.Nodes), ids)

	for i, n := range doc.Nodes {
		if n.Label != nil {
			if err := g.SetLabel(i, *n.Label, true); err != nil {
				return nil, fmt.Errorf("serialize: ReadGraph: node %d: %w", i, err)
			}
		}
		if n.LabelConfidence != nil {
			if err := g.SetLabelConfidence(i, *n.LabelConfidence); err != nil {
				return nil, fmt.Errorf("serialize: ReadGraph: node %d: %w", i, err)
			}
		}
	}

	for _, e := range doc.Edges {
		idx, err := g.AddEdge(e.Source, e.Target, e.Weight)
		if err != nil {
			return nil, fmt.Errorf("serialize: ReadGraph: edge %d-%d: %w", e.Source, e.Target, err)
		}
		if e.AF != nil {
			if err := g.SetEdgeAF(idx, *e.AF); err != nil {
				return nil, fmt.Errorf("serialize: ReadGraph: edge %d: %w", idx, err)
			}
		}
		if e.ANI != nil {
			if err := g.SetEdgeANI(idx, *e.ANI); err != nil {
				return nil, fmt.Errorf("serialize: ReadGraph: edge %d: %w", idx, err)
			}
		}
		if e.AAI != nil {
			if err := g.SetEdgeAAI(idx, *e.AAI); err != nil {
				return nil, fmt.Errorf("serialize: ReadGraph: edge %d: %w", idx, err)
			}
		}
	}

	return g, nil
}
