// Package labelio reads and writes id/label pairs in CSV or TSV form,
// ported from original_source/src/label.rs's read_labels_from_file /
// write_labels_to_file and write_graph_labels_to_file.
package labelio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/esteinig/netviewr/graph"
)

var (
	// ErrHeader signals a missing or malformed "id,label" header row.
	ErrHeader = errors.New("labelio: missing or malformed header")

	// ErrRecordShape signals a data row that does not have exactly two
	// fields.
	ErrRecordShape = errors.New("labelio: record must have 2 fields")
)

// Label is one external-identifier/label pair, absent label meaning
// unlabeled.
type Label struct {
	ID       string
	Label    string
	HasLabel bool
}

func reader(r io.Reader, tsv bool) *csv.Reader {
	cr := csv.NewReader(r)
	if tsv {
		cr.Comma = '\t'
	}
	cr.TrimLeadingSpace = true
	return cr
}

func writer(w io.Writer, tsv bool) *csv.Writer {
	cw := csv.NewWriter(w)
	if tsv {
		cw.Comma = '\t'
	}
	return cw
}

// ReadLabels parses a header ("id,label") followed by one record per
// line; an empty label field means unlabeled.
func ReadLabels(r io.Reader, tsv bool) ([]Label, error) {
	cr := reader(r, tsv)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ReadLabels: %w", ErrHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadLabels: %w", err)
	}
	if len(header) != 2 || header[0] != "id" || header[1] != "label" {
		return nil, fmt.Errorf("ReadLabels: %w", ErrHeader)
	}

	var labels []Label
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadLabels: %w", err)
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("ReadLabels: %w", ErrRecordShape)
		}
		labels = append(labels, Label{ID: record[0], Label: record[1], HasLabel: record[1] != ""})
	}
	return labels, nil
}

// WriteLabels writes a header plus one record per label, in order.
func WriteLabels(w io.Writer, labels []Label, tsv bool) error {
	cw := writer(w, tsv)
	if err := cw.Write([]string{"id", "label"}); err != nil {
		return fmt.Errorf("WriteLabels: %w", err)
	}
	for _, l := range labels {
		value := l.Label
		if !l.HasLabel {
			value = ""
		}
		if err := cw.Write([]string{l.ID, value}); err != nil {
			return fmt.Errorf("WriteLabels: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteLabels: %w", err)
	}
	return nil
}

// WriteGraphLabels writes one row per node in a graph, in index order.
// Nodes without an external ID fall back to their index, mirroring
// write_graph_labels_to_file's unwrap_or_else(|| node.index().to_string()).
func WriteGraphLabels(w io.Writer, g *graph.Graph, tsv bool) error {
	cw := writer(w, tsv)
	if err := cw.Write([]string{"id", "label"}); err != nil {
		return fmt.Errorf("WriteGraphLabels: %w", err)
	}
	for _, n := range g.Nodes() {
		id := n.ID
		if !n.HasID {
			id = strconv.Itoa(n.Index)
		}
		label := ""
		if n.HasLabel {
			label = n.Label
		}
		if err := cw.Write([]string{id, label}); err != nil {
			return fmt.Errorf("WriteGraphLabels: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteGraphLabels: %w", err)
	}
	return nil
}

// AssignFromLabels maps Label rows onto g by external identifier,
// assigning (or clearing) each named node's label. Unknown ids return
// graph.ErrNodeNotFound.
func AssignFromLabels(g *graph.Graph, labels []Label) error {
	for _, l := range labels {
		idx, err := g.IndexForID(l.ID)
		if err != nil {
			return fmt.Errorf("AssignFromLabels: id %q: %w", l.ID, err)
		}
		if err := g.SetLabel(idx, l.Label, l.HasLabel); err != nil {
			return fmt.Errorf("AssignFromLabels: %w", err)
		}
	}
	return nil
}
