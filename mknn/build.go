package mknn

import (
	"fmt"
	"sort"

	"github.com/esteinig/netviewr/distmatrix"
	"github.com/esteinig/netviewr/graph"
	"github.com/esteinig/netviewr/internal/workerpool"
)

// Options configures Build.
//
//   - K is the neighborhood size; 0 < K < N is required.
//   - AF is the optional alignment-fraction matrix, same shape as D.
//   - Threshold, if HasThreshold is true, suppresses any retained edge
//     whose original D[i,j] >= Threshold (spec.md §4.2's optional
//     post-mutuality filter, resolved per the Open Question in
//     SPEC_FULL.md).
//   - Workers bounds the worker pool used for per-row neighbor search;
//     <= 1 runs sequentially.
type Options struct {
	K            int
	AF           distmatrix.Matrix
	HasThreshold bool
	Threshold    float64
	Workers      int
}

// Build constructs the mkNN graph from the distance-of-distances matrix
// dprime, decorating edges with weights from the original distance
// matrix d (and AF from opts.AF, if provided). ids, if non-nil, assigns
// external identifiers in row order.
//
// Algorithm (spec.md §4.2):
//  1. per-row NN_k(i): the k smallest D'[i,j], j != i, ties broken by
//     ascending j.
//  2. mutuality filter: keep {i,j} iff j in NN_k(i) and i in NN_k(j).
//  3. edge decoration: weight = D[i,j], af = AF[i,j] if provided.
//  4. dedup: each unordered pair inserted at most once (guaranteed here
//     by only ever considering i < j).
func Build(dprime, d distmatrix.Matrix, ids []string, opts Options) (*graph.Graph, error) {
	n := dprime.N()
	if n == 0 || rowsExceedN(dprime, n) {
		return nil, fmt.Errorf("Build: %w", ErrInvalidMatrix)
	}
	if opts.K <= 0 || opts.K >= n {
		return nil, fmt.Errorf("Build: k=%d, n=%d: %w", opts.K, n, ErrInvalidK)
	}

	sym, err := distmatrix.MakeSymmetric(dprime)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	dSym, err := distmatrix.MakeSymmetric(d)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	var afSym distmatrix.Matrix
	if opts.AF != nil {
		afSym, err = distmatrix.MakeSymmetric(opts.AF)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	neighbors := make([][]int, n)
	computeRow := func(i int) {
		type cand struct {
			j int
			v float64
		}
		cands := make([]cand, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cands = append(cands, cand{j, sym[i][j]})
		}
		sort.SliceStable(cands, func(a, b int) bool {
			if cands[a].v != cands[b].v {
				return cands[a].v < cands[b].v
			}
			return cands[a].j < cands[b].j
		})
		k := opts.K
		if k > len(cands) {
			k = len(cands)
		}
		row := make([]int, k)
		for idx := 0; idx < k; idx++ {
			row[idx] = cands[idx].j
		}
		neighbors[i] = row
	}

	if opts.Workers > 1 {
		err := workerpool.Run(opts.Workers, n, func(i int) error {
			computeRow(i)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	} else {
		for i := 0; i < n; i++ {
			computeRow(i)
		}
	}

	isNeighbor := make([]map[int]struct{}, n)
	for i, row := range neighbors {
		isNeighbor[i] = make(map[int]struct{}, len(row))
		for _, j := range row {
			isNeighbor[i][j] = struct{}{}
		}
	}

	g := graph.New(n, ids)

	for i := 0; i < n; i++ {
		for _, j := range neighbors[i] {
			if j <= i {
				continue // consider each unordered pair once, from the lower index
			}
			if _, ok := isNeighbor[j][i]; !ok {
				continue // not mutual
			}
			weight := dSym.At(i, j)
			if opts.HasThreshold && weight >= opts.Threshold {
				continue
			}
			idx, err := g.AddEdge(i, j, weight)
			if err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
			if afSym != nil {
				if err := g.SetEdgeAF(idx, afSym.At(i, j)); err != nil {
					return nil, fmt.Errorf("Build: %w", err)
				}
			}
		}
	}

	return g, nil
}

func rowsExceedN(m distmatrix.Matrix, n int) bool {
	for _, row := range m {
		if len(row) > n {
			return true
		}
	}
	return false
}
