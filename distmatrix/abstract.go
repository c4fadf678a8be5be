package distmatrix

import (
	"fmt"
	"math"

	"github.com/esteinig/netviewr/internal/workerpool"
)

// AbstractOptions configures Abstract's concurrency mode.
//
//   - Workers <= 1 runs sequentially (no pool constructed).
//   - Workers > 1 with ChunkSize == 0 runs one task per (i,j) pair via
//     workerpool.Run — spec.md §4.1 mode (a).
//   - Workers > 1 with ChunkSize > 0 runs chunked tasks via
//     workerpool.RunChunked — spec.md §4.1 mode (b), to tune scheduling
//     overhead on large N.
type AbstractOptions struct {
	IsLowerTriangular bool
	Workers           int
	ChunkSize         int
}

// lowerTriangularAt returns a(x,k) per spec.md §4.1's definition:
// D[x,k] if D is already full, else the symmetric lookup that treats D
// as lower-triangular (D[max(x,k), min(x,k)]).
func lowerTriangularAt(d Matrix, lower bool, x, k int) float64 {
	if !lower {
		return d[x][k]
	}
	if x < k {
		x, k = k, x
	}
	return d[x][k]
}

// Abstract computes the distance-of-distances matrix D' (spec.md §4.1):
//
//	D'[i,j] = sqrt( Σ_k ( a(i,k) − a(j,k) )² )
//
// over the strict upper triangle, mirrored into the lower triangle. An
// empty D returns an empty D' (not an error). A non-square D with
// IsLowerTriangular=false fails with ErrInvalidDimensions.
func Abstract(d Matrix, opts AbstractOptions) (Matrix, error) {
	n := d.N()
	if n == 0 {
		return Matrix{}, nil
	}
	if !opts.IsLowerTriangular && !d.IsSquare() {
		return nil, fmt.Errorf("Abstract: %w", ErrInvalidDimensions)
	}

	compute := func(i, j int) float64 {
		var sum float64
		for k := 0; k < n; k++ {
			vi := lowerTriangularAt(d, opts.IsLowerTriangular, i, k)
			vj := lowerTriangularAt(d, opts.IsLowerTriangular, j, k)
			delta := vi - vj
			sum += delta * delta
		}
		return math.Sqrt(sum)
	}

	result := make(Matrix, n)
	for i := range result {
		result[i] = make([]float64, n)
	}

	type pair struct{ i, j int }
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	write := func(i, j int, v float64) {
		result[i][j] = v
		result[j][i] = v
	}

	switch {
	case opts.Workers <= 1:
		for _, p := range pairs {
			write(p.i, p.j, compute(p.i, p.j))
		}
	case opts.ChunkSize <= 0:
		values := make([]float64, len(pairs))
		err := workerpool.Run(opts.Workers, len(pairs), func(idx int) error {
			values[idx] = compute(pairs[idx].i, pairs[idx].j)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("Abstract: %w", err)
		}
		for idx, p := range pairs {
			write(p.i, p.j, values[idx])
		}
	default:
		values := make([]float64, len(pairs))
		err := workerpool.RunChunked(opts.Workers, len(pairs), opts.ChunkSize, func(start, end int) error {
			for idx := start; idx < end; idx++ {
				values[idx] = compute(pairs[idx].i, pairs[idx].j)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("Abstract: %w", err)
		}
		for idx, p := range pairs {
			write(p.i, p.j, values[idx])
		}
	}

	return result, nil
}
