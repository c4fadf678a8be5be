package distmatrix

import "fmt"

// Matrix is a dense N×N (or lower-triangular, row i has i+1 entries)
// real matrix, in row-major Vec-of-Vec form — the same shape the
// original implementation passed around as Vec<Vec<f64>>. It is kept as
// a plain slice-of-slices rather than a flat-buffer ADT because every
// consumer (parsing, symmetrization, abstraction, mkNN) indexes it
// row-by-row and never needs linear algebra beyond Euclidean distance.
type Matrix [][]float64

// N returns the row count.
func (m Matrix) N() int { return len(m) }

// IsSquare reports whether every row has exactly N entries.
func (m Matrix) IsSquare() bool {
	n := len(m)
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}
	return true
}

// IsLowerTriangular reports whether row i has exactly i+1 entries for
// every i (the accepted lower-triangular encoding of spec.md §3).
func (m Matrix) IsLowerTriangular() bool {
	for i, row := range m {
		if len(row) != i+1 {
			return false
		}
	}
	return true
}

// Validate checks that m is non-empty and either square or lower
// triangular, per spec.md §4.2's "rectangular-row rows longer than N"
// failure mode.
func (m Matrix) Validate() error {
	n := len(m)
	if n == 0 {
		return fmt.Errorf("Validate: %w", ErrInvalidMatrix)
	}
	for i, row := range m {
		if len(row) > n || (len(row) != n && len(row) != i+1) {
			return fmt.Errorf("Validate: row %d has %d entries: %w", i, len(row), ErrInvalidMatrix)
		}
	}
	if !m.IsSquare() && !m.IsLowerTriangular() {
		return fmt.Errorf("Validate: rows mix square and lower-triangular lengths: %w", ErrInvalidMatrix)
	}
	return nil
}

// At returns m[x][k], assuming m is already square. Callers holding a
// possibly-lower-triangular matrix should call MakeSymmetric first, or
// use lowerTriangularAt in abstract.go for the unmaterialized lookup
// the abstraction step uses internally.
// Complexity: O(1).
func (m Matrix) At(x, k int) float64 {
	return m[x][k]
}

// MakeSymmetric returns a full N×N symmetric matrix: m itself if it is
// already square, otherwise the materialized mirror of its
// lower-triangular encoding. Ported from original_source/src/dist.rs's
// make_symmetrical.
func MakeSymmetric(m Matrix) (Matrix, error) {
	n := len(m)
	if n == 0 {
		return nil, fmt.Errorf("MakeSymmetric: %w", ErrInvalidMatrix)
	}
	if m.IsSquare() {
		out := make(Matrix, n)
		for i, row := range m {
			out[i] = append([]float64(nil), row...)
		}
		return out, nil
	}

	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		if len(m[i]) != i+1 {
			return nil, fmt.Errorf("MakeSymmetric: row %d has %d entries, want %d: %w", i, len(m[i]), i+1, ErrInvalidDimensions)
		}
		for j := 0; j <= i; j++ {
			out[i][j] = m[i][j]
			out[j][i] = m[i][j]
		}
	}
	return out, nil
}
