// Package distmatrix parses N×N similarity/alignment-fraction matrices
// and computes the distance-of-distances abstraction (spec.md §4.1) that
// feeds mknn.Build.
package distmatrix

import "errors"

// Sentinel errors. Algorithms wrap these with fmt.Errorf("%w", ...) to
// add context; callers MUST use errors.Is.
var (
	// ErrInvalidMatrix signals an empty matrix, or a row longer than N.
	ErrInvalidMatrix = errors.New("distmatrix: invalid matrix")

	// ErrInvalidDimensions signals a non-square matrix where square is
	// required, or a dimension mismatch between D and AF/identifiers.
	ErrInvalidDimensions = errors.New("distmatrix: invalid dimensions")

	// ErrMatrixFormat signals malformed textual input (mixed delimiters,
	// ragged non-triangular rows). A field that is not a number for any
	// other reason is reported as ErrParse.
	ErrMatrixFormat = errors.New("distmatrix: matrix format error")

	// ErrParse wraps a lower-level parse failure with row/column detail.
	ErrParse = errors.New("distmatrix: parse error")
)
