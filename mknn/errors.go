// Package mknn builds the mutual k-nearest-neighbor graph (spec.md
// §4.2) from a distance-of-distances matrix, decorating edges with the
// original distance and optional alignment fraction.
package mknn

import "errors"

var (
	// ErrInvalidK signals k <= 0 or k >= N.
	ErrInvalidK = errors.New("mknn: invalid k")

	// ErrInvalidMatrix signals an empty D' or a row longer than N.
	ErrInvalidMatrix = errors.New("mknn: invalid matrix")
)
