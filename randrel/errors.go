package randrel

import "errors"

// ErrTooFewElements indicates elementCount < 1.
var ErrTooFewElements = errors.New("randrel: elementCount must be >= 1")

// ErrNegativeNodeCount indicates nodeCount < 0.
var ErrNegativeNodeCount = errors.New("randrel: nodeCount must be >= 0")

// ErrInvalidDensity indicates density is outside the closed interval
// [0,1].
var ErrInvalidDensity = errors.New("randrel: density must be in [0,1]")
