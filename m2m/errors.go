package m2m

import "errors"

// Sentinel errors for package m2m. Precondition violations are
// surfaced immediately; out-of-range query inputs are tolerated
// silently and return empty results instead, per method doc comments.
var (
	// ErrElementOutOfRange indicates an element id outside [0, Count).
	ErrElementOutOfRange = errors.New("m2m: element id out of range")

	// ErrNodeOutOfRange indicates a node id outside the synchronized
	// inverse's current range.
	ErrNodeOutOfRange = errors.New("m2m: node id out of range")
)
