package mm2m

import "errors"

// Sentinel errors for package mm2m.
var (
	// ErrInvalidTypeCount indicates New was called with numberOfTypes < 1.
	ErrInvalidTypeCount = errors.New("mm2m: numberOfTypes must be >= 1")

	// ErrTypeOutOfRange indicates a type index outside [0, T).
	ErrTypeOutOfRange = errors.New("mm2m: type index out of range")
)
