package o2m

import "errors"

// Sentinel errors for package o2m. All algorithms return these (optionally
// wrapped with fmt.Errorf and %w) rather than panicking on user-triggered
// conditions; callers should match with errors.Is.
var (
	// ErrNilArgument indicates a required slice/map argument was nil.
	ErrNilArgument = errors.New("o2m: nil argument")

	// ErrElementOutOfRange indicates an element id outside [0, Count).
	ErrElementOutOfRange = errors.New("o2m: element id out of range")

	// ErrNodeNegative indicates a node id was negative.
	ErrNodeNegative = errors.New("o2m: node id is negative")

	// ErrDimensionMismatch indicates two operands of an algebraic or
	// interop operation have incompatible shapes.
	ErrDimensionMismatch = errors.New("o2m: dimension mismatch")
)
