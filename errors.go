package binpack3d

import "errors"

// Sentinel errors returned by Solve, one per unrecoverable input
// violation; since this is a reusable library rather than the original's
// standalone batch program, they are returned to the caller instead of
// terminating the process.
// Budget exhaustion is never an error: Result.Proven is false instead, and
// an incumbent (seeded by the heuristics) is always present once n >= 1.
var (
	// ErrNoBoxes is returned when n == 0.
	ErrNoBoxes = errors.New("binpack3d: no boxes given")

	// ErrTooManyBoxes is returned when n exceeds the module's cap.
	ErrTooManyBoxes = errors.New("binpack3d: too many boxes")

	// ErrBadBinDims is returned when the bin's width, height or depth is
	// not a positive integer.
	ErrBadBinDims = errors.New("binpack3d: bin dimensions must be positive")

	// ErrBadBoxDims is returned when a box dimension is not in
	// [1, corresponding bin dimension].
	ErrBadBoxDims = errors.New("binpack3d: box dimension out of range")
)
