package engine

import "errors"

// Engine failure modes. All are precondition or configuration failures:
// the engine never attempts partial work after detecting one.
var (
	// ErrBadDimensions reports non-positive grid dimensions.
	ErrBadDimensions = errors.New("engine: grid dimensions must be positive")

	// ErrOutOfBounds reports a row/col outside [0,rows) x [0,cols).
	ErrOutOfBounds = errors.New("engine: coordinates out of bounds")

	// ErrTooManyMines reports a mine count exceeding the eligible cell count
	// once the safe zone is excluded.
	ErrTooManyMines = errors.New("engine: mine count exceeds eligible cells")

	// ErrMalformedGrid reports a grid whose cell storage does not match its
	// declared dimensions. Raised before indexing to avoid undefined behavior.
	ErrMalformedGrid = errors.New("engine: malformed grid")
)
