package grid

import "errors"

var (
	// ErrInvalidSize is returned when a board's height or width is not positive.
	ErrInvalidSize = errors.New("grid: size must have positive height and width")
	// ErrInvalidActiveMask is returned when the active mask does not match the board size.
	ErrInvalidActiveMask = errors.New("grid: active mask length must equal height*width")
	// ErrClueOnVoid is returned when a clue is placed on a cell that is not active.
	ErrClueOnVoid = errors.New("grid: clue placed on void cell")
	// ErrInvalidClueValue is returned when a clue's value is not a positive integer.
	ErrInvalidClueValue = errors.New("grid: clue value must be >= 1")
	// ErrCoordOutOfBounds is returned when a coordinate falls outside the board.
	ErrCoordOutOfBounds = errors.New("grid: coordinate out of bounds")
)
