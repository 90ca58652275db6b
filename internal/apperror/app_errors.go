package apperror

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid square coordinates")
	ErrSquareOccupied     = errors.New("square is already occupied")
)
