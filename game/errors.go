package game

import "errors"

var (
	// ErrInvalidSquare is returned for square indices outside 0-63.
	ErrInvalidSquare = errors.New("game: square out of range")
	// ErrIllegalMove is returned when no legal move joins the two squares.
	ErrIllegalMove = errors.New("game: illegal move")
	// ErrInvalidPromotion is returned for a promotion piece other than
	// queen, rook, bishop or knight.
	ErrInvalidPromotion = errors.New("game: invalid promotion piece")
)
