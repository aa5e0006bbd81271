package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadDirection indicates an unrecognised direction token.
	ErrBadDirection = errors.New("grid: unknown direction")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a 2D integer coordinate. Points are compared by value.
type Point struct {
	X, Y int
}

// Point3 is a 3D integer coordinate.
type Point3 struct {
	X, Y, Z int
}

// Direction is one of the eight compass directions, numbered clockwise
// from North so that a quarter turn is a step of two.
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW

	compassSize = 8
)
