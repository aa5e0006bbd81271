package grid

import (
	"fmt"
	"strings"
)

// deltas is indexed by Direction.
var deltas = [compassSize]Point{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

var names = [compassSize]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Cardinals returns N, E, S, W in clockwise order.
func Cardinals() []Direction {
	return []Direction{N, E, S, W}
}

// Compass returns all eight directions in clockwise order starting at N.
func Compass() []Direction {
	return []Direction{N, NE, E, SE, S, SW, W, NW}
}

// Delta returns the unit vector of d.
func (d Direction) Delta() Point {
	return deltas[d.normalize()]
}

// Right returns d rotated 90° clockwise.
func (d Direction) Right() Direction {
	return d.Turn(1)
}

// Left returns d rotated 90° counter-clockwise.
func (d Direction) Left() Direction {
	return d.Turn(-1)
}

// Turn rotates d by n quarter turns: positive n turns right, negative turns left.
func (d Direction) Turn(n int) Direction {
	return Direction(int(d) + 2*n).normalize()
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d.Turn(2)
}

// Diagonal reports whether d is one of NE, SE, SW, NW.
func (d Direction) Diagonal() bool {
	return d.normalize()%2 == 1
}

// String returns the compass abbreviation of d.
func (d Direction) String() string {
	return names[d.normalize()]
}

func (d Direction) normalize() Direction {
	return ((d % compassSize) + compassSize) % compassSize
}

// ParseDirection accepts compass letters (N, E, S, W), relative letters
// (U, R, D, L) and arrows (^, >, v, <), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "U", "^":
		return N, nil
	case "E", "R", ">":
		return E, nil
	case "S", "D", "V":
		return S, nil
	case "W", "L", "<":
		return W, nil
	case "NE":
		return NE, nil
	case "SE":
		return SE, nil
	case "SW":
		return SW, nil
	case "NW":
		return NW, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}
