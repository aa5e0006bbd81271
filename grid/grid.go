package grid

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a rectangular block of runes, typically a puzzle map.
// Cells[y][x] holds the rune at Point{x, y}.
type Grid struct {
	Width, Height int
	Cells         [][]rune
}

// Parse builds a Grid from text, one row per line. Trailing blank lines
// and '\r' line endings are ignored.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	return FromLines(strings.Split(text, "\n"))
}

// FromLines builds a Grid from pre-split rows. The input is copied.
func FromLines(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(lines[0]))
	cells := make([][]rune, len(lines))
	for y, line := range lines {
		row := []rune(line)
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = row
	}

	return &Grid{Width: w, Height: len(lines), Cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the rune at p, or 0 if p is out of bounds.
func (g *Grid) At(p Point) rune {
	if !g.InBounds(p) {
		return 0
	}
	return g.Cells[p.Y][p.X]
}

// Set overwrites the rune at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p Point, r rune) {
	if g.InBounds(p) {
		g.Cells[p.Y][p.X] = r
	}
}

// Find returns the first point holding r in row-major order.
func (g *Grid) Find(r rune) (Point, bool) {
	for y, row := range g.Cells {
		for x, c := range row {
			if c == r {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// FindAll returns every point holding r in row-major order.
func (g *Grid) FindAll(r rune) []Point {
	var out []Point
	for y, row := range g.Cells {
		for x, c := range row {
			if c == r {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Neighbors returns the in-bounds neighbors of p under conn.
func (g *Grid) Neighbors(p Point, conn Connectivity) mapset.Set[Point] {
	set := p.Neighbors(conn)
	set.Each(func(q Point) {
		if !g.InBounds(q) {
			set.Remove(q)
		}
	})
	return set
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx % g.Width, idx / g.Width}
}

// String renders the grid back to text, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
