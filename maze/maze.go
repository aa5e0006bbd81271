// Package maze solves text mazes on top of the search engine: fewest steps
// from S to E, the tiles on every shortest route, the move/turn scoring
// maze with its best seats, and flood-fill timing from a source cell.
//
// Walls are '#'. Every other rune is open floor, including the markers
// 'S' (start), 'E' (end) and 'O' (oxygen source).
package maze

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/search"
)

// Map markers.
const (
	Wall   = '#'
	Start  = 'S'
	End    = 'E'
	Source = 'O'
)

// Sentinel errors for maze inputs and queries.
var (
	// ErrNoStart indicates the map has no 'S' marker.
	ErrNoStart = errors.New("maze: no start marker")
	// ErrNoEnd indicates the map has no 'E' marker.
	ErrNoEnd = errors.New("maze: no end marker")
	// ErrNoPath indicates the end is unreachable from the start.
	ErrNoPath = errors.New("maze: end is unreachable")
	// ErrWall indicates a query point lies on a wall or off the map.
	ErrWall = errors.New("maze: point is not open floor")
)

// Maze is a parsed map with its marker positions.
type Maze struct {
	Grid  *grid.Grid
	Start grid.Point
	End   grid.Point

	hasStart, hasEnd bool
}

// Parse reads a maze from text. Missing markers are not an error here;
// queries that need them report ErrNoStart or ErrNoEnd.
func Parse(text string) (*Maze, error) {
	g, err := grid.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	m := &Maze{Grid: g}
	m.Start, m.hasStart = g.Find(Start)
	m.End, m.hasEnd = g.Find(End)
	return m, nil
}

// Open reports whether p is on the map and not a wall.
func (m *Maze) Open(p grid.Point) bool {
	return m.Grid.InBounds(p) && m.Grid.At(p) != Wall
}

func (m *Maze) endpoints() error {
	if !m.hasStart {
		return ErrNoStart
	}
	if !m.hasEnd {
		return ErrNoEnd
	}
	return nil
}

// moves lists open orthogonal neighbors of p in N, E, S, W order.
func (m *Maze) moves(p grid.Point) []grid.Point {
	out := make([]grid.Point, 0, 4)
	for _, d := range grid.Cardinals() {
		if q := p.Move(d); m.Open(q) {
			out = append(out, q)
		}
	}
	return out
}

func (m *Maze) walk() search.Problem[grid.Point] {
	return search.Problem[grid.Point]{
		Start: m.Start,
		Next:  search.Unweighted(m.moves),
		End:   search.EndState(m.End),
	}
}

// ShortestPath returns the fewest orthogonal moves from S to E.
func ShortestPath(m *Maze, opts ...search.Option) (int, error) {
	if err := m.endpoints(); err != nil {
		return 0, err
	}
	res, err := search.Find(m.walk(), named("maze", opts)...)
	if err != nil {
		return 0, err
	}
	if !res.Found() {
		return 0, ErrNoPath
	}
	return res.Cost, nil
}

// Tiles returns the number of distinct tiles, S and E included, lying on
// at least one shortest route from S to E.
func Tiles(m *Maze, opts ...search.Option) (int, error) {
	if err := m.endpoints(); err != nil {
		return 0, err
	}
	// only the state union is needed; one materialised path is enough
	res, err := search.Find(m.walk(), named("maze-tiles", opts,
		search.WithAllPaths(), search.WithMaxPaths(1))...)
	if err != nil {
		return 0, err
	}
	if !res.Found() {
		return 0, ErrNoPath
	}
	tiles := res.States()
	tiles.Put(m.Start)
	return tiles.Size(), nil
}

// Fill returns the number of steps needed to reach every open cell
// connected to from, i.e. the largest BFS distance. Cells are expanded
// through Grid.Neighbors, so the answer does not depend on move order.
func Fill(m *Maze, from grid.Point, opts ...search.Option) (int, error) {
	if !m.Open(from) {
		return 0, fmt.Errorf("%w: %v", ErrWall, from)
	}
	next := func(p grid.Point) []grid.Point {
		var out []grid.Point
		m.Grid.Neighbors(p, grid.Conn4).Each(func(q grid.Point) {
			if m.Grid.At(q) != Wall {
				out = append(out, q)
			}
		})
		return out
	}
	dist, err := search.Distances(from, search.Unweighted(next), named("maze-fill", opts)...)
	if err != nil {
		return 0, err
	}
	longest := 0
	for _, d := range dist {
		longest = max(longest, d)
	}
	return longest, nil
}

// Origin returns the oxygen source, falling back to the start marker.
func (m *Maze) Origin() (grid.Point, error) {
	if p, ok := m.Grid.Find(Source); ok {
		return p, nil
	}
	if m.hasStart {
		return m.Start, nil
	}
	return grid.Point{}, ErrNoStart
}

// named labels a search with name, then applies the caller's opts, then
// the options the query cannot work without. A caller's WithName wins over
// name; forced always wins. The caller's array is left untouched.
func named(name string, opts []search.Option, forced ...search.Option) []search.Option {
	return slices.Concat([]search.Option{search.WithName(name)}, opts, forced)
}
