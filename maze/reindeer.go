package maze

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/search"
)

// Costs prices the moves of the scoring maze.
type Costs struct {
	Move int // step forward one tile
	Turn int // rotate 90° in place
}

// DefaultCosts returns one point per step and a thousand per turn.
func DefaultCosts() Costs {
	return Costs{Move: 1, Turn: 1000}
}

// Pose is a position together with a facing.
type Pose struct {
	Pos grid.Point
	Dir grid.Direction
}

func (c Costs) validate() error {
	if c.Move < 0 || c.Turn < 0 {
		return fmt.Errorf("maze: costs must be non-negative (move %d, turn %d)", c.Move, c.Turn)
	}
	return nil
}

// scoring builds the move/turn problem: start on S facing East, finish on
// E facing any way.
func (m *Maze) scoring(c Costs) search.Problem[Pose] {
	next := func(p Pose) []search.Step[Pose] {
		steps := make([]search.Step[Pose], 0, 3)
		if q := p.Pos.Move(p.Dir); m.Open(q) {
			steps = append(steps, search.Step[Pose]{State: Pose{q, p.Dir}, Cost: c.Move})
		}
		steps = append(steps,
			search.Step[Pose]{State: Pose{p.Pos, p.Dir.Left()}, Cost: c.Turn},
			search.Step[Pose]{State: Pose{p.Pos, p.Dir.Right()}, Cost: c.Turn},
		)
		return steps
	}
	return search.Problem[Pose]{
		Start: Pose{m.Start, grid.E},
		Next:  search.Weighted(next),
		End:   search.EndCondition(func(p Pose) bool { return p.Pos == m.End }),
	}
}

// LowestScore returns the cheapest score from S to E under c.
func LowestScore(m *Maze, c Costs, opts ...search.Option) (int, error) {
	if err := m.endpoints(); err != nil {
		return 0, err
	}
	if err := c.validate(); err != nil {
		return 0, err
	}
	res, err := search.Find(m.scoring(c), named("reindeer", opts)...)
	if err != nil {
		return 0, err
	}
	if !res.Found() {
		return 0, ErrNoPath
	}
	return res.Cost, nil
}

// BestSeats returns the lowest score and the number of tiles, start
// included, that lie on at least one route achieving it.
func BestSeats(m *Maze, c Costs, opts ...search.Option) (score, seats int, err error) {
	if err = m.endpoints(); err != nil {
		return 0, 0, err
	}
	if err = c.validate(); err != nil {
		return 0, 0, err
	}
	res, err := search.Find(m.scoring(c), named("reindeer-seats", opts,
		search.WithAllPaths(), search.WithMaxPaths(1))...)
	if err != nil {
		return 0, 0, err
	}
	if !res.Found() {
		return 0, 0, ErrNoPath
	}

	tiles := make(map[grid.Point]struct{})
	tiles[m.Start] = struct{}{}
	res.States().Each(func(p Pose) {
		tiles[p.Pos] = struct{}{}
	})
	return res.Cost, len(tiles), nil
}
