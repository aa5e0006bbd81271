package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/maze"
)

func TestLowestScore(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"small", small, 7036},
		{"large", large, 11048},
		{"straight", "#####\n#S.E#\n#####", 2},
		{"one turn", "#####\n###E#\n###.#\n#S..#\n#####", 1004},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := maze.LowestScore(parse(t, tc.text), maze.DefaultCosts())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLowestScore_CustomCosts(t *testing.T) {
	m := parse(t, "#####\n###E#\n###.#\n#S..#\n#####")
	got, err := maze.LowestScore(m, maze.Costs{Move: 2, Turn: 5})
	require.NoError(t, err)
	assert.Equal(t, 4*2+5, got)

	_, err = maze.LowestScore(m, maze.Costs{Move: -1, Turn: 5})
	assert.Error(t, err)
}

func TestBestSeats(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		score int
		seats int
	}{
		{"small", small, 7036, 45},
		{"large", large, 11048, 64},
		{"straight", "#####\n#S.E#\n#####", 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, seats, err := maze.BestSeats(parse(t, tc.text), maze.DefaultCosts())
			require.NoError(t, err)
			assert.Equal(t, tc.score, score)
			assert.Equal(t, tc.seats, seats)
		})
	}
}

func TestBestSeats_Errors(t *testing.T) {
	_, _, err := maze.BestSeats(parse(t, "#S#E#"), maze.DefaultCosts())
	assert.ErrorIs(t, err, maze.ErrNoPath)
	_, _, err = maze.BestSeats(parse(t, "S.."), maze.DefaultCosts())
	assert.ErrorIs(t, err, maze.ErrNoEnd)
}
