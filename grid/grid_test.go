package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/grid"
)

//----------------------------------------------------------------------------//
// Parse and bounds
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty or ragged inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", grid.ErrEmptyGrid},
		{"NonRectangular", "##\n#\n", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}
	_, err := grid.FromLines([]string{""})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestParse_Basics(t *testing.T) {
	g, err := grid.Parse("#S.\r\n.E#\n\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 'S', g.At(grid.Point{X: 1, Y: 0}))
	assert.Equal(t, rune(0), g.At(grid.Point{X: 3, Y: 0}))

	e, ok := g.Find('E')
	require.True(t, ok)
	assert.Equal(t, grid.Point{X: 1, Y: 1}, e)
	_, ok = g.Find('X')
	assert.False(t, ok)

	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 2, Y: 1}}, g.FindAll('#'))

	g.Set(e, '.')
	g.Set(grid.Point{X: -1, Y: 0}, 'Z')
	assert.Equal(t, "#S.\n..#", g.String())
}

func TestInBoundsAndIndex(t *testing.T) {
	g, err := grid.FromLines([]string{"...", "..."})
	require.NoError(t, err)

	for _, p := range []grid.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
		assert.Equal(t, p, g.Coordinate(g.Index(p)))
	}
	for _, p := range []grid.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

func TestGridNeighbors_FiltersOutOfBounds(t *testing.T) {
	g, err := grid.FromLines([]string{"...", "...", "..."})
	require.NoError(t, err)

	corner := g.Neighbors(grid.Point{X: 0, Y: 0}, grid.Conn4)
	assert.Equal(t, 2, corner.Size())
	assert.True(t, corner.Has(grid.Point{X: 1, Y: 0}))
	assert.True(t, corner.Has(grid.Point{X: 0, Y: 1}))

	assert.Equal(t, 3, g.Neighbors(grid.Point{X: 0, Y: 0}, grid.Conn8).Size())
	assert.Equal(t, 8, g.Neighbors(grid.Point{X: 1, Y: 1}, grid.Conn8).Size())
}

//----------------------------------------------------------------------------//
// Regions
//----------------------------------------------------------------------------//

func TestRegions(t *testing.T) {
	g, err := grid.Parse(
		"##..#\n" +
			"#...#\n" +
			"..#..\n" +
			"....#\n")
	require.NoError(t, err)
	wall := func(r rune) bool { return r == '#' }

	// Conn4: {(0,0),(1,0),(0,1)}, {(4,0),(4,1)}, {(2,2)}, {(4,3)}
	regions := g.Regions(grid.Conn4, wall)
	require.Len(t, regions, 4)
	assert.ElementsMatch(t, []grid.Point{{0, 0}, {1, 0}, {0, 1}}, regions[0])
	assert.ElementsMatch(t, []grid.Point{{4, 0}, {4, 1}}, regions[1])
	assert.Equal(t, []grid.Point{{2, 2}}, regions[2])
	assert.Equal(t, []grid.Point{{4, 3}}, regions[3])

	// no two regions touch diagonally either
	regions8 := g.Regions(grid.Conn8, wall)
	assert.Len(t, regions8, 4)

	open := g.Regions(grid.Conn4, func(r rune) bool { return r == '.' })
	require.Len(t, open, 1)
	assert.Len(t, open[0], 13)
}
