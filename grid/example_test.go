package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/grid"
)

// ExampleDirection_Turn walks a reindeer around a square: each side is three
// steps long and every corner is a right turn.
func ExampleDirection_Turn() {
	pos, dir := grid.Point{}, grid.E
	for side := 0; side < 4; side++ {
		pos = pos.Add(dir.Delta().Scale(3))
		fmt.Println(dir, pos)
		dir = dir.Right()
	}
	// Output:
	// E 3,0
	// S 3,3
	// W 0,3
	// N 0,0
}

// ExampleGrid_Regions counts islands of '#' on a small map.
func ExampleGrid_Regions() {
	g, err := grid.Parse("#..#\n#..#\n..##\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	islands := g.Regions(grid.Conn4, func(r rune) bool { return r == '#' })
	for _, island := range islands {
		fmt.Println(len(island), "cells starting at", island[0])
	}
	// Output:
	// 2 cells starting at 0,0
	// 4 cells starting at 3,0
}
