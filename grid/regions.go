package grid

// Regions finds all contiguous regions of cells whose rune satisfies keep,
// according to conn connectivity. Each region lists its points in BFS
// order from its first cell in row-major order; regions themselves are
// ordered by that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(conn Connectivity, keep func(rune) bool) [][]Point {
	seen := make([]bool, g.Width*g.Height)
	dirs := Cardinals()
	if conn == Conn8 {
		dirs = Compass()
	}

	var regions [][]Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p0 := Point{x, y}
			if !keep(g.Cells[y][x]) || seen[g.Index(p0)] {
				continue
			}
			queue := []Point{p0}
			seen[g.Index(p0)] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range dirs {
					v := u.Move(d)
					if !g.InBounds(v) || !keep(g.At(v)) || seen[g.Index(v)] {
						continue
					}
					seen[g.Index(v)] = true
					queue = append(queue, v)
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}
