// Package pathfinder is a generic shortest-path toolkit for puzzle-shaped
// state spaces: grids, mazes with facings, bitmask machines and anything
// else whose states are comparable values.
//
// 🚀 What is pathfinder?
//
//	A small library plus CLI that brings together:
//		• Grid primitives: points, compass directions, rune grids, regions
//		• A search engine: BFS for unit steps, uniform-cost for weighted steps
//		• Termination by exact target or predicate
//		• Collapse strategies: on state, none, or by derived key
//		• Single shortest path or every co-optimal path
//		• Progress reporting, slog logging, OpenTelemetry spans, Prometheus metrics
//
// ✨ Why pathfinder?
//
//   - Callers write only the domain parts: start, successors, goal
//   - Ties are first class: AllPaths mode keeps a predecessor graph
//   - "No path" is a value, not an error
//
// Packages:
//
//	grid/            - Point, Point3, Direction, Grid, Regions
//	search/          - Problem, Find, Distances, Result, options
//	maze/            - text mazes: shortest path, tiles, move/turn scoring, fill
//	lights/          - light machines: fewest button presses over bitmask states
//	internal/config/ - YAML configuration with validation
//	cmd/pathfinder/  - cobra CLI over maze and lights
//
// Quick example:
//
//	res, _ := search.Find(search.Problem[grid.Point]{
//		Start: grid.Point{},
//		Next:  search.Unweighted(moves),
//		End:   search.EndState(grid.Point{X: 4, Y: 4}),
//	}, search.WithAllPaths())
//	fmt.Println(res.Cost, len(res.Paths)) // 8 70 on an open 5×5 grid
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
