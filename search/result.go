package search

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Path is one route from the start state to a goal. Steps lists the states
// visited after the start, ending with the goal; it is empty when the start
// itself is a goal. TotalCost is the sum of step costs.
type Path[S comparable] struct {
	Steps     []S
	TotalCost int
}

// Len returns the number of steps taken.
func (p Path[S]) Len() int { return len(p.Steps) }

// Last returns the goal state of p, or start if p has no steps.
func (p Path[S]) Last(start S) S {
	if len(p.Steps) == 0 {
		return start
	}
	return p.Steps[len(p.Steps)-1]
}

// Result holds every path found at the minimal goal cost.
type Result[S comparable] struct {
	// Start is the state the search began from.
	Start S

	// Paths lists co-optimal paths: one per goal state in FirstPath mode,
	// every route to every goal in AllPaths mode (subject to MaxPaths).
	// Goals appear in the order they were reached.
	Paths []Path[S]

	// Cost is the minimal goal cost, or -1 when no goal was reached.
	Cost int

	// Goals lists the distinct goal states reached at Cost.
	Goals []S

	// Truncated is set when MaxPaths left at least one path unbuilt.
	Truncated bool

	Stats Stats

	// The predecessor graph outlives Find so States can walk it on demand.
	// It is owned by this Result alone; frontier and visited index are
	// dropped when Find returns.
	nodes []node[S]
	goals []int32
}

// Found reports whether at least one goal was reached.
func (r *Result[S]) Found() bool {
	return len(r.Paths) > 0
}

// First returns the first path. It panics when the result is empty, so
// callers that cannot assume reachability must check Found first.
func (r *Result[S]) First() Path[S] {
	return r.Paths[0]
}

// States returns the union of the states on every co-optimal path, the
// start excluded. It walks the predecessor graph directly, so it stays
// cheap when the number of paths is exponential and ignores MaxPaths.
// In FirstPath mode it covers only the representative paths.
func (r *Result[S]) States() mapset.Set[S] {
	set := mapset.New[S]()
	seen := make([]bool, len(r.nodes))
	stack := slices.Clone(r.goals)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		if n != 0 {
			set.Put(r.nodes[n].state)
		}
		stack = append(stack, r.nodes[n].parents...)
	}
	return set
}

// result materialises paths from the arena once the loop has stopped.
func (f *finder[S]) result() *Result[S] {
	res := &Result[S]{
		Start: f.problem.Start,
		Cost:  f.best,
		Stats: f.stats,
		nodes: f.nodes,
		goals: f.goals,
	}
	if len(f.goals) == 0 {
		return res
	}

	if f.opts.Mode == FirstPath {
		for _, g := range f.goals {
			res.Goals = append(res.Goals, f.nodes[g].state)
			res.Paths = append(res.Paths, f.single(g))
		}
		return res
	}

	w := walker[S]{
		nodes:  f.nodes,
		limit:  f.opts.MaxPaths,
		onPath: make([]bool, len(f.nodes)),
	}
	for _, g := range f.goals {
		res.Goals = append(res.Goals, f.nodes[g].state)
		w.walk(g, nil)
	}
	res.Paths = w.paths
	res.Truncated = w.truncated
	return res
}

// single follows first parents back to the start.
func (f *finder[S]) single(g int32) Path[S] {
	var steps []S
	for n := g; n != 0; n = f.nodes[n].parents[0] {
		steps = append(steps, f.nodes[n].state)
	}
	slices.Reverse(steps)
	return Path[S]{Steps: steps, TotalCost: f.nodes[g].cost}
}

// walker enumerates every start-to-goal route in the predecessor graph.
// onPath guards against cycles formed by zero-cost steps.
type walker[S comparable] struct {
	nodes     []node[S]
	limit     int
	onPath    []bool
	paths     []Path[S]
	truncated bool
	cost      int
}

func (w *walker[S]) full() bool {
	return w.limit > 0 && len(w.paths) >= w.limit
}

// walk extends suffix (goal-first) backwards from node n. Once the limit
// is hit, the walk continues only until it meets a path it would have to
// skip; dead ends through zero-cost cycles do not count as truncation.
func (w *walker[S]) walk(n int32, suffix []S) {
	if w.truncated {
		return
	}
	if len(suffix) == 0 {
		w.cost = w.nodes[n].cost
	}
	if n == 0 {
		if w.full() {
			w.truncated = true
			return
		}
		steps := slices.Clone(suffix)
		slices.Reverse(steps)
		w.paths = append(w.paths, Path[S]{Steps: steps, TotalCost: w.cost})
		return
	}
	if w.onPath[n] {
		return
	}
	w.onPath[n] = true
	suffix = append(suffix, w.nodes[n].state)
	for _, p := range w.nodes[n].parents {
		w.walk(p, suffix)
	}
	w.onPath[n] = false
}
