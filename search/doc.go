// Package search provides a generic shortest-path engine over implicit state
// graphs, returning the lowest-cost path or every co-optimal path from a start
// state to any state satisfying a termination condition.
//
// What
//
//   - The graph is never materialised: callers describe it with a Problem:
//   - Start: the initial state (any comparable type)
//   - Next:  a successor function built by Unweighted, Weighted or Fallible
//   - End:   a termination condition built by EndState or EndCondition
//   - Collapse: the visited-tracking strategy (CollapseOnState, NoCollapse, CollapseBy)
//   - Find returns a Result holding every path at the minimal goal cost.
//   - Distances returns the minimal cost to every reachable state (flood fill).
//   - Supports two reconstruction modes:
//   - FirstPath: one representative path per distinct goal state
//   - AllPaths:  every co-optimal path, plus the union of their states
//   - Optional progress reporting every N dequeues via WithReportEvery and
//     WithOnProgress; each report is also logged through log/slog.
//
// Why
//
//   - Grid mazes, puzzle state spaces and move/turn problems share one loop:
//     pop the cheapest entry, skip revisits, test the goal, push successors.
//   - Keeping the loop in one place lets callers write only the domain parts.
//
// Frontier
//
//	Unweighted successors use a FIFO queue: BFS layers are processed in
//	order, so the first goal layer is the minimal cost. Weighted and Fallible
//	successors use a min-heap ordered by accumulated cost and then insertion
//	sequence, so equal-cost entries expand in a reproducible order.
//
// Termination
//
//	The search stops when the frontier is empty or when the next entry costs
//	more than the first goal found. Every entry at exactly the goal cost is
//	still processed, so ties and distinct goals at the same cost are kept.
//
// Co-optimal paths
//
//	In AllPaths mode, an arrival at an already expanded key with the same
//	cost adds a predecessor link instead of being dropped. Result.Paths
//	enumerates the resulting predecessor DAG; Result.States returns the
//	union of the states on those paths without enumerating them.
//
// Complexity (V = expanded keys, E = generated steps)
//
//   - Unweighted: O(V + E) time
//   - Weighted:   O((V + E) log E) time
//   - Memory:     O(V + E) for the arena and the frontier
//   - AllPaths enumeration is output-sensitive and may be exponential; use
//     WithMaxPaths to cap it.
//
// Usage
//
//	res, err := search.Find(search.Problem[grid.Point]{
//		Start: start,
//		Next:  search.Unweighted(open),
//		End:   search.EndState(goal),
//	}, search.WithReportEvery(10000))
//	if err != nil {
//		// ErrNilSuccessors, ErrNilTermination, ErrOptionViolation,
//		// ErrStepFailed or the context error
//	}
//	if res.Found() {
//		fmt.Println(res.Cost, len(res.First().Steps))
//	}
//
// Errors
//
//   - ErrNilSuccessors   if Problem.Next is the zero value.
//   - ErrNilTermination  if Problem.End is the zero value.
//   - ErrOptionViolation for negative ReportEvery, MaxCost or MaxPaths, or an unknown Mode.
//   - ErrStepFailed      wrapping the first error of a Fallible successor.
//
// An unreachable goal is not an error: Find returns an empty Result.
package search
