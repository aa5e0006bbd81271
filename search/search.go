package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Problem describes one search: where to start, how to move, when to stop,
// and which entries count as revisits.
type Problem[S comparable] struct {
	Start S
	Next  Successors[S]
	End   Termination[S]

	// Collapse defaults to CollapseOnState when left as the zero value.
	Collapse Collapse[S]
}

// node is an expanded collapse key in the arena. parents holds arena
// indices of predecessors; the start node has none. In FirstPath mode
// every other node has exactly one parent.
type node[S comparable] struct {
	state   S
	cost    int
	parents []int32
}

// finder encapsulates mutable state for a single search.
type finder[S comparable] struct {
	problem  Problem[S]
	opts     Options
	ctx      context.Context
	frontier frontier[S]
	seen     *index[S]
	nodes    []node[S]
	goals    []int32
	best     int // cost of recorded goals, -1 until the first goal
	stats    Stats
	began    time.Time
	buf      []Step[S]
}

// Find runs the search described by p, applying any number of functional Options.
//
// It returns every path that reaches a goal at the minimal cost. An empty
// Result (Found() == false) means no goal is reachable; that is not an error.
// Errors are ErrNilSuccessors, ErrNilTermination, ErrOptionViolation,
// ErrStepFailed wrapping a Fallible step error, or the context error after
// cancellation.
//
// Complexity (V = expanded keys, E = generated steps):
//   - Unweighted: O(V + E) time
//   - Weighted:   O((V + E) log E) time
//   - Memory:     O(V + E)
//
// In AllPaths mode the path list may grow exponentially with the number
// of ties; use WithMaxPaths or Result.States for large inputs.
func Find[S comparable](p Problem[S], opts ...Option) (*Result[S], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !p.Next.valid() {
		return nil, ErrNilSuccessors
	}
	if !p.End.valid() {
		return nil, ErrNilTermination
	}

	ctx, span := startSpan(o, "search.Find", p.Collapse.String())
	f := newFinder(ctx, p, o)
	err = f.loop()
	f.stats.Elapsed = time.Since(f.began)
	if err != nil {
		finish(span, o, f.stats, 0, -1, err)
		return nil, err
	}

	res := f.result()
	finish(span, o, f.stats, len(res.Paths), res.Cost, nil)
	o.Logger.Debug("search finished",
		slog.String("search", o.Name),
		slog.String("mode", o.Mode.String()),
		slog.Int("cost", res.Cost),
		slog.Int("paths", len(res.Paths)),
		slog.Int("expanded", f.stats.Expanded),
		slog.Duration("elapsed", f.stats.Elapsed),
	)
	return res, nil
}

func newFinder[S comparable](ctx context.Context, p Problem[S], o Options) *finder[S] {
	return &finder[S]{
		problem:  p,
		opts:     o,
		ctx:      ctx,
		frontier: newFrontier[S](p.Next.uniform()),
		seen:     newIndex(p.Collapse),
		best:     -1,
		began:    time.Now(),
	}
}

// loop dequeues until the frontier is exhausted, every entry at the goal
// cost has been processed, or an error occurs.
func (f *finder[S]) loop() error {
	f.frontier.push(entry[S]{state: f.problem.Start, cost: 0, parent: -1})
	for {
		// cancellation check (once per dequeue)
		select {
		case <-f.ctx.Done():
			return f.ctx.Err()
		default:
		}

		e, ok := f.frontier.pop()
		if !ok {
			return nil
		}
		// entries come out in cost order: nothing cheaper can follow
		if f.best >= 0 && e.cost > f.best {
			return nil
		}
		if f.opts.MaxCost > 0 && e.cost > f.opts.MaxCost {
			return nil
		}

		f.stats.Dequeued++
		f.report(e.cost)
		if err := f.visit(e); err != nil {
			return err
		}
	}
}

// visit expands e unless its collapse key was already expanded, in which
// case an equal-cost arrival may be merged as an extra predecessor.
func (f *finder[S]) visit(e entry[S]) error {
	if n, ok := f.seen.lookup(e.state); ok {
		f.merge(n, e.parent, e.state, e.cost)
		return nil
	}

	idx := int32(len(f.nodes))
	nd := node[S]{state: e.state, cost: e.cost}
	if e.parent >= 0 {
		nd.parents = []int32{e.parent}
	}
	f.nodes = append(f.nodes, nd)
	f.seen.store(e.state, idx)
	f.stats.Expanded++

	if f.problem.End.Reached(e.state) {
		f.goals = append(f.goals, idx)
		f.best = e.cost
		return nil
	}
	return f.expand(idx)
}

// merge records parent as another predecessor of node n when running in
// AllPaths mode and the arrival ties n's cost. Under CollapseBy a key may
// be reached through a different state; only arrivals at n's own state are
// merged, so every parent link is a real transition. The start node never
// gains predecessors.
func (f *finder[S]) merge(n int32, parent int32, state S, cost int) {
	if f.opts.Mode != AllPaths || n == 0 || parent < 0 {
		return
	}
	nd := &f.nodes[n]
	if nd.cost != cost || nd.state != state || slices.Contains(nd.parents, parent) {
		return
	}
	nd.parents = append(nd.parents, parent)
}

// expand generates successors of node idx and enqueues those that can
// still lead to an optimal goal.
func (f *finder[S]) expand(idx int32) error {
	from := f.nodes[idx]
	steps, err := f.problem.Next.steps(from.state, f.buf[:0])
	f.buf = steps
	if err != nil {
		return fmt.Errorf("%w: at state %v: %w", ErrStepFailed, from.state, err)
	}

	for _, st := range steps {
		cost := from.cost + st.Cost
		if f.opts.MaxCost > 0 && cost > f.opts.MaxCost {
			continue
		}
		if f.best >= 0 && cost > f.best {
			continue
		}
		// an expanded key already holds its minimal cost
		if n, ok := f.seen.lookup(st.State); ok {
			f.merge(n, idx, st.State, cost)
			continue
		}
		f.frontier.push(entry[S]{state: st.State, cost: cost, parent: idx})
	}
	return nil
}

// report invokes the progress hook and logs every ReportEvery dequeues.
func (f *finder[S]) report(cost int) {
	every := f.opts.ReportEvery
	if every <= 0 || f.stats.Dequeued%every != 0 {
		return
	}
	p := Progress{
		Dequeued: f.stats.Dequeued,
		Expanded: f.stats.Expanded,
		Frontier: f.frontier.size(),
		Cost:     cost,
		Elapsed:  time.Since(f.began),
	}
	f.opts.OnProgress(p)
	f.opts.Logger.Info("search progress",
		slog.String("search", f.opts.Name),
		slog.Int("dequeued", p.Dequeued),
		slog.Int("expanded", p.Expanded),
		slog.Int("frontier", p.Frontier),
		slog.Int("cost", p.Cost),
	)
}
