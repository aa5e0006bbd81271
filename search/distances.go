package search

import (
	"log/slog"
	"time"
)

// Distances floods the state graph from start and returns the minimal cost
// of every reachable state, start included at cost 0. It runs the same
// loop as Find with a goal that never matches and on-state collapsing.
//
// WithMaxCost bounds the flood; WithMode and WithMaxPaths have no effect.
// The state space reachable from start must be finite.
func Distances[S comparable](start S, next Successors[S], opts ...Option) (map[S]int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !next.valid() {
		return nil, ErrNilSuccessors
	}

	p := Problem[S]{
		Start:    start,
		Next:     next,
		End:      EndCondition(func(S) bool { return false }),
		Collapse: CollapseOnState[S](),
	}
	ctx, span := startSpan(o, "search.Distances", p.Collapse.String())
	f := newFinder(ctx, p, o)
	err = f.loop()
	f.stats.Elapsed = time.Since(f.began)
	if err != nil {
		finish(span, o, f.stats, 0, -1, err)
		return nil, err
	}

	dist := make(map[S]int, len(f.nodes))
	for _, n := range f.nodes {
		dist[n.state] = n.cost
	}
	finish(span, o, f.stats, -1, -1, nil)
	o.Logger.Debug("flood finished",
		slog.String("search", o.Name),
		slog.Int("reached", len(dist)),
		slog.Duration("elapsed", f.stats.Elapsed),
	)
	return dist, nil
}
