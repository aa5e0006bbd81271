package search

// Step is one transition to State at a non-negative Cost.
type Step[S comparable] struct {
	State S
	Cost  int
}

type stepKind int

const (
	stepNone stepKind = iota
	stepUnit
	stepWeighted
	stepFallible
)

// Successors produces the next steps reachable from a state. It is one of
// three flavors built by Unweighted, Weighted or Fallible; the zero value
// is invalid and rejected with ErrNilSuccessors.
//
// The wrapped function must be a pure function of its state: the engine may
// call it at most once per expanded state and never caches its output.
// Returning no steps marks a dead end.
type Successors[S comparable] struct {
	kind     stepKind
	unit     func(S) []S
	weighted func(S) []Step[S]
	fallible func(S) ([]Step[S], error)
}

// Unweighted wraps a function returning neighbor states; every step costs 1.
// Searches over Unweighted successors use a FIFO frontier, so each BFS
// layer is fully processed before the next.
func Unweighted[S comparable](next func(S) []S) Successors[S] {
	if next == nil {
		return Successors[S]{}
	}
	return Successors[S]{kind: stepUnit, unit: next}
}

// Weighted wraps a function returning steps with explicit costs.
// Searches over Weighted successors use a priority frontier ordered by
// accumulated cost. Negative costs break the minimality guarantee and are
// not checked.
func Weighted[S comparable](next func(S) []Step[S]) Successors[S] {
	if next == nil {
		return Successors[S]{}
	}
	return Successors[S]{kind: stepWeighted, weighted: next}
}

// Fallible is Weighted for step functions that can fail. The first error
// stops the search and is returned wrapped in ErrStepFailed.
func Fallible[S comparable](next func(S) ([]Step[S], error)) Successors[S] {
	if next == nil {
		return Successors[S]{}
	}
	return Successors[S]{kind: stepFallible, fallible: next}
}

// valid reports whether s was built by one of the constructors.
func (s Successors[S]) valid() bool {
	return s.kind != stepNone
}

// uniform reports whether every step costs exactly 1.
func (s Successors[S]) uniform() bool {
	return s.kind == stepUnit
}

// steps calls the wrapped function for state and appends the results to buf.
func (s Successors[S]) steps(state S, buf []Step[S]) ([]Step[S], error) {
	switch s.kind {
	case stepUnit:
		for _, n := range s.unit(state) {
			buf = append(buf, Step[S]{State: n, Cost: 1})
		}
		return buf, nil
	case stepWeighted:
		return append(buf, s.weighted(state)...), nil
	case stepFallible:
		next, err := s.fallible(state)
		if err != nil {
			return buf, err
		}
		return append(buf, next...), nil
	}
	return buf, ErrNilSuccessors
}
