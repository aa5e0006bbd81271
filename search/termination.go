package search

// Termination decides when a state is a goal: either equality with a fixed
// target (EndState) or an arbitrary predicate (EndCondition). The zero value
// is invalid and rejected with ErrNilTermination.
//
// Reached is called once per expanded state, so predicates should be cheap.
type Termination[S comparable] struct {
	exact  bool
	target S
	pred   func(S) bool
}

// EndState terminates on the state equal to target.
func EndState[S comparable](target S) Termination[S] {
	return Termination[S]{exact: true, target: target}
}

// EndCondition terminates on any state for which pred returns true.
func EndCondition[S comparable](pred func(S) bool) Termination[S] {
	return Termination[S]{pred: pred}
}

// Reached reports whether s is a goal.
func (t Termination[S]) Reached(s S) bool {
	if t.exact {
		return s == t.target
	}
	return t.pred(s)
}

func (t Termination[S]) valid() bool {
	return t.exact || t.pred != nil
}
