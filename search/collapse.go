package search

type collapseKind int

const (
	collapseState collapseKind = iota
	collapseNone
	collapseKey
)

// Collapse decides when two frontier entries count as the same for
// visited-tracking. The zero value collapses on the state itself.
//
//   - CollapseOnState: classic BFS dedup; each state is expanded once.
//   - NoCollapse: nothing is deduplicated. The caller must make sure the
//     reachable entries are finite (e.g. by a bounded auxiliary dimension
//     or WithMaxCost), otherwise Find may not return.
//   - CollapseBy: dedup on a caller-derived key. States sharing a key are
//     treated as one; the first state to reach the key represents it.
type Collapse[S comparable] struct {
	kind collapseKind
	key  func(S) any
}

// CollapseOnState deduplicates on the state value. This is the default.
func CollapseOnState[S comparable]() Collapse[S] {
	return Collapse[S]{kind: collapseState}
}

// NoCollapse disables deduplication entirely.
func NoCollapse[S comparable]() Collapse[S] {
	return Collapse[S]{kind: collapseNone}
}

// CollapseBy deduplicates on key(state). A nil key behaves like CollapseOnState.
func CollapseBy[S comparable, K comparable](key func(S) K) Collapse[S] {
	if key == nil {
		return CollapseOnState[S]()
	}
	return Collapse[S]{kind: collapseKey, key: func(s S) any { return key(s) }}
}

// String names the strategy for logs and span attributes.
func (c Collapse[S]) String() string {
	switch c.kind {
	case collapseNone:
		return "none"
	case collapseKey:
		return "key"
	}
	return "state"
}
