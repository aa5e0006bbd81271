package search

// index maps collapse keys of expanded states to arena indices.
type index[S comparable] struct {
	kind    collapseKind
	key     func(S) any
	byState map[S]int32
	byKey   map[any]int32
}

func newIndex[S comparable](c Collapse[S]) *index[S] {
	ix := &index[S]{kind: c.kind, key: c.key}
	switch c.kind {
	case collapseState:
		ix.byState = make(map[S]int32)
	case collapseKey:
		ix.byKey = make(map[any]int32)
	}
	return ix
}

func (ix *index[S]) lookup(s S) (int32, bool) {
	switch ix.kind {
	case collapseState:
		n, ok := ix.byState[s]
		return n, ok
	case collapseKey:
		n, ok := ix.byKey[ix.key(s)]
		return n, ok
	}
	return 0, false
}

func (ix *index[S]) store(s S, n int32) {
	switch ix.kind {
	case collapseState:
		ix.byState[s] = n
	case collapseKey:
		ix.byKey[ix.key(s)] = n
	}
}
