package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO_OrderAndCompaction(t *testing.T) {
	q := newFrontier[int](true)
	const n = 5000
	for i := 0; i < n; i++ {
		q.push(entry[int]{state: i, cost: i / 10})
	}
	extra := 0
	for i := 0; i < n; i++ {
		e, ok := q.pop()
		require.True(t, ok)
		require.Equal(t, i, e.state)
		require.Equal(t, n-i-1+extra, q.size())
		// push after the first compaction
		if i == 3000 {
			q.push(entry[int]{state: -1, cost: 1 << 20})
			extra++
		}
	}
	e, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, -1, e.state)
	_, ok = q.pop()
	assert.False(t, ok)
}

func TestPriority_CostThenInsertion(t *testing.T) {
	q := newFrontier[string](false)
	q.push(entry[string]{state: "c", cost: 3})
	q.push(entry[string]{state: "a1", cost: 1})
	q.push(entry[string]{state: "b", cost: 2})
	q.push(entry[string]{state: "a2", cost: 1})
	q.push(entry[string]{state: "a3", cost: 1})
	assert.Equal(t, 5, q.size())

	var got []string
	for {
		e, ok := q.pop()
		if !ok {
			break
		}
		got = append(got, e.state)
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "b", "c"}, got)
	assert.Equal(t, 0, q.size())
}

func TestIndex_Kinds(t *testing.T) {
	st := newIndex(CollapseOnState[int]())
	st.store(4, 1)
	n, ok := st.lookup(4)
	assert.True(t, ok)
	assert.Equal(t, int32(1), n)
	_, ok = st.lookup(5)
	assert.False(t, ok)

	parity := newIndex(CollapseBy(func(n int) bool { return n%2 == 0 }))
	parity.store(4, 2)
	n, ok = parity.lookup(10)
	assert.True(t, ok)
	assert.Equal(t, int32(2), n)

	none := newIndex(NoCollapse[int]())
	none.store(4, 3)
	_, ok = none.lookup(4)
	assert.False(t, ok)
}
