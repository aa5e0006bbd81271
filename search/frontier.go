package search

import (
	"github.com/zyedidia/generic/heap"
)

// entry is a frontier item: a state reached at cost from the arena node
// parent (-1 for the start state). Paths are not copied per entry; they
// are rebuilt from parent links only when a result is produced.
type entry[S comparable] struct {
	state  S
	cost   int
	parent int32
	seq    uint64
}

// frontier yields entries in non-decreasing cost order.
type frontier[S comparable] interface {
	push(e entry[S])
	pop() (entry[S], bool)
	size() int
}

// newFrontier picks a FIFO queue for unit-cost steps and a priority queue otherwise.
func newFrontier[S comparable](uniform bool) frontier[S] {
	if uniform {
		return &fifo[S]{}
	}
	return newPriority[S]()
}

// fifo is a slice-backed queue. With unit costs every entry pushed while
// processing layer d costs d+1, so FIFO order is cost order.
type fifo[S comparable] struct {
	items []entry[S]
	head  int
}

func (q *fifo[S]) push(e entry[S]) {
	q.items = append(q.items, e)
}

func (q *fifo[S]) pop() (entry[S], bool) {
	if q.head == len(q.items) {
		return entry[S]{}, false
	}
	e := q.items[q.head]
	q.items[q.head] = entry[S]{}
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head >= 1024 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return e, true
}

func (q *fifo[S]) size() int {
	return len(q.items) - q.head
}

// priority is a min-heap on (cost, seq). The sequence number keeps equal-cost
// entries in insertion order so repeated runs expand states identically.
type priority[S comparable] struct {
	h   *heap.Heap[entry[S]]
	seq uint64
}

func newPriority[S comparable]() *priority[S] {
	return &priority[S]{
		h: heap.New[entry[S]](func(a, b entry[S]) bool {
			if a.cost != b.cost {
				return a.cost < b.cost
			}
			return a.seq < b.seq
		}),
	}
}

func (q *priority[S]) push(e entry[S]) {
	q.seq++
	e.seq = q.seq
	q.h.Push(e)
}

func (q *priority[S]) pop() (entry[S], bool) {
	return q.h.Pop()
}

func (q *priority[S]) size() int {
	return q.h.Size()
}
