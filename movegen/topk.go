package movegen

import (
	"container/heap"
	"slices"

	"github.com/domino14/feudsolver/move"
)

// moveHeap keeps the worst move at the top, so it is the one to go when a
// better move comes along.
type moveHeap []*move.Move

func (h moveHeap) Len() int           { return len(h) }
func (h moveHeap) Less(i, j int) bool { return move.Compare(h[i], h[j]) > 0 }
func (h moveHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *moveHeap) Push(x any) {
	*h = append(*h, x.(*move.Move))
}

func (h *moveHeap) Pop() any {
	old := *h
	n := len(old)
	m := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return m
}

// TopK keeps the best k moves offered to it, in the order of move.Compare.
// A k of 0 or less keeps every move. A TopK is not safe for concurrent use;
// give every goroutine its own and Merge them.
type TopK struct {
	k     int
	moves moveHeap
	seen  int
}

func NewTopK(k int) *TopK {
	return &TopK{k: k}
}

// Offer considers m for the best k.
func (t *TopK) Offer(m *move.Move) {
	t.seen++
	if t.k <= 0 || len(t.moves) < t.k {
		heap.Push(&t.moves, m)
		return
	}
	if move.Compare(m, t.moves[0]) < 0 {
		t.moves[0] = m
		heap.Fix(&t.moves, 0)
	}
}

// Merge offers every move kept by o. The result does not depend on the
// order of merges.
func (t *TopK) Merge(o *TopK) {
	for _, m := range o.moves {
		t.Offer(m)
	}
	// Count what o saw, not just what it kept.
	t.seen += o.seen - len(o.moves)
}

// Len returns the number of moves kept.
func (t *TopK) Len() int {
	return len(t.moves)
}

// Seen returns the number of moves ever offered.
func (t *TopK) Seen() int {
	return t.seen
}

// Sorted returns the kept moves, best first.
func (t *TopK) Sorted() []*move.Move {
	sorted := make([]*move.Move, len(t.moves))
	copy(sorted, t.moves)
	slices.SortFunc(sorted, move.Compare)
	return sorted
}
