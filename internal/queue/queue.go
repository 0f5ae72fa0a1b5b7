// Package queue provides the bounded min-heap used to keep the top-K
// results of a corpus scan.
package queue

import "container/heap"

// Compile time check to ensure resultHeap satisfies the heap interface.
var _ heap.Interface = (*resultHeap)(nil)

// Item represents a scored candidate in the queue.
type Item struct {
	Score float32 // Score is the priority of the item.
	Value string  // Value is the candidate string.
	Ref   int     // Ref is the candidate's slot in the corpus, kept for index recomputation.
}

// resultHeap implements heap.Interface as a min-heap whose root is the worst
// retained result: lowest score, and on a score tie the longer value. The
// inverse ordering, applied when draining, yields highest score first with
// ties broken by shorter value.
type resultHeap struct {
	items []Item
}

func (h *resultHeap) Len() int { return len(h.items) }

func (h *resultHeap) Less(i, j int) bool {
	if h.items[i].Score == h.items[j].Score {
		return len(h.items[i].Value) > len(h.items[j].Value)
	}
	return h.items[i].Score < h.items[j].Score
}

func (h *resultHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *resultHeap) Push(x any) {
	item, _ := x.(Item)
	h.items = append(h.items, item)
}

func (h *resultHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// Bounded is a size-bounded result heap. Pushes beyond the capacity displace
// the current worst element when the newcomer scores strictly higher.
type Bounded struct {
	h   resultHeap
	max int
}

// NewBounded creates a bounded heap retaining at most max items. A max of 0
// means unbounded.
func NewBounded(max int) *Bounded {
	if max <= 0 {
		max = int(^uint(0) >> 1)
	}
	return &Bounded{max: max}
}

// Len returns the number of retained items.
func (b *Bounded) Len() int { return len(b.h.items) }

// Max returns the retention capacity.
func (b *Bounded) Max() int { return b.max }

// Push offers an item. It is retained if the heap is below capacity or the
// score beats the current worst retained score.
func (b *Bounded) Push(item Item) {
	if len(b.h.items) < b.max || item.Score > b.h.items[0].Score {
		heap.Push(&b.h, item)
		if len(b.h.items) > b.max {
			heap.Pop(&b.h)
		}
	}
}

// Pop removes and returns the worst retained item.
func (b *Bounded) Pop() Item {
	item, _ := heap.Pop(&b.h).(Item)
	return item
}

// Drain empties the heap into a slice ordered best first: descending score,
// ties broken by shorter value.
func (b *Bounded) Drain() []Item {
	items := make([]Item, len(b.h.items))
	for i := len(items) - 1; i >= 0; i-- {
		items[i] = b.Pop()
	}
	return items
}
