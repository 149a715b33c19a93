// Package collector implements the bounded top-K result collector (§4.5):
// a fixed-capacity min-heap-on-score that keeps only the best candidates
// seen during a scan, draining them into descending-score order.
//
// Heap mechanics use the standard library's container/heap, the idiomatic
// Go choice for a bounded priority queue (the pack itself reaches for it in
// nmxmxh-inos_v1/kernel/threads/intelligence/scheduling/engine.go rather
// than hand-rolling one); the bounded-capacity-with-counters shape follows
// coregx-coregex/dfa/lazy/cache.go.
package collector

import "container/heap"

// Candidate is one accepted match offered to the collector (§4.4
// "Acceptance").
type Candidate struct {
	ID    uint32
	Score int // wire-encoded score in [0,1000], see §3 "Result"
	Start int
	End   int
}

// less reports whether a ranks strictly before b in the final ordering:
// score descending, then start ascending, then id ascending (§8 "results
// are sorted by score descending; ties resolved by start ascending then id
// ascending").
func less(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.ID < b.ID
}

// heapLess reports whether a is "smaller" for heap-ordering purposes, i.e.
// the first element popped by the standard min-heap. The collector keeps a
// min-heap on the *final* ranking so that the weakest accepted candidate
// (last by `less`) sits at the root and can be evicted in O(log K) when a
// better candidate arrives.
func heapLess(a, b Candidate) bool {
	return less(b, a)
}

// candidateHeap implements container/heap.Interface over a capacity-bounded
// slice of Candidate.
type candidateHeap []Candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return heapLess(h[i], h[j]) }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(Candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Collector is the bounded top-K result collector (§4.5).
type Collector struct {
	capacity int
	heap     candidateHeap

	offered  int
	accepted int
}

// New creates a Collector with the given fixed capacity (§3 Invariants:
// "max_results ≤ 100").
func New(capacity int) *Collector {
	return &Collector{
		capacity: capacity,
		heap:     make(candidateHeap, 0, capacity),
	}
}

// Offer inserts a candidate if the collector has room, or if it beats the
// current weakest accepted candidate (§4.5 "Insertion is O(log K). When the
// collector is full and a new candidate does not beat the current minimum,
// it is dropped.").
func (c *Collector) Offer(cand Candidate) {
	c.offered++
	if len(c.heap) < c.capacity {
		heap.Push(&c.heap, cand)
		c.accepted++
		return
	}
	if len(c.heap) == 0 {
		return
	}
	weakest := c.heap[0]
	if !less(cand, weakest) {
		return
	}
	c.heap[0] = cand
	heap.Fix(&c.heap, 0)
	c.accepted++
}

// Drain empties the collector into descending-score order (score desc,
// start asc, id asc), truncated to maxResults, and resets the collector for
// reuse by the next query (§4.5 "After the scan the collector is drained
// into descending-score order and truncated to max_results.").
func (c *Collector) Drain(maxResults int) []Candidate {
	n := len(c.heap)
	out := make([]Candidate, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = heap.Pop(&c.heap).(Candidate)
	}

	c.offered = 0
	c.accepted = 0

	if maxResults >= 0 && maxResults < len(out) {
		out = out[:maxResults]
	}
	return out
}

// Reset discards any pending candidates without draining them, used when
// starting a fresh search without having read the prior one's results.
func (c *Collector) Reset() {
	c.heap = c.heap[:0]
	c.offered = 0
	c.accepted = 0
}

// Len returns the number of candidates currently held.
func (c *Collector) Len() int {
	return len(c.heap)
}
