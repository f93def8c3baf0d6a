// SPDX-License-Identifier: MIT
// Package: bicover/cover
//
// candidate.go: candidate state and the heap that orders it.

package cover

import "github.com/bits-and-blooms/bitset"

// candidate is a partial or complete Cover of one component.
//
// selected holds component-local employee slots; uncovered holds the
// component-local team slots with no selected endpoint. size and remaining
// cache the two cardinalities used by the heap order and are refreshed by
// every expansion.
type candidate struct {
	selected  *bitset.BitSet
	uncovered *bitset.BitSet
	size      int
	remaining int
	seq       uint64
}

// complete reports whether every team of the component is covered.
func (c *candidate) complete() bool { return c.remaining == 0 }

// clone copies both bitsets; the caller assigns a fresh seq.
func (c *candidate) clone(seq uint64) *candidate {
	return &candidate{
		selected:  c.selected.Clone(),
		uncovered: c.uncovered.Clone(),
		size:      c.size,
		remaining: c.remaining,
		seq:       seq,
	}
}

// less is the strict total order of the search:
// fewer employees, then fewer uncovered teams, then earlier creation.
func (c *candidate) less(o *candidate) bool {
	if c.size != o.size {
		return c.size < o.size
	}
	if c.remaining != o.remaining {
		return c.remaining < o.remaining
	}

	return c.seq < o.seq
}

// candidateQueue is a min-heap of candidates ordered by less.
type candidateQueue []*candidate

// Len returns the number of candidates in the heap.
func (q candidateQueue) Len() int { return len(q) }

// Less orders by candidate.less.
func (q candidateQueue) Less(i, j int) bool { return q[i].less(q[j]) }

// Swap swaps two candidates.
func (q candidateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x, which must be a *candidate. Called by heap.Push.
func (q *candidateQueue) Push(x interface{}) { *q = append(*q, x.(*candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
