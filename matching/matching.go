// SPDX-License-Identifier: MIT
// Package: bicover/matching
//
// matching.go: Hopcroft–Karp maximum matching.

package matching

import (
	"math"

	"github.com/katalvlaran/bicover/team"
)

// Matching is a set of teams no two of which share an employee.
type Matching struct {
	store *team.Store
	// mateA[a] / mateB[b-side] hold the matched team ID or -1.
	mateA []int
	mateB []int
	size  int
}

// Size returns the number of matched teams. No team cover of the store has
// fewer employees.
func (m *Matching) Size() int { return m.size }

// hk is the Hopcroft–Karp state over side-A employees.
type hk struct {
	s     *team.Store
	adj   [][]int // side-A employee → incident team IDs
	dist  []int
	m     *Matching
	queue []int
	stack []augFrame
}

// augFrame is one side-A employee on the current augmenting path and the
// index of its next untried team.
type augFrame struct {
	a, next int
}

const unreached = math.MaxInt

// Maximum returns a maximum matching of s.
func Maximum(s *team.Store) *Matching {
	side := s.SideSize()
	h := &hk{
		s:    s,
		adj:  make([][]int, side),
		dist: make([]int, side),
		m: &Matching{
			store: s,
			mateA: make([]int, side),
			mateB: make([]int, side),
		},
	}
	for i := range h.m.mateA {
		h.m.mateA[i] = -1
		h.m.mateB[i] = -1
	}
	for id := 0; id < s.Len(); id++ {
		a := s.Team(id).A
		h.adj[a] = append(h.adj[a], id)
	}

	for h.layer() {
		for a := 0; a < side; a++ {
			if h.m.mateA[a] == -1 && h.augment(a) {
				h.m.size++
			}
		}
	}

	return h.m
}

// layer runs the BFS phase from every free side-A employee and reports
// whether an augmenting path exists.
func (h *hk) layer() bool {
	h.queue = h.queue[:0]
	for a := range h.dist {
		if h.m.mateA[a] == -1 {
			h.dist[a] = 0
			h.queue = append(h.queue, a)
		} else {
			h.dist[a] = unreached
		}
	}

	found := false
	for qi := 0; qi < len(h.queue); qi++ {
		a := h.queue[qi]
		for _, tid := range h.adj[a] {
			w := h.m.mateB[h.s.Team(tid).B-h.s.SideSize()]
			if w == -1 {
				found = true
				continue
			}
			next := h.s.Team(w).A
			if h.dist[next] == unreached {
				h.dist[next] = h.dist[a] + 1
				h.queue = append(h.queue, next)
			}
		}
	}

	return found
}

// augment searches a shortest augmenting path from side-A employee root
// along the BFS layers and flips it. The path is walked with an explicit
// stack; an employee whose edges are exhausted is marked unreached so later
// searches in the same phase skip it.
func (h *hk) augment(root int) bool {
	side := h.s.SideSize()
	h.stack = append(h.stack[:0], augFrame{a: root})
	for len(h.stack) > 0 {
		top := &h.stack[len(h.stack)-1]
		if top.next == len(h.adj[top.a]) {
			h.dist[top.a] = unreached
			h.stack = h.stack[:len(h.stack)-1]
			continue
		}
		tid := h.adj[top.a][top.next]
		top.next++

		w := h.m.mateB[h.s.Team(tid).B-side]
		if w == -1 {
			// every frame's last tried team is the path edge it owns
			for _, f := range h.stack {
				t := h.adj[f.a][f.next-1]
				h.m.mateA[f.a] = t
				h.m.mateB[h.s.Team(t).B-side] = t
			}
			return true
		}
		if next := h.s.Team(w).A; h.dist[next] == h.dist[top.a]+1 {
			h.stack = append(h.stack, augFrame{a: next})
		}
	}

	return false
}
