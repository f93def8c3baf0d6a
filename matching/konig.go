// SPDX-License-Identifier: MIT
// Package: bicover/matching
//
// konig.go: minimum team cover from a maximum matching.

package matching

import "slices"

// MinimumCover returns a minimum team cover of the matched store, ascending,
// by König's construction: let Z be the employees reachable from unmatched
// side-A employees along alternating paths; the cover is
// (side A \ Z) ∪ (side B ∩ Z), restricted to employees with at least one
// team. m must be maximum (see Maximum); its size equals the cover's.
func (m *Matching) MinimumCover() []int {
	s := m.store
	side := s.SideSize()

	adj := make([][]int, side)
	for id := 0; id < s.Len(); id++ {
		a := s.Team(id).A
		adj[a] = append(adj[a], id)
	}

	seenA := make([]bool, side)
	seenB := make([]bool, side)
	var queue []int
	for a := 0; a < side; a++ {
		if m.mateA[a] == -1 {
			seenA[a] = true
			queue = append(queue, a)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		a := queue[qi]
		for _, tid := range adj[a] {
			if tid == m.mateA[a] {
				continue
			}
			b := s.Team(tid).B - side
			if seenB[b] {
				continue
			}
			seenB[b] = true
			// b is matched: a free b would extend an augmenting path.
			if w := m.mateB[b]; w != -1 {
				if next := s.Team(w).A; !seenA[next] {
					seenA[next] = true
					queue = append(queue, next)
				}
			}
		}
	}

	cover := make([]int, 0, m.Size())
	for a := 0; a < side; a++ {
		if !seenA[a] && len(adj[a]) > 0 {
			cover = append(cover, a)
		}
	}
	for b := 0; b < side; b++ {
		if seenB[b] {
			cover = append(cover, side+b)
		}
	}
	slices.Sort(cover)

	return cover
}
