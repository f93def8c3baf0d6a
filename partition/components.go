// SPDX-License-Identifier: MIT
// Package: bicover/partition
//
// components.go: connected components over the employee index.

package partition

import (
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/bicover/team"
)

// Components partitions all teams of s into connected components.
// See ComponentsWithIndex.
func Components(s *team.Store) [][]int {
	return ComponentsWithIndex(s, team.BuildIndex(s))
}

// ComponentsWithIndex partitions all teams of s into connected components
// using a prebuilt employee index.
//
// The lowest pending team seeds each component; a FIFO work queue then pulls
// in every team incident to either endpoint of a queued team until the queue
// drains. The component is removed from the pending set and emitted sorted.
//
// Time:   O(N + Σ deg(e)) = O(N).
// Memory: O(N) for the pending/member bitsets and output.
func ComponentsWithIndex(s *team.Store, ix *team.Index) [][]int {
	n := uint(s.Len())
	pending := bitset.New(n)
	for i := uint(0); i < n; i++ {
		pending.Set(i)
	}
	member := bitset.New(n)

	var comps [][]int
	for {
		seed, ok := pending.NextSet(0)
		if !ok {
			break
		}
		member.Set(seed)
		queue := []int{int(seed)}

		for qi := 0; qi < len(queue); qi++ {
			t := s.Team(queue[qi])
			for _, e := range [2]int{t.A, t.B} {
				for _, nb := range ix.Teams(e) {
					if member.Test(uint(nb)) {
						continue
					}
					member.Set(uint(nb))
					queue = append(queue, nb)
				}
			}
		}

		// queue holds exactly the component, each team once
		for _, id := range queue {
			pending.Clear(uint(id))
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Sizes returns the number of teams in each component, in component order.
func Sizes(comps [][]int) []int {
	out := make([]int, len(comps))
	for i, c := range comps {
		out[i] = len(c)
	}

	return out
}
