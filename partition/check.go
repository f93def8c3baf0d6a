// SPDX-License-Identifier: MIT
// Package: bicover/partition
//
// check.go: partition validator.

package partition

import (
	"fmt"

	"github.com/katalvlaran/bicover/team"
)

// Check verifies that comps is a valid partition of s: every team appears in
// exactly one component and no team outside a component shares an employee
// with a team inside it.
//
// Complexity: O(N) time, O(N + 2·side) memory.
func Check(s *team.Store, comps [][]int) error {
	owner := make([]int, s.Len())
	for i := range owner {
		owner[i] = -1
	}
	for ci, comp := range comps {
		for _, id := range comp {
			if id < 0 || id >= s.Len() {
				return fmt.Errorf("%w: component %d holds unknown team %d", ErrNotCovering, ci, id)
			}
			if owner[id] != -1 {
				return fmt.Errorf("%w: team %d in components %d and %d", ErrOverlap, id, owner[id], ci)
			}
			owner[id] = ci
		}
	}
	for id, ci := range owner {
		if ci == -1 {
			return fmt.Errorf("%w: team %d", ErrNotCovering, id)
		}
	}

	// Closure: all teams incident to one employee share a component.
	ix := team.BuildIndex(s)
	for e := 0; e < ix.Employees(); e++ {
		ts := ix.Teams(e)
		for _, id := range ts {
			if owner[id] != owner[ts[0]] {
				return fmt.Errorf("%w: employee %d links team %d (component %d) and team %d (component %d)",
					ErrNotClosed, e, ts[0], owner[ts[0]], id, owner[id])
			}
		}
	}

	return nil
}
