// SPDX-License-Identifier: MIT
// Package: bicover/team
//
// index.go: employee → team index.

package team

// Index maps each employee to the IDs of the teams incident to it.
// It is built once and never mutated.
type Index struct {
	byEmployee [][]int
}

// BuildIndex scans s once in team-ID order, so every per-employee list is
// ascending. Employees with no team map to an empty list.
//
// Complexity: O(N + 2·side) time and memory.
func BuildIndex(s *Store) *Index {
	ix := &Index{byEmployee: make([][]int, s.EmployeeCount())}
	for id, t := range s.teams {
		ix.byEmployee[t.A] = append(ix.byEmployee[t.A], id)
		ix.byEmployee[t.B] = append(ix.byEmployee[t.B], id)
	}

	return ix
}

// Teams returns the team IDs incident to employee e (nil if none or if e is
// out of range). The slice is shared; callers must not modify it.
func (ix *Index) Teams(e int) []int {
	if e < 0 || e >= len(ix.byEmployee) {
		return nil
	}

	return ix.byEmployee[e]
}

// Employees returns the number of employee slots in the index.
func (ix *Index) Employees() int { return len(ix.byEmployee) }
