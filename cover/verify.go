// SPDX-License-Identifier: MIT
// Package: bicover/cover
//
// verify.go: brute-force coverage checker.

package cover

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/bicover/team"
)

// Verify reports whether every team of s has at least one endpoint in
// employees. IDs outside the store's universe are ignored.
//
// Complexity: O(N + |employees|).
func Verify(s *team.Store, employees []int) bool {
	return len(Uncovered(s, employees)) == 0
}

// Uncovered returns, ascending, the IDs of the teams of s with no endpoint
// in employees.
func Uncovered(s *team.Store, employees []int) []int {
	chosen := bitset.New(uint(s.EmployeeCount()))
	for _, emp := range employees {
		if emp >= 0 && emp < s.EmployeeCount() {
			chosen.Set(uint(emp))
		}
	}

	var missing []int
	for id := 0; id < s.Len(); id++ {
		t := s.Team(id)
		if !chosen.Test(uint(t.A)) && !chosen.Test(uint(t.B)) {
			missing = append(missing, id)
		}
	}

	return missing
}

// fmtIncomplete wraps ErrIncompleteCover with the first few missing IDs.
func fmtIncomplete(missing []int) error {
	const show = 8
	if len(missing) > show {
		return fmt.Errorf("%w: %d teams, first %v", ErrIncompleteCover, len(missing), missing[:show])
	}

	return fmt.Errorf("%w: teams %v", ErrIncompleteCover, missing)
}
