// SPDX-License-Identifier: MIT
// Package: bicover/partition
//
// Package partition splits a team.Store into connected components: maximal
// sets of teams that reach each other through shared employees.
//
// Components are independent cover subproblems: no employee is incident to
// teams of two different components, so covers found per component can be
// unioned without conflict.
//
// What:
//
//   - Components / ComponentsWithIndex: iterative worklist closure over the
//     employee index. Every component is returned as an ascending slice of
//     team IDs; components are ordered by their lowest team ID.
//   - Check: verifies that a partition covers every team exactly once and
//     that every component is closed under shared employees.
//
// Complexity:
//
//   - Components: O(N + Σdeg) = O(N) time, O(N) memory.
//   - Check:      O(N) time, O(N) memory.
//
// Errors (Check only):
//
//   - ErrNotCovering: some team is in no component, or an ID is out of range.
//   - ErrOverlap:     some team is in two components.
//   - ErrNotClosed:   a team outside a component shares an employee with it.
package partition
