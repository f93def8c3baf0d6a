// SPDX-License-Identifier: MIT
// Package: bicover/team
//
// Package team holds the immutable input of a cover search: the teams
// (edges) between two disjoint employee universes and the employee index
// built over them.
//
// What:
//
//   - Team is a pair (A, B) with A drawn from side A and B from side B.
//   - Store is a validated, read-only list of teams; a team's ID is its
//     position in the store (0..Len()-1).
//   - Index maps every employee to the ascending list of teams incident to it.
//
// Employee IDs:
//
//	side A: 0 .. side-1
//	side B: side .. 2·side-1
//
// so the two sides are disjoint by construction and A ≠ B always holds for
// a valid team.
//
// Errors:
//
//   - ErrSideSize:            side size < 1.
//   - ErrSelfTeam:            A == B.
//   - ErrEmployeeOutOfRange:  A outside side A or B outside side B.
//
// Each of them reaches the caller wrapped in a *ValidationError carrying the
// offending team; use errors.Is / errors.As to branch on them.
//
// Complexity:
//
//   - NewStore:   O(N) validation + O(N) copy.
//   - BuildIndex: O(N + E) where E = 2·side.
package team
