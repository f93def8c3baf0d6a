// SPDX-License-Identifier: MIT
// Package: bicover/cover
//
// Package cover searches for a small set of employees that covers every
// team of a team.Store: each team must have at least one selected endpoint.
//
// The search is a best-first branch-and-bound heuristic. It is NOT a
// certified minimum vertex cover solver: it returns the first complete cover
// reached under a fixed priority order and makes no optimality claim beyond
// that order.
//
// What:
//
//   - SolveComponent runs one search over one connected component.
//   - Solve partitions the store (package partition), solves each component
//     (sequentially, or concurrently with WithWorkers) and unions the
//     per-component covers; the union is checked with Verify before return.
//   - Verify / Uncovered are the brute-force coverage checker.
//
// Search (per component):
//
//  1. Seeds: for each team (a, b) in ascending ID order, the covers {a} and
//     {b} are expanded; the first complete seed is returned at once.
//  2. Expansion recomputes the uncovered set from scratch over every team of
//     the component. Adding one employee can cover many teams at once.
//  3. Candidates wait in a min-heap ordered by
//     (|selected|, |uncovered|, creation sequence). The sequence number is a
//     per-search counter, so the order is strict and reproducible.
//  4. The minimum candidate is popped; one uncovered team (a, b) is chosen by
//     the Branching rule; the children "+a" and "+b" are expanded. The first
//     complete child wins; otherwise both go back on the heap.
//
// Every branch adds one employee and covers at least the chosen team, so the
// search always ends with a complete cover; the work is exponential in the
// component size in the worst case. Callers bound it with WithMaxExpansions
// (ErrBudgetExceeded) or WithContext (ctx.Err()).
//
// State:
//
//   - selected and uncovered are fixed-width bitsets over component-local
//     employee and team slots; branching clones both.
//
// Concurrency:
//
//   - A search owns its heap and candidates exclusively. Components share no
//     employees, so Solve runs them in parallel without locking.
//
// Errors:
//
//   - ErrNilStore:        nil store.
//   - ErrUnknownTeam:     SolveComponent got a team ID outside the store.
//   - ErrOptionViolation: a WithX option received a meaningless value.
//   - ErrBudgetExceeded:  WithMaxExpansions budget exhausted.
//   - ErrIncompleteCover: the aggregated cover failed Verify.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
package cover
