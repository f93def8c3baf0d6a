// Package bicover finds small team covers in bipartite employee graphs:
// given two-person teams drawn across two disjoint employee sides, select
// employees so that every team has at least one member selected.
//
// What is inside?
//
//	team/      validated, immutable team store + employee → teams index
//	partition/ connected components of the team graph (iterative closure)
//	cover/     best-first branch-and-bound cover search per component,
//	           parallel aggregation and the Verify checker
//	builder/   seeded random instances and fixed shapes (star, K(n,m), path)
//	matching/  Hopcroft–Karp maximum matching; the König minimum cover
//
// The cover search is a heuristic: it returns the first complete cover in
// (|selected|, |uncovered|, creation order) priority. The König cover from
// matching.Maximum gives the exact minimum to compare it against.
//
// Quick ASCII example:
//
//	  A side      B side
//	    0 ─────── 3
//	    0 ─────── 4
//	    2 ─────── 5
//
//	two components: {0-3, 0-4} covered by {0}, {2-5} covered by {2}.
//
// The bicover command (cmd/bicover) generates instances, solves them and
// prints a report:
//
//	go run ./cmd/bicover solve --team-count=700 --side=1000 --components
package bicover
