// SPDX-License-Identifier: MIT
// Package: bicover/matching
//
// Package matching computes maximum matchings of a team.Store with the
// Hopcroft–Karp algorithm and derives from them a lower bound for any team
// cover (every cover needs one distinct employee per matched team).
//
// By König's theorem the bound is tight on bipartite graphs;
// Matching.MinimumCover builds such a cover from the matching, which makes
// it a reference for judging the heuristic in package cover.
//
// Complexity:
//
//   - Maximum:      O(E·√V) time, O(V + E) memory.
//   - MinimumCover: O(V + E) on top of Maximum.
package matching
