// SPDX-License-Identifier: MIT
// Package: bicover/builder
//
// Package builder produces team.Store instances: seeded random bipartite
// instances and small deterministic shapes used as fixtures.
//
// What:
//
//   - RandomTeams(side, count, opts...) draws count distinct teams uniformly
//     from side×side pairs by rejection sampling. An RNG is mandatory
//     (WithSeed / WithRand); there is no hidden process-wide source.
//   - Star(k), CompleteBipartite(n1, n2), Path(k), Matching(k) build fixed
//     topologies with deterministic team order.
//
// Employee numbering follows package team: side A is 0..side-1 and side B
// is side..2·side-1.
//
// Determinism:
//
//   - For a fixed seed and options RandomTeams returns the same teams in the
//     same order on every platform.
//   - Shapes take no RNG and always emit teams in ascending index order.
//
// Errors:
//
//   - ErrTooFewVertices:  side < 1, count < 0 or a shape size < 1.
//   - ErrTooManyTeams:    count exceeds the side² distinct pairs available.
//   - ErrNeedRandSource:  RandomTeams without WithSeed / WithRand.
//   - ErrConstructFailed: WithMaxAttempts budget exhausted while sampling.
package builder
