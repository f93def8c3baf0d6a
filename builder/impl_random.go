// SPDX-License-Identifier: MIT
// Package: bicover/builder
//
// impl_random.go: RandomTeams(side, count) generator.
//
// Contract:
//   • side ≥ 1 and count ≥ 0 (else ErrTooFewVertices).
//   • count ≤ side² (else ErrTooManyTeams); rejection sampling would never
//     terminate otherwise.
//   • cfg.rng non-nil (else ErrNeedRandSource), even for count == 0.
//   • Each draw picks A uniformly from side A and B uniformly from side B;
//     a pair already drawn is rejected and redrawn.
//
// Complexity:
//   • Expected draws: Σ_{i<count} side²/(side²−i); O(count) when count ≪ side².
//   • Space: O(count) for the seen-pair set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bicover/team"
)

const methodRandomTeams = "RandomTeams"

// RandomTeams draws count distinct teams over two universes of side
// employees each and returns them as a validated store (team IDs follow the
// draw order).
func RandomTeams(side, count int, opts ...Option) (*team.Store, error) {
	if side < 1 || count < 0 {
		return nil, fmt.Errorf("%s: side=%d, count=%d: %w", methodRandomTeams, side, count, ErrTooFewVertices)
	}
	if count > side*side {
		return nil, fmt.Errorf("%s: count=%d > side²=%d: %w", methodRandomTeams, count, side*side, ErrTooManyTeams)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomTeams, ErrNeedRandSource)
	}

	teams := make([]team.Team, 0, count)
	seen := make(map[team.Team]struct{}, count)
	attempts := 0
	for len(teams) < count {
		if cfg.maxAttempts > 0 && attempts >= cfg.maxAttempts {
			return nil, fmt.Errorf("%s: %d/%d teams after %d draws: %w",
				methodRandomTeams, len(teams), count, attempts, ErrConstructFailed)
		}
		attempts++

		t := team.Team{A: cfg.rng.Intn(side), B: side + cfg.rng.Intn(side)}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		teams = append(teams, t)
	}

	return team.NewStore(side, teams)
}
