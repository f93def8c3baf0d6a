// SPDX-License-Identifier: MIT
// Package: bicover/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil  (RandomTeams requires WithSeed / WithRand)
//   • maxAttempts = 0    (unbounded rejection sampling)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by builders.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Total draw budget for RandomTeams; 0 disables the budget.
	maxAttempts int
}

// newBuilderConfig applies opts in order (last wins) over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
