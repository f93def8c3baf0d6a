// SPDX-License-Identifier: MIT
// Package: bicover/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a builder call.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
// The RNG is consumed by the builder; do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic RNG from seed.
// Seed 0 is mapped to a fixed non-zero default so that the zero value of a
// config struct still yields a reproducible stream.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithMaxAttempts bounds the total number of pair draws RandomTeams may make.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}

// defaultRNGSeed replaces seed 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
