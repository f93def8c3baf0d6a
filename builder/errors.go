// SPDX-License-Identifier: MIT
// Package: bicover/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w.
//   • Option constructors panic on meaningless values; builders never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (side, count, k, n1, n2)
// is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyTeams indicates that more distinct teams were requested than the
// universe can hold (side·side).
var ErrTooManyTeams = errors.New("builder: too many teams for universe")

// ErrNeedRandSource indicates that a stochastic builder ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the sampling budget was exhausted before
// enough distinct teams were drawn.
var ErrConstructFailed = errors.New("builder: construction failed")
