// SPDX-License-Identifier: MIT
// Package: bicover/cover
//
// errors.go: sentinel errors for the cover package.

package cover

import "errors"

// Sentinel errors for cover search.
var (
	// ErrNilStore is returned when a nil *team.Store is passed.
	ErrNilStore = errors.New("cover: store is nil")

	// ErrUnknownTeam is returned when a component names a team ID the store lacks.
	ErrUnknownTeam = errors.New("cover: unknown team id")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cover: invalid option supplied")

	// ErrBudgetExceeded is returned when a component search performs more
	// expansions than allowed by WithMaxExpansions.
	ErrBudgetExceeded = errors.New("cover: expansion budget exceeded")

	// ErrIncompleteCover is returned when an aggregated solution leaves a team uncovered.
	ErrIncompleteCover = errors.New("cover: solution leaves teams uncovered")
)
