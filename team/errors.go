// SPDX-License-Identifier: MIT
// Package: bicover/team
//
// errors.go: sentinel errors and ValidationError.

package team

import (
	"errors"
	"fmt"
)

// Sentinel errors for team validation.
var (
	// ErrSideSize indicates a side size smaller than 1.
	ErrSideSize = errors.New("team: side size must be at least 1")

	// ErrSelfTeam indicates a team whose two endpoints are the same employee.
	ErrSelfTeam = errors.New("team: endpoints must differ")

	// ErrEmployeeOutOfRange indicates an endpoint outside its declared side.
	ErrEmployeeOutOfRange = errors.New("team: employee outside its side")
)

// ValidationError reports a team rejected by NewStore.
// Err is one of the package sentinels.
type ValidationError struct {
	TeamID int
	Team   Team
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("team %d (%d,%d): %v", e.TeamID, e.Team.A, e.Team.B, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }
