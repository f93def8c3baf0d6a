// SPDX-License-Identifier: MIT
// Package: bicover/team
//
// store.go: Team, Side and the immutable Store.

package team

import "fmt"

// Team is an edge between employee A (side A) and employee B (side B).
type Team struct {
	A, B int
}

// String renders the team as "A - B".
func (t Team) String() string { return fmt.Sprintf("%d - %d", t.A, t.B) }

// Side identifies one of the two employee universes.
type Side int

const (
	// SideA holds employees 0..side-1.
	SideA Side = iota
	// SideB holds employees side..2·side-1.
	SideB
)

// Store is an immutable list of validated teams.
// The ID of a team is its index; IDs are dense in 0..Len()-1.
type Store struct {
	side  int
	teams []Team
}

// NewStore validates teams against a universe of side employees per side
// and returns a Store owning a private copy of them.
//
// Every team must satisfy 0 ≤ A < side ≤ B < 2·side. The first violation is
// returned as a *ValidationError; duplicate pairs are not rejected here
// (generators guarantee uniqueness).
func NewStore(side int, teams []Team) (*Store, error) {
	if side < 1 {
		return nil, &ValidationError{TeamID: -1, Err: fmt.Errorf("%w (got %d)", ErrSideSize, side)}
	}
	for id, t := range teams {
		if err := validate(side, t); err != nil {
			return nil, &ValidationError{TeamID: id, Team: t, Err: err}
		}
	}
	cp := make([]Team, len(teams))
	copy(cp, teams)

	return &Store{side: side, teams: cp}, nil
}

// validate checks one team; the self-team test runs first so that A == B is
// reported as such even when the shared ID is also out of range.
func validate(side int, t Team) error {
	if t.A == t.B {
		return ErrSelfTeam
	}
	if t.A < 0 || t.A >= side || t.B < side || t.B >= 2*side {
		return ErrEmployeeOutOfRange
	}

	return nil
}

// Len returns the number of teams.
func (s *Store) Len() int { return len(s.teams) }

// Team returns the team with the given ID. It panics on an out-of-range ID,
// like a slice access.
func (s *Store) Team(id int) Team { return s.teams[id] }

// Teams returns a copy of all teams in ID order.
func (s *Store) Teams() []Team {
	cp := make([]Team, len(s.teams))
	copy(cp, s.teams)

	return cp
}

// IDs returns 0..Len()-1.
func (s *Store) IDs() []int {
	ids := make([]int, len(s.teams))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// SideSize returns the number of employees per side.
func (s *Store) SideSize() int { return s.side }

// EmployeeCount returns the size of both universes together (2·side).
func (s *Store) EmployeeCount() int { return 2 * s.side }

// SideOf reports which side employee e belongs to.
// The second result is false if e is outside both universes.
func (s *Store) SideOf(e int) (Side, bool) {
	switch {
	case e >= 0 && e < s.side:
		return SideA, true
	case e >= s.side && e < 2*s.side:
		return SideB, true
	default:
		return 0, false
	}
}
