// SPDX-License-Identifier: MIT
// Package: bicover/builder
//
// impl_shapes.go: deterministic fixtures.
//
//   • Star(k):               side=k; teams (0, k+i) for i=0..k-1.
//   • CompleteBipartite(m,n): side=max(m,n); teams (i, side+j), i asc then j asc.
//   • Path(k):               k teams alternating sides: a0-b0-a1-b1-…
//   • Matching(k):           side=k; teams (i, k+i), pairwise disjoint.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bicover/team"
)

const (
	methodStar              = "Star"
	methodCompleteBipartite = "CompleteBipartite"
	methodPath              = "Path"
	methodMatching          = "Matching"
	minShapeSize            = 1
)

// Star returns k teams sharing side-A employee 0; every side-B endpoint is
// distinct. Its minimum cover is {0}.
func Star(k int) (*team.Store, error) {
	if k < minShapeSize {
		return nil, fmt.Errorf("%s: k=%d: %w", methodStar, k, ErrTooFewVertices)
	}
	teams := make([]team.Team, k)
	for i := 0; i < k; i++ {
		teams[i] = team.Team{A: 0, B: k + i}
	}

	return team.NewStore(k, teams)
}

// CompleteBipartite returns K_{n1,n2}: every side-A employee 0..n1-1 paired
// with every side-B employee side..side+n2-1, where side = max(n1, n2).
func CompleteBipartite(n1, n2 int) (*team.Store, error) {
	if n1 < minShapeSize || n2 < minShapeSize {
		return nil, fmt.Errorf("%s: n1=%d, n2=%d: %w", methodCompleteBipartite, n1, n2, ErrTooFewVertices)
	}
	side := max(n1, n2)
	teams := make([]team.Team, 0, n1*n2)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			teams = append(teams, team.Team{A: i, B: side + j})
		}
	}

	return team.NewStore(side, teams)
}

// Path returns a simple path of k teams alternating between the sides.
// Its minimum cover has ⌈k/2⌉ employees.
func Path(k int) (*team.Store, error) {
	if k < minShapeSize {
		return nil, fmt.Errorf("%s: k=%d: %w", methodPath, k, ErrTooFewVertices)
	}
	side := k/2 + 1
	teams := make([]team.Team, k)
	for i := 0; i < k; i++ {
		j := i / 2
		if i%2 == 0 {
			teams[i] = team.Team{A: j, B: side + j}
		} else {
			teams[i] = team.Team{A: j + 1, B: side + j}
		}
	}

	return team.NewStore(side, teams)
}

// Matching returns k pairwise disjoint teams (i, k+i).
// Every team is its own component.
func Matching(k int) (*team.Store, error) {
	if k < minShapeSize {
		return nil, fmt.Errorf("%s: k=%d: %w", methodMatching, k, ErrTooFewVertices)
	}
	teams := make([]team.Team, k)
	for i := 0; i < k; i++ {
		teams[i] = team.Team{A: i, B: k + i}
	}

	return team.NewStore(k, teams)
}
