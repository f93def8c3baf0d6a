// SPDX-License-Identifier: MIT
// Package: bicover/partition
//
// errors.go: sentinel errors for the partition package.

package partition

import "errors"

var (
	// ErrNotCovering indicates a team missing from every component.
	ErrNotCovering = errors.New("partition: team not covered by any component")
	// ErrOverlap indicates a team present in more than one component.
	ErrOverlap = errors.New("partition: components overlap")
	// ErrNotClosed indicates a component that shares an employee with a team outside it.
	ErrNotClosed = errors.New("partition: component not closed")
)
