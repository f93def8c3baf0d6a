// SPDX-License-Identifier: MIT
// Package: bicover/cover
//
// types.go: Options, Branching and functional options.

package cover

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Branching selects the uncovered team a candidate is split on.
type Branching int

const (
	// BranchLowestID picks the uncovered team with the smallest ID.
	BranchLowestID Branching = iota
	// BranchHighestDegree picks the uncovered team whose endpoints touch the
	// most uncovered teams (ties: smallest ID).
	BranchHighestDegree
)

// String returns the configuration name of the rule.
func (b Branching) String() string {
	switch b {
	case BranchLowestID:
		return "lowest-id"
	case BranchHighestDegree:
		return "highest-degree"
	default:
		return fmt.Sprintf("Branching(%d)", int(b))
	}
}

// ParseBranching maps a configuration name back to a Branching rule.
func ParseBranching(name string) (Branching, error) {
	switch name {
	case "lowest-id", "":
		return BranchLowestID, nil
	case "highest-degree":
		return BranchHighestDegree, nil
	default:
		return 0, fmt.Errorf("%w: unknown branching rule %q", ErrOptionViolation, name)
	}
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the parameters of SolveComponent and Solve.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once every
	// ctxCheckInterval search steps (seeds and pops).
	Ctx context.Context

	// MaxExpansions, if > 0, bounds the expansions of one component search.
	// 0 means unlimited.
	MaxExpansions int

	// Branching is the rule used to choose the team a candidate splits on.
	Branching Branching

	// Workers is the number of components Solve searches concurrently.
	// 1 means strictly sequential.
	Workers int

	// Logger receives per-component debug records.
	Logger *slog.Logger

	// OnComponent is called by Solve once per component, in component order,
	// after all components are solved.
	OnComponent func(index int, r *Result)

	// internal error recorded during option parsing
	err error
}

// ctxCheckInterval is the number of search steps between context checks.
const ctxCheckInterval = 1024

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion budget
//   - BranchLowestID
//   - one worker (sequential)
//   - a logger that discards everything
//   - a no-op OnComponent hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Branching:     BranchLowestID,
		Workers:       1,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnComponent:   func(int, *Result) {},
	}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expansions per component search.
//
//	n > 0:  limit to n
//	n == 0: explicit no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithBranching selects the branching rule.
func WithBranching(b Branching) Option {
	return func(o *Options) {
		if b != BranchLowestID && b != BranchHighestDegree {
			o.err = fmt.Errorf("%w: unknown branching rule %d", ErrOptionViolation, int(b))
			return
		}
		o.Branching = b
	}
}

// WithWorkers sets how many components Solve searches at once.
// n == 0 uses runtime.GOMAXPROCS(0); n < 0 is invalid.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithLogger routes debug records to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnComponent registers a per-component callback for Solve.
func WithOnComponent(fn func(index int, r *Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComponent = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and returns the last
// recorded violation, if any.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
