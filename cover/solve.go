// SPDX-License-Identifier: MIT
// Package: bicover/cover
//
// solve.go: SolveComponent, Solve and result aggregation.

package cover

import (
	"log/slog"
	"slices"
	"time"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bicover/partition"
	"github.com/katalvlaran/bicover/team"
)

// Result is the cover found for one component.
type Result struct {
	// TeamIDs are the component's team IDs, ascending.
	TeamIDs []int
	// Employees is the covering set, ascending global employee IDs.
	Employees []int
	// Expansions counts every uncovered-set recomputation (seeds included).
	Expansions int
	// Seeds counts the single-employee seeds expanded before the loop.
	Seeds int
	// Elapsed is the wall time of the search.
	Elapsed time.Duration
}

// Size returns the number of selected employees.
func (r *Result) Size() int { return len(r.Employees) }

// Solution is the aggregated cover of a whole store.
type Solution struct {
	// Employees is the union of every component cover, ascending.
	Employees []int
	// Components holds one Result per component, in partition order.
	Components []*Result
	// Elapsed is the wall time of partitioning, search and aggregation.
	Elapsed time.Duration
}

// Size returns the number of selected employees.
func (s *Solution) Size() int { return len(s.Employees) }

// SolveComponent searches a cover for the teams ids of s. ids is expected to
// be a connected component (see package partition); any set of distinct IDs
// is accepted, and the result then covers exactly those teams.
//
// Returns ErrNilStore, ErrUnknownTeam, ErrOptionViolation, ErrBudgetExceeded
// or the context error.
func SolveComponent(s *team.Store, ids []int, opts ...Option) (*Result, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return solveComponent(s, ids, o)
}

func solveComponent(s *team.Store, ids []int, o Options) (*Result, error) {
	start := time.Now()
	e, err := newSearchEngine(s, ids, o)
	if err != nil {
		return nil, err
	}
	c, err := e.run()
	if err != nil {
		return nil, err
	}

	return &Result{
		TeamIDs:    e.teamIDs,
		Employees:  e.globalEmployees(c),
		Expansions: e.expansions,
		Seeds:      e.seeds,
		Elapsed:    time.Since(start),
	}, nil
}

// Solve partitions s into components, searches each one and returns the
// union of the component covers. With WithWorkers(n > 1) up to n components
// are searched at once; the first failure cancels the others. The output
// does not depend on the worker count.
//
// The union is checked with Verify; a failure there is reported as
// ErrIncompleteCover.
func Solve(s *team.Store, opts ...Option) (*Solution, error) {
	if s == nil {
		return nil, ErrNilStore
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	comps := partition.Components(s)
	if o.Logger.Enabled(o.Ctx, slog.LevelDebug) {
		o.Logger.Debug("partitioned teams",
			"teams", s.Len(),
			"components", len(comps),
			"largest", slices.Max(append(partition.Sizes(comps), 0)))
	}

	results := make([]*Result, len(comps))
	if o.Workers <= 1 {
		for i, ids := range comps {
			if results[i], err = solveComponent(s, ids, o); err != nil {
				return nil, err
			}
			logComponent(o, i, results[i])
		}
	} else {
		g, gctx := errgroup.WithContext(o.Ctx)
		g.SetLimit(o.Workers)
		wo := o
		wo.Ctx = gctx
		for i, ids := range comps {
			i, ids := i, ids
			g.Go(func() error {
				r, err := solveComponent(s, ids, wo)
				if err != nil {
					return err
				}
				results[i] = r
				logComponent(wo, i, r)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	union := bitset.New(uint(s.EmployeeCount()))
	for _, r := range results {
		for _, emp := range r.Employees {
			union.Set(uint(emp))
		}
	}
	sol := &Solution{Components: results, Employees: make([]int, 0, union.Count())}
	for i, ok := union.NextSet(0); ok; i, ok = union.NextSet(i + 1) {
		sol.Employees = append(sol.Employees, int(i))
	}

	if missing := Uncovered(s, sol.Employees); len(missing) > 0 {
		return nil, fmtIncomplete(missing)
	}
	sol.Elapsed = time.Since(start)
	o.Logger.Debug("solved", "employees", sol.Size(), "elapsed", sol.Elapsed)

	for i, r := range results {
		o.OnComponent(i, r)
	}

	return sol, nil
}

func logComponent(o Options, i int, r *Result) {
	o.Logger.Debug("component solved",
		"component", i,
		"teams", len(r.TeamIDs),
		"employees", r.Size(),
		"expansions", r.Expansions,
		"elapsed", r.Elapsed)
}
