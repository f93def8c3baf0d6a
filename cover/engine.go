// SPDX-License-Identifier: MIT
// Package: bicover/cover
//
// engine.go: per-component best-first search engine.

package cover

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/bicover/team"
)

// searchEngine holds the data of one component search.
// Teams and employees are renumbered to dense local slots so that the
// bitsets of every candidate are sized to the component, not the store.
type searchEngine struct {
	opts Options

	// Component data (read-only after newSearchEngine).
	teamIDs   []int     // local team slot → global team ID (ascending)
	ends      [][2]uint // local team slot → local employee slots (a, b)
	employees []int     // local employee slot → global employee ID
	incident  [][]uint  // local employee slot → local team slots

	// Search state.
	queue      candidateQueue
	seq        uint64
	expansions int
	seeds      int
	steps      int // seeds + pops, paces the context checks
}

// newSearchEngine renumbers the component ids of s into local slots.
// ids must be valid team IDs; they are copied and sorted.
func newSearchEngine(s *team.Store, ids []int, opts Options) (*searchEngine, error) {
	e := &searchEngine{opts: opts}
	e.teamIDs = slices.Clone(ids)
	slices.Sort(e.teamIDs)
	e.ends = make([][2]uint, len(e.teamIDs))

	local := make(map[int]uint, 2*len(e.teamIDs))
	slot := func(emp int) uint {
		if l, ok := local[emp]; ok {
			return l
		}
		l := uint(len(e.employees))
		local[emp] = l
		e.employees = append(e.employees, emp)
		e.incident = append(e.incident, nil)

		return l
	}

	for i, id := range e.teamIDs {
		if id < 0 || id >= s.Len() {
			return nil, fmt.Errorf("%w: %d (store has %d teams)", ErrUnknownTeam, id, s.Len())
		}
		if i > 0 && e.teamIDs[i-1] == id {
			return nil, fmt.Errorf("%w: %d listed twice", ErrUnknownTeam, id)
		}
		t := s.Team(id)
		a, b := slot(t.A), slot(t.B)
		e.ends[i] = [2]uint{a, b}
		e.incident[a] = append(e.incident[a], uint(i))
		e.incident[b] = append(e.incident[b], uint(i))
	}

	return e, nil
}

// nextSeq returns a fresh creation sequence number.
func (e *searchEngine) nextSeq() uint64 {
	e.seq++
	return e.seq
}

// expand recomputes c.uncovered from scratch: a team is uncovered iff
// neither endpoint is selected.
func (e *searchEngine) expand(c *candidate) {
	for t, ab := range e.ends {
		if c.selected.Test(ab[0]) || c.selected.Test(ab[1]) {
			c.uncovered.Clear(uint(t))
		} else {
			c.uncovered.Set(uint(t))
		}
	}
	c.size = int(c.selected.Count())
	c.remaining = int(c.uncovered.Count())
	e.expansions++
}

// seed returns the expanded single-employee candidate {emp}.
func (e *searchEngine) seed(emp uint) *candidate {
	c := &candidate{
		selected:  bitset.New(uint(len(e.employees))),
		uncovered: bitset.New(uint(len(e.ends))),
		seq:       e.nextSeq(),
	}
	c.selected.Set(emp)
	e.expand(c)
	e.seeds++

	return c
}

// branch returns the expanded child parent+{emp}.
func (e *searchEngine) branch(parent *candidate, emp uint) *candidate {
	c := parent.clone(e.nextSeq())
	c.selected.Set(emp)
	e.expand(c)

	return c
}

// representative picks the uncovered team c is split on.
// c must not be complete.
func (e *searchEngine) representative(c *candidate) uint {
	first, _ := c.uncovered.NextSet(0)
	if e.opts.Branching != BranchHighestDegree {
		return first
	}

	best, bestScore := first, -1
	for t, ok := first, true; ok; t, ok = c.uncovered.NextSet(t + 1) {
		score := e.uncoveredDegree(c, e.ends[t][0]) + e.uncoveredDegree(c, e.ends[t][1])
		if score > bestScore {
			best, bestScore = t, score
		}
	}

	return best
}

// uncoveredDegree counts the uncovered teams incident to employee slot emp.
func (e *searchEngine) uncoveredDegree(c *candidate, emp uint) int {
	n := 0
	for _, t := range e.incident[emp] {
		if c.uncovered.Test(t) {
			n++
		}
	}

	return n
}

// exceeded enforces the expansion budget on every call and the context
// once every ctxCheckInterval calls. It runs after each seed and before
// each pop, so neither phase can outrun the caller's limits.
func (e *searchEngine) exceeded() error {
	if e.opts.MaxExpansions > 0 && e.expansions > e.opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions over %d teams (limit %d)",
			ErrBudgetExceeded, e.expansions, len(e.ends), e.opts.MaxExpansions)
	}
	e.steps++
	if e.steps%ctxCheckInterval == 0 {
		if err := e.opts.Ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}

// run performs the seed phase and the best-first loop and returns the first
// complete candidate.
func (e *searchEngine) run() (*candidate, error) {
	if err := e.opts.Ctx.Err(); err != nil {
		return nil, err
	}
	if len(e.ends) == 0 {
		return &candidate{selected: bitset.New(0), uncovered: bitset.New(0)}, nil
	}

	e.queue = make(candidateQueue, 0, 2*len(e.ends))
	for _, ab := range e.ends {
		for _, emp := range ab {
			c := e.seed(emp)
			if c.complete() {
				return c, nil
			}
			if err := e.exceeded(); err != nil {
				return nil, err
			}
			e.queue = append(e.queue, c)
		}
	}
	heap.Init(&e.queue)

	for e.queue.Len() > 0 {
		if err := e.exceeded(); err != nil {
			return nil, err
		}
		c := heap.Pop(&e.queue).(*candidate)
		t := e.representative(c)
		for _, emp := range e.ends[t] {
			child := e.branch(c, emp)
			if child.complete() {
				return child, nil
			}
			heap.Push(&e.queue, child)
		}
	}

	// Each pop pushes two children or returns; an empty heap means a bug.
	return nil, fmt.Errorf("%w: search queue drained over %d teams", ErrIncompleteCover, len(e.ends))
}

// globalEmployees maps the selected local slots of c to ascending global IDs.
func (e *searchEngine) globalEmployees(c *candidate) []int {
	out := make([]int, 0, c.size)
	for i, ok := c.selected.NextSet(0); ok; i, ok = c.selected.NextSet(i + 1) {
		out = append(out, e.employees[i])
	}
	slices.Sort(out)

	return out
}
