package cover

import (
	"container/heap"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/team"
)

func newTestEngine(t *testing.T, side int, teams []team.Team, b Branching) *searchEngine {
	t.Helper()
	s, err := team.NewStore(side, teams)
	require.NoError(t, err)
	o := DefaultOptions()
	o.Branching = b
	e, err := newSearchEngine(s, s.IDs(), o)
	require.NoError(t, err)

	return e
}

// TestExpand_CoversEveryIncidentTeam selects a hub inside a branch and
// expects every team of the hub to leave the uncovered set at once.
func TestExpand_CoversEveryIncidentTeam(t *testing.T) {
	// 0 - 3, 1 - 3, 2 - 3, 2 - 4
	e := newTestEngine(t, 3, []team.Team{{A: 0, B: 3}, {A: 1, B: 3}, {A: 2, B: 3}, {A: 2, B: 4}}, BranchLowestID)

	c := e.seed(e.ends[3][1]) // {4}
	assert.Equal(t, 1, c.size)
	assert.Equal(t, 3, c.remaining)

	child := e.branch(c, e.ends[0][1]) // +{3}
	assert.Equal(t, 2, child.size)
	assert.True(t, child.complete())

	// the parent is untouched by branching
	assert.Equal(t, 1, c.size)
	assert.Equal(t, 3, c.remaining)
}

func TestCandidateOrder(t *testing.T) {
	mk := func(size, remaining int, seq uint64) *candidate {
		return &candidate{selected: bitset.New(1), uncovered: bitset.New(1), size: size, remaining: remaining, seq: seq}
	}
	q := candidateQueue{}
	heap.Push(&q, mk(2, 0, 1))
	heap.Push(&q, mk(1, 5, 2))
	heap.Push(&q, mk(1, 3, 4))
	heap.Push(&q, mk(1, 3, 3))

	var got []uint64
	for q.Len() > 0 {
		got = append(got, heap.Pop(&q).(*candidate).seq)
	}
	assert.Equal(t, []uint64{3, 4, 2, 1}, got)
}

func TestRepresentative(t *testing.T) {
	// team 0 (0,4) is isolated from the hub 3 of teams 1..3
	teams := []team.Team{{A: 0, B: 4}, {A: 1, B: 3}, {A: 2, B: 3}, {A: 0, B: 3}}

	low := newTestEngine(t, 3, teams, BranchLowestID)
	c := low.seed(low.ends[1][0]) // {1}: covers team 1 only
	assert.Equal(t, uint(0), low.representative(c))

	high := newTestEngine(t, 3, teams, BranchHighestDegree)
	c = high.seed(high.ends[1][0])
	// team 3 = (0,3): employee 0 has uncovered teams 0,3 and employee 3 has 2,3
	assert.Equal(t, uint(3), high.representative(c))
}

func TestSeqIsMonotonic(t *testing.T) {
	e := newTestEngine(t, 2, []team.Team{{A: 0, B: 2}, {A: 1, B: 3}}, BranchLowestID)
	a := e.seed(e.ends[0][0])
	b := e.seed(e.ends[0][1])
	c := e.branch(a, e.ends[1][0])
	assert.Less(t, a.seq, b.seq)
	assert.Less(t, b.seq, c.seq)
	assert.Equal(t, 3, e.expansions)
	assert.Equal(t, 2, e.seeds)
}

func TestRun_BudgetStopsSeedPhase(t *testing.T) {
	var teams []team.Team
	for a := 0; a < 20; a++ {
		for b := 20; b < 40; b++ {
			teams = append(teams, team.Team{A: a, B: b})
		}
	}
	e := newTestEngine(t, 20, teams, BranchLowestID)
	e.opts.MaxExpansions = 10

	_, err := e.run()
	require.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, 11, e.expansions)
	assert.Equal(t, 11, e.seeds)
	assert.Equal(t, 10, e.queue.Len(), "only seeds within budget are queued")
}
