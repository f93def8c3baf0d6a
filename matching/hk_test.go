package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/builder"
)

func TestMaximum_MatesAreConsistent(t *testing.T) {
	s, err := builder.RandomTeams(40, 120, builder.WithSeed(5))
	require.NoError(t, err)

	m := Maximum(s)
	side := s.SideSize()
	matched := 0
	for a, tid := range m.mateA {
		if tid == -1 {
			continue
		}
		matched++
		tm := s.Team(tid)
		require.Equal(t, a, tm.A, "team %d is not incident to %d", tid, a)
		assert.Equal(t, tid, m.mateB[tm.B-side], "b side of team %d disagrees", tid)
	}
	assert.Equal(t, m.size, matched)

	for b, tid := range m.mateB {
		if tid != -1 {
			assert.Equal(t, side+b, s.Team(tid).B)
		}
	}
}
