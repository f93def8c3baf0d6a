package team_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/team"
)

func TestBuildIndex(t *testing.T) {
	// 0 - 3, 0 - 4, 1 - 3
	s, err := team.NewStore(3, []team.Team{{A: 0, B: 3}, {A: 0, B: 4}, {A: 1, B: 3}})
	require.NoError(t, err)

	ix := team.BuildIndex(s)
	assert.Equal(t, 6, ix.Employees())
	assert.Equal(t, []int{0, 1}, ix.Teams(0))
	assert.Equal(t, []int{2}, ix.Teams(1))
	assert.Empty(t, ix.Teams(2))
	assert.Equal(t, []int{0, 2}, ix.Teams(3))
	assert.Equal(t, []int{1}, ix.Teams(4))
	assert.Empty(t, ix.Teams(5))
	assert.Nil(t, ix.Teams(-1))
	assert.Nil(t, ix.Teams(6))
}

func TestBuildIndex_Deterministic(t *testing.T) {
	s, err := team.NewStore(2, []team.Team{{A: 1, B: 2}, {A: 0, B: 2}, {A: 1, B: 3}})
	require.NoError(t, err)

	a, b := team.BuildIndex(s), team.BuildIndex(s)
	for e := 0; e < s.EmployeeCount(); e++ {
		assert.Equal(t, a.Teams(e), b.Teams(e), "employee %d", e)
	}
}
