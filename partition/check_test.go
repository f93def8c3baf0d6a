package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bicover/partition"
	"github.com/katalvlaran/bicover/team"
)

func TestCheck_Violations(t *testing.T) {
	// 0 - 3, 1 - 3, 2 - 5
	s := mustStore(t, 3, []team.Team{{A: 0, B: 3}, {A: 1, B: 3}, {A: 2, B: 5}})

	assert.NoError(t, partition.Check(s, [][]int{{0, 1}, {2}}))
	assert.ErrorIs(t, partition.Check(s, [][]int{{0, 1}}), partition.ErrNotCovering)
	assert.ErrorIs(t, partition.Check(s, [][]int{{0, 1}, {2, 7}}), partition.ErrNotCovering)
	assert.ErrorIs(t, partition.Check(s, [][]int{{0, 1}, {1, 2}}), partition.ErrOverlap)
	assert.ErrorIs(t, partition.Check(s, [][]int{{0}, {1}, {2}}), partition.ErrNotClosed)
}
