package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/builder"
	"github.com/katalvlaran/bicover/cover"
)

func TestVerify(t *testing.T) {
	st, err := builder.CompleteBipartite(2, 2) // (0,2) (0,3) (1,2) (1,3)
	require.NoError(t, err)

	assert.True(t, cover.Verify(st, []int{0, 1}))
	assert.True(t, cover.Verify(st, []int{2, 3}))
	assert.True(t, cover.Verify(st, []int{0, 1, 2, 3}))
	assert.False(t, cover.Verify(st, []int{0, 2}))
	assert.False(t, cover.Verify(st, nil))

	assert.Equal(t, []int{3}, cover.Uncovered(st, []int{0, 2}))
	assert.Equal(t, []int{0, 1, 2, 3}, cover.Uncovered(st, []int{-1, 99}))
}
