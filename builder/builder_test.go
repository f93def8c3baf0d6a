package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bicover/builder"
	"github.com/katalvlaran/bicover/team"
)

func TestRandomTeams_UniqueAndOnSides(t *testing.T) {
	const side, count = 20, 300
	s, err := builder.RandomTeams(side, count, builder.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, count, s.Len())

	seen := make(map[team.Team]bool, count)
	for _, tm := range s.Teams() {
		assert.False(t, seen[tm], "duplicate team %v", tm)
		seen[tm] = true
		assert.True(t, tm.A >= 0 && tm.A < side, "A=%d", tm.A)
		assert.True(t, tm.B >= side && tm.B < 2*side, "B=%d", tm.B)
		assert.NotEqual(t, tm.A, tm.B)
	}
}

func TestRandomTeams_Deterministic(t *testing.T) {
	a, err := builder.RandomTeams(50, 100, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.RandomTeams(50, 100, builder.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a.Teams(), b.Teams())

	c, err := builder.RandomTeams(50, 100, builder.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Teams(), c.Teams())
}

func TestRandomTeams_SeedZeroIsReproducible(t *testing.T) {
	a, err := builder.RandomTeams(10, 30, builder.WithSeed(0))
	require.NoError(t, err)
	b, err := builder.RandomTeams(10, 30, builder.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, a.Teams(), b.Teams())
}

func TestRandomTeams_FullUniverse(t *testing.T) {
	s, err := builder.RandomTeams(4, 16, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 16, s.Len())
}

func TestRandomTeams_Errors(t *testing.T) {
	_, err := builder.RandomTeams(0, 1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomTeams(3, -1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomTeams(3, 10, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooManyTeams)

	_, err = builder.RandomTeams(3, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	// 3 distinct pairs cannot be drawn in 2 draws.
	_, err = builder.RandomTeams(3, 3, builder.WithSeed(1), builder.WithMaxAttempts(2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxAttempts(0) })
}

func TestShapes(t *testing.T) {
	star, err := builder.Star(4)
	require.NoError(t, err)
	assert.Equal(t, []team.Team{{A: 0, B: 4}, {A: 0, B: 5}, {A: 0, B: 6}, {A: 0, B: 7}}, star.Teams())

	k22, err := builder.CompleteBipartite(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []team.Team{{A: 0, B: 2}, {A: 0, B: 3}, {A: 1, B: 2}, {A: 1, B: 3}}, k22.Teams())

	k13, err := builder.CompleteBipartite(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, k13.SideSize())
	assert.Equal(t, 3, k13.Len())

	path, err := builder.Path(4)
	require.NoError(t, err)
	assert.Equal(t, []team.Team{{A: 0, B: 3}, {A: 1, B: 3}, {A: 1, B: 4}, {A: 2, B: 4}}, path.Teams())

	m, err := builder.Matching(3)
	require.NoError(t, err)
	assert.Equal(t, []team.Team{{A: 0, B: 3}, {A: 1, B: 4}, {A: 2, B: 5}}, m.Teams())
}

func TestShapes_Errors(t *testing.T) {
	_, err := builder.Star(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.CompleteBipartite(0, 2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Path(-1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Matching(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}
