package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorFirstMazeUsesSeed(t *testing.T) {
	gen := NewWithSeed(1234)
	grid, err := gen.Generate(25, 17)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), grid.Seed())

	again, err := FromSeed(25, 17, 1234)
	require.NoError(t, err)
	assert.Equal(t, grid.String(), again.String())
}

func TestGeneratorSequenceReproducible(t *testing.T) {
	a := NewWithSeed(77)
	b := NewWithSeed(77)
	for i := 0; i < 3; i++ {
		ga, err := a.Generate(15, 11)
		require.NoError(t, err)
		gb, err := b.Generate(15, 11)
		require.NoError(t, err)
		assert.Equal(t, ga.Seed(), gb.Seed())
		assert.Equal(t, ga.String(), gb.String())
	}
}

func TestGeneratorReplaysStoredSeed(t *testing.T) {
	gen, err := New()
	require.NoError(t, err)
	first, err := gen.Generate(21, 21)
	require.NoError(t, err)
	second, err := gen.Generate(21, 21)
	require.NoError(t, err)
	assert.NotEqual(t, first.String(), second.String())

	replay, err := FromSeed(21, 21, second.Seed())
	require.NoError(t, err)
	assert.Equal(t, second.String(), replay.String())
}

func TestGeneratorPropagatesInvalidDimensions(t *testing.T) {
	gen := NewWithSeed(1)
	_, err := gen.Generate(2, 2)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestFrontierSetSemantics(t *testing.T) {
	f := newFrontier()
	assert.True(t, f.add(Point{X: 1, Y: 2}))
	assert.False(t, f.add(Point{X: 1, Y: 2}))
	assert.True(t, f.add(Point{X: 2, Y: 1}))
	assert.Equal(t, 2, f.size())

	rng := rand.New(rand.NewSource(3))
	first := f.pick(rng)
	assert.False(t, f.has(first))
	assert.Equal(t, 1, f.size())
	second := f.pick(rng)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 0, f.size())
	assert.True(t, f.add(first))
}
