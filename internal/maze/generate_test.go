package maze

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRejectsSmallDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{name: "2x2", width: 2, height: 2},
		{name: "narrow", width: 2, height: 9},
		{name: "short", width: 9, height: 1},
		{name: "zero", width: 0, height: 0},
		{name: "negative", width: -5, height: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Generate(tt.width, tt.height, rand.New(rand.NewSource(1)))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDimensions))
			assert.Nil(t, grid)
		})
	}
}

func TestGenerateRejectsNilSource(t *testing.T) {
	_, err := Generate(5, 5, nil)
	require.Error(t, err)
}

func TestGeneratePerfectMaze(t *testing.T) {
	sizes := [][2]int{{3, 3}, {5, 5}, {7, 3}, {25, 17}, {41, 41}, {11, 31}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			grid, err := Generate(size[0], size[1], rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			require.NoError(t, Verify(grid), "size %v seed %d\n%s", size, seed, grid)

			stats := grid.Stats()
			assert.Equal(t, stats.Chambers, stats.OpenChambers)
			assert.Equal(t, stats.OpenChambers-1, stats.OpenCorridors)
		}
	}
}

func TestGenerateEvenDimensionsKeepBorder(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		grid, err := Generate(10, 8, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.NoError(t, Verify(grid), "seed %d\n%s", seed, grid)
		for y := 0; y < grid.Height(); y++ {
			assert.False(t, grid.IsOpen(Point{X: grid.Width() - 1, Y: y}))
			assert.False(t, grid.IsOpen(Point{X: grid.Width() - 2, Y: y}))
		}
	}
}

func TestGenerateEveryChamberReachable(t *testing.T) {
	grid, err := Generate(21, 15, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	stats := grid.Stats()
	assert.Equal(t, stats.Chambers, grid.reachableChambers(Point{X: 1, Y: 1}))
	assert.Equal(t, stats.Chambers, grid.reachableChambers(Point{X: 19, Y: 13}))
}

func TestGenerateOpenCellsRespectParity(t *testing.T) {
	grid, err := Generate(15, 9, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := Point{X: x, Y: y}
			if p.IsPillar() {
				assert.False(t, grid.IsOpen(p), "pillar %v open", p)
			}
		}
	}
}

func TestGenerateDeterministicUnderFixedSeed(t *testing.T) {
	a, err := Generate(25, 17, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Generate(25, 17, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateDiffersAcrossSeeds(t *testing.T) {
	a, err := Generate(25, 17, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	b, err := Generate(25, 17, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), b.String())
}

func TestGenerateSmallestMaze(t *testing.T) {
	grid, err := Generate(3, 3, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	assert.Equal(t, "###\n# #\n###\n", grid.String())
}
