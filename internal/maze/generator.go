package maze

import (
	"fmt"
	"math/rand"

	"github.com/verte-zerg/tuimaze/internal/random"
)

// Generator produces a sequence of mazes, each built from its own seed so
// that any maze can be rebuilt later with FromSeed.
type Generator struct {
	rnd     *rand.Rand
	pending []int64
}

// New returns a Generator seeded from crypto/rand.
func New() (*Generator, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}, nil
}

// NewWithSeed returns a Generator whose first maze is built from seed.
// Later mazes use seeds drawn from a PRNG seeded with the same value.
func NewWithSeed(seed int64) *Generator {
	return &Generator{
		rnd:     rand.New(rand.NewSource(seed)),
		pending: []int64{seed},
	}
}

// Generate builds the next maze.
func (g *Generator) Generate(width, height int) (*Grid, error) {
	return FromSeed(width, height, g.nextSeed())
}

func (g *Generator) nextSeed() int64 {
	if len(g.pending) > 0 {
		seed := g.pending[0]
		g.pending = g.pending[1:]
		return seed
	}
	return g.rnd.Int63()
}

// FromSeed builds the maze for a given seed.
func FromSeed(width, height int, seed int64) (*Grid, error) {
	grid, err := Generate(width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate maze from seed %d: %w", seed, err)
	}
	grid.seed = seed
	return grid, nil
}
