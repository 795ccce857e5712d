package maze

import (
	"errors"
	"fmt"
)

// MinDimension is the smallest width or height Generate accepts.
const MinDimension = 3

// ErrInvalidDimensions is returned when a maze cannot be built at the requested size.
var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Source is the random source consumed by Generate. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Seeding order for frontier walls around a freshly opened chamber.
var chamberSteps = [4]Point{{X: 0, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: -2}, {X: -2, Y: 0}}

// Generate builds a perfect maze with randomized Prim's algorithm.
//
// The same source state, consumed in the same order, yields the same grid:
// one Intn call each for the start column and row, then one Intn call per
// frontier pick.
func Generate(width, height int, rng Source) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidDimensions, width, height, MinDimension, MinDimension)
	}
	if rng == nil {
		return nil, fmt.Errorf("maze random source is nil")
	}

	g := newGrid(width, height)
	start := Point{
		X: 1 + 2*rng.Intn((width-1)/2),
		Y: 1 + 2*rng.Intn((height-1)/2),
	}
	g.cells[start.Y][start.X] = Open

	walls := newFrontier()
	g.seedFrontier(start, walls)

	for walls.size() > 0 {
		wall := walls.pick(rng)
		a, b, ok := g.dividedChambers(wall)
		if !ok {
			continue
		}
		aOpen := g.cells[a.Y][a.X] == Open
		bOpen := g.cells[b.Y][b.X] == Open
		if aOpen == bOpen {
			continue
		}
		next := a
		if aOpen {
			next = b
		}
		g.cells[wall.Y][wall.X] = Open
		g.cells[next.Y][next.X] = Open
		g.seedFrontier(next, walls)
	}
	return g, nil
}

func (g *Grid) seedFrontier(chamber Point, walls *frontier) {
	for _, step := range chamberSteps {
		wall := Point{X: chamber.X + step.X/2, Y: chamber.Y + step.Y/2}
		if wall.X <= 0 || wall.X >= g.width-1 || wall.Y <= 0 || wall.Y >= g.height-1 {
			continue
		}
		walls.add(wall)
	}
}

// dividedChambers returns the two chambers separated by wall. Both must lie
// inside the border ring.
func (g *Grid) dividedChambers(wall Point) (Point, Point, bool) {
	var cells []Point
	if wall.Y%2 == 0 {
		cells = append(cells, Point{X: wall.X, Y: wall.Y - 1}, Point{X: wall.X, Y: wall.Y + 1})
	}
	if wall.X%2 == 0 {
		cells = append(cells, Point{X: wall.X - 1, Y: wall.Y}, Point{X: wall.X + 1, Y: wall.Y})
	}
	inside := cells[:0]
	for _, c := range cells {
		if c.X >= 1 && c.X <= g.width-2 && c.Y >= 1 && c.Y <= g.height-2 {
			inside = append(inside, c)
		}
	}
	if len(inside) != 2 {
		return Point{}, Point{}, false
	}
	return inside[0], inside[1], true
}
