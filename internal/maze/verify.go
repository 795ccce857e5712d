package maze

import (
	"errors"
	"fmt"
)

// ErrNotPerfect is returned by Verify when a grid is not a perfect maze.
var ErrNotPerfect = errors.New("maze is not perfect")

var unitSteps = [4]Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// Verify checks the structural invariants of a generated maze: border and
// pillars are walls, every chamber is open and reachable from (1,1), and
// the carved corridors form a spanning tree over the chambers.
func Verify(g *Grid) error {
	if g == nil {
		return fmt.Errorf("%w: grid is nil", ErrNotPerfect)
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y}
			open := g.cells[y][x] == Open
			border := x == 0 || y == 0 || x == g.width-1 || y == g.height-1
			switch {
			case border && open:
				return fmt.Errorf("%w: border cell (%d,%d) is open", ErrNotPerfect, x, y)
			case p.IsPillar() && open:
				return fmt.Errorf("%w: pillar (%d,%d) is open", ErrNotPerfect, x, y)
			case p.IsChamber() && !border && !open:
				return fmt.Errorf("%w: chamber (%d,%d) is closed", ErrNotPerfect, x, y)
			}
		}
	}

	stats := g.Stats()
	if stats.OpenCorridors != stats.OpenChambers-1 {
		return fmt.Errorf("%w: %d corridors for %d chambers", ErrNotPerfect, stats.OpenCorridors, stats.OpenChambers)
	}

	start := Point{X: 1, Y: 1}
	reached := g.reachableChambers(start)
	if reached != stats.OpenChambers {
		return fmt.Errorf("%w: %d of %d chambers reachable from (1,1)", ErrNotPerfect, reached, stats.OpenChambers)
	}
	return nil
}

// reachableChambers counts chambers connected to start through open cells.
func (g *Grid) reachableChambers(start Point) int {
	if !g.IsOpen(start) {
		return 0
	}
	seen := make([][]bool, g.height)
	for y := range seen {
		seen[y] = make([]bool, g.width)
	}
	queue := []Point{start}
	seen[start.Y][start.X] = true
	count := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.IsChamber() {
			count++
		}
		for _, step := range unitSteps {
			n := p.Add(step)
			if !g.IsOpen(n) || seen[n.Y][n.X] {
				continue
			}
			seen[n.Y][n.X] = true
			queue = append(queue, n)
		}
	}
	return count
}
