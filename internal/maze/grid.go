// Package maze builds perfect mazes on a WALL/OPEN grid.
//
// Cells whose coordinates are both odd are chambers. Cells with exactly one
// odd coordinate are connecting walls, which become corridors when carved.
// Cells whose coordinates are both even are pillars and stay walls.
package maze

import "strings"

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Wall blocks movement.
	Wall Cell = iota
	// Open can be walked on.
	Open
)

// Point is a discrete grid coordinate. X is the column, Y the row.
type Point struct {
	X int
	Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// IsChamber reports whether p has chamber parity.
func (p Point) IsChamber() bool {
	return p.X%2 == 1 && p.Y%2 == 1
}

// IsPillar reports whether p has pillar parity.
func (p Point) IsPillar() bool {
	return p.X%2 == 0 && p.Y%2 == 0
}

// Grid is a rectangular maze. Rows are indexed by Y.
type Grid struct {
	width  int
	height int
	seed   int64
	cells  [][]Cell
}

func newGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Seed returns the seed the grid was generated from, or 0 when it was built
// from a caller-supplied random source.
func (g *Grid) Seed() int64 {
	return g.seed
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. The second result is false when p is outside the grid.
func (g *Grid) At(p Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Wall, false
	}
	return g.cells[p.Y][p.X], true
}

// IsOpen reports whether p is inside the grid and open.
func (g *Grid) IsOpen(p Point) bool {
	cell, ok := g.At(p)
	return ok && cell == Open
}

// Open marks p as open. It returns false when p is outside the grid.
func (g *Grid) Open(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y][p.X] = Open
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := newGrid(g.width, g.height)
	out.seed = g.seed
	for y := range g.cells {
		copy(out.cells[y], g.cells[y])
	}
	return out
}

// Stats counts chambers and corridors.
type Stats struct {
	Chambers      int
	OpenChambers  int
	OpenCorridors int
}

// Stats walks the grid and counts chambers and carved corridors.
func (g *Grid) Stats() Stats {
	var s Stats
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case p.IsChamber():
				if x < g.width-1 && y < g.height-1 {
					s.Chambers++
				}
				if g.cells[y][x] == Open {
					s.OpenChambers++
				}
			case !p.IsPillar():
				if g.cells[y][x] == Open {
					s.OpenCorridors++
				}
			}
		}
	}
	return s
}

// String renders the grid with '#' for walls and ' ' for open cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == Open {
				b.WriteByte(' ')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
