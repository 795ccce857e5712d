package game

import (
	"strings"

	"github.com/verte-zerg/tuimaze/internal/maze"
)

// Direction is one of the four cardinal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Delta returns the unit step for d.
func (d Direction) Delta() maze.Point {
	switch d {
	case Up:
		return maze.Point{X: 0, Y: -1}
	case Down:
		return maze.Point{X: 0, Y: 1}
	case Left:
		return maze.Point{X: -1, Y: 0}
	case Right:
		return maze.Point{X: 1, Y: 0}
	default:
		return maze.Point{}
	}
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseDirection maps arrow names, WASD and hjkl to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w", "k":
		return Up, true
	case "down", "s", "j":
		return Down, true
	case "left", "a", "h":
		return Left, true
	case "right", "d", "l":
		return Right, true
	default:
		return 0, false
	}
}
