// Package game holds the single-player maze session: player position, move
// legality, win detection and reset.
package game

import (
	"fmt"
	"time"

	"github.com/verte-zerg/tuimaze/internal/maze"
)

// Status is the session state.
type Status int

const (
	// Playing accepts moves.
	Playing Status = iota
	// Won is terminal until the next Reset.
	Won
)

func (s Status) String() string {
	if s == Won {
		return "won"
	}
	return "playing"
}

// Start is where the player stands after every reset.
var Start = maze.Point{X: 1, Y: 1}

// MazeSource builds a fresh maze for a reset.
type MazeSource interface {
	Generate(width, height int) (*maze.Grid, error)
}

// Clock returns the current time. Sessions never read the wall clock directly.
type Clock func() time.Time

// MoveResult describes the outcome of AttemptMove. Moved is false for a
// blocked or ignored move.
type MoveResult struct {
	Moved bool
	Won   bool
	From  maze.Point
	To    maze.Point
}

// Snapshot is a read-only copy of the session for renderers.
type Snapshot struct {
	Grid      *maze.Grid
	Player    maze.Point
	Previous  maze.Point
	Goal      maze.Point
	Moves     int
	Status    Status
	StartedAt time.Time
	EndedAt   time.Time
}

// Session is one maze game. It is not safe for concurrent use; a single
// driver goroutine owns it.
type Session struct {
	width  int
	height int
	source MazeSource
	now    Clock

	grid      *maze.Grid
	player    maze.Point
	previous  maze.Point
	goal      maze.Point
	moves     int
	status    Status
	startedAt time.Time
	endedAt   time.Time
}

// New creates a session and generates its first maze. Width and height
// must be odd so the goal lands on a chamber the generator connects.
func New(width, height int, source MazeSource, now Clock) (*Session, error) {
	if source == nil {
		return nil, fmt.Errorf("maze source is nil")
	}
	if now == nil {
		now = time.Now
	}
	goal := maze.Point{X: width - 2, Y: height - 2}
	if !goal.IsChamber() {
		return nil, fmt.Errorf("%w: %dx%d puts the goal at (%d,%d), width and height must be odd",
			maze.ErrInvalidDimensions, width, height, goal.X, goal.Y)
	}
	s := &Session{
		width:  width,
		height: height,
		source: source,
		now:    now,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset replaces the maze and every session counter. On error the previous
// session is left untouched.
func (s *Session) Reset() error {
	grid, err := s.source.Generate(s.width, s.height)
	if err != nil {
		return fmt.Errorf("failed to generate maze: %w", err)
	}
	goal := maze.Point{X: s.width - 2, Y: s.height - 2}
	grid.Open(goal)

	s.grid = grid
	s.goal = goal
	s.player = Start
	s.previous = Start
	s.moves = 0
	s.status = Playing
	s.startedAt = s.now()
	s.endedAt = time.Time{}
	return nil
}

// AttemptMove steps the player one cell in dir. Blocked moves and moves
// after the win change nothing.
func (s *Session) AttemptMove(dir Direction) MoveResult {
	if s.status == Won {
		return MoveResult{From: s.player, To: s.player}
	}
	from := s.player
	to := from.Add(dir.Delta())
	if to == from || !s.grid.IsOpen(to) {
		return MoveResult{From: from, To: from}
	}

	s.previous = from
	s.player = to
	s.moves++
	if to == s.goal {
		s.endedAt = s.now()
		s.status = Won
	}
	return MoveResult{Moved: true, Won: s.status == Won, From: from, To: to}
}

// Grid returns a copy of the current maze.
func (s *Session) Grid() *maze.Grid { return s.grid.Clone() }

// Player returns the authoritative player position.
func (s *Session) Player() maze.Point { return s.player }

// Previous returns the position before the last legal move.
func (s *Session) Previous() maze.Point { return s.previous }

// Goal returns the goal position.
func (s *Session) Goal() maze.Point { return s.goal }

// Moves returns the number of legal moves since the last reset.
func (s *Session) Moves() int { return s.moves }

// Status returns the session state.
func (s *Session) Status() Status { return s.status }

// Won reports whether the goal has been reached.
func (s *Session) Won() bool { return s.status == Won }

// StartedAt returns the time recorded at the last reset.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// EndedAt returns the time of the win transition, or the zero time.
func (s *Session) EndedAt() time.Time { return s.endedAt }

// Width returns the configured maze width.
func (s *Session) Width() int { return s.width }

// Height returns the configured maze height.
func (s *Session) Height() int { return s.height }

// Elapsed returns the play time at now, frozen once the session is won.
func (s *Session) Elapsed(now time.Time) time.Duration {
	end := now
	if s.status == Won {
		end = s.endedAt
	}
	if end.Before(s.startedAt) {
		return 0
	}
	return end.Sub(s.startedAt)
}

// Snapshot copies the readable state. The grid is cloned, so renderers
// cannot change the session through it.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:      s.grid.Clone(),
		Player:    s.player,
		Previous:  s.previous,
		Goal:      s.goal,
		Moves:     s.moves,
		Status:    s.status,
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
	}
}
