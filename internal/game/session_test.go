package game

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuimaze/internal/maze"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type failingSource struct {
	err error
}

func (f failingSource) Generate(int, int) (*maze.Grid, error) {
	return nil, f.err
}

type countingSource struct {
	inner *maze.Generator
	calls int
	fail  bool
}

func (c *countingSource) Generate(width, height int) (*maze.Grid, error) {
	c.calls++
	if c.fail {
		return nil, errors.New("boom")
	}
	return c.inner.Generate(width, height)
}

func newTestSession(t *testing.T, width, height int, seed int64) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	s, err := New(width, height, maze.NewWithSeed(seed), clock.now)
	require.NoError(t, err)
	return s, clock
}

// pathTo walks the maze breadth-first and returns the directions from the
// player to the goal.
func pathTo(t *testing.T, s *Session) []Direction {
	t.Helper()
	grid := s.Grid()
	type step struct {
		prev maze.Point
		dir  Direction
	}
	came := map[maze.Point]step{}
	queue := []maze.Point{s.Player()}
	seen := map[maze.Point]bool{s.Player(): true}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == s.Goal() {
			break
		}
		for _, d := range []Direction{Up, Down, Left, Right} {
			n := p.Add(d.Delta())
			if !grid.IsOpen(n) || seen[n] {
				continue
			}
			seen[n] = true
			came[n] = step{prev: p, dir: d}
			queue = append(queue, n)
		}
	}
	require.True(t, seen[s.Goal()], "goal unreachable\n%s", grid)
	var dirs []Direction
	for p := s.Goal(); p != s.Player(); p = came[p].prev {
		dirs = append([]Direction{came[p].dir}, dirs...)
	}
	return dirs
}

func blockedDirection(s *Session) (Direction, bool) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if !s.Grid().IsOpen(s.Player().Add(d.Delta())) {
			return d, true
		}
	}
	return 0, false
}

func TestResetInitialState(t *testing.T) {
	s, clock := newTestSession(t, 25, 17, 42)

	assert.Equal(t, 0, s.Moves())
	assert.False(t, s.Won())
	assert.Equal(t, Playing, s.Status())
	assert.Equal(t, maze.Point{X: 1, Y: 1}, s.Player())
	assert.Equal(t, s.Player(), s.Previous())
	assert.Equal(t, maze.Point{X: 23, Y: 15}, s.Goal())
	assert.True(t, s.Grid().IsOpen(s.Goal()))
	assert.True(t, s.Grid().IsOpen(s.Player()))
	assert.Equal(t, clock.t, s.StartedAt())
	assert.True(t, s.EndedAt().IsZero())
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	s, err := New(2, 2, maze.NewWithSeed(1), time.Now)
	require.Error(t, err)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	assert.Nil(t, s)
}

func TestNewRequiresSource(t *testing.T) {
	_, err := New(9, 9, nil, time.Now)
	require.Error(t, err)
}

func TestResetFailureKeepsSession(t *testing.T) {
	src := &countingSource{inner: maze.NewWithSeed(5)}
	s, err := New(9, 9, src, time.Now)
	require.NoError(t, err)
	before := s.Snapshot()

	src.fail = true
	require.Error(t, s.Reset())
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, 2, src.calls)
}

func TestResetPropagatesSourceError(t *testing.T) {
	want := errors.New("no maze")
	_, err := New(9, 9, failingSource{err: want}, time.Now)
	assert.ErrorIs(t, err, want)
}

func TestIllegalMoveChangesNothing(t *testing.T) {
	s, _ := newTestSession(t, 25, 17, 7)
	dir, ok := blockedDirection(s)
	require.True(t, ok, "start chamber has no wall neighbour")

	before := s.Snapshot()
	res := s.AttemptMove(dir)
	assert.False(t, res.Moved)
	assert.False(t, res.Won)
	assert.Equal(t, before, s.Snapshot())
}

func TestMoveOffGridIsBlocked(t *testing.T) {
	s, _ := newTestSession(t, 5, 5, 3)
	s.player = maze.Point{X: 0, Y: 1}
	res := s.AttemptMove(Left)
	assert.False(t, res.Moved)
	assert.Equal(t, maze.Point{X: 0, Y: 1}, s.Player())
	assert.Equal(t, 0, s.Moves())
}

func TestWalkToGoalWins(t *testing.T) {
	s, clock := newTestSession(t, 25, 17, 2024)
	path := pathTo(t, s)
	require.NotEmpty(t, path)

	legal := 0
	for i, d := range path {
		if blocked, ok := blockedDirection(s); ok && i%2 == 0 {
			res := s.AttemptMove(blocked)
			assert.False(t, res.Moved)
		}
		clock.advance(time.Second)
		assert.False(t, s.Won(), "won before reaching goal")
		res := s.AttemptMove(d)
		require.True(t, res.Moved, "step %d (%s) blocked", i, d)
		legal++
		assert.Equal(t, res.To, s.Player())
		assert.Equal(t, res.From, s.Previous())
	}

	assert.True(t, s.Won())
	assert.Equal(t, Won, s.Status())
	assert.Equal(t, s.Goal(), s.Player())
	assert.Equal(t, legal, s.Moves())
	assert.Equal(t, clock.t, s.EndedAt())
	assert.Equal(t, time.Duration(len(path))*time.Second, s.Elapsed(clock.t.Add(time.Hour)))
}

func TestLastMoveReportsWin(t *testing.T) {
	s, _ := newTestSession(t, 9, 9, 19)
	path := pathTo(t, s)
	var last MoveResult
	for _, d := range path {
		last = s.AttemptMove(d)
	}
	assert.True(t, last.Moved)
	assert.True(t, last.Won)
	assert.Equal(t, s.Goal(), last.To)
}

func TestMovesIgnoredAfterWin(t *testing.T) {
	s, clock := newTestSession(t, 11, 11, 9)
	for _, d := range pathTo(t, s) {
		s.AttemptMove(d)
	}
	require.True(t, s.Won())
	before := s.Snapshot()

	clock.advance(time.Minute)
	for _, d := range []Direction{Up, Down, Left, Right} {
		res := s.AttemptMove(d)
		assert.False(t, res.Moved)
	}
	assert.Equal(t, before, s.Snapshot())
}

func TestResetAfterWinStartsFresh(t *testing.T) {
	s, clock := newTestSession(t, 15, 11, 31)
	firstMaze := s.Grid().String()
	for _, d := range pathTo(t, s) {
		s.AttemptMove(d)
	}
	require.True(t, s.Won())

	clock.advance(10 * time.Second)
	require.NoError(t, s.Reset())
	assert.False(t, s.Won())
	assert.Equal(t, 0, s.Moves())
	assert.Equal(t, Start, s.Player())
	assert.Equal(t, Start, s.Previous())
	assert.Equal(t, clock.t, s.StartedAt())
	assert.True(t, s.EndedAt().IsZero())
	assert.True(t, s.Grid().IsOpen(s.Goal()))
	assert.NotEqual(t, firstMaze, s.Grid().String())
}

func TestReadsAreIdempotent(t *testing.T) {
	s, _ := newTestSession(t, 13, 9, 4)
	s.AttemptMove(pathTo(t, s)[0])
	assert.Equal(t, s.Snapshot(), s.Snapshot())
	assert.Equal(t, s.Player(), s.Player())
	assert.Equal(t, s.Moves(), s.Moves())
	now := time.Now()
	assert.Equal(t, s.Elapsed(now), s.Elapsed(now))
}

func TestSessionGridStaysPerfect(t *testing.T) {
	s, _ := newTestSession(t, 31, 21, 8)
	assert.NoError(t, maze.Verify(s.Grid()))
}

func TestElapsedWhilePlaying(t *testing.T) {
	s, clock := newTestSession(t, 9, 9, 1)
	assert.Equal(t, 3*time.Second, s.Elapsed(clock.t.Add(3*time.Second)))
	assert.Equal(t, time.Duration(0), s.Elapsed(clock.t.Add(-time.Second)))
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up": Up, "W": Up, "k": Up,
		"down": Down, "s": Down, "j": Down,
		"left": Left, "a": Left, "h": Left,
		"right": Right, "d": Right, "l": Right,
	}
	for in, want := range tests {
		got, ok := ParseDirection(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseDirection("x")
	assert.False(t, ok)
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, maze.Point{}, Direction(9).Delta())
}

func TestNewRejectsEvenDimensions(t *testing.T) {
	for _, size := range [][2]int{{6, 6}, {10, 8}, {9, 8}, {8, 9}} {
		s, err := New(size[0], size[1], maze.NewWithSeed(1), time.Now)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions, "%dx%d", size[0], size[1])
		assert.Nil(t, s)
	}
}

func TestGoalReachableForOddSizes(t *testing.T) {
	for _, size := range [][2]int{{5, 5}, {9, 7}, {21, 5}, {5, 21}} {
		s, _ := newTestSession(t, size[0], size[1], 1)
		assert.True(t, s.Goal().IsChamber())
		assert.NotEmpty(t, pathTo(t, s), "%dx%d", size[0], size[1])
	}
}

func TestSnapshotGridIsDetached(t *testing.T) {
	s, _ := newTestSession(t, 9, 9, 6)
	snap := s.Snapshot()
	var wall maze.Point
	for y := 1; y < 8 && wall == (maze.Point{}); y++ {
		for x := 1; x < 8; x++ {
			p := maze.Point{X: x, Y: y}
			if !snap.Grid.IsOpen(p) {
				wall = p
				break
			}
		}
	}
	require.NotEqual(t, maze.Point{}, wall)

	snap.Grid.Open(wall)
	s.Grid().Open(wall)
	assert.False(t, s.Grid().IsOpen(wall))
	assert.False(t, s.Snapshot().Grid.IsOpen(wall))
}
