package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuimaze/internal/game"
	"github.com/verte-zerg/tuimaze/internal/maze"
)

const (
	cellWidth   = 2
	wallGlyph   = "█"
	playerGlyph = "●"
	goalGlyph   = "◆"
	trailGlyph  = "•"

	pathColor  = "#191E2D"
	trailColor = "#FF6464"
)

var (
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2D3755"))
	pathStyle   = lipgloss.NewStyle().Background(lipgloss.Color(pathColor))
	playerStyle = pathStyle.Foreground(lipgloss.Color("#FF6464")).Bold(true)
	goalStyle   = pathStyle.Foreground(lipgloss.Color("#64FF96")).Bold(true)
)

type styledCell struct {
	s     string
	width int
}

// trailFade returns the trail intensity in [0, 1] for a step taken elapsed
// ago. It reaches 0 once duration has passed.
func trailFade(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 0
	}
	if elapsed <= 0 {
		return 1
	}
	return 1 - float64(elapsed)/float64(duration)
}

func buildCells(snap game.Snapshot, fade float64) [][]styledCell {
	if snap.Grid == nil {
		return nil
	}
	rows := make([][]styledCell, 0, snap.Grid.Height())
	for y := 0; y < snap.Grid.Height(); y++ {
		row := make([]styledCell, 0, snap.Grid.Width())
		for x := 0; x < snap.Grid.Width(); x++ {
			row = append(row, cellFor(snap, maze.Point{X: x, Y: y}, fade))
		}
		rows = append(rows, row)
	}
	return rows
}

func cellFor(snap game.Snapshot, p maze.Point, fade float64) styledCell {
	var glyph string
	style := pathStyle
	switch {
	case p == snap.Player:
		glyph = fillCell(playerGlyph)
		style = playerStyle
	case p == snap.Goal:
		glyph = fillCell(goalGlyph)
		style = goalStyle
	case !snap.Grid.IsOpen(p):
		glyph = strings.Repeat(wallGlyph, cellWidth/runewidth.StringWidth(wallGlyph))
		style = wallStyle
	case p == snap.Previous && fade > 0:
		glyph = fillCell(trailGlyph)
		style = pathStyle.Foreground(blendColor(pathColor, trailColor, fade))
	default:
		glyph = fillCell("")
	}
	return styledCell{
		s:     style.Render(glyph),
		width: runewidth.StringWidth(glyph),
	}
}

// fillCell centers a glyph in a cellWidth-wide slot.
func fillCell(glyph string) string {
	w := runewidth.StringWidth(glyph)
	if w >= cellWidth {
		return runewidth.Truncate(glyph, cellWidth, "")
	}
	return runewidth.FillRight(glyph, cellWidth)
}

func renderCells(rows [][]styledCell) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(cell.s)
		}
	}
	return b.String()
}

func rowWidth(row []styledCell) int {
	total := 0
	for _, cell := range row {
		total += cell.width
	}
	return total
}

// blendColor mixes two hex colors in RGB space, t=0 yielding from and t=1
// yielding to. Unparseable colors fall back to black.
func blendColor(from, to string, t float64) lipgloss.Color {
	a, err := colorful.Hex(from)
	if err != nil {
		a = colorful.Color{}
	}
	b, err := colorful.Hex(to)
	if err != nil {
		b = colorful.Color{}
	}
	t = math.Max(0, math.Min(1, t))
	return lipgloss.Color(a.BlendRgb(b, t).Clamped().Hex())
}
