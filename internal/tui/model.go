// Package tui provides the Bubble Tea maze interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/verte-zerg/tuimaze/internal/game"
	"github.com/verte-zerg/tuimaze/internal/model"
	statsPkg "github.com/verte-zerg/tuimaze/internal/stats"
	"github.com/verte-zerg/tuimaze/internal/store"
)

const (
	clockInterval = time.Second
	frameInterval = 33 * time.Millisecond
	sidebarWidth  = 26
)

type clockTickMsg time.Time

type trailFrameMsg time.Time

// Model implements the Bubble Tea maze UI.
type Model struct {
	config  model.Config
	store   *store.Store
	session *game.Session
	now     game.Clock

	keys keyMap
	help help.Model

	width  int
	height int

	runID   string
	movedAt time.Time
	errMsg  string
	// framing is set while a trail frame tick is in flight.
	framing bool

	bestMs  int64
	hasBest bool
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#64C8FF")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#B4BEDC"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	winBannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0F0F19")).
			Background(lipgloss.Color("#64FF64")).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Center)
	sidebarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#555F7D"))
)

// NewModel constructs a maze TUI model around a session that already holds
// its first maze. A nil store disables run persistence.
func NewModel(cfg model.Config, st *store.Store, session *game.Session, now game.Clock) *Model {
	if now == nil {
		now = time.Now
	}
	m := &Model{
		config:  cfg,
		store:   st,
		session: session,
		now:     now,
		keys:    newKeyMap(),
		help:    help.New(),
		runID:   uuid.NewString(),
	}
	m.loadBest()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return clockTick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case clockTickMsg:
		return m, clockTick()
	case trailFrameMsg:
		if m.trailIntensity() > 0 {
			return m, trailFrame()
		}
		m.framing = false
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.newMaze()
			return m, nil
		}
		if dir, ok := m.keys.direction(msg); ok {
			return m, m.move(dir)
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.session.Snapshot()
	grid := renderCells(buildCells(snap, m.trailIntensity()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", m.renderSidebar())
	footer := m.help.View(m.keys)
	if m.errMsg != "" {
		footer = errorStyle.Render(m.errMsg) + "\n" + footer
	}
	if m.width == 0 || m.height == 0 {
		return body + "\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	bodyHeight := m.height - footerHeight
	if bodyHeight < 1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, footerHeight, lipgloss.Center, lipgloss.Bottom, footer)
	return placed + "\n" + footerLine
}

func (m *Model) move(dir game.Direction) tea.Cmd {
	res := m.session.AttemptMove(dir)
	if !res.Moved {
		return nil
	}
	m.movedAt = m.now()
	if res.Won {
		m.finishRun()
	}
	if m.config.TrailMs <= 0 || m.framing {
		return nil
	}
	m.framing = true
	return trailFrame()
}

func (m *Model) newMaze() {
	if err := m.session.Reset(); err != nil {
		m.errMsg = err.Error()
		logErrf("failed to reset maze: %v\n", err)
		return
	}
	m.errMsg = ""
	m.runID = uuid.NewString()
	m.movedAt = time.Time{}
	m.keys.setPlaying(true)
}

func (m *Model) trailIntensity() float64 {
	if m.movedAt.IsZero() {
		return 0
	}
	duration := time.Duration(m.config.TrailMs) * time.Millisecond
	return trailFade(m.now().Sub(m.movedAt), duration)
}

func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, ok, err := m.store.BestRun(context.Background(), m.session.Width(), m.session.Height())
	if err != nil {
		logErrf("failed to load best run: %v\n", err)
		return
	}
	if !ok {
		return
	}
	m.bestMs = best.DurationMs
	m.hasBest = true
}

func (m *Model) finishRun() {
	m.keys.setPlaying(false)
	snap := m.session.Snapshot()
	run := model.RunStats{
		RunID:      m.runID,
		StartedAt:  snap.StartedAt,
		EndedAt:    snap.EndedAt,
		Width:      m.session.Width(),
		Height:     m.session.Height(),
		Seed:       snap.Grid.Seed(),
		Moves:      snap.Moves,
		DurationMs: snap.EndedAt.Sub(snap.StartedAt).Milliseconds(),
	}
	if !m.hasBest || run.DurationMs < m.bestMs {
		m.bestMs = run.DurationMs
		m.hasBest = true
	}
	if m.store == nil {
		return
	}
	if _, err := m.store.InsertRun(context.Background(), run); err != nil {
		logErrf("failed to save run: %v\n", err)
	}
}

func (m *Model) renderSidebar() string {
	snap := m.session.Snapshot()
	elapsed := m.session.Elapsed(m.now())
	best := "--"
	if m.hasBest {
		best = statsPkg.FormatDuration(m.bestMs)
	}
	lines := []string{
		titleStyle.Render("TUIMAZE"),
		"",
		statLine("Moves", fmt.Sprintf("%d", snap.Moves)),
		statLine("Time", fmt.Sprintf("%ds", int(elapsed/time.Second))),
		statLine("Best", best),
		statLine("Size", model.FormatSize(m.session.Width(), m.session.Height())),
		statLine("Seed", fmt.Sprintf("%d", snap.Grid.Seed())),
		"",
		titleStyle.Render("CONTROLS"),
		labelStyle.Render("WASD / Arrows - Move"),
		labelStyle.Render("R - New Maze"),
		labelStyle.Render("Q - Quit"),
	}
	if snap.Status == game.Won {
		banner := winBannerStyle.Width(sidebarWidth - 4).Render("YOU WIN!\nPress r for new maze")
		lines = append(lines, "", banner)
	}
	return sidebarStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func statLine(label, value string) string {
	return labelStyle.Render(label+": ") + valueStyle.Render(value)
}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func trailFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return trailFrameMsg(t)
	})
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
