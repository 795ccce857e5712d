package statsui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuimaze/internal/model"
	"github.com/verte-zerg/tuimaze/internal/store"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "tuimaze.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	sizes := [][2]int{{25, 17}, {25, 17}, {11, 11}}
	for i, size := range sizes {
		start := time.Date(2024, 1, 1+i, 10, 0, 0, 0, time.UTC)
		_, err := st.InsertRun(context.Background(), model.RunStats{
			RunID:      fmt.Sprintf("run-%d", i),
			StartedAt:  start,
			EndedAt:    start.Add(time.Duration(20+i) * time.Second),
			Width:      size[0],
			Height:     size[1],
			Seed:       int64(i),
			Moves:      30 + i,
			DurationMs: int64(20+i) * 1000,
		})
		if err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}
	m := NewModel(st, model.StatsConfig{CurveWindow: 1})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func TestCurveWindowSteps(t *testing.T) {
	if got := nextCurveWindow(1); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := nextCurveWindow(7); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := prevCurveWindow(10); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := prevCurveWindow(7); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := prevCurveWindow(5); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestReportLoadsRuns(t *testing.T) {
	m := newTestModel(t)
	if len(m.report.Runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(m.report.Runs))
	}
	if len(m.sizeTable.Rows()) != 2 {
		t.Fatalf("expected 2 size rows, got %d", len(m.sizeTable.Rows()))
	}
	if m.sizeTable.Rows()[0][0] != "25x17" {
		t.Fatalf("expected most played size first, got %v", m.sizeTable.Rows()[0])
	}
	if !strings.Contains(m.View(), "Overview") {
		t.Fatalf("expected tabs in view")
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabBestRuns {
		t.Fatalf("expected wrap to last tab, got %d", m.activeTab)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabSizes {
		t.Fatalf("expected sizes tab, got %d", m.activeTab)
	}
}

func TestWindowKeysRefresh(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'='}})
	if m.cfg.CurveWindow != 5 {
		t.Fatalf("expected window 5, got %d", m.cfg.CurveWindow)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if m.cfg.CurveWindow != 1 {
		t.Fatalf("expected window 1, got %d", m.cfg.CurveWindow)
	}
}

func TestFilterAppliesSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.filterMode {
		t.Fatalf("expected filter mode")
	}
	for _, r := range "11x11" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode {
		t.Fatalf("expected filter mode to close, error: %s", m.filterError)
	}
	if m.cfg.Width != 11 || m.cfg.Height != 11 {
		t.Fatalf("expected 11x11 filter, got %s", m.cfg.Size())
	}
	if len(m.report.Runs) != 1 {
		t.Fatalf("expected 1 filtered run, got %d", len(m.report.Runs))
	}
}

func TestFilterRejectsBadSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	for _, r := range "big" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.filterMode || m.filterError == "" {
		t.Fatalf("expected filter error to keep the form open")
	}
}

func TestRenderOverviewEmpty(t *testing.T) {
	m := newTestModel(t)
	m.report.Runs = nil
	m.renderTabContents()
	if !strings.Contains(m.viewports[tabOverview].View(), "No runs found.") {
		t.Fatalf("expected empty overview message")
	}
}
