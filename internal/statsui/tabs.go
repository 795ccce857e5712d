package statsui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuimaze/internal/model"
	"github.com/verte-zerg/tuimaze/internal/stats"
)

func renderOverview(report stats.Report, window, width int) string {
	if len(report.Runs) == 0 {
		return "No runs found."
	}
	parts := []string{renderSummaryCards(report.Runs, width)}
	if top := stats.TopSizesByFrequency(report.SizesAll, 3); len(top) > 0 {
		parts = append(parts, headerStyle.Render("Most played: "+strings.Join(top, ", ")))
	}
	parts = append(parts, renderCurves(report.Runs, window, width))
	return strings.TrimRight(strings.Join(parts, "\n\n"), "\n")
}

func renderSummaryCards(runs []model.RunAggregate, width int) string {
	if len(runs) == 0 {
		return "No runs found."
	}
	var totalMs int64
	var totalMoves, totalRate float64
	best := runs[0]
	for _, r := range runs {
		_, rate := stats.RunMetrics(r.Moves, r.DurationMs)
		totalMs += r.DurationMs
		totalMoves += float64(r.Moves)
		totalRate += rate
		if r.DurationMs < best.DurationMs {
			best = r
		}
	}
	count := float64(len(runs))
	cards := []string{
		metricCard("Runs", fmt.Sprintf("%d", len(runs))),
		metricCard("Best Time", stats.FormatDuration(best.DurationMs)),
		metricCard("Best Size", model.FormatSize(best.Width, best.Height)),
		metricCard("Avg Time", stats.FormatDuration(totalMs/int64(len(runs)))),
		metricCard("Avg Moves", fmt.Sprintf("%.1f", totalMoves/count)),
		metricCard("Moves/s", fmt.Sprintf("%.2f", totalRate/count)),
	}
	if width < defaultWidth {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderCurves(runs []model.RunAggregate, window, width int) string {
	var buf bytes.Buffer
	if err := stats.RenderCurvesWithSize(&buf, runs, window, width, true); err != nil {
		return fmt.Sprintf("Failed to render curves: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func renderBestRuns(runs []model.RunAggregate) string {
	var buf bytes.Buffer
	if err := stats.RenderBestRuns(&buf, runs, bestRunCount); err != nil {
		return fmt.Sprintf("Failed to render best runs: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func sizeColumns() []table.Column {
	return []table.Column{
		{Title: "Size", Width: 8},
		{Title: "Runs", Width: 6},
		{Title: "Best", Width: 9},
		{Title: "Avg Time", Width: 9},
		{Title: "Avg Moves", Width: 10},
		{Title: "Fewest", Width: 7},
	}
}

func newSizeTable() table.Model {
	t := table.New(
		table.WithColumns(sizeColumns()),
		table.WithHeight(1),
	)
	t.SetStyles(sizeTableStyles())
	return t
}

func sizeRows(aggs []model.SizeAggregate) []table.Row {
	rows := make([]table.Row, 0, len(aggs))
	for _, agg := range aggs {
		avgMs := int64(0)
		avgMoves := 0.0
		if agg.Runs > 0 {
			avgMs = agg.TotalMs / int64(agg.Runs)
			avgMoves = float64(agg.TotalMoves) / float64(agg.Runs)
		}
		rows = append(rows, table.Row{
			model.FormatSize(agg.Width, agg.Height),
			fmt.Sprintf("%d", agg.Runs),
			stats.FormatDuration(agg.BestMs),
			stats.FormatDuration(avgMs),
			fmt.Sprintf("%.1f", avgMoves),
			fmt.Sprintf("%d", agg.FewestMoves),
		})
	}
	return rows
}

func sizeTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#555F7D")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)
	return styles
}
