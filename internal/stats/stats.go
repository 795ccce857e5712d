// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/tuimaze/internal/model"
)

const sparkChars = " .:-=+*#%@"

// RunMetrics computes solve time in seconds and moves per second for a run.
func RunMetrics(moves int, durationMs int64) (seconds, movesPerSec float64) {
	if durationMs <= 0 {
		return 0, 0
	}
	seconds = float64(durationMs) / 1000.0
	movesPerSec = float64(moves) / seconds
	return seconds, movesPerSec
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := minMax(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// FormatDuration renders milliseconds as m:ss.t.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	ms = (ms + 50) / 100 * 100
	d := time.Duration(ms) * time.Millisecond
	minutes := int(d / time.Minute)
	rest := d - time.Duration(minutes)*time.Minute
	return fmt.Sprintf("%d:%04.1f", minutes, rest.Seconds())
}

// RenderSummary prints a summary for runs.
func RenderSummary(w io.Writer, runs []model.RunAggregate) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	var totalMs int64
	var totalMoves int
	bestMs := runs[0].DurationMs
	fewest := runs[0].Moves
	for _, r := range runs {
		totalMs += r.DurationMs
		totalMoves += r.Moves
		if r.DurationMs < bestMs {
			bestMs = r.DurationMs
		}
		if r.Moves < fewest {
			fewest = r.Moves
		}
	}
	count := int64(len(runs))
	lines := []string{
		"Summary",
		fmt.Sprintf("Runs: %d", len(runs)),
		fmt.Sprintf("Best Time: %s", FormatDuration(bestMs)),
		fmt.Sprintf("Avg Time: %s", FormatDuration(totalMs/count)),
		fmt.Sprintf("Avg Moves: %.1f", float64(totalMoves)/float64(count)),
		fmt.Sprintf("Fewest Moves: %d", fewest),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints solve-time and move-count curves.
func RenderCurves(w io.Writer, runs []model.RunAggregate, window int) error {
	return RenderCurvesWithSize(w, runs, window, 0, false)
}

// RenderCurvesWithSize prints curves sized to a given total width.
func RenderCurvesWithSize(w io.Writer, runs []model.RunAggregate, window, totalWidth int, useColor bool) error {
	if len(runs) == 0 {
		return nil
	}
	times := make([]float64, len(runs))
	moves := make([]float64, len(runs))
	for i, r := range runs {
		seconds, _ := RunMetrics(r.Moves, r.DurationMs)
		times[i] = seconds
		moves[i] = float64(r.Moves)
	}
	times = MovingAverage(times, window)
	moves = MovingAverage(moves, window)

	width := 0
	if totalWidth > 0 {
		width = CurveWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Progress", []Series{
		{Name: "Time (s)", Values: times},
		{Name: "Moves", Values: moves},
	}, width, useColor)
}

// RenderSizeTable prints per-size aggregates.
func RenderSizeTable(w io.Writer, aggs []model.SizeAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No size stats found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Per-Size"); err != nil {
		return err
	}
	headers := []string{"Size", "Runs", "Best", "Avg Time", "Avg Moves", "Fewest"}
	rows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		avgMs := int64(0)
		avgMoves := 0.0
		if agg.Runs > 0 {
			avgMs = agg.TotalMs / int64(agg.Runs)
			avgMoves = float64(agg.TotalMoves) / float64(agg.Runs)
		}
		rows = append(rows, []string{
			model.FormatSize(agg.Width, agg.Height),
			fmt.Sprintf("%d", agg.Runs),
			FormatDuration(agg.BestMs),
			FormatDuration(avgMs),
			fmt.Sprintf("%.1f", avgMoves),
			fmt.Sprintf("%d", agg.FewestMoves),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderBestRuns prints the n fastest runs.
func RenderBestRuns(w io.Writer, runs []model.RunAggregate, n int) error {
	best := TopRuns(runs, n)
	if len(best) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Best Runs"); err != nil {
		return err
	}
	headers := []string{"#", "Size", "Time", "Moves", "Seed", "Finished"}
	rows := make([][]string, 0, len(best))
	for i, r := range best {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			model.FormatSize(r.Width, r.Height),
			FormatDuration(r.DurationMs),
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.Seed),
			r.EndedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 2: true, 3: true, 4: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func minMax(values []float64) (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.IsInf(minVal, 1) {
		minVal = 0
	}
	if math.IsInf(maxVal, -1) {
		maxVal = 0
	}
	return minVal, maxVal
}
