package stats

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Series represents a named data series for plotting.
type Series struct {
	Name   string
	Values []float64
}

const (
	minCurveWidth       = 10
	curveLabelWidth     = 10
	curveSeparator      = " | "
	terminalWidthBackup = 80
)

var curveColors = []lipgloss.Color{"6", "5", "3", "2", "4"}

// PlotSeries renders one sparkline row per series.
func PlotSeries(w io.Writer, title string, series []Series, width int) error {
	return plotSeries(w, title, series, width, false)
}

// PlotSeriesWithColor renders sparkline rows with optional forced color output.
func PlotSeriesWithColor(w io.Writer, title string, series []Series, width int, forceColor bool) error {
	return plotSeries(w, title, series, width, forceColor)
}

func plotSeries(w io.Writer, title string, series []Series, width int, forceColor bool) error {
	series = filterSeries(series)
	if len(series) == 0 {
		return nil
	}
	if width <= 0 {
		width = CurveWidthFor(terminalWidth())
	}
	if width < minCurveWidth {
		width = minCurveWidth
	}
	useColor := shouldUseColor(w, forceColor)

	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for i, s := range series {
		values := resampleSeries(s.Values, width)
		line := Sparkline(values)
		if useColor {
			line = lipgloss.NewStyle().Foreground(curveColors[i%len(curveColors)]).Render(line)
		}
		label := runewidth.FillRight(runewidth.Truncate(s.Name, curveLabelWidth, ""), curveLabelWidth)
		if _, err := fmt.Fprintf(w, "%s%s%s\n", label, curveSeparator, line); err != nil {
			return err
		}
	}
	for _, s := range series {
		minVal, maxVal := minMax(s.Values)
		if _, err := fmt.Fprintf(w, "%s: min %.2f, max %.2f, last %.2f\n", s.Name, minVal, maxVal, s.Values[len(s.Values)-1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func filterSeries(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// CurveWidthFor computes a sparkline width that fits within the total available width.
func CurveWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minCurveWidth
	}
	width := totalWidth - curveLabelWidth - runewidth.StringWidth(curveSeparator)
	if width < minCurveWidth {
		width = minCurveWidth
	}
	return width
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// resampleSeries averages down or interpolates up to exactly width points.
func resampleSeries(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	if len(values) >= width {
		for i := 0; i < width; i++ {
			start := i * len(values) / width
			end := (i + 1) * len(values) / width
			if end <= start {
				end = start + 1
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	if len(values) == 1 || width == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	last := len(values) - 1
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(last) / float64(width-1)
		idx := int(math.Floor(pos))
		if idx >= last {
			out[i] = values[last]
			continue
		}
		frac := pos - float64(idx)
		out[i] = values[idx]*(1-frac) + values[idx+1]*frac
	}
	return out
}
