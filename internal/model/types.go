// Package model defines shared data structures.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config defines play settings.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	HasSeed bool
	TrailMs int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Width       int
	Height      int
	Since       *time.Time
	Last        int
	CurveWindow int
}

// Size renders the size filter, or "any" when unset.
func (c StatsConfig) Size() string {
	if c.Width <= 0 || c.Height <= 0 {
		return "any"
	}
	return FormatSize(c.Width, c.Height)
}

// RunStats captures a completed maze run.
type RunStats struct {
	RunID      string
	StartedAt  time.Time
	EndedAt    time.Time
	Width      int
	Height     int
	Seed       int64
	Moves      int
	DurationMs int64
}

// RunAggregate summarizes a stored run for reporting.
type RunAggregate struct {
	ID         int64
	RunID      string
	EndedAt    time.Time
	Width      int
	Height     int
	Seed       int64
	Moves      int
	DurationMs int64
}

// SizeAggregate aggregates runs of one maze size.
type SizeAggregate struct {
	Width       int
	Height      int
	Runs        int
	BestMs      int64
	TotalMs     int64
	TotalMoves  int
	FewestMoves int
}

// FormatSize renders a maze size as WxH.
func FormatSize(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// ParseSize reads a WxH size. Empty input and "any" yield 0x0, meaning no size.
func ParseSize(input string) (width, height int, err error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || input == "any" {
		return 0, 0, nil
	}
	w, h, ok := strings.Cut(input, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH, e.g. 25x17)", input)
	}
	width, werr := strconv.Atoi(strings.TrimSpace(w))
	height, herr := strconv.Atoi(strings.TrimSpace(h))
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH, e.g. 25x17)", input)
	}
	return width, height, nil
}
