package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuimaze/internal/game"
	"github.com/verte-zerg/tuimaze/internal/maze"
	"github.com/verte-zerg/tuimaze/internal/random"
)

var (
	genWidth  int
	genHeight int
	genSeed   int64
	genCheck  bool
	genMoves  string
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a generated maze",
		Args:  cobra.NoArgs,
		RunE:  runGenCmd,
	}
	cmd.Flags().IntVar(&genWidth, "width", defaultWidth, "maze width in cells (>= 3)")
	cmd.Flags().IntVar(&genHeight, "height", defaultHeight, "maze height in cells (>= 3)")
	cmd.Flags().Int64Var(&genSeed, "seed", 0, "maze seed (random when unset)")
	cmd.Flags().BoolVar(&genCheck, "check", false, "verify the maze is perfect and print cell counts")
	cmd.Flags().StringVar(&genMoves, "moves", "", "replay moves (e.g. ddss or right,down) and mark the player")
	return cmd
}

func runGenCmd(cmd *cobra.Command, _ []string) error {
	seed := genSeed
	if !cmd.Flags().Changed("seed") {
		drawn, err := random.NewSeed()
		if err != nil {
			return fmt.Errorf("failed to draw seed: %w", err)
		}
		seed = drawn
	}
	out := cmd.OutOrStdout()

	if genMoves != "" {
		return writePreview(out, genWidth, genHeight, seed, genMoves)
	}

	grid, err := maze.FromSeed(genWidth, genHeight, seed)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(out, grid.String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintf(out, "seed: %d\n", grid.Seed()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !genCheck {
		return nil
	}
	return writeCheck(out, grid)
}

func writeCheck(w io.Writer, grid *maze.Grid) error {
	counts := grid.Stats()
	if _, err := fmt.Fprintf(w, "chambers: %d open: %d corridors: %d\n", counts.Chambers, counts.OpenChambers, counts.OpenCorridors); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := maze.Verify(grid); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "perfect: yes"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// writePreview plays moves on the maze for seed and prints the result with
// the player as '@' and the goal as 'G'.
func writePreview(w io.Writer, width, height int, seed int64, moves string) error {
	if err := validateDimension("--width", width); err != nil {
		return err
	}
	if err := validateDimension("--height", height); err != nil {
		return err
	}
	dirs, err := parseMoves(moves)
	if err != nil {
		return err
	}
	session, err := game.New(width, height, maze.NewWithSeed(seed), nil)
	if err != nil {
		return err
	}
	blocked := 0
	for _, dir := range dirs {
		if !session.AttemptMove(dir).Moved {
			blocked++
		}
	}
	if _, err := fmt.Fprint(w, renderPreview(session.Snapshot())); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	status := "playing"
	if session.Won() {
		status = "won"
	}
	if _, err := fmt.Fprintf(w, "seed: %d moves: %d blocked: %d status: %s\n", seed, session.Moves(), blocked, status); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// parseMoves splits input on commas and whitespace. A token that names a
// direction ("right", "up") is one move; any other token is read as a run
// of single-letter keys (wasd, hjkl).
func parseMoves(input string) ([]game.Direction, error) {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	var dirs []game.Direction
	for _, token := range tokens {
		if dir, ok := game.ParseDirection(token); ok {
			dirs = append(dirs, dir)
			continue
		}
		for _, r := range token {
			dir, ok := game.ParseDirection(string(r))
			if !ok {
				return nil, fmt.Errorf("invalid move %q in %q (use wasd, hjkl or up/down/left/right)", string(r), token)
			}
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

func renderPreview(snap game.Snapshot) string {
	var b strings.Builder
	for y := 0; y < snap.Grid.Height(); y++ {
		for x := 0; x < snap.Grid.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			switch {
			case p == snap.Player:
				b.WriteByte('@')
			case p == snap.Goal:
				b.WriteByte('G')
			case snap.Grid.IsOpen(p):
				b.WriteByte(' ')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
