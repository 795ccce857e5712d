// Package main provides the CLI entrypoint for tuimaze.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuimaze/internal/config"
	"github.com/verte-zerg/tuimaze/internal/game"
	"github.com/verte-zerg/tuimaze/internal/maze"
	"github.com/verte-zerg/tuimaze/internal/model"
	"github.com/verte-zerg/tuimaze/internal/store"
	"github.com/verte-zerg/tuimaze/internal/tui"
)

const (
	defaultWidth       = 25
	defaultHeight      = 17
	defaultTrailMs     = 180
	defaultCurveWindow = 10
	minPlayDimension   = 5
	maxPlayDimension   = 99
)

var (
	playWidth   int
	playHeight  int
	playSeed    int64
	playTrailMs int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuimaze",
		Short:         "TUI maze game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().IntVar(&playWidth, "width", defaultWidth, "maze width in cells (odd, 5-99)")
	rootCmd.Flags().IntVar(&playHeight, "height", defaultHeight, "maze height in cells (odd, 5-99)")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "seed for the first maze (random when unset)")
	rootCmd.Flags().IntVar(&playTrailMs, "trail-ms", defaultTrailMs, "trail fade duration in milliseconds (0 disables)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newGenCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolvePlayConfig(cmd, config.DefaultConfigPath())
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	session, err := game.New(cfg.Width, cfg.Height, gen, time.Now)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ui := tui.NewModel(cfg, st, session, time.Now)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolvePlayConfig layers defaults, the config file, the environment and
// explicitly set flags, in that order.
func resolvePlayConfig(cmd *cobra.Command, configPath string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load environment: %w", err)
	}
	layered := fileCfg.Play.Merge(envCfg)

	applyIntConfig(cmd, "width", &playWidth, layered.Width)
	applyIntConfig(cmd, "height", &playHeight, layered.Height)
	applyInt64Config(cmd, "seed", &playSeed, layered.Seed)
	applyIntConfig(cmd, "trail-ms", &playTrailMs, layered.TrailMs)

	return model.Config{
		Width:   playWidth,
		Height:  playHeight,
		Seed:    playSeed,
		HasSeed: cmd.Flags().Changed("seed") || layered.Seed != nil,
		TrailMs: playTrailMs,
	}, nil
}

func newGenerator(cfg model.Config) (*maze.Generator, error) {
	if cfg.HasSeed {
		return maze.NewWithSeed(cfg.Seed), nil
	}
	gen, err := maze.New()
	if err != nil {
		return nil, fmt.Errorf("failed to seed generator: %w", err)
	}
	return gen, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template unless a file exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuimaze configuration
# Uncomment a value to enable it. Environment variables (TUIMAZE_*) override
# config values and CLI flags override both.

[play]
# width = %d        # Maze width in cells (odd, %d-%d)
# height = %d       # Maze height in cells (odd, %d-%d)
# seed = 42         # Seed for the first maze; random when unset
# trail-ms = %d    # Trail fade duration in milliseconds (0 disables)
`,
		defaultWidth, minPlayDimension, maxPlayDimension,
		defaultHeight, minPlayDimension, maxPlayDimension,
		defaultTrailMs,
	)
}

func validateConfig(cfg model.Config) error {
	if err := validateDimension("--width", cfg.Width); err != nil {
		return err
	}
	if err := validateDimension("--height", cfg.Height); err != nil {
		return err
	}
	if cfg.TrailMs < 0 {
		return fmt.Errorf("--trail-ms must be >= 0")
	}
	return nil
}

// validateDimension keeps the goal on a chamber distinct from the start.
func validateDimension(flag string, v int) error {
	if v < minPlayDimension || v > maxPlayDimension {
		return fmt.Errorf("%s must be between %d and %d", flag, minPlayDimension, maxPlayDimension)
	}
	if v%2 == 0 {
		return fmt.Errorf("%s must be odd", flag)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
