// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuimaze/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for run data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			run_id TEXT NOT NULL UNIQUE,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ended_at ON runs(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_size ON runs(width, height);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed run.
func (s *Store) InsertRun(ctx context.Context, run model.RunStats) (int64, error) {
	if run.RunID == "" {
		return 0, fmt.Errorf("run id is empty")
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at, ended_at, width, height, seed, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.StartedAt.Format(time.RFC3339Nano),
		run.EndedAt.Format(time.RFC3339Nano),
		run.Width,
		run.Height,
		run.Seed,
		run.Moves,
		run.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns returns runs filtered by stats config, oldest first.
func (s *Store) ListRuns(ctx context.Context, cfg model.StatsConfig) ([]model.RunAggregate, error) {
	clauses, args := runFilter(cfg)
	query := fmt.Sprintf(`SELECT id, run_id, ended_at, width, height, seed, moves, duration_ms
		FROM runs
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunAggregate
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// BestRun returns the fastest run for a maze size. The second result is
// false when no run of that size exists.
func (s *Store) BestRun(ctx context.Context, width, height int) (model.RunAggregate, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, run_id, ended_at, width, height, seed, moves, duration_ms
		 FROM runs
		 WHERE width = ? AND height = ?
		 ORDER BY duration_ms ASC, moves ASC, id ASC
		 LIMIT 1`, width, height)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RunAggregate{}, false, nil
	}
	if err != nil {
		return model.RunAggregate{}, false, err
	}
	return run, true, nil
}

// ListSizeAggregates aggregates runs per maze size.
func (s *Store) ListSizeAggregates(ctx context.Context, runIDs []int64) ([]model.SizeAggregate, error) {
	if len(runIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(runIDs))
	args := make([]any, len(runIDs))
	for i, id := range runIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT width, height, COUNT(*) AS runs, MIN(duration_ms) AS best_ms,
		SUM(duration_ms) AS total_ms, SUM(moves) AS total_moves, MIN(moves) AS fewest_moves
		FROM runs
		WHERE id IN (%s)
		GROUP BY width, height
		ORDER BY runs DESC, width ASC, height ASC`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.SizeAggregate
	for rows.Next() {
		var agg model.SizeAggregate
		if err := rows.Scan(&agg.Width, &agg.Height, &agg.Runs, &agg.BestMs, &agg.TotalMs, &agg.TotalMoves, &agg.FewestMoves); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (model.RunAggregate, error) {
	var run model.RunAggregate
	var endedAt string
	if err := row.Scan(&run.ID, &run.RunID, &endedAt, &run.Width, &run.Height, &run.Seed, &run.Moves, &run.DurationMs); err != nil {
		return model.RunAggregate{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, endedAt)
	if err != nil {
		return model.RunAggregate{}, err
	}
	run.EndedAt = parsed
	return run, nil
}

func runFilter(cfg model.StatsConfig) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Width > 0 && cfg.Height > 0 {
		clauses = append(clauses, "width = ?", "height = ?")
		args = append(args, cfg.Width, cfg.Height)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	return clauses, args
}
