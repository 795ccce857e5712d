package stats

import (
	"sort"

	"github.com/verte-zerg/tuimaze/internal/model"
)

// TopRuns returns the n fastest runs, ties broken by fewer moves then
// insertion order. n <= 0 returns every run sorted.
func TopRuns(runs []model.RunAggregate, n int) []model.RunAggregate {
	if len(runs) == 0 {
		return nil
	}
	sorted := make([]model.RunAggregate, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DurationMs != sorted[j].DurationMs {
			return sorted[i].DurationMs < sorted[j].DurationMs
		}
		if sorted[i].Moves != sorted[j].Moves {
			return sorted[i].Moves < sorted[j].Moves
		}
		return sorted[i].ID < sorted[j].ID
	})
	if n <= 0 || n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
