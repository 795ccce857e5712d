package stats

import (
	"context"

	"github.com/verte-zerg/tuimaze/internal/model"
	"github.com/verte-zerg/tuimaze/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Runs         []model.RunAggregate
	WindowRunIDs []int64
	SizesAll     []model.SizeAggregate
	SizesWindow  []model.SizeAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	runs, err := st.ListRuns(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(runs) > cfg.Last {
		runs = runs[len(runs)-cfg.Last:]
	}

	allIDs := runIDs(runs)
	windowIDs := lastRunIDs(runs, cfg.CurveWindow)
	sizesAll, err := st.ListSizeAggregates(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	sizesWindow, err := st.ListSizeAggregates(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Runs:         runs,
		WindowRunIDs: windowIDs,
		SizesAll:     sizesAll,
		SizesWindow:  sizesWindow,
	}, nil
}

func runIDs(runs []model.RunAggregate) []int64 {
	ids := make([]int64, len(runs))
	for i, r := range runs {
		ids[i] = r.ID
	}
	return ids
}

func lastRunIDs(runs []model.RunAggregate, window int) []int64 {
	if window <= 0 || len(runs) <= window {
		return runIDs(runs)
	}
	return runIDs(runs[len(runs)-window:])
}
