package stats

import (
	"sort"

	"github.com/verte-zerg/tuimaze/internal/model"
)

// TopSizesByFrequency returns the N most played maze sizes as WxH labels.
func TopSizesByFrequency(aggs []model.SizeAggregate, n int) []string {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	items := make([]model.SizeAggregate, len(aggs))
	copy(items, aggs)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Runs == items[j].Runs {
			if items[i].Width == items[j].Width {
				return items[i].Height < items[j].Height
			}
			return items[i].Width < items[j].Width
		}
		return items[i].Runs > items[j].Runs
	})
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.FormatSize(items[i].Width, items[i].Height))
	}
	return out
}
