package schema

import (
	"math"
	"sort"
)

// SortMetrics orders results by the given field: path and kind ascending,
// numeric fields descending. Ties fall back to path order so output is
// deterministic. NaN hotspot values sort last.
func SortMetrics(metrics []*PathMetrics, field SortField) {
	sort.SliceStable(metrics, func(i, j int) bool {
		a, b := metrics[i], metrics[j]
		switch field {
		case SortByKind:
			if a.Kind != b.Kind {
				return a.Kind < b.Kind
			}
		case SortByMaintainability:
			if a.Maintainability != b.Maintainability {
				return a.Maintainability > b.Maintainability
			}
		case SortByChanges:
			if a.Changes != b.Changes {
				return a.Changes > b.Changes
			}
		case SortByHotspot:
			hi, hj := a.HotspotIndex(), b.HotspotIndex()
			if math.IsNaN(hi) {
				return false
			}
			if math.IsNaN(hj) {
				return true
			}
			if hi != hj {
				return hi > hj
			}
		}
		return a.Path < b.Path
	})
}

// LimitMetrics caps the result slice at n rows; n <= 0 means no limit.
func LimitMetrics(metrics []*PathMetrics, n int) []*PathMetrics {
	if n <= 0 || n >= len(metrics) {
		return metrics
	}
	return metrics[:n]
}
