package networth

import (
	"sort"

	"github.com/pocketbudget/engine/domain/entity"
)

// BuildTimeline orders snapshots ascending by month for charting. The
// lexicographic sort is valid because months are zero-padded YYYY-MM. The
// input slice is never mutated; ties keep their input order.
func BuildTimeline(snapshots []entity.NetWorthSnapshot) []entity.NetWorthSnapshot {
	timeline := make([]entity.NetWorthSnapshot, len(snapshots))
	copy(timeline, snapshots)
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Month < timeline[j].Month
	})
	return timeline
}
