package reconstruct

import (
	"sort"

	"github.com/jornada-hq/jornada/internal/domain"
)

// Reconstruct partitions a mixed multi-user event stream, rebuilds each
// user's cycles independently and returns the combined list sorted by
// entrance time descending (most recent first), ready for display grouping.
//
// Events with a missing or unknown kind, or a missing timestamp, are skipped.
// A present but malformed timestamp falls back to the current clock (see
// ClockTimeOrNow).
func (r *Reconstructor) Reconstruct(events []domain.Event) []domain.WorkCycle {
	if len(events) == 0 {
		return []domain.WorkCycle{}
	}

	byUser := make(map[domain.UserKey][]sortedEvent)
	var order []domain.UserKey
	for _, ev := range events {
		kind, ok := domain.ParseEventKind(ev.Kind)
		if !ok || ev.RecordedAt == "" {
			continue
		}
		key := domain.KeyForEvent(ev)
		if _, seen := byUser[key]; !seen {
			order = append(order, key)
		}
		byUser[key] = append(byUser[key], sortedEvent{
			ev:   ev,
			kind: kind,
			at:   clockTimeOr(ev.RecordedAt, r.now),
		})
	}

	var all []domain.WorkCycle
	for _, key := range order {
		userEvents := byUser[key]
		// Intra-user chronological order is what cycle correctness depends
		// on; cross-user order is irrelevant.
		sort.SliceStable(userEvents, func(i, j int) bool {
			return userEvents[i].at.Before(userEvents[j].at)
		})
		all = append(all, r.buildUserCycles(key, userEvents)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[j].EntranceAt.Before(all[i].EntranceAt)
	})
	return all
}
