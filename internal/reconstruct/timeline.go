package reconstruct

import (
	"sort"
	"time"

	"github.com/jornada-hq/jornada/internal/domain"
)

// TimelineEntry is one cycle boundary flattened out of a WorkCycle for day
// views: entrance, exit, or one side of a pause. Pause entries carry the
// full pause pair so a renderer can show the range; every entry carries its
// cycle's boundaries for validation context.
type TimelineEntry struct {
	Kind  domain.EventKind
	At    time.Time
	Event domain.Event
	User  domain.UserKey

	PauseStart *time.Time
	PauseEnd   *time.Time

	CycleEntrance time.Time
	CycleExit     *time.Time

	// NextDay marks entries falling on a calendar day after the entrance
	// (shifts spanning midnight).
	NextDay bool
}

// DailyEvents flattens cycles into a single chronologically sorted timeline.
func DailyEvents(cycles []domain.WorkCycle) []TimelineEntry {
	var entries []TimelineEntry

	for _, c := range cycles {
		entries = append(entries, TimelineEntry{
			Kind:          domain.KindClockIn,
			At:            c.EntranceAt,
			Event:         c.Entrance,
			User:          c.User,
			CycleEntrance: c.EntranceAt,
			CycleExit:     c.ExitAt,
		})

		for _, p := range c.Pauses {
			start := p.StartAt
			entries = append(entries, TimelineEntry{
				Kind:          domain.KindPauseStart,
				At:            p.StartAt,
				Event:         p.Start,
				User:          c.User,
				PauseStart:    &start,
				PauseEnd:      p.EndAt,
				CycleEntrance: c.EntranceAt,
				CycleExit:     c.ExitAt,
				NextDay:       differentDay(c.EntranceAt, p.StartAt),
			})
			if p.End != nil {
				entries = append(entries, TimelineEntry{
					Kind:          domain.KindPauseEnd,
					At:            *p.EndAt,
					Event:         *p.End,
					User:          c.User,
					PauseStart:    &start,
					PauseEnd:      p.EndAt,
					CycleEntrance: c.EntranceAt,
					CycleExit:     c.ExitAt,
					NextDay:       differentDay(c.EntranceAt, *p.EndAt),
				})
			}
		}

		if c.Exit != nil {
			entries = append(entries, TimelineEntry{
				Kind:          domain.KindClockOut,
				At:            *c.ExitAt,
				Event:         *c.Exit,
				User:          c.User,
				CycleEntrance: c.EntranceAt,
				CycleExit:     c.ExitAt,
				NextDay:       differentDay(c.EntranceAt, *c.ExitAt),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})
	return entries
}

func differentDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay != by || am != bm || ad != bd
}
