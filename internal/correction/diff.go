// Package correction expands correction records into discrete change items.
//
// One correction may touch the entrance time, the exit time and any number of
// pause boundaries. Approval UIs need each touched field as its own
// "original -> proposed" row, so the engine walks the record and emits one
// ChangeItem per field whose proposed value actually differs from its
// recorded original.
package correction

import (
	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/jornada-hq/jornada/internal/reconstruct"
)

// Diff expands one correction into its change items: entrance first, then
// exit, then pause boundaries in index order (start before end). A field
// yields an item only when a proposed value is present and differs from the
// original after timestamp normalization. A correction with no concrete time
// change (note-only, status-only) yields a single shift-level placeholder so
// it stays representable to a reviewer.
func Diff(rec domain.Correction) []domain.ChangeItem {
	var items []domain.ChangeItem

	if changed(rec.ProposedEntrance, rec.OriginalEntrance) {
		items = append(items, domain.ChangeItem{
			Kind:       domain.ChangeEntrance,
			PauseIndex: -1,
			Original:   rec.OriginalEntrance,
			Proposed:   rec.ProposedEntrance,
		})
	}
	if changed(rec.ProposedExit, rec.OriginalExit) {
		items = append(items, domain.ChangeItem{
			Kind:       domain.ChangeExit,
			PauseIndex: -1,
			Original:   rec.OriginalExit,
			Proposed:   rec.ProposedExit,
		})
	}

	for i, p := range rec.Pauses {
		if changed(p.ProposedStart, p.OriginalStart) {
			items = append(items, domain.ChangeItem{
				Kind:       domain.ChangePauseStart,
				PauseIndex: i,
				Original:   p.OriginalStart,
				Proposed:   p.ProposedStart,
			})
		}
		if changed(p.ProposedEnd, p.OriginalEnd) {
			items = append(items, domain.ChangeItem{
				Kind:       domain.ChangePauseEnd,
				PauseIndex: i,
				Original:   p.OriginalEnd,
				Proposed:   p.ProposedEnd,
			})
		}
	}

	if len(items) == 0 {
		items = append(items, domain.ChangeItem{
			Kind:       domain.ChangeShift,
			PauseIndex: -1,
		})
	}

	return items
}

// changed reports whether proposed is a real change over original. An absent
// proposed value is never a change; an absent original compares as empty.
func changed(proposed, original string) bool {
	if proposed == "" {
		return false
	}
	return normalize(proposed) != normalize(original)
}

// normalize renders a timestamp in the canonical shape so that "09:00" and
// "09:00:00" renditions of the same instant compare equal. Unparseable
// values fall back to raw string comparison.
func normalize(s string) string {
	if s == "" {
		return ""
	}
	t, err := reconstruct.ParseClockTime(s)
	if err != nil {
		return s
	}
	return reconstruct.FormatClockTime(t)
}
