package formatter

import (
	"strings"

	"github.com/jornada-hq/jornada/internal/reconstruct"
)

// FormatTimeline renders a flattened timeline chronologically, one boundary
// per row.
func FormatTimeline(entries []reconstruct.TimelineEntry) string {
	if len(entries) == 0 {
		return Dim("No events.") + "\n"
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		note := e.Event.Note
		if e.NextDay {
			note = strings.TrimSpace(note + " " + Dim("(+1d)"))
		}
		rows = append(rows, []string{
			reconstruct.FormatClockTime(e.At),
			KindColor(e.Kind).Render(KindLabel(e.Kind)),
			e.User.String(),
			note,
		})
	}

	var b strings.Builder
	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"TIME", "EVENT", "USER", "NOTE"}, rows))
	return b.String()
}
