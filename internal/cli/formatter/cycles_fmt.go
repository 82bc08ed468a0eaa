package formatter

import (
	"fmt"
	"strings"

	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/jornada-hq/jornada/internal/reconstruct"
)

// FormatCycles renders reconstructed work cycles as a table, most recent
// first (the order Reconstruct already produces).
func FormatCycles(cycles []domain.WorkCycle) string {
	if len(cycles) == 0 {
		return Dim("No work cycles.") + "\n"
	}

	rows := make([][]string, 0, len(cycles))
	for _, c := range cycles {
		exit := Dim("—")
		if c.Exit != nil {
			exit = reconstruct.FormatClockTime(*c.ExitAt)
			if c.Exit.ID == reconstruct.AutoCloseExitID {
				exit = StyleYellow.Render(exit + " (auto)")
			}
		}
		state := StyleGreen.Render("closed")
		if c.Open() {
			state = StyleYellow.Render("open")
		}
		rows = append(rows, []string{
			c.User.String(),
			reconstruct.FormatClockTime(c.EntranceAt),
			exit,
			fmt.Sprintf("%d", len(c.Pauses)),
			formatMinutes(c.TotalMinutes),
			formatMinutes(c.PausedMinutes),
			Bold(formatMinutes(c.EffectiveMinutes)),
			state,
		})
	}

	var b strings.Builder
	b.WriteString(Header("Work cycles"))
	b.WriteString("\n")
	b.WriteString(RenderTable(
		[]string{"USER", "ENTRANCE", "EXIT", "PAUSES", "TOTAL", "PAUSED", "EFFECTIVE", "STATE"},
		rows,
	))
	return b.String()
}

// FormatQueue renders the offline queue in insertion order.
func FormatQueue(items []*domain.QueuedEvent) string {
	if len(items) == 0 {
		return Dim("Offline queue is empty.") + "\n"
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.ID,
			KindColor(it.Kind).Render(KindLabel(it.Kind)),
			reconstruct.FormatClockTime(it.CapturedAt),
			it.Note,
		})
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Pending events (%d)", len(items))))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"ID", "KIND", "CAPTURED", "NOTE"}, rows))
	return b.String()
}

// FormatChanges renders correction change items as "original -> proposed"
// rows for review.
func FormatChanges(items []domain.ChangeItem) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		if it.Kind == domain.ChangeShift {
			rows = append(rows, []string{Dim("Jornada"), Dim("—"), Dim("—")})
			continue
		}
		orig := it.Original
		if orig == "" {
			orig = Dim("sin registro")
		}
		rows = append(rows, []string{
			changeLabel(it),
			orig,
			Bold(it.Proposed),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Proposed changes"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"FIELD", "ORIGINAL", "PROPOSED"}, rows))
	return b.String()
}

func changeLabel(it domain.ChangeItem) string {
	switch it.Kind {
	case domain.ChangeEntrance:
		return StyleGreen.Render("Entrada")
	case domain.ChangeExit:
		return StyleRed.Render("Salida")
	case domain.ChangePauseStart:
		return StyleYellow.Render(fmt.Sprintf("Pausa %d", it.PauseIndex+1))
	case domain.ChangePauseEnd:
		return StyleBlue.Render(fmt.Sprintf("Regreso %d", it.PauseIndex+1))
	default:
		return string(it.Kind)
	}
}

func formatMinutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	return fmt.Sprintf("%dh %02dm", min/60, min%60)
}
