package formatter

import (
	"testing"

	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/jornada-hq/jornada/internal/reconstruct"
	"github.com/stretchr/testify/assert"
)

func TestFormatCycles_Empty(t *testing.T) {
	out := FormatCycles(nil)
	assert.Contains(t, out, "No work cycles.")
}

func TestFormatCycles_RendersRows(t *testing.T) {
	cycles := reconstruct.Reconstruct([]domain.Event{
		{ID: "1", UserID: "3", Kind: "entrar", RecordedAt: "2023-10-27 08:00:00"},
		{ID: "2", UserID: "3", Kind: "salir", RecordedAt: "2023-10-27 16:30:00"},
	})

	out := FormatCycles(cycles)
	assert.Contains(t, out, "2023-10-27 08:00:00")
	assert.Contains(t, out, "2023-10-27 16:30:00")
	assert.Contains(t, out, "8h 30m")
	assert.Contains(t, out, "closed")
}

func TestFormatCycles_MarksAutoClose(t *testing.T) {
	r := reconstruct.NewReconstructor(reconstruct.Config{})
	cycles := r.Reconstruct([]domain.Event{
		{ID: "1", UserID: "3", Kind: "entrar", RecordedAt: "2023-10-26 08:00:00"},
		{ID: "2", UserID: "3", Kind: "entrar", RecordedAt: "2023-10-27 08:00:00"},
	})

	out := FormatCycles(cycles)
	assert.Contains(t, out, "(auto)")
}

func TestFormatQueue_Empty(t *testing.T) {
	out := FormatQueue(nil)
	assert.Contains(t, out, "Offline queue is empty.")
}

func TestFormatChanges_Placeholder(t *testing.T) {
	out := FormatChanges([]domain.ChangeItem{
		{Kind: domain.ChangeShift, PauseIndex: -1},
	})
	assert.Contains(t, out, "Jornada")
}

func TestFormatChanges_PauseNumbering(t *testing.T) {
	out := FormatChanges([]domain.ChangeItem{
		{Kind: domain.ChangePauseStart, PauseIndex: 0, Original: "2023-10-27 12:00:00", Proposed: "2023-10-27 12:05:00"},
		{Kind: domain.ChangePauseEnd, PauseIndex: 1, Original: "2023-10-27 15:00:00", Proposed: "2023-10-27 15:30:00"},
	})
	assert.Contains(t, out, "Pausa 1")
	assert.Contains(t, out, "Regreso 2")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", formatMinutes(45))
	assert.Equal(t, "1h 00m", formatMinutes(60))
	assert.Equal(t, "8h 05m", formatMinutes(485))
}
