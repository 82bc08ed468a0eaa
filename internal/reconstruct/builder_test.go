package reconstruct

import (
	"testing"
	"time"

	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(id, userID, at string, kind domain.EventKind) domain.Event {
	return domain.Event{
		ID:         id,
		UserID:     userID,
		Kind:       string(kind),
		RecordedAt: at,
	}
}

func fixedClock(at string) func() time.Time {
	t, err := ParseClockTime(at)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestReconstruct_Empty(t *testing.T) {
	assert.Empty(t, Reconstruct(nil))
	assert.Empty(t, Reconstruct([]domain.Event{}))
}

func TestReconstruct_SimpleEntryExit(t *testing.T) {
	events := []domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		makeEvent("2", "1", "2023-10-27 16:00:00", domain.KindClockOut),
	}

	cycles := Reconstruct(events)
	require.Len(t, cycles, 1)

	c := cycles[0]
	assert.Equal(t, "1", c.Entrance.ID)
	require.NotNil(t, c.Exit)
	assert.Equal(t, "2", c.Exit.ID)
	assert.Equal(t, 480, c.TotalMinutes)
	assert.Equal(t, 0, c.PausedMinutes)
	assert.Equal(t, 480, c.EffectiveMinutes)
	assert.Empty(t, c.Pauses)
	assert.False(t, c.Open())
}

func TestReconstruct_PausePairing(t *testing.T) {
	events := []domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		makeEvent("2", "1", "2023-10-27 12:00:00", domain.KindPauseStart),
		makeEvent("3", "1", "2023-10-27 13:00:00", domain.KindPauseEnd),
		makeEvent("4", "1", "2023-10-27 17:00:00", domain.KindClockOut),
	}

	cycles := Reconstruct(events)
	require.Len(t, cycles, 1)

	c := cycles[0]
	require.Len(t, c.Pauses, 1)
	assert.True(t, c.Pauses[0].Completed())
	assert.Equal(t, 540, c.TotalMinutes)
	assert.Equal(t, 60, c.PausedMinutes)
	assert.Equal(t, 480, c.EffectiveMinutes)
}

func TestReconstruct_LegacyPauseKinds(t *testing.T) {
	canonical := Reconstruct([]domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		makeEvent("2", "1", "2023-10-27 12:00:00", domain.KindPauseStart),
		makeEvent("3", "1", "2023-10-27 13:00:00", domain.KindPauseEnd),
		makeEvent("4", "1", "2023-10-27 17:00:00", domain.KindClockOut),
	})
	legacy := Reconstruct([]domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		{ID: "2", UserID: "1", Kind: "pausa", RecordedAt: "2023-10-27 12:00:00"},
		{ID: "3", UserID: "1", Kind: "finp", RecordedAt: "2023-10-27 13:00:00"},
		makeEvent("4", "1", "2023-10-27 17:00:00", domain.KindClockOut),
	})

	require.Len(t, canonical, 1)
	require.Len(t, legacy, 1)
	assert.Equal(t, canonical[0].PausedMinutes, legacy[0].PausedMinutes)
	assert.Equal(t, canonical[0].EffectiveMinutes, legacy[0].EffectiveMinutes)
}

func TestReconstruct_OpenCycle(t *testing.T) {
	r := NewReconstructor(Config{Now: fixedClock("2023-10-27 12:30:00")})

	cycles := r.Reconstruct([]domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
	})
	require.Len(t, cycles, 1)

	c := cycles[0]
	assert.Nil(t, c.Exit)
	assert.True(t, c.Open())
	// Valued against the injected wall clock, display only.
	assert.Equal(t, 270, c.TotalMinutes)
	assert.Equal(t, 270, c.EffectiveMinutes)
}

func TestReconstruct_OpenPauseContributesNothing(t *testing.T) {
	r := NewReconstructor(Config{Now: fixedClock("2023-10-27 14:00:00")})

	cycles := r.Reconstruct([]domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		makeEvent("2", "1", "2023-10-27 12:00:00", domain.KindPauseStart),
	})
	require.Len(t, cycles, 1)

	c := cycles[0]
	require.Len(t, c.Pauses, 1)
	assert.False(t, c.Pauses[0].Completed())
	assert.Equal(t, 360, c.TotalMinutes)
	assert.Equal(t, 0, c.PausedMinutes)
	assert.Equal(t, 360, c.EffectiveMinutes)
}

func TestReconstruct_AutoCloseAfterTwelveHours(t *testing.T) {
	events := []domain.Event{
		makeEvent("1", "1", "2023-10-26 08:00:00", domain.KindClockIn),
		// Next entrance a day later: the first cycle was abandoned.
		makeEvent("2", "1", "2023-10-27 08:00:00", domain.KindClockIn),
	}

	r := NewReconstructor(Config{Now: fixedClock("2023-10-27 09:00:00")})
	cycles := r.Reconstruct(events)
	require.Len(t, cycles, 2)

	// Output is entrance-descending; the auto-closed cycle is last.
	closed := cycles[1]
	require.NotNil(t, closed.Exit)
	assert.Equal(t, AutoCloseExitID, closed.Exit.ID)
	assert.Contains(t, closed.Exit.Note, "Cierre automático")
	assert.True(t, closed.ExitAt.Equal(closed.EntranceAt), "synthesized exit reuses the entrance timestamp")
	assert.Equal(t, 0, closed.TotalMinutes)

	assert.True(t, cycles[0].Open())
	assert.Equal(t, "2", cycles[0].Entrance.ID)
}

func TestReconstruct_DuplicateEntranceAbsorbed(t *testing.T) {
	events := []domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		// Second tap two hours later, within the auto-close window.
		makeEvent("2", "1", "2023-10-27 10:00:00", domain.KindClockIn),
		makeEvent("3", "1", "2023-10-27 16:00:00", domain.KindClockOut),
	}

	cycles := Reconstruct(events)
	require.Len(t, cycles, 1)
	assert.Equal(t, "1", cycles[0].Entrance.ID)
	assert.Equal(t, 480, cycles[0].TotalMinutes)
}

func TestReconstruct_ConfigurableThreshold(t *testing.T) {
	events := []domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		makeEvent("2", "1", "2023-10-27 10:00:00", domain.KindClockIn),
	}

	r := NewReconstructor(Config{
		AutoCloseAfter: time.Hour,
		Now:            fixedClock("2023-10-27 11:00:00"),
	})
	cycles := r.Reconstruct(events)

	require.Len(t, cycles, 2)
	require.NotNil(t, cycles[1].Exit)
	assert.Contains(t, cycles[1].Exit.Note, "> 1h")
}

func TestReconstruct_SubHourThresholdNote(t *testing.T) {
	events := []domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		makeEvent("2", "1", "2023-10-27 10:00:00", domain.KindClockIn),
	}

	r := NewReconstructor(Config{
		AutoCloseAfter: 90 * time.Minute,
		Now:            fixedClock("2023-10-27 11:00:00"),
	})
	cycles := r.Reconstruct(events)

	require.Len(t, cycles, 2)
	require.NotNil(t, cycles[1].Exit)
	assert.Contains(t, cycles[1].Exit.Note, "> 1h30m")
}

func TestReconstruct_OrphanEventsIgnored(t *testing.T) {
	events := []domain.Event{
		// Exit and pause boundaries with no open cycle.
		makeEvent("1", "1", "2023-10-27 07:00:00", domain.KindClockOut),
		makeEvent("2", "1", "2023-10-27 07:30:00", domain.KindPauseEnd),
		makeEvent("3", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		// pause_end with no pause open inside the cycle.
		makeEvent("4", "1", "2023-10-27 09:00:00", domain.KindPauseEnd),
		makeEvent("5", "1", "2023-10-27 16:00:00", domain.KindClockOut),
	}

	cycles := Reconstruct(events)
	require.Len(t, cycles, 1)
	assert.Equal(t, "3", cycles[0].Entrance.ID)
	assert.Empty(t, cycles[0].Pauses)
	assert.Equal(t, 480, cycles[0].TotalMinutes)
}

func TestReconstruct_SecondPauseEndIgnored(t *testing.T) {
	events := []domain.Event{
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		makeEvent("2", "1", "2023-10-27 12:00:00", domain.KindPauseStart),
		makeEvent("3", "1", "2023-10-27 12:30:00", domain.KindPauseEnd),
		makeEvent("4", "1", "2023-10-27 13:00:00", domain.KindPauseEnd),
		makeEvent("5", "1", "2023-10-27 16:00:00", domain.KindClockOut),
	}

	cycles := Reconstruct(events)
	require.Len(t, cycles, 1)
	require.Len(t, cycles[0].Pauses, 1)
	assert.Equal(t, 30, cycles[0].PausedMinutes)
}

func TestReconstruct_SkipsInvalidKinds(t *testing.T) {
	events := []domain.Event{
		{ID: "1", UserID: "1", Kind: "", RecordedAt: "2023-10-27 07:00:00"},
		{ID: "2", UserID: "1", Kind: "bogus", RecordedAt: "2023-10-27 07:30:00"},
		{ID: "3", UserID: "1", Kind: string(domain.KindClockIn)},
		makeEvent("4", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		makeEvent("5", "1", "2023-10-27 16:00:00", domain.KindClockOut),
	}

	cycles := Reconstruct(events)
	require.Len(t, cycles, 1)
	assert.Equal(t, "4", cycles[0].Entrance.ID)
}

func TestReconstruct_OutOfOrderInput(t *testing.T) {
	events := []domain.Event{
		makeEvent("4", "1", "2023-10-27 17:00:00", domain.KindClockOut),
		makeEvent("2", "1", "2023-10-27 12:00:00", domain.KindPauseStart),
		makeEvent("1", "1", "2023-10-27 08:00:00", domain.KindClockIn),
		makeEvent("3", "1", "2023-10-27 13:00:00", domain.KindPauseEnd),
	}

	cycles := Reconstruct(events)
	require.Len(t, cycles, 1)
	assert.Equal(t, 540, cycles[0].TotalMinutes)
	assert.Equal(t, 60, cycles[0].PausedMinutes)
}
