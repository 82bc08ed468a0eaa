package domain

import "time"

// Pause is a pause_start event paired with its pause_end, owned by exactly
// one WorkCycle. End is nil while the pause is still open.
type Pause struct {
	Start    Event
	StartAt  time.Time
	End      *Event
	EndAt    *time.Time
}

// Completed reports whether the pause has both boundaries.
func (p Pause) Completed() bool {
	return p.End != nil
}

// WorkCycle is one reconstructed shift: an entrance, zero or more pauses and
// an optional exit. Exit == nil means the cycle is still open; its durations
// were computed against the wall clock at reconstruction time and must not be
// treated as authoritative.
type WorkCycle struct {
	User       UserKey
	Entrance   Event
	EntranceAt time.Time
	Exit       *Event
	ExitAt     *time.Time
	Pauses     []Pause

	TotalMinutes     int
	PausedMinutes    int
	EffectiveMinutes int
}

// Open reports whether the cycle lacks a real or synthesized exit.
func (c WorkCycle) Open() bool {
	return c.Exit == nil
}
