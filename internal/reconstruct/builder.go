package reconstruct

import (
	"fmt"
	"time"

	"github.com/jornada-hq/jornada/internal/domain"
)

// AutoCloseExitID is the sentinel id carried by synthesized exit events so
// audit trails can tell them apart from real clock-outs.
const AutoCloseExitID = "-1"

// DefaultAutoCloseAfter is the maximum plausible shift length. An open cycle
// whose entrance is older than this when the next entrance arrives gets
// auto-closed. Business policy, not a structural invariant, hence
// configurable.
const DefaultAutoCloseAfter = 12 * time.Hour

// Config tunes a Reconstructor. Zero values select the defaults.
type Config struct {
	// AutoCloseAfter overrides DefaultAutoCloseAfter.
	AutoCloseAfter time.Duration
	// Now supplies the wall clock used to value open cycles and to stand in
	// for malformed timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Reconstructor turns per-user event streams into work cycles.
type Reconstructor struct {
	autoCloseAfter time.Duration
	now            func() time.Time
}

// NewReconstructor creates a Reconstructor from cfg, applying defaults for
// unset fields.
func NewReconstructor(cfg Config) *Reconstructor {
	r := &Reconstructor{
		autoCloseAfter: cfg.AutoCloseAfter,
		now:            cfg.Now,
	}
	if r.autoCloseAfter <= 0 {
		r.autoCloseAfter = DefaultAutoCloseAfter
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Reconstruct with default configuration. Convenience for callers that do
// not need to tune the auto-close policy or inject a clock.
func Reconstruct(events []domain.Event) []domain.WorkCycle {
	return NewReconstructor(Config{}).Reconstruct(events)
}

// sortedEvent is an event with its kind canonicalized and timestamp
// normalized, ready for the state machine.
type sortedEvent struct {
	ev   domain.Event
	kind domain.EventKind
	at   time.Time
}

// buildUserCycles runs the per-user state machine over one chronologically
// sorted stream.
func (r *Reconstructor) buildUserCycles(user domain.UserKey, events []sortedEvent) []domain.WorkCycle {
	var cycles []domain.WorkCycle
	var current *domain.WorkCycle

	for _, e := range events {
		switch e.kind {
		case domain.KindClockIn:
			if current != nil {
				// A second entrance within the auto-close window is a
				// duplicate tap and gets absorbed. Beyond the window the old
				// cycle was abandoned: close it against its own entrance and
				// start fresh.
				if e.at.Sub(current.EntranceAt) > r.autoCloseAfter {
					r.autoClose(current)
					cycles = append(cycles, *current)
					current = nil
				}
			}
			if current == nil {
				current = &domain.WorkCycle{
					User:       user,
					Entrance:   e.ev,
					EntranceAt: e.at,
				}
			}

		case domain.KindClockOut:
			if current == nil {
				continue // no entrance to close
			}
			exit := e.ev
			exitAt := e.at
			current.Exit = &exit
			current.ExitAt = &exitAt
			r.computeDurations(current, exitAt)
			cycles = append(cycles, *current)
			current = nil

		case domain.KindPauseStart:
			if current == nil {
				continue
			}
			current.Pauses = append(current.Pauses, domain.Pause{
				Start:   e.ev,
				StartAt: e.at,
			})

		case domain.KindPauseEnd:
			if current == nil || len(current.Pauses) == 0 {
				continue
			}
			last := &current.Pauses[len(current.Pauses)-1]
			if last.End != nil {
				continue // already paired
			}
			end := e.ev
			endAt := e.at
			last.End = &end
			last.EndAt = &endAt
		}
	}

	// Cycle still open at end of stream: emit it unclosed, valued against
	// the current wall clock for display only.
	if current != nil {
		r.computeDurations(current, r.now())
		cycles = append(cycles, *current)
	}

	return cycles
}

// autoClose attaches a synthesized exit to an abandoned cycle. The exit
// reuses the entrance timestamp and carries the sentinel id plus an
// explanatory note so it is visibly synthetic.
func (r *Reconstructor) autoClose(c *domain.WorkCycle) {
	exit := c.Entrance
	exit.ID = AutoCloseExitID
	exit.Kind = string(domain.KindClockOut)
	exit.Note = fmt.Sprintf("Cierre automático > %s", formatThreshold(r.autoCloseAfter))
	exitAt := c.EntranceAt
	c.Exit = &exit
	c.ExitAt = &exitAt
	r.computeDurations(c, exitAt)
}

// computeDurations fills the three derived totals. Whole minutes; pauses
// without an end contribute nothing yet.
func (r *Reconstructor) computeDurations(c *domain.WorkCycle, until time.Time) {
	total := wholeMinutes(c.EntranceAt, until)
	paused := 0
	for _, p := range c.Pauses {
		if p.Completed() {
			paused += wholeMinutes(p.StartAt, *p.EndAt)
		}
	}
	c.TotalMinutes = total
	c.PausedMinutes = paused
	c.EffectiveMinutes = total - paused
}

func wholeMinutes(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}

// formatThreshold renders the auto-close threshold for the synthesized exit
// note: "12h" for whole hours, "1h30m" otherwise.
func formatThreshold(d time.Duration) string {
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}
