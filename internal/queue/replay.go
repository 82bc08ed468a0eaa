package queue

import (
	"context"
	"errors"
)

// ReplayResult summarizes one replay pass.
type ReplayResult struct {
	Submitted int // accepted by the remote side
	Conflicts int // reported duplicate, dropped as already applied
	Remaining int // still queued after the pass
}

// Replay attempts submission of every queued item in insertion order. An
// item is removed when submission succeeds or the submitter reports
// ErrConflict. Any other failure stops the pass with the item (and all
// later ones) still queued, preserving per-user ordering for the next
// attempt. Context cancellation likewise leaves the remainder queued and
// returns the context error.
//
// Only one replay runs at a time; overlapping calls get
// ErrReplayInProgress instead of duplicating submissions in flight.
func (q *Queue) Replay(ctx context.Context, submitter Submitter) (ReplayResult, error) {
	q.mu.Lock()
	if q.replaying {
		q.mu.Unlock()
		return ReplayResult{}, ErrReplayInProgress
	}
	q.replaying = true
	q.mu.Unlock()
	defer func() {
		q.mu.Lock()
		q.replaying = false
		q.mu.Unlock()
	}()

	var res ReplayResult

	items, err := q.repo.List(ctx)
	if err != nil {
		return res, err
	}
	res.Remaining = len(items)

	// Once the remote side confirms an item it must leave the queue even if
	// the caller cancelled mid-submission, or the next pass would resubmit it.
	cleanupCtx := context.WithoutCancel(ctx)

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		err := submitter.Submit(ctx, *item)
		switch {
		case err == nil:
			res.Submitted++
		case errors.Is(err, ErrConflict):
			res.Conflicts++
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return res, err
		default:
			// Transient failure: keep the item for a later retry and stop
			// so later events are not submitted out of order.
			return res, nil
		}

		if err := q.repo.Delete(cleanupCtx, item.ID); err != nil {
			return res, err
		}
		res.Remaining--
		q.notify(cleanupCtx)
	}

	return res, nil
}
