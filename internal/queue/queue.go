// Package queue holds clock events captured while disconnected until they
// are confirmed by the remote ERP. Items survive restarts (SQLite-backed)
// and replay is idempotent-safe: a duplicate reported by the server counts
// as already applied.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jornada-hq/jornada/internal/domain"
	"github.com/jornada-hq/jornada/internal/repository"
)

var (
	// ErrConflict is returned by a Submitter when the remote side reports
	// the event already exists. Replay treats it as success and drops the
	// item. Submission boundaries map their transport-specific duplicate
	// signals onto this sentinel so the queue never inspects status codes.
	ErrConflict = errors.New("event already recorded remotely")

	// ErrReplayInProgress indicates another replay pass is still running.
	ErrReplayInProgress = errors.New("replay already in progress")
)

// Submitter is the boundary that pushes one queued event to the remote side.
type Submitter interface {
	Submit(ctx context.Context, e domain.QueuedEvent) error
}

// SubmitFunc adapts a plain function to the Submitter interface.
type SubmitFunc func(ctx context.Context, e domain.QueuedEvent) error

func (f SubmitFunc) Submit(ctx context.Context, e domain.QueuedEvent) error {
	return f(ctx, e)
}

// Observer receives queue-mutation notifications, e.g. for a pending-count
// indicator in sync-status UI.
type Observer interface {
	OnQueueChanged(pending int)
}

// NoopObserver discards all notifications.
type NoopObserver struct{}

func (NoopObserver) OnQueueChanged(int) {}

// Queue is the durable offline queue service.
type Queue struct {
	repo     repository.QueueRepo
	observer Observer
	now      func() time.Time
	newID    func() string

	mu        sync.Mutex
	replaying bool
}

// New creates a Queue over the given repository. A nil observer is allowed.
func New(repo repository.QueueRepo, observer Observer) *Queue {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Queue{
		repo:     repo,
		observer: observer,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Enqueue assigns a locally unique id and capture timestamp to the draft and
// persists it. Legacy kind labels are canonicalized before storage.
func (q *Queue) Enqueue(ctx context.Context, draft domain.EventDraft) (*domain.QueuedEvent, error) {
	kind, ok := domain.ParseEventKind(string(draft.Kind))
	if !ok {
		return nil, fmt.Errorf("invalid event kind %q", draft.Kind)
	}

	item := &domain.QueuedEvent{
		ID:            q.newID(),
		Kind:          kind,
		UserID:        draft.UserID,
		UserLogin:     draft.UserLogin,
		Note:          draft.Note,
		Lat:           draft.Lat,
		Lng:           draft.Lng,
		OutOfRange:    draft.OutOfRange,
		Justification: draft.Justification,
		CapturedAt:    q.now(),
	}
	if err := q.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	q.notify(ctx)
	return item, nil
}

// List returns all queued items in insertion order.
func (q *Queue) List(ctx context.Context) ([]*domain.QueuedEvent, error) {
	return q.repo.List(ctx)
}

// Remove deletes one item by id.
func (q *Queue) Remove(ctx context.Context, id string) error {
	if err := q.repo.Delete(ctx, id); err != nil {
		return err
	}
	q.notify(ctx)
	return nil
}

// Pending returns the number of items awaiting submission.
func (q *Queue) Pending(ctx context.Context) (int, error) {
	return q.repo.Count(ctx)
}

func (q *Queue) notify(ctx context.Context) {
	if n, err := q.repo.Count(ctx); err == nil {
		q.observer.OnQueueChanged(n)
	}
}
