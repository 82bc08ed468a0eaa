package repository

import (
	"context"
	"errors"

	"github.com/jornada-hq/jornada/internal/domain"
)

// ErrNotFound indicates a requested row does not exist.
var ErrNotFound = errors.New("not found")

// QueueRepo persists not-yet-submitted events. List returns items in
// insertion order, which Replay depends on.
type QueueRepo interface {
	Insert(ctx context.Context, e *domain.QueuedEvent) error
	List(ctx context.Context) ([]*domain.QueuedEvent, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// EventCacheRepo keeps a local copy of server-side clock events so history
// can be reconstructed while disconnected.
type EventCacheRepo interface {
	Upsert(ctx context.Context, events []domain.Event) error
	List(ctx context.Context) ([]domain.Event, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Event, error)
	Clear(ctx context.Context) error
}
