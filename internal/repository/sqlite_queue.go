package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jornada-hq/jornada/internal/domain"
)

// SQLiteQueueRepo implements QueueRepo using a SQLite database.
type SQLiteQueueRepo struct {
	db *sql.DB
}

// NewSQLiteQueueRepo creates a new SQLiteQueueRepo.
func NewSQLiteQueueRepo(db *sql.DB) *SQLiteQueueRepo {
	return &SQLiteQueueRepo{db: db}
}

func (r *SQLiteQueueRepo) Insert(ctx context.Context, e *domain.QueuedEvent) error {
	query := `INSERT INTO offline_events (id, kind, user_id, user_login, note, lat, lng, out_of_range, justification, captured_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Kind),
		e.UserID,
		e.UserLogin,
		e.Note,
		e.Lat,
		e.Lng,
		boolToInt(e.OutOfRange),
		e.Justification,
		e.CapturedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting queued event: %w", err)
	}
	return nil
}

func (r *SQLiteQueueRepo) List(ctx context.Context) ([]*domain.QueuedEvent, error) {
	query := `SELECT id, kind, user_id, user_login, note, lat, lng, out_of_range, justification, captured_at
		FROM offline_events ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing queued events: %w", err)
	}
	defer rows.Close()

	var events []*domain.QueuedEvent
	for rows.Next() {
		var e domain.QueuedEvent
		var kind, capturedAtStr string
		var outOfRange int

		err := rows.Scan(
			&e.ID, &kind, &e.UserID, &e.UserLogin, &e.Note, &e.Lat, &e.Lng,
			&outOfRange, &e.Justification, &capturedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning queued event row: %w", err)
		}

		e.Kind = domain.EventKind(kind)
		e.OutOfRange = intToBool(outOfRange)
		e.CapturedAt, err = time.Parse(time.RFC3339, capturedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing captured_at: %w", err)
		}

		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating queued events: %w", err)
	}
	return events, nil
}

func (r *SQLiteQueueRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM offline_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting queued event: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("queued event %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteQueueRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM offline_events`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting queued events: %w", err)
	}
	return n, nil
}
