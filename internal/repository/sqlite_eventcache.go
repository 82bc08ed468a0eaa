package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jornada-hq/jornada/internal/domain"
)

// SQLiteEventCacheRepo implements EventCacheRepo using a SQLite database.
type SQLiteEventCacheRepo struct {
	db *sql.DB
}

// NewSQLiteEventCacheRepo creates a new SQLiteEventCacheRepo.
func NewSQLiteEventCacheRepo(db *sql.DB) *SQLiteEventCacheRepo {
	return &SQLiteEventCacheRepo{db: db}
}

func (r *SQLiteEventCacheRepo) Upsert(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting cache upsert: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `INSERT INTO event_cache (id, user_id, user_login, kind, recorded_at, note, lat, lng, out_of_range, justification, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			note = excluded.note,
			fetched_at = excluded.fetched_at`
	fetchedAt := time.Now().UTC().Format(time.RFC3339)
	for _, e := range events {
		_, err := tx.ExecContext(ctx, query,
			e.ID, e.UserID, e.UserLogin, e.Kind, e.RecordedAt,
			e.Note, e.Lat, e.Lng, boolToInt(e.OutOfRange), e.Justification,
			fetchedAt,
		)
		if err != nil {
			return fmt.Errorf("upserting cached event %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cache upsert: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteEventCacheRepo) List(ctx context.Context) ([]domain.Event, error) {
	return r.list(ctx, `SELECT id, user_id, user_login, kind, recorded_at, note, lat, lng, out_of_range, justification
		FROM event_cache ORDER BY recorded_at`)
}

func (r *SQLiteEventCacheRepo) ListByUser(ctx context.Context, userID string) ([]domain.Event, error) {
	return r.list(ctx, `SELECT id, user_id, user_login, kind, recorded_at, note, lat, lng, out_of_range, justification
		FROM event_cache WHERE user_id = ? ORDER BY recorded_at`, userID)
}

func (r *SQLiteEventCacheRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM event_cache`); err != nil {
		return fmt.Errorf("clearing event cache: %w", err)
	}
	return nil
}

func (r *SQLiteEventCacheRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cached events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		var outOfRange int
		err := rows.Scan(
			&e.ID, &e.UserID, &e.UserLogin, &e.Kind, &e.RecordedAt,
			&e.Note, &e.Lat, &e.Lng, &outOfRange, &e.Justification,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning cached event row: %w", err)
		}
		e.OutOfRange = intToBool(outOfRange)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cached events: %w", err)
	}
	return events, nil
}
