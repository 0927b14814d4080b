package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, e *domain.ActivityEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_events (id, actor, action, target, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Actor, e.Action, e.Target, formatTimestamp(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting activity event: %w", err)
	}
	return nil
}

// ListRecent returns up to limit events, newest first. A non-positive
// limit returns every event.
func (r *SQLiteActivityRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	query := `SELECT id, actor, action, target, created_at FROM activity_events ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	defer rows.Close()

	var events []*domain.ActivityEvent
	for rows.Next() {
		var e domain.ActivityEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Target, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning activity event: %w", err)
		}
		if e.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity: %w", err)
	}
	return events, nil
}
