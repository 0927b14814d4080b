package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/domain"
)

// SQLiteTicketRepo implements TicketRepo using a SQLite database.
type SQLiteTicketRepo struct {
	db db.DBTX
}

func NewSQLiteTicketRepo(conn db.DBTX) *SQLiteTicketRepo {
	return &SQLiteTicketRepo{db: conn}
}

func (r *SQLiteTicketRepo) Create(ctx context.Context, t *domain.SupportTicket) error {
	query := `INSERT INTO support_tickets (id, title, type, priority, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, string(t.Type), string(t.Priority), t.Content, formatTimestamp(t.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting support ticket: %w", err)
	}
	return nil
}

func (r *SQLiteTicketRepo) GetByID(ctx context.Context, id string) (*domain.SupportTicket, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, type, priority, content, created_at FROM support_tickets WHERE id = ?`, id)
	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("support ticket: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// List returns tickets newest first.
func (r *SQLiteTicketRepo) List(ctx context.Context) ([]*domain.SupportTicket, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, type, priority, content, created_at FROM support_tickets ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing support tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*domain.SupportTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating support tickets: %w", err)
	}
	return tickets, nil
}

func scanTicket(row rowScanner) (*domain.SupportTicket, error) {
	var t domain.SupportTicket
	var typ, priority, createdAt string
	if err := row.Scan(&t.ID, &t.Title, &typ, &priority, &t.Content, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning support ticket: %w", err)
	}
	t.Type = domain.TicketType(typ)
	t.Priority = domain.TicketPriority(priority)
	var err error
	if t.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &t, nil
}
