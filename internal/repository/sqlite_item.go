package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/domain"
)

const itemColumns = `id, project_id, production_number, name, manager, deadline, warning_days, order_index`

// SQLiteManagementItemRepo implements ManagementItemRepo using a SQLite database.
type SQLiteManagementItemRepo struct {
	db db.DBTX
}

func NewSQLiteManagementItemRepo(conn db.DBTX) *SQLiteManagementItemRepo {
	return &SQLiteManagementItemRepo{db: conn}
}

func (r *SQLiteManagementItemRepo) Create(ctx context.Context, item *domain.ManagementItem) error {
	query := `INSERT INTO management_items (` + itemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.ProjectID,
		item.ProductionNumber,
		item.Name,
		item.Manager,
		nullableDateToString(item.Deadline),
		item.WarningDays,
		item.OrderIndex,
	)
	if err != nil {
		return fmt.Errorf("inserting management item: %w", err)
	}
	return nil
}

func (r *SQLiteManagementItemRepo) GetByID(ctx context.Context, id string) (*domain.ManagementItem, error) {
	query := `SELECT ` + itemColumns + ` FROM management_items WHERE id = ?`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("management item: %w", ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQLiteManagementItemRepo) ListByProject(ctx context.Context, projectID string) ([]domain.ManagementItem, error) {
	query := `SELECT ` + itemColumns + ` FROM management_items WHERE project_id = ? ORDER BY order_index, id`
	return r.query(ctx, query, projectID)
}

// ListWithDeadline returns every item that has a deadline, soonest first.
func (r *SQLiteManagementItemRepo) ListWithDeadline(ctx context.Context) ([]domain.ManagementItem, error) {
	query := `SELECT ` + itemColumns + ` FROM management_items
		WHERE deadline IS NOT NULL AND deadline != '' ORDER BY deadline, order_index`
	return r.query(ctx, query)
}

func (r *SQLiteManagementItemRepo) Update(ctx context.Context, item *domain.ManagementItem) error {
	query := `UPDATE management_items SET production_number = ?, name = ?, manager = ?,
		deadline = ?, warning_days = ?, order_index = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		item.ProductionNumber,
		item.Name,
		item.Manager,
		nullableDateToString(item.Deadline),
		item.WarningDays,
		item.OrderIndex,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating management item: %w", err)
	}
	return requireAffected(res, "management item")
}

func (r *SQLiteManagementItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM management_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting management item: %w", err)
	}
	return requireAffected(res, "management item")
}

// MaxOrderIndex returns the highest order index of the project's items, or
// -1 when it has none.
func (r *SQLiteManagementItemRepo) MaxOrderIndex(ctx context.Context, projectID string) (int, error) {
	var max sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT MAX(order_index) FROM management_items WHERE project_id = ?`, projectID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("reading max order index: %w", err)
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

func (r *SQLiteManagementItemRepo) listByProjects(ctx context.Context, projectIDs []string) (map[string][]domain.ManagementItem, error) {
	args := make([]any, len(projectIDs))
	for i, id := range projectIDs {
		args[i] = id
	}
	query := `SELECT ` + itemColumns + ` FROM management_items
		WHERE project_id IN (` + placeholders(len(projectIDs)) + `) ORDER BY project_id, order_index, id`
	items, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]domain.ManagementItem, len(projectIDs))
	for _, item := range items {
		out[item.ProjectID] = append(out[item.ProjectID], item)
	}
	return out, nil
}

func (r *SQLiteManagementItemRepo) query(ctx context.Context, query string, args ...any) ([]domain.ManagementItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing management items: %w", err)
	}
	defer rows.Close()

	var items []domain.ManagementItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating management items: %w", err)
	}
	return items, nil
}

func scanItem(row rowScanner) (domain.ManagementItem, error) {
	var item domain.ManagementItem
	var deadline sql.NullString
	err := row.Scan(
		&item.ID, &item.ProjectID, &item.ProductionNumber, &item.Name, &item.Manager,
		&deadline, &item.WarningDays, &item.OrderIndex,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item, err
		}
		return item, fmt.Errorf("scanning management item: %w", err)
	}
	item.Deadline = parseNullableDate(deadline)
	return item, nil
}
