package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/domain"
)

const projectColumns = `id, vendor, country, production_number, pm, manager,
		fat_date, delivery_date, process_stage, health_status, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db    db.DBTX
	items *SQLiteManagementItemRepo
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn, items: NewSQLiteManagementItemRepo(conn)}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Vendor,
		p.Country,
		p.ProductionNumber,
		p.PM,
		p.Manager,
		nullableDateToString(p.FATDate),
		nullableDateToString(p.DeliveryDate),
		string(p.ProcessStage),
		string(p.HealthStatus),
		formatTimestamp(p.CreatedAt),
		formatTimestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	for i := range p.Items {
		p.Items[i].ProjectID = p.ID
		if err := r.items.Create(ctx, &p.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, err
	}
	p.Items, err = r.items.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns projects in creation order, each with its items loaded.
// Search is matched in Go so the comparison is Unicode case-folded the same
// way domain.Project.Matches does it.
func (r *SQLiteProjectRepo) List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []any
	if filter.Stage != "" {
		query += ` WHERE process_stage = ?`
		args = append(args, string(filter.Stage))
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		if p.Matches(filter.Search) {
			projects = append(projects, p)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	rows.Close()

	if len(projects) == 0 {
		return projects, nil
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	byProject, err := r.items.listByProjects(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		p.Items = byProject[p.ID]
	}
	return projects, nil
}

// Update rewrites the project row and replaces its item set with p.Items.
func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET vendor = ?, country = ?, production_number = ?, pm = ?, manager = ?,
		fat_date = ?, delivery_date = ?, process_stage = ?, health_status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Vendor,
		p.Country,
		p.ProductionNumber,
		p.PM,
		p.Manager,
		nullableDateToString(p.FATDate),
		nullableDateToString(p.DeliveryDate),
		string(p.ProcessStage),
		string(p.HealthStatus),
		formatTimestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if err := requireAffected(res, "project"); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM management_items WHERE project_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing project items: %w", err)
	}
	for i := range p.Items {
		p.Items[i].ProjectID = p.ID
		if err := r.items.Create(ctx, &p.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the project; its items go with it through the foreign key.
func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireAffected(res, "project")
}

func (r *SQLiteProjectRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("deleting all projects: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var stage, health, createdAt, updatedAt string
	var fatDate, deliveryDate sql.NullString

	err := row.Scan(
		&p.ID, &p.Vendor, &p.Country, &p.ProductionNumber, &p.PM, &p.Manager,
		&fatDate, &deliveryDate, &stage, &health, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.ProcessStage = domain.ProcessStage(stage)
	p.HealthStatus = domain.HealthStatus(health)
	p.FATDate = parseNullableDate(fatDate)
	p.DeliveryDate = parseNullableDate(deliveryDate)

	var parseErr error
	if p.CreatedAt, parseErr = parseTimestamp(createdAt); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if p.UpdatedAt, parseErr = parseTimestamp(updatedAt); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s rows affected: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
