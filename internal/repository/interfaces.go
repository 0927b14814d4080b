package repository

import (
	"context"

	"github.com/alexanderramin/shopfloor/internal/domain"
)

// ProjectFilter narrows List results. Zero values match everything.
type ProjectFilter struct {
	Stage  domain.ProcessStage
	Search string
}

// ProjectRepo persists projects together with their management items.
// Create, Update and Delete touch several rows; run them under a
// db.UnitOfWork when atomicity matters.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type ManagementItemRepo interface {
	Create(ctx context.Context, item *domain.ManagementItem) error
	GetByID(ctx context.Context, id string) (*domain.ManagementItem, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.ManagementItem, error)
	ListWithDeadline(ctx context.Context) ([]domain.ManagementItem, error)
	Update(ctx context.Context, item *domain.ManagementItem) error
	Delete(ctx context.Context, id string) error
	MaxOrderIndex(ctx context.Context, projectID string) (int, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	// MaxPosition returns the highest position in the column, or -1 when
	// the column is empty.
	MaxPosition(ctx context.Context, status domain.TaskStatus) (int, error)
}

type TicketRepo interface {
	Create(ctx context.Context, t *domain.SupportTicket) error
	GetByID(ctx context.Context, id string) (*domain.SupportTicket, error)
	List(ctx context.Context) ([]*domain.SupportTicket, error)
}

type ActivityRepo interface {
	Create(ctx context.Context, e *domain.ActivityEvent) error
	ListRecent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}
