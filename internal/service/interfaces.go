package service

import (
	"context"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/importer"
	"github.com/alexanderramin/shopfloor/internal/repository"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter repository.ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, id string, patch app.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	AddItem(ctx context.Context, projectID string, item *domain.ManagementItem) error
	UpdateItem(ctx context.Context, itemID string, patch app.ItemPatch) (*domain.ManagementItem, error)
	RemoveItem(ctx context.Context, itemID string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Board(ctx context.Context) (*app.Board, error)
	Move(ctx context.Context, req app.MoveRequest) (*app.MoveResult, error)
	Update(ctx context.Context, id string, patch app.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type DashboardService interface {
	Get(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error)
}

type SupportService interface {
	Submit(ctx context.Context, t *domain.SupportTicket) error
	List(ctx context.Context) ([]*domain.SupportTicket, error)
}

type GuideService interface {
	List(category string) []domain.FAQItem
	Get(id string) (*domain.FAQItem, error)
	Categories() []string
}

type SnapshotService interface {
	Export(ctx context.Context) (*importer.Snapshot, error)
	Import(ctx context.Context, snap *importer.Snapshot, mode app.ImportMode) (*app.ImportResult, error)
}
