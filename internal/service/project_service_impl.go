package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects           repository.ProjectRepo
	uow                db.UnitOfWork
	defaultWarningDays int
	observer           UseCaseObserver
}

// NewProjectService wires project use cases. defaultWarningDays applies to
// the items seeded on create; a negative value falls back to
// domain.DefaultWarningDays.
func NewProjectService(
	projects repository.ProjectRepo,
	uow db.UnitOfWork,
	defaultWarningDays int,
	observers ...UseCaseObserver,
) ProjectService {
	if defaultWarningDays < 0 {
		defaultWarningDays = domain.DefaultWarningDays
	}
	return &projectService{
		projects:           projects,
		uow:                uow,
		defaultWarningDays: defaultWarningDays,
		observer:           useCaseObserverOrNoop(observers),
	}
}

// Create assigns an ID, applies defaults, seeds the default item set when
// p has no items, validates and stores the project with its items.
func (s *projectService) Create(ctx context.Context, p *domain.Project) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"vendor": p.Vendor}
	defer func() { observe(ctx, s.observer, "create-project", startedAt, fields, &err) }()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.ProcessStage == "" {
		p.ProcessStage = domain.StagePendingInspection
	}
	if p.HealthStatus == "" {
		p.HealthStatus = domain.HealthNormal
	}
	if len(p.Items) == 0 {
		for _, name := range domain.DefaultItemNames {
			p.Items = append(p.Items, domain.ManagementItem{Name: name, WarningDays: s.defaultWarningDays})
		}
	}
	for i := range p.Items {
		s.prepareItem(p, &p.Items[i], i)
	}
	fields["project_id"] = p.ID
	fields["item_count"] = len(p.Items)

	if err = p.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, p); err != nil {
			return err
		}
		return recordActivity(ctx, tx, "created project", projectLabel(p))
	})
}

func (s *projectService) prepareItem(p *domain.Project, item *domain.ManagementItem, index int) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.ProjectID = p.ID
	item.ProductionNumber = domain.CoalesceStr(item.ProductionNumber, p.ProductionNumber)
	item.Manager = domain.CoalesceStr(item.Manager, p.Manager)
	item.OrderIndex = index
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, filter repository.ProjectFilter) ([]*domain.Project, error) {
	if filter.Stage != "" && !filter.Stage.Valid() {
		var v domain.ValidationError
		v.Add("stage", "invalid value %q", filter.Stage)
		return nil, &v
	}
	return s.projects.List(ctx, filter)
}

func (s *projectService) Update(ctx context.Context, id string, patch app.ProjectPatch) (p *domain.Project, err error) {
	startedAt := time.Now()
	fields := map[string]any{"project_id": id}
	defer func() { observe(ctx, s.observer, "update-project", startedAt, fields, &err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProjectRepo(tx)
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		before := current.ProcessStage

		current.Vendor = domain.StrFromPtr(patch.Vendor, current.Vendor)
		current.Country = domain.StrFromPtr(patch.Country, current.Country)
		current.ProductionNumber = domain.StrFromPtr(patch.ProductionNumber, current.ProductionNumber)
		current.PM = domain.StrFromPtr(patch.PM, current.PM)
		current.Manager = domain.StrFromPtr(patch.Manager, current.Manager)
		current.FATDate = patch.FATDate.Apply(current.FATDate)
		current.DeliveryDate = patch.DeliveryDate.Apply(current.DeliveryDate)
		if patch.ProcessStage != nil {
			current.ProcessStage = *patch.ProcessStage
		}
		if patch.HealthStatus != nil {
			current.HealthStatus = *patch.HealthStatus
		}
		current.UpdatedAt = time.Now().UTC()

		if err := current.Validate(); err != nil {
			return err
		}
		if err := repo.Update(ctx, current); err != nil {
			return err
		}

		action := "updated project"
		if current.ProcessStage != before {
			action = fmt.Sprintf("moved project to %s", current.ProcessStage.Label())
			fields["stage"] = string(current.ProcessStage)
		}
		p = current
		return recordActivity(ctx, tx, action, projectLabel(current))
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "delete-project", startedAt, map[string]any{"project_id": id}, &err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProjectRepo(tx)
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		return recordActivity(ctx, tx, "deleted project", projectLabel(p))
	})
}

// AddItem appends a management item after the project's existing items.
func (s *projectService) AddItem(ctx context.Context, projectID string, item *domain.ManagementItem) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"project_id": projectID, "item": item.Name}
	defer func() { observe(ctx, s.observer, "add-item", startedAt, fields, &err) }()

	if err = item.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		p, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		items := repository.NewSQLiteManagementItemRepo(tx)
		max, err := items.MaxOrderIndex(ctx, projectID)
		if err != nil {
			return err
		}
		s.prepareItem(p, item, max+1)
		if err := items.Create(ctx, item); err != nil {
			return err
		}
		fields["item_id"] = item.ID
		return recordActivity(ctx, tx, "added "+item.Name, projectLabel(p))
	})
}

func (s *projectService) UpdateItem(ctx context.Context, itemID string, patch app.ItemPatch) (item *domain.ManagementItem, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "update-item", startedAt, map[string]any{"item_id": itemID}, &err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		items := repository.NewSQLiteManagementItemRepo(tx)
		current, err := items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		current.Name = domain.StrFromPtr(patch.Name, current.Name)
		current.Manager = domain.StrFromPtr(patch.Manager, current.Manager)
		current.ProductionNumber = domain.StrFromPtr(patch.ProductionNumber, current.ProductionNumber)
		current.Deadline = patch.Deadline.Apply(current.Deadline)
		current.WarningDays = domain.IntFromPtrWithDefault(current.WarningDays, patch.WarningDays)
		current.OrderIndex = domain.IntFromPtrWithDefault(current.OrderIndex, patch.OrderIndex)

		if err := current.Validate(); err != nil {
			return err
		}
		if err := items.Update(ctx, current); err != nil {
			return err
		}
		p, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, current.ProjectID)
		if err != nil {
			return err
		}
		item = current
		return recordActivity(ctx, tx, "updated "+current.Name, projectLabel(p))
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *projectService) RemoveItem(ctx context.Context, itemID string) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "remove-item", startedAt, map[string]any{"item_id": itemID}, &err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		items := repository.NewSQLiteManagementItemRepo(tx)
		item, err := items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if err := items.Delete(ctx, itemID); err != nil {
			return err
		}
		p, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, item.ProjectID)
		if err != nil {
			return err
		}
		return recordActivity(ctx, tx, "removed "+item.Name, projectLabel(p))
	})
}

func projectLabel(p *domain.Project) string {
	return fmt.Sprintf("%s %s", p.Vendor, p.ProductionNumber)
}
