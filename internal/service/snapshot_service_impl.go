package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/importer"
	"github.com/alexanderramin/shopfloor/internal/repository"
	"github.com/google/uuid"
)

type snapshotService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewSnapshotService wires whole-store export and import, the persistence
// boundary a browser front end uses to load and save its state.
func NewSnapshotService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SnapshotService {
	return &snapshotService{
		projects: projects,
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *snapshotService) Export(ctx context.Context) (snap *importer.Snapshot, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "export-snapshot", startedAt, fields, &err) }()

	projects, err := s.projects.List(ctx, repository.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	fields["projects"] = len(projects)
	fields["tasks"] = len(tasks)
	return importer.FromDomain(projects, tasks, time.Now()), nil
}

// Import validates snap and loads it in one transaction. Merge upserts by
// ID; replace clears projects and tasks first. Task columns are re-packed
// afterwards so positions stay contiguous.
func (s *snapshotService) Import(ctx context.Context, snap *importer.Snapshot, mode app.ImportMode) (result *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"mode": string(mode)}
	defer func() { observe(ctx, s.observer, "import-snapshot", startedAt, fields, &err) }()

	if mode == "" {
		mode = app.ImportMerge
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown import mode %q (merge|replace)", mode)
	}
	if errs := importer.ValidateSnapshot(snap); len(errs) > 0 {
		var v domain.ValidationError
		for _, e := range errs {
			v.Add("snapshot", "%s", e.Error())
		}
		fields["error_count"] = len(errs)
		return nil, &v
	}

	projects, tasks, err := importer.Convert(snap, time.Now())
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	result = &app.ImportResult{Mode: mode}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projectRepo := repository.NewSQLiteProjectRepo(tx)
		itemRepo := repository.NewSQLiteManagementItemRepo(tx)
		taskRepo := repository.NewSQLiteTaskRepo(tx)

		if mode == app.ImportReplace {
			if err := projectRepo.DeleteAll(ctx); err != nil {
				return err
			}
			if err := taskRepo.DeleteAll(ctx); err != nil {
				return err
			}
		}

		for _, p := range projects {
			result.ItemsTotal += len(p.Items)
			if err := claimItemIDs(ctx, itemRepo, p); err != nil {
				return err
			}
			existing, err := projectRepo.GetByID(ctx, p.ID)
			switch {
			case err == nil:
				p.CreatedAt = existing.CreatedAt
				if err := projectRepo.Update(ctx, p); err != nil {
					return fmt.Errorf("updating project %s: %w", p.ID, err)
				}
				result.ProjectsUpdated++
			case errors.Is(err, repository.ErrNotFound):
				if err := projectRepo.Create(ctx, p); err != nil {
					return fmt.Errorf("creating project %s: %w", p.ID, err)
				}
				result.ProjectsCreated++
			default:
				return err
			}
		}

		for _, t := range tasks {
			_, err := taskRepo.GetByID(ctx, t.ID)
			switch {
			case err == nil:
				if err := taskRepo.Update(ctx, t); err != nil {
					return fmt.Errorf("updating task %s: %w", t.ID, err)
				}
				result.TasksUpdated++
			case errors.Is(err, repository.ErrNotFound):
				if err := taskRepo.Create(ctx, t); err != nil {
					return fmt.Errorf("creating task %s: %w", t.ID, err)
				}
				result.TasksCreated++
			default:
				return err
			}
		}

		now := time.Now().UTC()
		for _, status := range domain.TaskStatuses {
			column, err := taskRepo.ListByStatus(ctx, status)
			if err != nil {
				return err
			}
			if err := repack(ctx, taskRepo, column, status, "", now); err != nil {
				return err
			}
		}

		return recordActivity(ctx, tx, "imported snapshot",
			fmt.Sprintf("%d projects, %d tasks", len(projects), len(tasks)))
	})
	if err != nil {
		return nil, err
	}
	fields["projects_created"] = result.ProjectsCreated
	fields["projects_updated"] = result.ProjectsUpdated
	fields["tasks_created"] = result.TasksCreated
	fields["tasks_updated"] = result.TasksUpdated
	return result, nil
}

// claimItemIDs gives p's items fresh IDs where the stored item with that ID
// belongs to another project.
func claimItemIDs(ctx context.Context, items repository.ManagementItemRepo, p *domain.Project) error {
	for i := range p.Items {
		existing, err := items.GetByID(ctx, p.Items[i].ID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			continue
		case err != nil:
			return err
		}
		if existing.ProjectID != p.ID {
			p.Items[i].ID = uuid.New().String()
		}
	}
	return nil
}
