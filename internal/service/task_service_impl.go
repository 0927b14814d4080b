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

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{tasks: tasks, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Create puts the task at the bottom of its column.
func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"title": t.Title}
	defer func() { observe(ctx, s.observer, "create-task", startedAt, fields, &err) }()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.Position = 0
	fields["task_id"] = t.ID

	if err = t.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTaskRepo(tx)
		max, err := repo.MaxPosition(ctx, t.Status)
		if err != nil {
			return err
		}
		t.Position = max + 1
		if err := repo.Create(ctx, t); err != nil {
			return err
		}
		return recordActivity(ctx, tx, "added task", t.Title)
	})
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

// Board groups every task into its column, ordered by position.
func (s *taskService) Board(ctx context.Context) (*app.Board, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}
	return buildBoard(tasks), nil
}

func buildBoard(tasks []*domain.Task) *app.Board {
	board := &app.Board{Columns: make([]app.BoardColumn, len(domain.TaskStatuses))}
	for i, status := range domain.TaskStatuses {
		board.Columns[i] = app.BoardColumn{Status: status, Tasks: []*domain.Task{}}
	}
	for _, t := range tasks {
		if col := board.Column(t.Status); col != nil {
			col.Tasks = append(col.Tasks, t)
		}
	}
	return board
}

// Move drops a task into a column. Dropping a task where it already is
// changes nothing. Otherwise the source and target columns are re-packed
// to contiguous positions in one transaction.
func (s *taskService) Move(ctx context.Context, req app.MoveRequest) (result *app.MoveResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"task_id": req.TaskID, "status": string(req.Status)}
	defer func() { observe(ctx, s.observer, "move-task", startedAt, fields, &err) }()

	var v domain.ValidationError
	if !req.Status.Valid() {
		v.Add("status", "invalid value %q (todo|doing|done)", req.Status)
	}
	if req.Position != nil && *req.Position < 0 {
		v.Add("position", "must be >= 0")
	}
	if err = v.OrNil(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTaskRepo(tx)
		task, err := repo.GetByID(ctx, req.TaskID)
		if err != nil {
			return err
		}
		source, err := repo.ListByStatus(ctx, task.Status)
		if err != nil {
			return err
		}
		srcIdx := indexOfTask(source, task.ID)
		source = removeTask(source, srcIdx)

		now := time.Now().UTC()
		from := task.Status

		if req.Status == from {
			if req.Position == nil {
				result = &app.MoveResult{Task: task, Changed: false}
				return nil
			}
			target := clamp(*req.Position, 0, len(source))
			if target == srcIdx {
				result = &app.MoveResult{Task: task, Changed: false}
				return nil
			}
			column := insertTask(source, task, target)
			task.UpdatedAt = now
			if err := repack(ctx, repo, column, from, task.ID, now); err != nil {
				return err
			}
			result = &app.MoveResult{Task: task, Changed: true}
			fields["position"] = target
			return recordActivity(ctx, tx, "reordered task", task.Title)
		}

		targetCol, err := repo.ListByStatus(ctx, req.Status)
		if err != nil {
			return err
		}
		pos := len(targetCol)
		if req.Position != nil {
			pos = clamp(*req.Position, 0, len(targetCol))
		}
		if err := repack(ctx, repo, source, from, "", now); err != nil {
			return err
		}
		task.Status = req.Status
		task.UpdatedAt = now
		if err := repack(ctx, repo, insertTask(targetCol, task, pos), req.Status, task.ID, now); err != nil {
			return err
		}
		result = &app.MoveResult{Task: task, Changed: true}
		fields["position"] = pos
		return recordActivity(ctx, tx, fmt.Sprintf("moved task to %s", req.Status), task.Title)
	})
	if err != nil {
		return nil, err
	}
	fields["changed"] = result.Changed
	return result, nil
}

// repack writes contiguous positions for column. Rows already in place are
// skipped, except forceID which is always written.
func repack(ctx context.Context, repo repository.TaskRepo, column []*domain.Task, status domain.TaskStatus, forceID string, now time.Time) error {
	for i, t := range column {
		if t.Position == i && t.Status == status && t.ID != forceID {
			continue
		}
		t.Position = i
		t.Status = status
		t.UpdatedAt = now
		if err := repo.Update(ctx, t); err != nil {
			return fmt.Errorf("repacking %s column: %w", status, err)
		}
	}
	return nil
}

func indexOfTask(tasks []*domain.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func removeTask(tasks []*domain.Task, idx int) []*domain.Task {
	if idx < 0 {
		return tasks
	}
	out := make([]*domain.Task, 0, len(tasks)-1)
	out = append(out, tasks[:idx]...)
	return append(out, tasks[idx+1:]...)
}

func insertTask(tasks []*domain.Task, t *domain.Task, idx int) []*domain.Task {
	out := make([]*domain.Task, 0, len(tasks)+1)
	out = append(out, tasks[:idx]...)
	out = append(out, t)
	return append(out, tasks[idx:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *taskService) Update(ctx context.Context, id string, patch app.TaskPatch) (t *domain.Task, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "update-task", startedAt, map[string]any{"task_id": id}, &err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTaskRepo(tx)
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		current.Title = domain.StrFromPtr(patch.Title, current.Title)
		current.Assignee = domain.StrFromPtr(patch.Assignee, current.Assignee)
		if patch.Priority != nil {
			current.Priority = *patch.Priority
		}
		current.DueDate = patch.DueDate.Apply(current.DueDate)
		current.UpdatedAt = time.Now().UTC()

		if err := current.Validate(); err != nil {
			return err
		}
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		t = current
		return recordActivity(ctx, tx, "updated task", current.Title)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the task and closes the gap it leaves in its column.
func (s *taskService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "delete-task", startedAt, map[string]any{"task_id": id}, &err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTaskRepo(tx)
		task, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		rest, err := repo.ListByStatus(ctx, task.Status)
		if err != nil {
			return err
		}
		if err := repack(ctx, repo, rest, task.Status, "", time.Now().UTC()); err != nil {
			return err
		}
		return recordActivity(ctx, tx, "deleted task", task.Title)
	})
}
