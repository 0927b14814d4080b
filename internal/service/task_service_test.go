package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/shopfloor/internal/app"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/repository"
	"github.com/alexanderramin/shopfloor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTasks(t *testing.T, svc TaskService, status domain.TaskStatus, titles ...string) []*domain.Task {
	t.Helper()
	out := make([]*domain.Task, 0, len(titles))
	for _, title := range titles {
		task := &domain.Task{Title: title, Status: status}
		require.NoError(t, svc.Create(context.Background(), task))
		out = append(out, task)
	}
	return out
}

func TestTaskService_CreateAppendsToColumn(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	created := createTasks(t, s.tasks, domain.TaskTodo, "Order parts", "Check drawing")
	assert.Equal(t, 0, created[0].Position)
	assert.Equal(t, 1, created[1].Position)
	assert.Equal(t, domain.PriorityMedium, created[0].Priority)

	done := &domain.Task{Title: "Ship", Status: domain.TaskDone, Priority: domain.PriorityHigh}
	require.NoError(t, s.tasks.Create(ctx, done))
	assert.Equal(t, 0, done.Position, "positions are per column")

	err := s.tasks.Create(ctx, &domain.Task{Title: "Bad", Priority: "urgent"})
	assert.True(t, domain.IsValidation(err))
	err = s.tasks.Create(ctx, &domain.Task{Title: " "})
	assert.True(t, domain.IsValidation(err))
}

func TestTaskService_BoardHasAllColumns(t *testing.T) {
	s := setupServices(t)
	createTasks(t, s.tasks, domain.TaskDoing, "Weld frame")

	board, err := s.tasks.Board(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Columns, 3)
	assert.Equal(t, domain.TaskTodo, board.Columns[0].Status)
	assert.Equal(t, domain.TaskDoing, board.Columns[1].Status)
	assert.Equal(t, domain.TaskDone, board.Columns[2].Status)
	assert.NotNil(t, board.Columns[0].Tasks)
	assert.Empty(t, board.Columns[0].Tasks)
	assert.Len(t, board.Columns[1].Tasks, 1)
}

func TestTaskService_MoveSameSpotIsNoop(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	tasks := createTasks(t, s.tasks, domain.TaskTodo, "A", "B")

	before, err := s.activity.ListRecent(ctx, 0)
	require.NoError(t, err)

	res, err := s.tasks.Move(ctx, app.MoveRequest{TaskID: tasks[1].ID, Status: domain.TaskTodo})
	require.NoError(t, err)
	assert.False(t, res.Changed)

	res, err = s.tasks.Move(ctx, app.MoveRequest{TaskID: tasks[0].ID, Status: domain.TaskTodo, Position: ptr(0)})
	require.NoError(t, err)
	assert.False(t, res.Changed)

	after, err := s.activity.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "no-op moves record nothing")
	assert.Equal(t, []string{"A", "B"}, columnTitles(t, s.tasks, domain.TaskTodo))
}

func TestTaskService_MoveReorderWithinColumn(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	tasks := createTasks(t, s.tasks, domain.TaskTodo, "A", "B", "C")

	res, err := s.tasks.Move(ctx, app.MoveRequest{TaskID: tasks[0].ID, Status: domain.TaskTodo, Position: ptr(2)})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 2, res.Task.Position)
	assert.Equal(t, []string{"B", "C", "A"}, columnTitles(t, s.tasks, domain.TaskTodo))

	res, err = s.tasks.Move(ctx, app.MoveRequest{TaskID: tasks[2].ID, Status: domain.TaskTodo, Position: ptr(0)})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"C", "B", "A"}, columnTitles(t, s.tasks, domain.TaskTodo))

	// Positions past the end clamp to the bottom.
	_, err = s.tasks.Move(ctx, app.MoveRequest{TaskID: tasks[2].ID, Status: domain.TaskTodo, Position: ptr(99)})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, columnTitles(t, s.tasks, domain.TaskTodo))
}

func TestTaskService_MoveAcrossColumns(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	todo := createTasks(t, s.tasks, domain.TaskTodo, "A", "B", "C")
	createTasks(t, s.tasks, domain.TaskDoing, "X", "Y")

	res, err := s.tasks.Move(ctx, app.MoveRequest{TaskID: todo[1].ID, Status: domain.TaskDoing, Position: ptr(1)})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, domain.TaskDoing, res.Task.Status)
	assert.Equal(t, []string{"A", "C"}, columnTitles(t, s.tasks, domain.TaskTodo))
	assert.Equal(t, []string{"X", "B", "Y"}, columnTitles(t, s.tasks, domain.TaskDoing))

	// Nil position drops at the bottom of the target column.
	_, err = s.tasks.Move(ctx, app.MoveRequest{TaskID: todo[0].ID, Status: domain.TaskDone})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, columnTitles(t, s.tasks, domain.TaskTodo))
	assert.Equal(t, []string{"A"}, columnTitles(t, s.tasks, domain.TaskDone))

	events, err := s.activity.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "moved task to done", events[0].Action)
	assert.Equal(t, "A", events[0].Target)
}

func TestTaskService_MoveValidation(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	tasks := createTasks(t, s.tasks, domain.TaskTodo, "A")

	_, err := s.tasks.Move(ctx, app.MoveRequest{TaskID: tasks[0].ID, Status: "blocked"})
	assert.True(t, domain.IsValidation(err))

	_, err = s.tasks.Move(ctx, app.MoveRequest{TaskID: tasks[0].ID, Status: domain.TaskDone, Position: ptr(-1)})
	assert.True(t, domain.IsValidation(err))

	_, err = s.tasks.Move(ctx, app.MoveRequest{TaskID: "missing", Status: domain.TaskDone})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_MoveRollsBackOnFailure(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	todo := createTasks(t, s.tasks, domain.TaskTodo, "A", "B", "C")

	failing := &testutil.FailOnNthExecUoW{DB: s.db, FailOn: 2, Err: errors.New("write failed")}
	svc := NewTaskService(repository.NewSQLiteTaskRepo(s.db), failing)

	_, err := svc.Move(ctx, app.MoveRequest{TaskID: todo[0].ID, Status: domain.TaskDoing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")

	assert.Equal(t, []string{"A", "B", "C"}, columnTitles(t, s.tasks, domain.TaskTodo))
	assert.Empty(t, columnTitles(t, s.tasks, domain.TaskDoing))
}

func TestTaskService_UpdateAndDelete(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	tasks := createTasks(t, s.tasks, domain.TaskTodo, "A", "B", "C")

	high := domain.PriorityHigh
	due := testutil.Date(2025, 3, 20)
	updated, err := s.tasks.Update(ctx, tasks[1].ID, app.TaskPatch{
		Title:    ptr("B2"),
		Priority: &high,
		DueDate:  app.OptionalDate{Set: true, Value: &due},
	})
	require.NoError(t, err)
	assert.Equal(t, "B2", updated.Title)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	assert.Equal(t, "2025-03-20", domain.FormatDate(updated.DueDate))
	assert.Equal(t, 1, updated.Position)

	_, err = s.tasks.Update(ctx, tasks[1].ID, app.TaskPatch{Title: ptr("")})
	assert.True(t, domain.IsValidation(err))

	require.NoError(t, s.tasks.Delete(ctx, tasks[0].ID))
	assert.Equal(t, []string{"B2", "C"}, columnTitles(t, s.tasks, domain.TaskTodo))

	_, err = s.tasks.GetByID(ctx, tasks[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, s.tasks.Delete(ctx, tasks[0].ID), repository.ErrNotFound)
}
