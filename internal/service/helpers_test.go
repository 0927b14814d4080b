package service

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/shopfloor/internal/db"
	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/repository"
	"github.com/alexanderramin/shopfloor/internal/testutil"
)

type testServices struct {
	db        *sql.DB
	uow       db.UnitOfWork
	projects  ProjectService
	tasks     TaskService
	dashboard DashboardService
	support   SupportService
	snapshot  SnapshotService
	activity  repository.ActivityRepo
	logs      *bytes.Buffer
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	logs := &bytes.Buffer{}
	obs := NewLogUseCaseObserver(logs)

	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)

	return &testServices{
		db:        database,
		uow:       uow,
		projects:  NewProjectService(projectRepo, uow, domain.DefaultWarningDays, obs),
		tasks:     NewTaskService(taskRepo, uow, obs),
		dashboard: NewDashboardService(projectRepo, taskRepo, activityRepo, obs),
		support:   NewSupportService(repository.NewSQLiteTicketRepo(database), uow, obs),
		snapshot:  NewSnapshotService(projectRepo, taskRepo, uow, obs),
		activity:  activityRepo,
		logs:      logs,
	}
}

func ptr[T any](v T) *T { return &v }

func columnTitles(t *testing.T, svc TaskService, status domain.TaskStatus) []string {
	t.Helper()
	board, err := svc.Board(context.Background())
	if err != nil {
		t.Fatalf("loading board: %v", err)
	}
	col := board.Column(status)
	titles := make([]string, 0, len(col.Tasks))
	for i, task := range col.Tasks {
		if task.Position != i {
			t.Fatalf("column %s: task %q at index %d has position %d", status, task.Title, i, task.Position)
		}
		titles = append(titles, task.Title)
	}
	return titles
}
